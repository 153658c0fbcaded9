package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is matches any ValidationError with the same field and message
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPlayerNotFound           = &NotFoundError{Entity: "player"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrRoundNotFound            = &NotFoundError{Entity: "round"}
	ErrGameNotFound             = &NotFoundError{Entity: "game"}
	ErrPredictionNotFound       = &NotFoundError{Entity: "prediction"}
	ErrLadderPredictionNotFound = &NotFoundError{Entity: "ladder prediction"}

	// ErrNoRounds is returned when the current round is requested and no rounds exist yet
	ErrNoRounds = &NotFoundError{Entity: "rounds"}
)

// Business Logic Errors
var (
	ErrPredictedWinnerNotInGame = &ValidationError{Field: "predicted_winner_id", Message: "team is not playing in this game"}
	ErrInvalidLadderPosition    = &ValidationError{Field: "predicted_position", Message: "position is outside the ladder"}
	ErrInvalidRoundNumber       = &ValidationError{Field: "round_number", Message: "must be a positive integer"}
	ErrInvalidPlayerID          = &ValidationError{Field: "player_id", Message: "must be a positive integer"}
)

// Session Errors
var (
	ErrSessionRequired = &AuthenticationError{Message: "not logged in"}
	ErrSessionInvalid  = &AuthenticationError{Message: "invalid session"}
	ErrSessionExpired  = &AuthenticationError{Message: "session has expired"}
)

// Configuration Errors
var (
	ErrSessionSecretMissing = &ConfigurationError{Message: "session secret is required"}
	ErrCookieNameMissing    = &ConfigurationError{Message: "session cookie name is required"}
	ErrInvalidSessionTTL    = &ConfigurationError{Message: "session TTL must be positive"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ValidationField returns the offending field of a ValidationError, or "" for other errors
func ValidationField(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
