package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/pkg/types"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "afl-predictions-backend"

// SessionClaims is the signed payload of the session cookie. The cookie only carries a reference:
// the binding itself lives in the SessionStore, so deleting it logs the player out.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthService issues, resolves, and revokes player sessions
type AuthService struct {
	config *AuthConfig
	store  SessionStore
	now    func() time.Time
}

// NewAuthService creates a new session service
func NewAuthService(config *AuthConfig, store SessionStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if store == nil {
		store = NewMemoryStore()
	}

	return &AuthService{
		config: config,
		store:  store,
		now:    time.Now,
	}, nil
}

// Config returns the session configuration
func (s *AuthService) Config() *AuthConfig {
	return s.config
}

// StartSession binds a new session id to the player and returns the signed cookie value
func (s *AuthService) StartSession(player *types.Player) (string, *Session, error) {
	sid, err := generateRandomString(32)
	if err != nil {
		return "", nil, err
	}

	now := s.now()
	session := &Session{
		ID:         sid,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.config.SessionTTL),
	}

	claims := &SessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatUint(uint64(player.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SessionSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session: %w", err)
	}

	s.store.Put(session)
	return token, session, nil
}

// ResolveSession verifies the cookie value and returns the live session it refers to
func (s *AuthService) ResolveSession(token string) (*Session, error) {
	if token == "" {
		return nil, apperrors.ErrSessionRequired
	}

	claims, err := s.parse(token, true)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	session, ok := s.store.Get(claims.SessionID)
	if !ok {
		return nil, apperrors.ErrSessionInvalid
	}
	if session.Expired(s.now()) {
		s.store.Delete(session.ID)
		return nil, apperrors.ErrSessionExpired
	}
	if claims.Subject != strconv.FormatUint(uint64(session.PlayerID), 10) {
		return nil, apperrors.ErrSessionInvalid
	}

	return session, nil
}

// EndSession deletes the binding referenced by the cookie value.
// Unknown, expired, or malformed values are ignored so logout is idempotent.
func (s *AuthService) EndSession(token string) {
	if token == "" {
		return
	}
	claims, err := s.parse(token, false)
	if err != nil {
		return
	}
	s.store.Delete(claims.SessionID)
}

// SweepExpired drops every expired binding and returns how many were removed
func (s *AuthService) SweepExpired() int {
	return s.store.DeleteExpired(s.now())
}

func (s *AuthService) parse(token string, validateClaims bool) (*SessionClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	}
	if !validateClaims {
		opts = []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		}
	}

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.SessionSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// generateRandomString returns length random bytes, base64url encoded
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
