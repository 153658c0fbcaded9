package types

// SuccessResponse acknowledges a mutation
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// SessionStatus reports whether the caller holds an active session
type SessionStatus struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	UserID     uint   `json:"userId,omitempty"`
	Username   string `json:"username,omitempty"`
}

// HasSubmittedResponse reports whether a player has tipped any game of a round
type HasSubmittedResponse struct {
	HasSubmitted bool `json:"hasSubmitted"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to get games"`
	Field string `json:"field,omitempty" example:"predicted_winner_id"`
}
