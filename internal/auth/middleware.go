package auth

import (
	"context"
	"net/http"

	"afl-predictions-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireSession
const (
	ContextPlayerID   = "player_id"
	ContextPlayerName = "player_name"
	ContextSessionID  = "session_id"
)

// AuthMiddleware gates routes on a live session cookie
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireSession resolves the session cookie and sets the player on the context.
// Requests without a live session are rejected with 401 before any handler runs.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.service.Config().CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}

		session, err := m.service.ResolveSession(token)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected session cookie")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}

		c.Set(ContextPlayerID, session.PlayerID)
		c.Set(ContextPlayerName, session.PlayerName)
		c.Set(ContextSessionID, session.ID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.PlayerIDKey, session.PlayerID))

		c.Next()
	}
}

// GetPlayerID is a helper function to extract the logged-in player id from context
func GetPlayerID(c *gin.Context) (uint, bool) {
	playerID, exists := c.Get(ContextPlayerID)
	if !exists {
		return 0, false
	}

	id, ok := playerID.(uint)
	return id, ok && id != 0
}

// GetPlayerName is a helper function to extract the logged-in player name from context
func GetPlayerName(c *gin.Context) (string, bool) {
	name, exists := c.Get(ContextPlayerName)
	if !exists {
		return "", false
	}

	nameStr, ok := name.(string)
	return nameStr, ok
}

// GetSessionID is a helper function to extract the session id from context
func GetSessionID(c *gin.Context) (string, bool) {
	sid, exists := c.Get(ContextSessionID)
	if !exists {
		return "", false
	}

	sidStr, ok := sid.(string)
	return sidStr, ok
}
