package auth

import (
	"net/http"

	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/logger"
	"afl-predictions-backend/internal/service"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout, and session checks
type AuthHandler struct {
	service       *AuthService
	playerService service.PlayerServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, playerService service.PlayerServiceInterface) *AuthHandler {
	return &AuthHandler{
		service:       service,
		playerService: playerService,
	}
}

// Login handles POST /auth/login
// @Summary Log in by name and email
// @Description Identifies the player by email, registering it on first use, and starts a cookie session. No credential is checked; an existing email keeps its stored name.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body types.LoginForm true "Player identity"
// @Success 200 {object} types.Player
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	log := logger.WithContext(c.Request.Context())

	player, err := h.playerService.Login(c.Request.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error(), Field: apperrors.ValidationField(err)})
			return
		}
		log.WithError(err).Error("Login error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Login failed"})
		return
	}

	token, session, err := h.service.StartSession(player)
	if err != nil {
		log.WithError(err).Error("Start session error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Login failed"})
		return
	}

	h.setCookie(c, token, int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()))
	log.WithField("player_id", player.ID).Info("Player logged in")
	c.JSON(http.StatusOK, player)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Deletes the server-side session binding and clears the cookie. Safe to call without a session.
// @Tags auth
// @Produce json
// @Success 200 {object} types.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.service.Config().CookieName); err == nil {
		h.service.EndSession(token)
	}

	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// CheckSession handles GET /check-session
// @Summary Report the current session
// @Description Reports whether the caller holds a live session. Never answers 401.
// @Tags auth
// @Produce json
// @Success 200 {object} types.SessionStatus
// @Router /check-session [get]
func (h *AuthHandler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(h.service.Config().CookieName)
	if err != nil {
		c.JSON(http.StatusOK, types.SessionStatus{IsLoggedIn: false})
		return
	}

	session, err := h.service.ResolveSession(token)
	if err != nil {
		c.JSON(http.StatusOK, types.SessionStatus{IsLoggedIn: false})
		return
	}

	c.JSON(http.StatusOK, types.SessionStatus{
		IsLoggedIn: true,
		UserID:     session.PlayerID,
		Username:   session.PlayerName,
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	cfg := h.service.Config()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, value, maxAge, "/", "", cfg.SecureCookie, true)
}
