package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"afl-predictions-backend/internal/auth"
	apperrors "afl-predictions-backend/internal/errors"
	"afl-predictions-backend/internal/logger"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP surface. Validation and lookup failures
// are reported as-is; anything else is logged and answered with the generic failure message.
func respondError(c *gin.Context, err error, failure string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: validationErr.Error(), Field: validationErr.Field})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Not logged in"})
	case errors.Is(err, apperrors.ErrNoRounds):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "No rounds found"})
	case apperrors.IsNotFound(err):
		var notFound *apperrors.NotFoundError
		errors.As(err, &notFound)
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: notFound.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(failure)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: failure})
	}
}

// roundNumberParam parses the :roundNumber path parameter
func roundNumberParam(c *gin.Context) (int, bool) {
	roundNumber, err := strconv.Atoi(c.Param("roundNumber"))
	if err != nil || roundNumber < 1 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid round number", Field: "roundNumber"})
		return 0, false
	}
	return roundNumber, true
}

// playerIDFromContext returns the id RequireSession put on the context
func playerIDFromContext(c *gin.Context) (uint, bool) {
	playerID, ok := auth.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Not logged in"})
		return 0, false
	}
	return playerID, true
}
