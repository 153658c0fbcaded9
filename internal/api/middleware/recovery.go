package middleware

import (
	"fmt"
	"net/http"

	"afl-predictions-backend/internal/logger"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with the generic error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", fmt.Sprint(recovered)).
			Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal server error"})
	})
}
