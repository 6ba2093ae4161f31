package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gramin/internal/models"
	"gramin/internal/util"
)

// LoggingMiddleware writes one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	logger := util.NewLogger("HTTP")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.KeyValue("request",
			"request_id", c.GetString(ContextKeyRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// RecoveryMiddleware turns a panic into a 500 with the generic error body.
func RecoveryMiddleware() gin.HandlerFunc {
	logger := util.NewLogger("Recovery")

	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic while handling request", fmt.Errorf("%v", recovered), "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail:    util.InternalErrorMessage,
			RequestID: c.GetString(ContextKeyRequestID),
		})
	})
}
