package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request identifier in both directions
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the gin context key handlers read the identifier from
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}
