package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-api/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds client-supplied ids before they reach logs.
const maxRequestIDLen = 128

// RequestID tags every request with an id and stores it on the request
// context, where logger.InfoContext and friends pick it up in the services.
// A client id is kept only if it is short printable ASCII.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID returns the id RequestID stored on the request context.
func GetRequestID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return logger.RequestIDFromContext(c.Request.Context())
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
