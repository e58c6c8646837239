package rest

import (
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestLogger tags every request with an id, echoes it in the response
// header and logs the outcome once the handler chain is done.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(common.RequestIDHeaderName, requestID)
		c.Set(requestIDKey, requestID)

		c.Next()

		h.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

const requestIDKey = "request_id"

// requestID returns the id assigned by requestLogger, if any.
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
