package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id and logs it once it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(requestIDHeader, id)

	c.Next()

	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	)
}
