package security

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON written when access is refused.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Unauthorized aborts with 401 for callers that are not authenticated.
func Unauthorized(c *gin.Context, message string) {
	abortWith(c, http.StatusUnauthorized, message)
}

// Forbidden aborts with 403 for callers that are authenticated but not allowed.
func Forbidden(c *gin.Context, message string) {
	abortWith(c, http.StatusForbidden, message)
}

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    c.Request.URL.Path,
	})
}
