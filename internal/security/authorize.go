package security

import (
	"fitness_tracker/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	msgAuthRequired = "Full authentication is required to access this resource"
	msgAccessDenied = "Access Denied"
)

// Authorize rejects anonymous callers on paths the policy does not open.
func Authorize(policy *Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.Decide(c.Request.URL.Path) == PermitAll {
			c.Next()
			return
		}
		if _, ok := PrincipalFrom(c); !ok {
			Unauthorized(c, msgAuthRequired)
			return
		}
		c.Next()
	}
}

// RequireRole lets through callers holding at least one of roles.
func RequireRole(roles ...models.ERole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			Unauthorized(c, msgAuthRequired)
			return
		}
		if !p.HasAnyRole(roles...) {
			Forbidden(c, msgAccessDenied)
			return
		}
		c.Next()
	}
}
