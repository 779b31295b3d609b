package security

import (
	"fitness_tracker/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "principal"
	csrfTokenKey = "csrfToken"
)

// SetPrincipal installs the authenticated caller for the rest of the chain.
func SetPrincipal(c *gin.Context, p *models.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller installed by the JWT filter.
func PrincipalFrom(c *gin.Context) (*models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Principal)
	return p, ok && p != nil
}

// CSRFToken returns the token bound to the current request, if any.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfTokenKey)
}
