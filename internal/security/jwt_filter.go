package security

import (
	"strings"

	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// TokenParser turns a session token into a principal.
type TokenParser interface {
	ParseToken(accessToken string) (*models.Principal, error)
}

// JWTFilter authenticates the request from the session cookie or, failing
// that, the bearer header. A bad token leaves the request anonymous.
func JWTFilter(parser TokenParser, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		p, err := parser.ParseToken(token)
		if err != nil {
			log.Debugw("jwt_rejected", "path", c.Request.URL.Path, "err", err)
			c.Next()
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

func tokenFrom(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
