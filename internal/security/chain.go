package security

import (
	"fitness_tracker/internal/config"
	"fitness_tracker/internal/logger"

	"github.com/gin-gonic/gin"
)

// Options configures the security middleware chain.
type Options struct {
	Policy       *Policy
	CORS         config.CORSConfig
	Tokens       TokenParser
	JWTCookie    string
	SecureCookie bool
	Log          *logger.Logger
}

// Chain returns the security middleware in the order they must run:
// headers, CORS, CSRF, JWT authentication, authorization.
func Chain(o Options) []gin.HandlerFunc {
	policy := o.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	log := o.Log
	if log == nil {
		log = logger.Nop()
	}
	return []gin.HandlerFunc{
		Headers(),
		CORS(o.CORS),
		CSRF(policy, o.SecureCookie),
		JWTFilter(o.Tokens, o.JWTCookie, log),
		Authorize(policy),
	}
}
