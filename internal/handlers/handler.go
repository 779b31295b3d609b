package handlers

import (
	"time"

	"fitness_tracker/internal/config"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/security"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Settings are the HTTP-layer knobs taken from config.
type Settings struct {
	Policy       *security.Policy
	CORS         config.CORSConfig
	JWTCookie    string
	CookieSecure bool
	CookieTTL    time.Duration
	FrontendURL  string
	StaticDir    string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Settings
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Settings) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Policy == nil {
		cfg.Policy = security.DefaultPolicy()
	}
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The security chain is global so it also guards unmatched paths.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	router.Use(security.Chain(security.Options{
		Policy:       h.cfg.Policy,
		CORS:         h.cfg.CORS,
		Tokens:       h.services,
		JWTCookie:    h.cfg.JWTCookie,
		SecureCookie: h.cfg.CookieSecure,
		Log:          h.log,
	})...)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerOAuth2Routes(router)
	h.registerContentRoutes(router)

	router.NoRoute(h.static)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
		auth.POST("/signout", h.signOut)
		auth.GET("/user", h.currentUser)
	}
	r.GET("/api/csrf-token", h.csrfToken)
}

func (h *Handler) registerOAuth2Routes(r *gin.Engine) {
	r.GET("/oauth2/authorization/:registrationId", h.oauth2Authorize)
	r.GET("/login/oauth2/code/:registrationId", h.oauth2Callback)
}

func (h *Handler) registerContentRoutes(r *gin.Engine) {
	test := r.Group("/api/test")
	{
		test.GET("/all", h.publicContent)
		test.GET("/user", security.RequireRole(models.RoleUser, models.RoleAdmin), h.userContent)
		test.GET("/admin", security.RequireRole(models.RoleAdmin), h.adminContent)
	}
}
