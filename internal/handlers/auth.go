package handlers

import (
	"errors"
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/security"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgRegistered    = "User registered successfully!"
	msgSignedOut     = "You've been signed out!"
	msgUsernameTaken = "Error: Username is already taken!"
	msgEmailTaken    = "Error: Email is already in use!"
	msgBadCreds      = "Bad credentials"
	errSignUp        = "failed to register user"
	errSignIn        = "failed to sign in"
	errLoadUser      = "failed to load user"
)

type signUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20" example:"user2"`
	Email    string `json:"email" binding:"required,email,max=50" example:"user2@example.com"`
	Password string `json:"password" binding:"required,min=6,max=40" example:"secret1"`
}

type signInRequest struct {
	Username string `json:"username" binding:"required" example:"user1"`
	Password string `json:"password" binding:"required" example:"password1"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("auth_bad_request_body", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Register a local account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      signUpRequest  true  "new account"
// @Success      200    {object}  fitness_tracker.MessageResponse
// @Failure      400    {object}  fitness_tracker.MessageResponse
// @Failure      500    {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	_, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, fitness_tracker.MessageResponse{Message: msgRegistered})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, fitness_tracker.MessageResponse{Message: msgUsernameTaken})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, fitness_tracker.MessageResponse{Message: msgEmailTaken})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errSignUp, "auth_sign_up_failed", err, "username", input.Username)
	}
}

// @Summary      Sign in with username and password
// @Description  Sets the session cookie and returns the token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      signInRequest  true  "credentials"
// @Success      200    {object}  fitness_tracker.JwtResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  security.ErrorBody
// @Router       /api/auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	session, err := h.services.SignIn(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
			security.Unauthorized(c, msgBadCreds)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSignIn, "auth_sign_in_error", err, "username", input.Username)
		return
	}

	h.setSessionCookie(c, session.Token)
	u := session.User
	c.JSON(http.StatusOK, fitness_tracker.JwtResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.Authorities(),
		Token:    session.Token,
	})
}

// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  fitness_tracker.MessageResponse
// @Router       /api/auth/signout [post]
func (h *Handler) signOut(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, fitness_tracker.MessageResponse{Message: msgSignedOut})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  fitness_tracker.UserInfoResponse
// @Failure      401  {object}  security.ErrorBody
// @Router       /api/auth/user [get]
// @Security     BearerAuth
func (h *Handler) currentUser(c *gin.Context) {
	p, ok := security.PrincipalFrom(c)
	if !ok {
		security.Unauthorized(c, "Full authentication is required to access this resource")
		return
	}

	u, err := h.services.CurrentUser(c.Request.Context(), p.Username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "auth_current_user_failed", err, "username", p.Username)
		return
	}

	c.JSON(http.StatusOK, fitness_tracker.UserInfoResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Roles:        u.Authorities(),
		SignUpMethod: u.SignUpMethod,
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.JWTCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.JWTCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
