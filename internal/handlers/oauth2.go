package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Start an OAuth2 login
// @Tags         oauth2
// @Param        registrationId  path  string  true  "provider registration"  example(google)
// @Success      302
// @Failure      404  {object}  map[string]string
// @Router       /oauth2/authorization/{registrationId} [get]
func (h *Handler) oauth2Authorize(c *gin.Context) {
	id := c.Param("registrationId")

	target, err := h.services.AuthorizationURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProvider) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to start login", "oauth2_authorize_failed", err, "registration_id", id)
		return
	}
	c.Redirect(http.StatusFound, target)
}

// @Summary      OAuth2 callback
// @Description  Links the provider identity to a local account and redirects to the frontend with the token.
// @Tags         oauth2
// @Param        registrationId  path   string  true   "provider registration"  example(google)
// @Param        code            query  string  false  "authorization code"
// @Param        state           query  string  false  "state"
// @Success      302
// @Failure      500  {object}  map[string]string
// @Router       /login/oauth2/code/{registrationId} [get]
func (h *Handler) oauth2Callback(c *gin.Context) {
	id := c.Param("registrationId")

	if providerErr := c.Query("error"); providerErr != "" {
		h.log.Infow("oauth2_provider_error", "registration_id", id, "error", providerErr,
			"description", c.Query("error_description"))
		c.Redirect(http.StatusFound, failureTarget(h.cfg.FrontendURL))
		return
	}

	session, err := h.services.CompleteLogin(c.Request.Context(), id, c.Query("state"), c.Query("code"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnsupportedProvider):
		c.Redirect(http.StatusFound, "/")
		return
	case errors.Is(err, service.ErrUnknownProvider), service.IsAuthenticationFailure(err):
		h.log.Infow("oauth2_login_failed", "registration_id", id, "err", err)
		c.Redirect(http.StatusFound, failureTarget(h.cfg.FrontendURL))
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to complete login", "oauth2_login_error", err, "registration_id", id)
		return
	}

	h.log.Infow("oauth2_login_succeeded", "registration_id", id, "username", session.User.Username)
	h.setSessionCookie(c, session.Token)
	c.Redirect(http.StatusFound, successTarget(h.cfg.FrontendURL, session.Token))
}

func successTarget(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/oauth2/redirect#token=" + token
}

func failureTarget(frontendURL string) string {
	return strings.TrimRight(frontendURL, "/") + "/login?error=oauth2"
}
