package handlers

import (
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/security"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	contentPublic = "Public Content."
	contentUser   = "User Content."
	contentAdmin  = "Admin Board."
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Issue the CSRF token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  fitness_tracker.CSRFTokenResponse
// @Router       /api/csrf-token [get]
func (h *Handler) csrfToken(c *gin.Context) {
	c.JSON(http.StatusOK, fitness_tracker.CSRFTokenResponse{
		Token:         security.CSRFToken(c),
		HeaderName:    security.CSRFHeaderName,
		ParameterName: security.CSRFParameterName,
	})
}

// @Summary      Public content
// @Tags         test
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/test/all [get]
func (h *Handler) publicContent(c *gin.Context) {
	c.String(http.StatusOK, contentPublic)
}

// @Summary      Content for signed-in users
// @Tags         test
// @Produce      plain
// @Success      200  {string}  string
// @Failure      401  {object}  security.ErrorBody
// @Failure      403  {object}  security.ErrorBody
// @Router       /api/test/user [get]
// @Security     BearerAuth
func (h *Handler) userContent(c *gin.Context) {
	c.String(http.StatusOK, contentUser)
}

// @Summary      Content for administrators
// @Tags         test
// @Produce      plain
// @Success      200  {string}  string
// @Failure      401  {object}  security.ErrorBody
// @Failure      403  {object}  security.ErrorBody
// @Router       /api/test/admin [get]
// @Security     BearerAuth
func (h *Handler) adminContent(c *gin.Context) {
	c.String(http.StatusOK, contentAdmin)
}
