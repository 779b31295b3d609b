package security

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Double-submit cookie names. The cookie is readable from JavaScript so the
// frontend can echo it back in the header.
const (
	CSRFCookieName    = "XSRF-TOKEN"
	CSRFHeaderName    = "X-XSRF-TOKEN"
	CSRFParameterName = "_csrf"
)

// CSRF enforces the double-submit check on unsafe methods. Safe requests
// without a token cookie get a fresh one.
func CSRF(policy *Policy, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(CSRFCookieName)

		if isUnsafe(c.Request.Method) && !policy.CSRFExempt(c.Request.URL.Path) {
			sent := c.GetHeader(CSRFHeaderName)
			if sent == "" && isForm(c.Request) {
				sent = c.PostForm(CSRFParameterName)
			}
			if cookie == "" || sent == "" || subtle.ConstantTimeCompare([]byte(cookie), []byte(sent)) != 1 {
				Forbidden(c, "Invalid CSRF token")
				return
			}
		}

		if cookie == "" {
			cookie = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     CSRFCookieName,
				Value:    cookie,
				Path:     "/",
				Secure:   secureCookie,
				HttpOnly: false,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(csrfTokenKey, cookie)
		c.Next()
	}
}

func isUnsafe(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}
