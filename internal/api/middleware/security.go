package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/config"
)

// SecurityHeaders hardening headers for the JSON API and its file downloads.
// The frontend origins may embed evidence PDFs; nobody else may frame them.
// HSTS is sent only when the public base URL is https.
func SecurityHeaders(cfg *config.ServerConfig) gin.HandlerFunc {
	ancestors := []string{"'none'"}
	if len(cfg.CORS.AllowOrigins) > 0 {
		ancestors = ancestors[:0]
		for _, o := range cfg.CORS.AllowOrigins {
			ancestors = append(ancestors, strings.TrimRight(o, "/"))
		}
	}
	csp := "default-src 'none'; frame-ancestors " + strings.Join(ancestors, " ")
	hsts := strings.HasPrefix(cfg.BaseURL, "https://")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", csp)
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		// progress data and reports are per user
		h.Set("Cache-Control", "no-store")
		if len(cfg.CORS.AllowOrigins) == 0 {
			h.Set("X-Frame-Options", "DENY")
		}
		if hsts {
			h.Set("Strict-Transport-Security", "max-age=31536000")
		}

		c.Next()
	}
}
