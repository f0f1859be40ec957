package security

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds security headers to all responses. The web
// shell serves only its own inline styles, so the policy is strict.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "same-origin")

		formAction := "'self'"
		if host := c.Request.Host; host != "" {
			formAction = "'self' https://" + host
		}

		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"frame-ancestors 'none'; "+
				"form-action "+formAction)

		c.Header("Permissions-Policy",
			"camera=(), "+
				"geolocation=(), "+
				"microphone=(), "+
				"payment=(), "+
				"usb=()")

		c.Next()
	}
}
