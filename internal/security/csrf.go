package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const csrfTokenContextKey = "csrf_token"

// CSRFTokenHeader is the header name for the CSRF token in API requests.
const CSRFTokenHeader = "X-CSRF-Token"

// CSRFSecret decodes a configured secret (hex or raw) or generates a fresh
// 32-byte one when configured is empty. Generated secrets do not survive a
// restart, so forms opened before it stop validating.
func CSRFSecret(configured string) ([]byte, bool, error) {
	if configured != "" {
		if decoded, err := hex.DecodeString(configured); err == nil && len(decoded) == 32 {
			return decoded, false, nil
		}
		return []byte(configured), false, nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, false, fmt.Errorf("generate csrf secret: %w", err)
	}
	return secret, true, nil
}

// CSRFMiddleware protects every unsafe request with gorilla/csrf and exposes
// the token to templates through the gin context.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.RequestHeader(CSRFTokenHeader),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		if isUnforgeableAPIRequest(c.Request) {
			c.Next()
			return
		}

		if !secure {
			// gorilla/csrf assumes TLS and checks the Referer against https
			// origins unless told the request is plaintext.
			c.Request = csrf.PlaintextHTTPRequest(c.Request)
		}

		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Set(csrfTokenContextKey, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
		if !passed {
			// the error handler already wrote the response
			c.Abort()
		}
	}
}

// isUnforgeableAPIRequest reports API calls a browser cannot send
// cross-site without a CORS preflight: JSON bodies and non-POST unsafe methods.
func isUnforgeableAPIRequest(r *http.Request) bool {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	switch r.Method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json")
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") || strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Form Expired</title></head>
<body style="font-family: system-ui; max-width: 400px; margin: 100px auto; text-align: center;">
<h1>Form Expired</h1>
<p>The form submission could not be verified.</p>
<p><a href="javascript:history.back()">Go back and try again</a></p>
</body>
</html>`))
}

// GetCSRFToken retrieves the CSRF token from the Gin context.
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(csrfTokenContextKey)
}

// CSRFTokenField returns the hidden form input carrying the token.
func CSRFTokenField(c *gin.Context) template.HTML {
	token := GetCSRFToken(c)
	if token == "" {
		return ""
	}
	return template.HTML(`<input type="hidden" name="gorilla.csrf.Token" value="` + template.HTMLEscapeString(token) + `">`)
}
