package session

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// sessionResponseWriter commits the session and writes its cookie right
// before the first byte of the response goes out.
type sessionResponseWriter struct {
	gin.ResponseWriter
	manager       *Manager
	request       *http.Request
	wroteHeader   bool
	cookieWritten bool
}

func (w *sessionResponseWriter) WriteHeader(code int) {
	w.beforeWrite()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionResponseWriter) WriteHeaderNow() {
	w.beforeWrite()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionResponseWriter) Write(b []byte) (int, error) {
	w.beforeWrite()
	return w.ResponseWriter.Write(b)
}

func (w *sessionResponseWriter) WriteString(s string) (int, error) {
	w.beforeWrite()
	return w.ResponseWriter.WriteString(s)
}

func (w *sessionResponseWriter) beforeWrite() {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.writeSessionCookie()
}

func (w *sessionResponseWriter) writeSessionCookie() {
	if w.cookieWritten {
		return
	}
	w.cookieWritten = true

	ctx := w.request.Context()
	switch w.manager.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.manager.Commit(ctx)
		if err != nil {
			return
		}
		w.manager.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.manager.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

func (w *sessionResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.Hijack()
}

// SessionLoadSave loads the session into the request context and saves it
// when the handler writes its response.
func (m *Manager) SessionLoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(m.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := m.Load(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		srw := &sessionResponseWriter{
			ResponseWriter: c.Writer,
			manager:        m,
			request:        c.Request,
		}
		c.Writer = srw

		c.Next()

		if !srw.wroteHeader {
			srw.writeSessionCookie()
		}
	}
}
