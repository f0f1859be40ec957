package security

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("test-secret-key-32-bytes-long!!!")

func TestCSRFSecret(t *testing.T) {
	t.Run("generates when empty", func(t *testing.T) {
		secret, generated, err := CSRFSecret("")
		require.NoError(t, err)
		assert.True(t, generated)
		assert.Len(t, secret, 32)

		other, _, err := CSRFSecret("")
		require.NoError(t, err)
		assert.NotEqual(t, secret, other)
	})

	t.Run("decodes hex", func(t *testing.T) {
		raw := strings.Repeat("ab", 32)
		secret, generated, err := CSRFSecret(raw)
		require.NoError(t, err)
		assert.False(t, generated)
		expected, _ := hex.DecodeString(raw)
		assert.Equal(t, expected, secret)
	})

	t.Run("uses raw value otherwise", func(t *testing.T) {
		secret, generated, err := CSRFSecret("not-hex")
		require.NoError(t, err)
		assert.False(t, generated)
		assert.Equal(t, []byte("not-hex"), secret)
	})
}

func TestCSRFMiddleware_AllowsGET(t *testing.T) {
	var token string
	router := gin.New()
	router.Use(CSRFMiddleware(testSecret, false))
	router.GET("/add", func(c *gin.Context) {
		token = GetCSRFToken(c)
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/add", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, token)
}

func TestCSRFMiddleware_BlocksPOSTWithoutToken(t *testing.T) {
	called := false
	router := gin.New()
	router.Use(CSRFMiddleware(testSecret, false))
	router.POST("/add", func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/add", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called, "handler must not run when the token is rejected")
	assert.Contains(t, rr.Body.String(), "Form Expired")
}

func TestCSRFMiddleware_JSONErrorForAPI(t *testing.T) {
	router := gin.New()
	router.Use(CSRFMiddleware(testSecret, false))
	router.POST("/api/books", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/books", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestCSRFMiddleware_AcceptsValidToken(t *testing.T) {
	router := gin.New()
	router.Use(CSRFMiddleware(testSecret, false))
	router.GET("/remove", func(c *gin.Context) {
		c.String(http.StatusOK, GetCSRFToken(c))
	})
	router.POST("/remove", func(c *gin.Context) {
		c.String(http.StatusOK, "removed")
	})

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/remove", nil))
	require.Equal(t, http.StatusOK, get.Code)
	token := get.Body.String()

	form := url.Values{"title": {"Dune"}, "gorilla.csrf.Token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/remove", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range get.Result().Cookies() {
		req.AddCookie(cookie)
	}

	post := httptest.NewRecorder()
	router.ServeHTTP(post, req)

	assert.Equal(t, http.StatusOK, post.Code)
	assert.Equal(t, "removed", post.Body.String())
}

func TestCSRFTokenField(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, CSRFTokenField(c))

	c.Set("csrf_token", `abc"def`)
	field := string(CSRFTokenField(c))
	assert.Contains(t, field, `name="gorilla.csrf.Token"`)
	assert.Contains(t, field, `value="abc&#34;def"`)
}

func TestCSRFMiddleware_SkipsUnforgeableAPIRequests(t *testing.T) {
	router := gin.New()
	router.Use(CSRFMiddleware(testSecret, false))
	router.POST("/api/books", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	router.DELETE("/api/books", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.POST("/add", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		expected    int
	}{
		{"json post to api", http.MethodPost, "/api/books", "application/json", http.StatusCreated},
		{"delete on api", http.MethodDelete, "/api/books?title=Dune", "", http.StatusOK},
		{"form post to api", http.MethodPost, "/api/books", "application/x-www-form-urlencoded", http.StatusForbidden},
		{"json post outside api", http.MethodPost, "/add", "application/json", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}
