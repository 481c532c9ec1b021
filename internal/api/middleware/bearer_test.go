package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jobboard/internal/auth"
)

func newBearerEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BearerAuth(auth.EmailTokens{}))
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextIdentity))
	})
	return r
}

func TestBearerAuth(t *testing.T) {
	r := newBearerEngine(t)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"scheme only", "Bearer", http.StatusOK, ""},
		{"empty token", "Bearer   ", http.StatusOK, ""},
		{"ok", "Bearer a@example.com", http.StatusOK, "a@example.com"},
		{"lowercase scheme", "bearer a@example.com", http.StatusOK, "a@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestBearerAuthEmptyTokenInJWTMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokens("jwt", "secret", "jobboard", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(BearerAuth(tokens))
	r.GET("/who", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}
