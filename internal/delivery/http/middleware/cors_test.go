package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/delivery/http/middleware"
)

func newCORSRouter(cfg middleware.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware(cfg))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	allowList := middleware.CORSConfig{
		AllowedOrigins: []string{"https://portfolio.example"},
	}

	t.Run("No Origin header always passes", func(t *testing.T) {
		w := get(newCORSRouter(allowList), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Allow-listed origin passes with CORS headers", func(t *testing.T) {
		w := get(newCORSRouter(allowList), "https://portfolio.example")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unknown origin is rejected without CORS headers", func(t *testing.T) {
		w := get(newCORSRouter(allowList), "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Exact match only, no suffix tricks", func(t *testing.T) {
		w := get(newCORSRouter(allowList), "https://portfolio.example.evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Localhost origins honor the flag", func(t *testing.T) {
		withFlag := middleware.CORSConfig{AllowLocalhost: true}

		for _, origin := range []string{
			"http://localhost:3000",
			"https://localhost",
			"http://127.0.0.1:5173",
		} {
			assert.Equal(t, http.StatusOK, get(newCORSRouter(withFlag), origin).Code, origin)
		}

		assert.Equal(t, http.StatusForbidden, get(newCORSRouter(allowList), "http://localhost:3000").Code)
		assert.Equal(t, http.StatusForbidden, get(newCORSRouter(withFlag), "http://localhost.evil.example").Code)
	})

	t.Run("Preflight gets 204 when allowed, 403 otherwise", func(t *testing.T) {
		r := newCORSRouter(allowList)

		req := httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "https://portfolio.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req = httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Vary Origin is always set", func(t *testing.T) {
		w := get(newCORSRouter(allowList), "")
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})
}
