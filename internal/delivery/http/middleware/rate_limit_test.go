package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/pkg/logger"
)

func newRateLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.MessagesRateLimitConfig(limit, window)))
	r.POST("/messages", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Ninth request within the window is rejected", func(t *testing.T) {
		r := newRateLimitedRouter(8, 5*time.Minute)

		for i := 1; i <= 8; i++ {
			w := post(r, "198.51.100.1")
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i)
		}

		w := post(r, "198.51.100.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Counters are per source address", func(t *testing.T) {
		r := newRateLimitedRouter(8, 5*time.Minute)

		for i := 0; i < 8; i++ {
			post(r, "198.51.100.2")
		}
		assert.Equal(t, http.StatusTooManyRequests, post(r, "198.51.100.2").Code)
		assert.Equal(t, http.StatusOK, post(r, "198.51.100.3").Code)
	})

	t.Run("A fresh window admits requests again", func(t *testing.T) {
		r := newRateLimitedRouter(2, 100*time.Millisecond)

		assert.Equal(t, http.StatusOK, post(r, "198.51.100.4").Code)
		assert.Equal(t, http.StatusOK, post(r, "198.51.100.4").Code)
		assert.Equal(t, http.StatusTooManyRequests, post(r, "198.51.100.4").Code)

		time.Sleep(150 * time.Millisecond)
		assert.Equal(t, http.StatusOK, post(r, "198.51.100.4").Code)
	})

	t.Run("Remaining header counts down", func(t *testing.T) {
		r := newRateLimitedRouter(8, 5*time.Minute)

		w := post(r, "198.51.100.5")
		assert.Equal(t, "8", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "7", w.Header().Get("X-RateLimit-Remaining"))

		w = post(r, "198.51.100.5")
		assert.Equal(t, "6", w.Header().Get("X-RateLimit-Remaining"))
	})
}
