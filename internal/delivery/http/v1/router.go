package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: deps.Config.CORSAllowedOrigins,
		AllowLocalhost: deps.Config.CORSAllowLocalhost,
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	// Contact messages: rate-limited before any validation runs, and the
	// body capped so junk payloads die early.
	messages := r.Group("")
	messages.Use(middleware.RateLimitMiddleware(middleware.MessagesRateLimitConfig(
		deps.Config.RateLimitMessagesThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	messages.Use(middleware.BodyLimit(middleware.MaxMessageBodyBytes))
	NewContactHandler(messages, deps.ContactUC)

	return r
}
