// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"blog-search-api/api/middleware"
	"blog-search-api/core/interfaces"
	"blog-search-api/pkg/featureflags"
)

const (
	apiTitle       = "Blog Search Action API"
	apiVersion     = "1.0.0"
	apiDescription = "Fulfillment webhook that answers voice assistant requests by searching the blog"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	Flags      featureflags.Manager
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	api, router, _ := NewAPIWithMiddleware(APIConfig{})
	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The returned limiter is nil when rate limiting is not configured; callers stop it on shutdown.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, *middleware.RateLimiter) {
	router := chi.NewRouter()

	// CORS first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter, cfg.Flags))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// OpenAPI spec at /openapi.json, docs at /docs
	api := humachi.New(router, config)

	return api, router, limiter
}
