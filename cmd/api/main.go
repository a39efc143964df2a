// ABOUTME: Main entry point for the Blog Search Action API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-search-api/api"
	"blog-search-api/api/handlers"
	"blog-search-api/api/middleware"
	"blog-search-api/core/assistant"
	"blog-search-api/core/interfaces"
	"blog-search-api/core/search"
	stdhttp "blog-search-api/infrastructure/http/standard"
	"blog-search-api/infrastructure/logger"
	"blog-search-api/pkg/config"
	"blog-search-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	appLogger, logCloser, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logCloser.Close()

	appLogger.Info("Starting Blog Search Action API", map[string]interface{}{
		"port":           cfg.Server.Port,
		"search_host":    cfg.Search.Hostname,
		"search_timeout": cfg.Search.Timeout.String(),
		"log_backend":    cfg.Logging.Backend,
	})

	// Create HTTP client; outgoing search calls carry the webhook request ID
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Search.Timeout, middleware.NewLoggingRoundTripper(nil, appLogger))

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     appLogger,
	}

	// Create services
	flags := featureflags.NewEnvManager("")
	searchService := search.NewSearchService(cfg.Search, deps)
	assistantService := assistant.NewService(searchService, cfg.Responses, flags, appLogger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     appLogger,
		Flags:      flags,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router, limiter := api.NewAPIWithMiddleware(apiConfig)
	defer limiter.Stop()

	// Create and register handlers
	webhookHandler := handlers.NewWebhookHandler(assistantService, appLogger)
	webhookHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ____  __               _____                      __
   / __ )/ /___  ____ _   / ___/___  ____ ___________/ /_
  / __  / / __ \/ __ '/   \__ \/ _ \/ __ '/ ___/ ___/ __ \
 / /_/ / / /_/ / /_/ /   ___/ /  __/ /_/ / /  / /__/ / / /
/_____/_/\____/\__, /   /____/\___/\__,_/_/   \___/_/ /_/
              /____/
	`)
}
