// Package api provides the HTTP API layer for the Blog Search Action.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: Webhook and health handlers
// - dto/: Dialogflow request, Actions on Google response and their mapper
// - middleware/: Request logging and rate limiting
//
// # OpenAPI
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router, limiter := api.NewAPIWithMiddleware(cfg)
//	defer limiter.Stop()
//
//	handlers.NewWebhookHandler(assistantService, logger).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Gateway failures are answered with a spoken apology and HTTP 200 so the
// assistant can still talk to the user. Errors that reach the handler use
// the RFC 7807 format:
//
//	{
//	    "status": 500,
//	    "title": "Internal Server Error",
//	    "detail": "Post has an invalid publish date"
//	}
package api
