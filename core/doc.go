// Package core contains the business logic for the Blog Search Action.
// It has no dependency on the HTTP framework and can be exercised directly.
//
// The core package is organized into several sub-packages:
//
// - domain: Post, Intent and the platform-neutral Reply
// - search: Gateway to the remote blog search API
// - formatter: Turns posts into spoken text, cards and lists
// - assistant: Dispatches an intent to the gateway and the formatter
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "blog-search-api/core/assistant"
//	    "blog-search-api/core/domain"
//	    "blog-search-api/core/interfaces"
//	    "blog-search-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	searchService := search.NewSearchService(cfg.Search, deps)
//	assistantService := assistant.NewService(searchService, cfg.Responses, flags, myLogger)
//
//	// Answer an intent
//	reply, err := assistantService.Handle(ctx, domain.Intent{
//	    Kind:  domain.IntentFindSinglePost,
//	    Topic: "kubernetes",
//	})
package core
