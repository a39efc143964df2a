// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"blog-search-api/core/domain"
)

// PostSearcher looks up blog posts on the remote search service
type PostSearcher interface {
	// SearchPosts returns up to limit posts matching query, in service order.
	// An empty slice means no matches.
	SearchPosts(ctx context.Context, query string, limit int) ([]domain.Post, error)

	// GetPost returns the post with the given identifier.
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}
