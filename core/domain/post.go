// ABOUTME: Post domain model represents a blog post returned by the search service
// ABOUTME: Records are built fresh per request and never mutated after decoding

package domain

import "math"

// Post represents a single blog post search result
type Post struct {
	// ID is the opaque post identifier assigned by the blog
	ID string

	// Title is the post's headline
	Title string

	// Excerpt is the short summary of the post
	Excerpt string

	// PublishedAt is the raw publish timestamp as sent by the search service
	PublishedAt string

	// Link is the canonical URL of the post
	Link string

	// Score is the relevance score, nil when the service did not send one
	Score *float64
}

// HasScore reports whether the post carries a relevance score
func (p Post) HasScore() bool {
	return p.Score != nil
}

// IsValid checks the invariants a decoded post must hold
func (p Post) IsValid() bool {
	if p.Score == nil {
		return true
	}
	s := *p.Score
	return !math.IsNaN(s) && !math.IsInf(s, 0) && s >= 0
}
