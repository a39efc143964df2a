// ABOUTME: Intent domain model describes a recognized user utterance
// ABOUTME: Produced by the webhook layer from the platform payload

package domain

// IntentKind names the category of a recognized utterance
type IntentKind string

const (
	IntentWelcome           IntentKind = "welcome"
	IntentFallback          IntentKind = "fallback"
	IntentFindSinglePost    IntentKind = "find_single_post"
	IntentFindMultiplePosts IntentKind = "find_multiple_posts"
	IntentFindPostByID      IntentKind = "find_post_by_id"
	IntentOptionSelected    IntentKind = "option_selected"
)

// Intent is a routed user request
type Intent struct {
	// Kind selects the handler
	Kind IntentKind

	// Topic is the free-text search topic for the find intents
	Topic string

	// PostID is the identifier for lookups and list selections
	PostID string

	// HasScreen is true when the device can render cards and lists
	HasScreen bool
}
