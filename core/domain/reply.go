// ABOUTME: Reply domain model is the platform-neutral conversational response
// ABOUTME: Mapped to the voice platform's rich response schema at the API edge

package domain

// Reply is one conversational turn sent back to the user
type Reply struct {
	// Speech is the short utterance read aloud
	Speech string

	// DisplayText is the text shown next to the utterance on screen devices
	DisplayText string

	// Card is an optional detail card
	Card *Card

	// List is an optional selectable list of posts
	List *List

	// Suggestions are quick-reply chips
	Suggestions []string
}

// Card is a detail card with an optional action button
type Card struct {
	Title  string
	Text   string
	Button *Button
}

// Button opens a URL when tapped
type Button struct {
	Title string
	URL   string
}

// List is a titled set of selectable items
type List struct {
	Title string
	Items []ListItem
}

// ListItem is one selectable entry; Key is sent back when the user picks it
type ListItem struct {
	Key         string
	Title       string
	Description string
}
