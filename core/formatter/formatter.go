// ABOUTME: Response formatter turns search results into conversational replies
// ABOUTME: Every function is pure and total; the only failure is an unparseable publish date

package formatter

import (
	"fmt"
	"strings"

	"blog-search-api/core/domain"
	"blog-search-api/pkg/config"
	timeutil "blog-search-api/pkg/utils/time"
)

// DefaultTitleMaxLength is the character budget for titles in post lists
const DefaultTitleMaxLength = 80

const ellipsis = "..."

// Options controls optional parts of the rendered replies
type Options struct {
	// TitleMaxLength is the character budget for list titles
	TitleMaxLength int

	// SpeakScore appends the relevance score to the spoken single post answer
	SpeakScore bool

	// ShowScore adds the relevance score to cards and list descriptions
	ShowScore bool

	// Copy is the fixed assistant text
	Copy config.Copy
}

// Formatter renders replies for each intent
type Formatter struct {
	opts Options
}

// New creates a formatter; a non-positive title budget falls back to the default
func New(opts Options) *Formatter {
	if opts.TitleMaxLength < 1 {
		opts.TitleMaxLength = DefaultTitleMaxLength
	}
	return &Formatter{opts: opts}
}

// Welcome greets the user and offers example utterances
func (f *Formatter) Welcome(hasScreen bool) domain.Reply {
	reply := domain.Reply{
		Speech:      f.opts.Copy.WelcomeShort,
		DisplayText: f.opts.Copy.WelcomeShort,
	}
	if !hasScreen {
		return reply
	}

	var b strings.Builder
	b.WriteString("You can say things like:")
	for _, example := range f.opts.Copy.WelcomeExamples {
		fmt.Fprintf(&b, "  \n _'%s'_", example)
	}

	reply.Card = &domain.Card{
		Title: f.opts.Copy.AssistantTitle,
		Text:  b.String(),
	}
	reply.Suggestions = f.suggestions()
	return reply
}

// Help lists popular topics
func (f *Formatter) Help(hasScreen bool) domain.Reply {
	helpLong := fmt.Sprintf("Some popular topics include: %s.", joinWithAnd(f.opts.Copy.PopularTopics))
	reply := domain.Reply{
		Speech:      helpLong,
		DisplayText: f.opts.Copy.HelpShort,
	}
	if !hasScreen {
		return reply
	}

	reply.Card = &domain.Card{
		Title: f.opts.Copy.AssistantTitle + " Help",
		Text:  helpLong,
	}
	reply.Suggestions = f.suggestions()
	return reply
}

// SinglePost presents the top ranked post for a topic.
// The first post is used as-is; the service ranks results.
func (f *Formatter) SinglePost(topic string, posts []domain.Post, hasScreen bool) (domain.Reply, error) {
	if len(posts) == 0 {
		return f.TopicNotFound(topic, hasScreen), nil
	}

	post := posts[0]
	published, err := timeutil.FormatLongDate(post.PublishedAt)
	if err != nil {
		return domain.Reply{}, err
	}

	speech := fmt.Sprintf("The top result for '%s' is the post, '%s', published %s", topic, post.Title, published)
	if f.opts.SpeakScore && post.HasScore() {
		speech += fmt.Sprintf(", with a relevance score of %s", formatScore(*post.Score))
	}

	reply := domain.Reply{
		Speech:      speech,
		DisplayText: post.Title,
	}
	if hasScreen {
		reply.Card = f.postCard(post, published)
		reply.Suggestions = f.suggestions()
	}
	return reply, nil
}

// MultiplePosts lists up to limit posts for a topic in service order.
// A repeated post ID is listed once, at its first position.
func (f *Formatter) MultiplePosts(topic string, posts []domain.Post, limit int, hasScreen bool) domain.Reply {
	if len(posts) == 0 {
		return f.TopicNotFound(topic, hasScreen)
	}

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	posts = uniqueByID(posts)

	speech := fmt.Sprintf("Here's a list of the top %d posts about '%s'", len(posts), topic)
	reply := domain.Reply{
		Speech:      speech,
		DisplayText: speech,
	}
	if !hasScreen {
		return reply
	}

	items := make([]domain.ListItem, 0, len(posts))
	for _, post := range posts {
		description := Truncate(post.Title, f.opts.TitleMaxLength)
		if f.opts.ShowScore && post.HasScore() {
			description += "  \nScore: " + formatScore(*post.Score)
		}
		items = append(items, domain.ListItem{
			Key:         post.ID,
			Title:       "Post ID " + post.ID,
			Description: description,
		})
	}

	reply.List = &domain.List{
		Title: "Top Results",
		Items: items,
	}
	reply.Suggestions = f.suggestions()
	return reply
}

// PostDetail presents a post fetched by identifier, either asked for
// directly or picked from a list
func (f *Formatter) PostDetail(kind domain.IntentKind, post domain.Post, hasScreen bool) (domain.Reply, error) {
	published, err := timeutil.FormatLongDate(post.PublishedAt)
	if err != nil {
		return domain.Reply{}, err
	}

	speech := "Okay, I found that post"
	if kind == domain.IntentOptionSelected {
		speech = "Sure, here's that post"
	}

	reply := domain.Reply{
		Speech:      speech,
		DisplayText: post.Title,
	}
	if hasScreen {
		reply.Card = f.postCard(post, published)
		reply.Suggestions = f.suggestions()
	}
	return reply, nil
}

// TopicNotFound apologises for a search without matches
func (f *Formatter) TopicNotFound(topic string, hasScreen bool) domain.Reply {
	text := fmt.Sprintf("Sorry, I can't find any posts for the topic '%s'", topic)
	return notFound(text, "Topic Not Found", hasScreen)
}

// PostNotFound apologises for an unknown post identifier
func (f *Formatter) PostNotFound(id string, hasScreen bool) domain.Reply {
	text := fmt.Sprintf("Sorry, I can't find post ID %s", id)
	return notFound(text, "Post Not Found", hasScreen)
}

// Apology is the generic reply when the search service fails
func (f *Formatter) Apology() domain.Reply {
	return domain.Reply{
		Speech:      f.opts.Copy.Apology,
		DisplayText: f.opts.Copy.Apology,
	}
}

func notFound(text, title string, hasScreen bool) domain.Reply {
	reply := domain.Reply{
		Speech:      text,
		DisplayText: text,
	}
	if hasScreen {
		reply.Card = &domain.Card{Title: title, Text: text}
	}
	return reply
}

// postCard builds the detail card with a link to the post
func (f *Formatter) postCard(post domain.Post, published string) *domain.Card {
	text := fmt.Sprintf("Description: %s  \nPublished: %s", post.Excerpt, published)
	if f.opts.ShowScore && post.HasScore() {
		text += "  \nScore: " + formatScore(*post.Score)
	}

	card := &domain.Card{
		Title: post.Title,
		Text:  text,
	}
	if post.Link != "" {
		card.Button = &domain.Button{Title: "Read Post", URL: post.Link}
	}
	return card
}

// uniqueByID drops posts whose ID was already seen; list option keys must be unique
func uniqueByID(posts []domain.Post) []domain.Post {
	seen := make(map[string]struct{}, len(posts))
	out := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.ID]; ok {
			continue
		}
		seen[post.ID] = struct{}{}
		out = append(out, post)
	}
	return out
}

func (f *Formatter) suggestions() []string {
	if len(f.opts.Copy.Suggestions) == 0 {
		return nil
	}
	out := make([]string, len(f.opts.Copy.Suggestions))
	copy(out, f.opts.Copy.Suggestions)
	return out
}

// Truncate shortens s to maxLen characters followed by "..." when it is
// longer than maxLen; shorter strings are returned unchanged
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + ellipsis
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// joinWithAnd renders "a, b, and c"
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
