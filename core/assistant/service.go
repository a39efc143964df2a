// ABOUTME: Assistant service routes recognized intents to the search gateway and formatter
// ABOUTME: Decides how gateway failures surface to the user

package assistant

import (
	"context"
	"errors"
	"strings"

	"blog-search-api/core/domain"
	coreerrors "blog-search-api/core/errors"
	"blog-search-api/core/formatter"
	"blog-search-api/core/interfaces"
	"blog-search-api/pkg/config"
	"blog-search-api/pkg/featureflags"
)

// Service answers intents
type Service struct {
	searcher  interfaces.PostSearcher
	responses config.ResponsesConfig
	flags     featureflags.Manager
	logger    interfaces.Logger
}

// NewService creates a new assistant service
func NewService(searcher interfaces.PostSearcher, responses config.ResponsesConfig, flags featureflags.Manager, logger interfaces.Logger) *Service {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{
		searcher:  searcher,
		responses: responses,
		flags:     flags,
		logger:    logger,
	}
}

// Handle produces the reply for one intent. Gateway failures become
// apology or not-found replies; the only returned error is an
// unparseable publish date from the search service.
func (s *Service) Handle(ctx context.Context, intent domain.Intent) (*domain.Reply, error) {
	f := s.newFormatter(ctx)

	var (
		reply domain.Reply
		err   error
	)

	switch intent.Kind {
	case domain.IntentWelcome:
		reply = f.Welcome(intent.HasScreen)
	case domain.IntentFindSinglePost:
		reply, err = s.findSinglePost(ctx, f, intent)
	case domain.IntentFindMultiplePosts:
		reply = s.findMultiplePosts(ctx, f, intent)
	case domain.IntentFindPostByID, domain.IntentOptionSelected:
		reply, err = s.findPostByID(ctx, f, intent)
	default:
		reply = f.Help(intent.HasScreen)
	}

	if err != nil {
		s.logger.Error("Failed to render reply", map[string]interface{}{
			"intent": string(intent.Kind),
			"error":  err.Error(),
		})
		return nil, coreerrors.WrapError(err, "failed to render "+string(intent.Kind))
	}

	return &reply, nil
}

func (s *Service) findSinglePost(ctx context.Context, f *formatter.Formatter, intent domain.Intent) (domain.Reply, error) {
	topic := strings.TrimSpace(intent.Topic)
	if topic == "" {
		return f.Help(intent.HasScreen), nil
	}

	posts, err := s.searcher.SearchPosts(ctx, topic, s.responses.SinglePostLimit)
	if err != nil {
		return s.gatewayFailure(f, intent, err), nil
	}

	return f.SinglePost(topic, posts, intent.HasScreen)
}

func (s *Service) findMultiplePosts(ctx context.Context, f *formatter.Formatter, intent domain.Intent) domain.Reply {
	topic := strings.TrimSpace(intent.Topic)
	if topic == "" {
		return f.Help(intent.HasScreen)
	}

	posts, err := s.searcher.SearchPosts(ctx, topic, s.responses.MultiPostLimit)
	if err != nil {
		return s.gatewayFailure(f, intent, err)
	}

	return f.MultiplePosts(topic, posts, s.responses.MultiPostLimit, intent.HasScreen)
}

func (s *Service) findPostByID(ctx context.Context, f *formatter.Formatter, intent domain.Intent) (domain.Reply, error) {
	id := strings.TrimSpace(intent.PostID)
	if id == "" {
		return f.Help(intent.HasScreen), nil
	}

	post, err := s.searcher.GetPost(ctx, id)
	if err != nil {
		return s.gatewayFailure(f, intent, err), nil
	}
	if post == nil {
		return f.PostNotFound(id, intent.HasScreen), nil
	}

	return f.PostDetail(intent.Kind, *post, intent.HasScreen)
}

// gatewayFailure picks the reply for a failed gateway call
func (s *Service) gatewayFailure(f *formatter.Formatter, intent domain.Intent, err error) domain.Reply {
	switch {
	case coreerrors.IsNotFound(err):
		s.logger.Info("Nothing found", map[string]interface{}{
			"intent":  string(intent.Kind),
			"topic":   intent.Topic,
			"post_id": intent.PostID,
		})
		if intent.Kind == domain.IntentFindPostByID || intent.Kind == domain.IntentOptionSelected {
			return f.PostNotFound(strings.TrimSpace(intent.PostID), intent.HasScreen)
		}
		return f.TopicNotFound(strings.TrimSpace(intent.Topic), intent.HasScreen)

	case coreerrors.IsValidation(err):
		s.logger.Warn("Rejected search input", map[string]interface{}{
			"intent": string(intent.Kind),
			"error":  err.Error(),
		})
		return f.Help(intent.HasScreen)

	case coreerrors.IsMalformedResponse(err):
		fields := map[string]interface{}{
			"intent": string(intent.Kind),
			"error":  err.Error(),
		}
		var malformed *coreerrors.MalformedResponseError
		if errors.As(err, &malformed) {
			fields["url"] = malformed.URL
			fields["body"] = malformed.Body
		}
		s.logger.Error("Search service returned a malformed response", fields)
		return f.Apology()

	default:
		s.logger.Error("Search service unavailable", map[string]interface{}{
			"intent": string(intent.Kind),
			"error":  err.Error(),
		})
		return f.Apology()
	}
}

// newFormatter resolves the score flags for this request
func (s *Service) newFormatter(ctx context.Context) *formatter.Formatter {
	return formatter.New(formatter.Options{
		TitleMaxLength: s.responses.TitleMaxLength,
		SpeakScore:     s.flags.IsEnabled(ctx, featureflags.SpeakScore),
		ShowScore:      s.flags.IsEnabled(ctx, featureflags.ShowScore),
		Copy:           s.responses.Copy,
	})
}
