package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-search-api/core/domain"
	coreerrors "blog-search-api/core/errors"
	"blog-search-api/pkg/config"
	"blog-search-api/pkg/featureflags"
)

func testResponses() config.ResponsesConfig {
	return config.ResponsesConfig{
		SinglePostLimit: 1,
		MultiPostLimit:  6,
		TitleMaxLength:  80,
		Copy:            config.DefaultCopy(),
	}
}

func samplePost(id string) domain.Post {
	s := 2.5
	return domain.Post{
		ID:          id,
		Title:       "Docker for Java Developers " + id,
		Excerpt:     "Containers, explained.",
		PublishedAt: "2019-03-04T10:00:00",
		Link:        "https://programmaticponderings.com/?p=" + id,
		Score:       &s,
	}
}

func newTestService(searcher *mockSearcher, flags map[featureflags.FeatureFlag]bool) (*Service, *recordingLogger) {
	logger := &recordingLogger{}
	return NewService(searcher, testResponses(), featureflags.NewStaticManager(flags), logger), logger
}

func TestHandle_WelcomeAndFallbackSkipGateway(t *testing.T) {
	searcher := &mockSearcher{}
	svc, _ := newTestService(searcher, nil)

	welcome, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentWelcome, HasScreen: true})
	require.NoError(t, err)
	assert.Equal(t, "What topic are you interested in reading about?", welcome.Speech)
	require.NotNil(t, welcome.Card)

	help, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFallback})
	require.NoError(t, err)
	assert.Contains(t, help.Speech, "Some popular topics include")

	unknown, err := svc.Handle(context.Background(), domain.Intent{Kind: "something_else"})
	require.NoError(t, err)
	assert.Equal(t, help.Speech, unknown.Speech)

	assert.Empty(t, searcher.searchCalls)
	assert.Empty(t, searcher.getCalls)
}

func TestHandle_FindSinglePost(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]domain.Post, error) {
			return []domain.Post{samplePost("42")}, nil
		},
	}
	svc, _ := newTestService(searcher, map[featureflags.FeatureFlag]bool{featureflags.SpeakScore: true})

	reply, err := svc.Handle(context.Background(), domain.Intent{
		Kind:      domain.IntentFindSinglePost,
		Topic:     " docker ",
		HasScreen: true,
	})
	require.NoError(t, err)

	require.Len(t, searcher.searchCalls, 1)
	assert.Equal(t, searchCall{query: "docker", limit: 1}, searcher.searchCalls[0])
	assert.Equal(t,
		"The top result for 'docker' is the post, 'Docker for Java Developers 42', published March 4, 2019, with a relevance score of 2.50",
		reply.Speech)
	require.NotNil(t, reply.Card)
	assert.NotContains(t, reply.Card.Text, "Score:")
}

func TestHandle_FindMultiplePosts(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]domain.Post, error) {
			posts := make([]domain.Post, 0, limit)
			for i := 0; i < limit; i++ {
				posts = append(posts, samplePost(fmt.Sprint(i+1)))
			}
			return posts, nil
		},
	}
	svc, _ := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{
		Kind:      domain.IntentFindMultiplePosts,
		Topic:     "docker",
		HasScreen: true,
	})
	require.NoError(t, err)

	require.Len(t, searcher.searchCalls, 1)
	assert.Equal(t, 6, searcher.searchCalls[0].limit)
	require.NotNil(t, reply.List)
	require.Len(t, reply.List.Items, 6)
	assert.Equal(t, "1", reply.List.Items[0].Key)
	assert.Equal(t, "6", reply.List.Items[5].Key)
}

func TestHandle_NoMatches(t *testing.T) {
	searcher := &mockSearcher{}
	svc, _ := newTestService(searcher, nil)

	for _, kind := range []domain.IntentKind{domain.IntentFindSinglePost, domain.IntentFindMultiplePosts} {
		reply, err := svc.Handle(context.Background(), domain.Intent{Kind: kind, Topic: "cobol"})
		require.NoError(t, err)
		assert.Equal(t, "Sorry, I can't find any posts for the topic 'cobol'", reply.Speech)
	}
}

func TestHandle_MissingTopicGivesHelp(t *testing.T) {
	searcher := &mockSearcher{}
	svc, _ := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFindSinglePost, Topic: "   "})
	require.NoError(t, err)

	assert.Contains(t, reply.Speech, "Some popular topics include")
	assert.Empty(t, searcher.searchCalls)
}

func TestHandle_SearchUnavailableApologises(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]domain.Post, error) {
			return nil, &coreerrors.SearchUnavailableError{URL: "http://search/dismax-search", StatusCode: 503}
		},
	}
	svc, logger := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{
		Kind:      domain.IntentFindMultiplePosts,
		Topic:     "docker",
		HasScreen: true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultCopy().Apology, reply.Speech)
	assert.Nil(t, reply.List)
	assert.Nil(t, reply.Card)

	errorsLogged := logger.byLevel("error")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, "Search service unavailable", errorsLogged[0].msg)
}

func TestHandle_MalformedResponseLogsBody(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]domain.Post, error) {
			return nil, &coreerrors.MalformedResponseError{URL: "http://search", Body: "<html>oops</html>", Reason: "invalid JSON"}
		},
	}
	svc, logger := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFindSinglePost, Topic: "docker"})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCopy().Apology, reply.Speech)

	errorsLogged := logger.byLevel("error")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, "<html>oops</html>", errorsLogged[0].fields["body"])
}

func TestHandle_FindPostByID(t *testing.T) {
	searcher := &mockSearcher{
		getFunc: func(ctx context.Context, id string) (*domain.Post, error) {
			post := samplePost(id)
			return &post, nil
		},
	}
	svc, _ := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFindPostByID, PostID: "21099", HasScreen: true})
	require.NoError(t, err)
	assert.Equal(t, "Okay, I found that post", reply.Speech)
	require.NotNil(t, reply.Card)
	assert.Equal(t, "Docker for Java Developers 21099", reply.Card.Title)

	reply, err = svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentOptionSelected, PostID: "21099"})
	require.NoError(t, err)
	assert.Equal(t, "Sure, here's that post", reply.Speech)

	assert.Equal(t, []string{"21099", "21099"}, searcher.getCalls)
}

func TestHandle_PostNotFound(t *testing.T) {
	searcher := &mockSearcher{
		getFunc: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, &coreerrors.NotFoundError{Resource: "post", ID: id}
		},
	}
	svc, logger := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentOptionSelected, PostID: "9999", HasScreen: true})
	require.NoError(t, err)

	assert.Equal(t, "Sorry, I can't find post ID 9999", reply.Speech)
	require.NotNil(t, reply.Card)
	assert.Equal(t, "Post Not Found", reply.Card.Title)
	assert.Empty(t, logger.byLevel("error"))
}

func TestHandle_InvalidTimestampIsReturned(t *testing.T) {
	searcher := &mockSearcher{
		getFunc: func(ctx context.Context, id string) (*domain.Post, error) {
			post := samplePost(id)
			post.PublishedAt = "not a date"
			return &post, nil
		},
	}
	svc, logger := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFindPostByID, PostID: "1"})
	require.Error(t, err)
	assert.Nil(t, reply)
	assert.True(t, coreerrors.IsInvalidTimestamp(err))
	assert.Len(t, logger.byLevel("error"), 1)
}

func TestHandle_ValidationFromGatewayGivesHelp(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]domain.Post, error) {
			return nil, &coreerrors.ValidationError{Field: "limit", Message: "limit must be at least 1"}
		},
	}
	svc, _ := newTestService(searcher, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentFindMultiplePosts, Topic: "aws"})
	require.NoError(t, err)
	assert.Contains(t, reply.Speech, "Some popular topics include")
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(&mockSearcher{}, testResponses(), nil, nil)

	reply, err := svc.Handle(context.Background(), domain.Intent{Kind: domain.IntentWelcome})
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Speech)
}
