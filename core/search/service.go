// ABOUTME: Search service is the gateway to the remote blog search API
// ABOUTME: Builds request URLs, issues one GET per call and decodes the post envelope

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"

	"blog-search-api/core/domain"
	coreerrors "blog-search-api/core/errors"
	"blog-search-api/core/interfaces"
	"blog-search-api/pkg/config"
)

const (
	// envelopeField holds the post records in every search API response
	envelopeField = "ElasticsearchPosts"

	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 4 << 20

	// minScore is the relevance floor sent with every dismax query
	minScore = 1
)

// SearchService handles post lookups against the blog search API
type SearchService struct {
	cfg  config.SearchConfig
	deps interfaces.Dependencies
}

// NewSearchService creates a new search service instance
func NewSearchService(cfg config.SearchConfig, deps interfaces.Dependencies) *SearchService {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &SearchService{
		cfg:  cfg,
		deps: deps,
	}
}

// baseURL returns scheme://host:port/base-path without a trailing slash
func (s *SearchService) baseURL() string {
	basePath := strings.TrimSuffix(path.Clean("/"+s.cfg.Endpoint), "/")
	return fmt.Sprintf("%s://%s%s", s.cfg.Scheme, net.JoinHostPort(s.cfg.Hostname, s.cfg.Port), basePath)
}

// SearchURL builds the dismax search URL for a query
func (s *SearchService) SearchURL(query string, limit int) string {
	return fmt.Sprintf("%s/dismax-search?value=%s&start=0&size=%d&minScore=%d",
		s.baseURL(), url.QueryEscape(query), limit, minScore)
}

// PostURL builds the direct lookup URL for a post identifier
func (s *SearchService) PostURL(id string) string {
	return s.baseURL() + "/" + url.PathEscape(id)
}

// SearchPosts returns up to limit posts matching query, in the order the
// service ranked them. No matches is an empty slice, not an error.
func (s *SearchService) SearchPosts(ctx context.Context, query string, limit int) ([]domain.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}
	if limit < 1 {
		return nil, &coreerrors.ValidationError{Field: "limit", Message: "limit must be at least 1"}
	}

	apiURL := s.SearchURL(strings.TrimSpace(query), limit)
	s.deps.Logger.Info("Searching posts", map[string]interface{}{
		"url":   apiURL,
		"query": query,
		"limit": limit,
	})

	body, err := s.fetch(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	raw, err := extractEnvelope(apiURL, body)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &coreerrors.MalformedResponseError{URL: apiURL, Body: string(body), Reason: envelopeField + " is null"}
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, &coreerrors.MalformedResponseError{URL: apiURL, Body: string(body), Reason: "invalid post records", Cause: err}
	}

	posts, err := toPosts(apiURL, body, records)
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Debug("Search completed", map[string]interface{}{
		"query":   query,
		"results": len(posts),
	})

	return posts, nil
}

// GetPost looks up a single post by identifier
func (s *SearchService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "post ID cannot be empty"}
	}

	apiURL := s.PostURL(id)
	s.deps.Logger.Info("Fetching post", map[string]interface{}{
		"url": apiURL,
		"id":  id,
	})

	body, err := s.fetch(ctx, apiURL)
	if err != nil {
		var unavailable *coreerrors.SearchUnavailableError
		if errors.As(err, &unavailable) && unavailable.StatusCode == http.StatusNotFound {
			return nil, &coreerrors.NotFoundError{Resource: "post", ID: id}
		}
		return nil, err
	}

	raw, err := extractEnvelope(apiURL, body)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, &coreerrors.NotFoundError{Resource: "post", ID: id}
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, &coreerrors.MalformedResponseError{URL: apiURL, Body: string(body), Reason: "invalid post record", Cause: err}
	}

	posts, err := toPosts(apiURL, body, records)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 || posts[0].ID == "" {
		return nil, &coreerrors.NotFoundError{Resource: "post", ID: id}
	}

	return &posts[0], nil
}

// fetch issues the GET and returns the body of a 2xx response
func (s *SearchService) fetch(ctx context.Context, apiURL string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.SearchUnavailableError{URL: apiURL, Cause: fmt.Errorf("HTTP client not configured")}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		s.deps.Logger.Error("Search API request failed", map[string]interface{}{
			"url":   apiURL,
			"error": err.Error(),
		})
		return nil, &coreerrors.SearchUnavailableError{URL: apiURL, Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		s.deps.Logger.Error("Search API returned error status", map[string]interface{}{
			"url":    apiURL,
			"status": resp.StatusCode(),
		})
		return nil, &coreerrors.SearchUnavailableError{
			URL:        apiURL,
			StatusCode: resp.StatusCode(),
			Cause:      fmt.Errorf("search API returned status %d", resp.StatusCode()),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, &coreerrors.SearchUnavailableError{URL: apiURL, Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}
