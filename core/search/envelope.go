package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"blog-search-api/core/domain"
	coreerrors "blog-search-api/core/errors"
	htmlutil "blog-search-api/pkg/utils/html"
)

// apiPost is one record of the search API's post envelope
type apiPost struct {
	ID      postID   `json:"ID"`
	Title   string   `json:"post_title"`
	Excerpt string   `json:"post_excerpt"`
	Date    string   `json:"post_date"`
	GUID    string   `json:"guid"`
	Score   *float64 `json:"_score"`
}

// postID accepts the identifier as either a JSON number or a JSON string
type postID string

func (p *postID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = postID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post ID must be a string or number: %w", err)
	}
	*p = postID(n.String())
	return nil
}

// extractEnvelope returns the raw value of the envelope field
func extractEnvelope(apiURL string, body []byte) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &coreerrors.MalformedResponseError{URL: apiURL, Body: string(body), Reason: "response is not a JSON object", Cause: err}
	}

	raw, ok := envelope[envelopeField]
	if !ok {
		return nil, &coreerrors.MalformedResponseError{URL: apiURL, Body: string(body), Reason: "missing " + envelopeField}
	}

	return raw, nil
}

// decodeRecords accepts either an array of records or a single record object
func decodeRecords(raw json.RawMessage) ([]apiPost, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty value")
	}

	switch raw[0] {
	case '[':
		var records []apiPost
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		var record apiPost
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		return []apiPost{record}, nil
	default:
		return nil, fmt.Errorf("expected array or object, got %q", string(raw[:1]))
	}
}

// toPosts converts API records into domain posts, preserving order
func toPosts(apiURL string, body []byte, records []apiPost) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(records))
	for i, r := range records {
		post := domain.Post{
			ID:          strings.TrimSpace(string(r.ID)),
			Title:       htmlutil.DecodeText(r.Title),
			Excerpt:     htmlutil.StripHTML(r.Excerpt),
			PublishedAt: strings.TrimSpace(r.Date),
			Link:        strings.TrimSpace(r.GUID),
			Score:       r.Score,
		}
		if !post.IsValid() {
			return nil, &coreerrors.MalformedResponseError{
				URL:    apiURL,
				Body:   string(body),
				Reason: fmt.Sprintf("record %d has an invalid score", i),
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// isNull reports whether a raw JSON value is the literal null
func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
