package search

import (
	"context"
	"io"
	"strings"

	"blog-search-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls = append(m.calls, url)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// respondWith returns a mock client that always answers with status and body
func respondWith(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}
