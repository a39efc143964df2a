package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"blog-search-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "post", ID: "42"},
			expectedStatus: 404,
			expectedInMsg:  "post not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "query", Message: "search query cannot be empty"},
			expectedStatus: 400,
			expectedInMsg:  "query",
		},
		{
			name:           "SearchUnavailableError returns 503",
			input:          &errors.SearchUnavailableError{URL: "http://search", StatusCode: 500},
			expectedStatus: 503,
			expectedInMsg:  "Search service unavailable",
		},
		{
			name:           "MalformedResponseError returns 502",
			input:          &errors.MalformedResponseError{URL: "http://search", Reason: "invalid JSON"},
			expectedStatus: 502,
			expectedInMsg:  "invalid response",
		},
		{
			name:           "InvalidTimestampError returns 500",
			input:          &errors.InvalidTimestampError{Value: "yesterday"},
			expectedStatus: 500,
			expectedInMsg:  "invalid publish date",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "post", ID: "7"}),
			expectedStatus: 404,
			expectedInMsg:  "post not found",
		},
		{
			name:           "wrapped SearchUnavailableError returns 503",
			input:          fmt.Errorf("context: %w", &errors.SearchUnavailableError{URL: "http://search", Cause: fmt.Errorf("refused")}),
			expectedStatus: 503,
			expectedInMsg:  "Search service unavailable",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
