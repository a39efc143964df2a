package domain

import (
	"math"
	"testing"
)

func scorePtr(v float64) *float64 {
	return &v
}

func TestPost_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		post     Post
		expected bool
	}{
		{
			name:     "post without score",
			post:     Post{ID: "1", Title: "Docker"},
			expected: true,
		},
		{
			name:     "post with positive score",
			post:     Post{ID: "1", Score: scorePtr(2.345)},
			expected: true,
		},
		{
			name:     "post with zero score",
			post:     Post{ID: "1", Score: scorePtr(0)},
			expected: true,
		},
		{
			name:     "negative score",
			post:     Post{ID: "1", Score: scorePtr(-0.5)},
			expected: false,
		},
		{
			name:     "NaN score",
			post:     Post{ID: "1", Score: scorePtr(math.NaN())},
			expected: false,
		},
		{
			name:     "infinite score",
			post:     Post{ID: "1", Score: scorePtr(math.Inf(1))},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.post.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPost_HasScore(t *testing.T) {
	if (Post{}).HasScore() {
		t.Error("HasScore should be false without a score")
	}
	if !(Post{Score: scorePtr(1)}).HasScore() {
		t.Error("HasScore should be true with a score")
	}
}
