package handlers

import (
	"context"

	"blog-search-api/core/domain"
)

// mockAssistant is a mock implementation of the assistant service
type mockAssistant struct {
	handleFunc func(ctx context.Context, intent domain.Intent) (*domain.Reply, error)
	intents    []domain.Intent
}

func (m *mockAssistant) Handle(ctx context.Context, intent domain.Intent) (*domain.Reply, error) {
	m.intents = append(m.intents, intent)
	if m.handleFunc != nil {
		return m.handleFunc(ctx, intent)
	}
	return &domain.Reply{Speech: "ok"}, nil
}
