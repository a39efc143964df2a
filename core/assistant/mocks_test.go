package assistant

import (
	"context"
	"sync"

	"blog-search-api/core/domain"
)

// mockSearcher records gateway calls and returns canned results
type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.Post, error)
	getFunc    func(ctx context.Context, id string) (*domain.Post, error)

	searchCalls []searchCall
	getCalls    []string
}

type searchCall struct {
	query string
	limit int
}

func (m *mockSearcher) SearchPosts(ctx context.Context, query string, limit int) ([]domain.Post, error) {
	m.searchCalls = append(m.searchCalls, searchCall{query: query, limit: limit})
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return []domain.Post{}, nil
}

func (m *mockSearcher) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	m.getCalls = append(m.getCalls, id)
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

// logEntry is one captured log call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
