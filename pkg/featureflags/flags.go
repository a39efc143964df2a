// ABOUTME: Feature flag management for optional assistant behaviour
// ABOUTME: Provides interface-based feature toggling with env and static backends

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// SpeakScore adds the relevance score to the spoken single post answer
	SpeakScore FeatureFlag = "speak_score"

	// ShowScore adds the relevance score to cards and list descriptions
	ShowScore FeatureFlag = "show_score"

	// RateLimitEnabled enables per-client rate limiting of the webhook
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"
)

// allFlags lists every defined flag for GetAllFlags
var allFlags = []FeatureFlag{SpeakScore, ShowScore, RateLimitEnabled}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	value := strings.ToLower(os.Getenv(m.prefix + strings.ToUpper(string(flag))))

	return value == "true" || value == "1" || value == "enabled"
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(allFlags))
	for _, flag := range allFlags {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	if flags == nil {
		flags = make(map[FeatureFlag]bool)
	}
	return &StaticManager{
		flags: flags,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool)
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
