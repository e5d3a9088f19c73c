// ABOUTME: Feature flags switch portal surfaces (listings, sharing, metrics, rate limiting, caching)
// ABOUTME: EnvManager reads FEATURE_* variables over configurable defaults; StaticManager holds fixed states

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag names one switchable surface
type FeatureFlag string

const (
	// NewsEnabled exposes the news listing
	NewsEnabled FeatureFlag = "news_enabled"

	// OpenCallsEnabled exposes the open-calls listing
	OpenCallsEnabled FeatureFlag = "open_calls_enabled"

	// ShareEnabled enables the share link endpoints
	ShareEnabled FeatureFlag = "share_enabled"

	// MetricsEnabled records request metrics and serves /metrics
	MetricsEnabled FeatureFlag = "metrics_enabled"

	// RateLimitEnabled enables per-client rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// CacheEnabled keeps query results in the configured store
	CacheEnabled FeatureFlag = "cache_enabled"
)

// All lists every defined flag
var All = []FeatureFlag{
	NewsEnabled,
	OpenCallsEnabled,
	ShareEnabled,
	MetricsEnabled,
	RateLimitEnabled,
	CacheEnabled,
}

// Manager reports flag states
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled overrides a flag's state
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager reads flags from environment variables named prefix + upper-cased flag
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	defaults  map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates an environment-backed manager; an empty prefix means FEATURE_
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		defaults:  make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// WithDefaults sets the state used when a flag's variable is unset or empty
func (m *EnvManager) WithDefaults(defaults map[FeatureFlag]bool) *EnvManager {
	m.mu.Lock()
	defer m.mu.Unlock()
	for flag, enabled := range defaults {
		m.defaults[flag] = enabled
	}
	return m
}

// IsEnabled resolves a flag: override, then environment, then default
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	enabled, overridden := m.overrides[flag]
	def := m.defaults[flag]
	m.mu.RUnlock()

	if overridden {
		return enabled
	}

	value, ok := os.LookupEnv(m.prefix + strings.ToUpper(string(flag)))
	if !ok || value == "" {
		return def
	}
	return parseFlag(value)
}

// SetEnabled overrides a flag regardless of the environment
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of every flag in All
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// parseFlag accepts true, 1, on and enabled in any case
func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "enabled":
		return true
	}
	return false
}

// StaticManager holds fixed flag states; unknown flags are off
type StaticManager struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager with a copy of the given flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for flag, enabled := range flags {
		copied[flag] = enabled
	}
	return &StaticManager{flags: copied}
}

func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns a copy of the held states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(m.flags))
	for flag, enabled := range m.flags {
		result[flag] = enabled
	}
	return result
}
