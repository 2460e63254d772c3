// Package testsupport provides helpers for wiring tests with temp-backed
// configuration and fake capability implementations.
package testsupport

import (
	"path/filepath"
	"testing"

	"promptvault/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.StateDir = filepath.Join(base, "state")
	cfg.LogDir = filepath.Join(base, "logs")
	cfg.SocketPath = filepath.Join(base, "promptvault.sock")
	cfg.EventBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithRetryDelays overrides the forward retry stagger on the test config.
func WithRetryDelays(ms ...int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.RetryDelaysMS = ms
	}
}
