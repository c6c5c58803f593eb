package testsupport

import (
	"path/filepath"
	"testing"

	"finddup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Cache.Path = filepath.Join(base, "cache", "fingerprints.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCacheEnabled turns on the fingerprint cache for the test config.
func WithCacheEnabled() ConfigOption {
	return func(c *config.Config) {
		c.Cache.Enabled = true
	}
}

// WithHash overrides the fingerprint algorithm and thresholds.
func WithHash(algorithm string, size, identical, similar int) ConfigOption {
	return func(c *config.Config) {
		c.Hash.Algorithm = algorithm
		c.Hash.Size = size
		c.Hash.IdenticalThreshold = identical
		c.Hash.SimilarThreshold = similar
	}
}
