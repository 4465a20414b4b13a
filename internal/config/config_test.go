package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"com", "io", "ai", "co"}, cfg.TLDs)
	assert.Equal(t, 200, cfg.Generator.Count)
	assert.Equal(t, 4, cfg.Generator.MinLength)
	assert.Equal(t, 10, cfg.Generator.MaxLength)
	assert.True(t, cfg.Checker.VerifyWithWhois)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, 3*time.Second, cfg.Checker.DNSTimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.Checker.WhoisTimeoutDuration())
	assert.Equal(t, 1500*time.Millisecond, cfg.Checker.WhoisIntervalDuration())
	assert.Equal(t, 24*time.Hour, cfg.Checker.CacheTTLDuration())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opendomains.yaml")
	content := `
tlds: [dev, app]
generator:
  count: 50
  min_length: 5
  max_length: 8
checker:
  dns_timeout: 1s
  verify_with_whois: false
database_path: /tmp/test.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "app"}, cfg.TLDs)
	assert.Equal(t, 50, cfg.Generator.Count)
	assert.Equal(t, 5, cfg.Generator.MinLength)
	assert.Equal(t, time.Second, cfg.Checker.DNSTimeoutDuration())
	assert.False(t, cfg.Checker.VerifyWithWhois)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)

	// Unset fields keep their defaults.
	assert.Equal(t, "10s", cfg.Checker.WhoisTimeout)
	assert.Equal(t, "data/results/checked_cache.json", cfg.CachePath)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tlds: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no TLDs", func(c *Config) { c.TLDs = nil }},
		{"zero min_length", func(c *Config) { c.Generator.MinLength = 0 }},
		{"max below min", func(c *Config) { c.Generator.MaxLength = 2 }},
		{"bad max_concurrent", func(c *Config) { c.Checker.MaxConcurrent = 0 }},
		{"bad duration", func(c *Config) { c.Checker.DNSTimeout = "soon" }},
		{"negative weight", func(c *Config) { c.Scoring.Weights = map[string]float64{"length": -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
