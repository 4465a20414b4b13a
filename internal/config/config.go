// Package config loads the opendomains YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the CLI exposes via opendomains.yaml.
type Config struct {
	// TLDs to cross candidate words with.
	TLDs []string `yaml:"tlds"`

	Generator GeneratorConfig `yaml:"generator"`
	Checker   CheckerConfig   `yaml:"checker"`
	Scoring   ScoringConfig   `yaml:"scoring"`

	// Paths
	DatabasePath string `yaml:"database_path"`
	CachePath    string `yaml:"cache_path"`
	WordlistPath string `yaml:"wordlist_path"` // empty = embedded wordlist
}

// GeneratorConfig bounds candidate word generation.
type GeneratorConfig struct {
	Count     int `yaml:"count"` // words per generator
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// CheckerConfig tunes the availability pipeline.
type CheckerConfig struct {
	DNSTimeout      string `yaml:"dns_timeout"`    // e.g. "3s"
	WhoisTimeout    string `yaml:"whois_timeout"`  // e.g. "10s"
	MaxConcurrent   int    `yaml:"max_concurrent"` // DNS batch parallelism
	WhoisInterval   string `yaml:"whois_interval"` // min gap between WHOIS calls
	CacheTTL        string `yaml:"cache_ttl"`      // e.g. "24h"
	Resolver        string `yaml:"resolver"`       // host:port, empty = system default
	VerifyWithWhois bool   `yaml:"verify_with_whois"`
}

// ScoringConfig overrides the default weights and TLD multipliers.
type ScoringConfig struct {
	Weights        map[string]float64 `yaml:"weights"`
	TLDMultipliers map[string]float64 `yaml:"tld_multipliers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TLDs: []string{"com", "io", "ai", "co"},
		Generator: GeneratorConfig{
			Count:     200,
			MinLength: 4,
			MaxLength: 10,
		},
		Checker: CheckerConfig{
			DNSTimeout:      "3s",
			WhoisTimeout:    "10s",
			MaxConcurrent:   10,
			WhoisInterval:   "1500ms",
			CacheTTL:        "24h",
			VerifyWithWhois: true,
		},
		DatabasePath: "data/results/domains.db",
		CachePath:    "data/results/checked_cache.json",
	}
}

// Load reads the config file at path. A missing file yields defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values for obvious mistakes.
func (c *Config) Validate() error {
	if len(c.TLDs) == 0 {
		return fmt.Errorf("at least one TLD is required")
	}
	if c.Generator.MinLength < 1 {
		return fmt.Errorf("generator min_length must be positive (got %d)", c.Generator.MinLength)
	}
	if c.Generator.MaxLength < c.Generator.MinLength {
		return fmt.Errorf("generator max_length %d is below min_length %d",
			c.Generator.MaxLength, c.Generator.MinLength)
	}
	if c.Checker.MaxConcurrent < 1 {
		return fmt.Errorf("checker max_concurrent must be positive (got %d)", c.Checker.MaxConcurrent)
	}
	for _, field := range []struct{ name, value string }{
		{"dns_timeout", c.Checker.DNSTimeout},
		{"whois_timeout", c.Checker.WhoisTimeout},
		{"whois_interval", c.Checker.WhoisInterval},
		{"cache_ttl", c.Checker.CacheTTL},
	} {
		if _, err := time.ParseDuration(field.value); err != nil {
			return fmt.Errorf("checker %s: %w", field.name, err)
		}
	}
	for name, w := range c.Scoring.Weights {
		if w < 0 {
			return fmt.Errorf("scoring weight %q must not be negative", name)
		}
	}
	return nil
}

// DNSTimeoutDuration returns the parsed DNS timeout.
func (c *CheckerConfig) DNSTimeoutDuration() time.Duration {
	return mustDuration(c.DNSTimeout, 3*time.Second)
}

// WhoisTimeoutDuration returns the parsed WHOIS timeout.
func (c *CheckerConfig) WhoisTimeoutDuration() time.Duration {
	return mustDuration(c.WhoisTimeout, 10*time.Second)
}

// WhoisIntervalDuration returns the minimum gap between WHOIS calls.
func (c *CheckerConfig) WhoisIntervalDuration() time.Duration {
	return mustDuration(c.WhoisInterval, 1500*time.Millisecond)
}

// CacheTTLDuration returns the cache entry lifetime.
func (c *CheckerConfig) CacheTTLDuration() time.Duration {
	return mustDuration(c.CacheTTL, 24*time.Hour)
}

func mustDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
