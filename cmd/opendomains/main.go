// Command opendomains generates domain name candidates, checks their
// availability over DNS and WHOIS, and scores them for brandability.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/check"
	"github.com/opendomains/opendomains/internal/config"
	"github.com/opendomains/opendomains/internal/score"
	"github.com/opendomains/opendomains/internal/storage"
	"github.com/opendomains/opendomains/internal/words"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "opendomains",
	Short: "Find available, brandable domain names",
	Long: `opendomains generates candidate domain names, checks which are
actually available to register, and scores them on pronounceability,
spellability, memorability, and brandability.

Typical workflow:
  opendomains generate --count 50        # see some candidates
  opendomains check example.com          # check one domain
  opendomains hunt                       # full pipeline: generate, check, score
  opendomains results --top 20           # best finds so far`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "opendomains.yaml", "path to config file")
}

// loadDictionary loads the configured wordlist, falling back to the
// embedded one.
func loadDictionary() (*words.Dictionary, error) {
	dict, err := words.LoadDictionary(cfg.WordlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load wordlist: %w", err)
	}
	return dict, nil
}

// newScorer builds a scorer with any config overrides applied.
func newScorer(dict *words.Dictionary) *score.Scorer {
	var opts []score.Option
	if len(cfg.Scoring.Weights) > 0 {
		opts = append(opts, score.WithWeights(cfg.Scoring.Weights))
	}
	if len(cfg.Scoring.TLDMultipliers) > 0 {
		opts = append(opts, score.WithTLDMultipliers(cfg.Scoring.TLDMultipliers))
	}
	return score.New(dict, opts...)
}

// newCheckService wires the availability pipeline from config.
func newCheckService(disableCache bool) *check.Service {
	return check.NewService(check.Options{
		DNSTimeout:      cfg.Checker.DNSTimeoutDuration(),
		WhoisTimeout:    cfg.Checker.WhoisTimeoutDuration(),
		MaxConcurrent:   cfg.Checker.MaxConcurrent,
		WhoisInterval:   cfg.Checker.WhoisIntervalDuration(),
		Resolver:        cfg.Checker.Resolver,
		CachePath:       cfg.CachePath,
		CacheTTL:        cfg.Checker.CacheTTLDuration(),
		DisableCache:    disableCache,
		VerifyWithWhois: cfg.Checker.VerifyWithWhois,
	})
}

// openStore opens the results database from config.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	return store, nil
}
