package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/check"
	"github.com/opendomains/opendomains/internal/score"
)

var (
	checkNoCache  bool
	checkNoWhois  bool
	checkSave     bool
	checkJSON     bool
	checkWordlist string
	checkMinScore float64
)

var checkCmd = &cobra.Command{
	Use:   "check [domain-or-word ...]",
	Short: "Check domain availability",
	Long: `Check whether domains are available to register.

Bare words (no dot) are crossed with the configured TLDs, so
"opendomains check zephyr" checks zephyr.com, zephyr.io, and so on.
More words can come from a file via --wordlist (JSON array or one
word per line).

DNS is checked first. Domains that look free are verified against
registry WHOIS unless --no-whois is set, then scored and ranked.
Fresh results land in the local cache so repeated checks are instant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		words := args
		if checkWordlist != "" {
			fileWords, err := readWordlistFile(checkWordlist)
			if err != nil {
				return err
			}
			words = append(words, fileWords...)
		}

		domains := expandArgs(words)
		if len(domains) == 0 {
			return fmt.Errorf("no domains to check")
		}

		cfg.Checker.VerifyWithWhois = cfg.Checker.VerifyWithWhois && !checkNoWhois
		svc := newCheckService(checkNoCache)

		ctx := context.Background()
		started := time.Now()
		progress := printProgress
		if checkJSON {
			progress = nil
		}
		results, err := svc.CheckBatch(ctx, domains, progress)
		if err != nil {
			return err
		}
		if !checkJSON {
			fmt.Println()
		}

		scores, err := scoreAvailable(results)
		if err != nil {
			return err
		}

		if checkJSON {
			if err := printJSON(results, scores); err != nil {
				return err
			}
		} else {
			printResults(results, scores)
		}

		if checkSave {
			return saveResults(ctx, results, scores, started, checkJSON)
		}
		return nil
	},
}

// readWordlistFile loads words from a JSON array or a newline file.
func readWordlistFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("failed to parse wordlist JSON: %w", err)
		}
		return words, nil
	}

	var words []string
	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

// expandArgs turns bare words into word x TLD domains and lowercases
// everything.
func expandArgs(args []string) []string {
	var wordList, domains []string
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if arg == "" {
			continue
		}
		if strings.Contains(arg, ".") {
			domains = append(domains, arg)
		} else {
			wordList = append(wordList, arg)
		}
	}
	if len(wordList) > 0 {
		domains = append(domains, check.CrossTLDs(wordList, cfg.TLDs)...)
	}
	return domains
}

// scoreAvailable scores every available result.
func scoreAvailable(results []check.Result) (map[string]score.Score, error) {
	dict, err := loadDictionary()
	if err != nil {
		return nil, err
	}
	scorer := newScorer(dict)

	scores := make(map[string]score.Score)
	for _, r := range results {
		if r.Available() {
			scores[r.Domain] = scorer.Score(r.Domain)
		}
	}
	return scores, nil
}

func printProgress(phase check.Phase, current, total int) {
	fmt.Printf("\r  %-6s %d/%d", phase, current, total)
}

func printResults(results []check.Result, scores map[string]score.Score) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	available := 0
	for _, r := range results {
		note := r.Method
		if r.Cached {
			note += ", cached"
		}
		switch r.Status {
		case check.StatusAvailable:
			available++
			sc, scored := scores[r.Domain]
			if scored && sc.Total < checkMinScore {
				continue
			}
			scoreText := ""
			if scored {
				scoreText = fmt.Sprintf("  %5.1f", sc.Total)
			}
			fmt.Printf("  %s %-28s%s %s\n", green("✓"), r.Domain, scoreText, gray("available ("+note+")"))
		case check.StatusTaken:
			fmt.Printf("  %s %-28s %s\n", red("✗"), r.Domain, gray("taken ("+note+")"))
		default:
			fmt.Printf("  %s %-28s %s\n", yellow("?"), r.Domain, gray("unknown ("+note+")"))
		}
		if r.Err != "" {
			fmt.Printf("    %s\n", gray(r.Err))
		}
	}

	fmt.Printf("\n  %s available out of %d checked\n", green(fmt.Sprintf("%d", available)), len(results))
}

// printJSON emits results with their scores as a JSON array.
func printJSON(results []check.Result, scores map[string]score.Score) error {
	type entry struct {
		check.Result
		Status    string       `json:"status"`
		Available *bool        `json:"available"`
		Score     *score.Score `json:"score,omitempty"`
	}

	out := make([]entry, 0, len(results))
	for _, r := range results {
		e := entry{Result: r, Status: r.Status.String(), Available: r.AvailablePtr()}
		if sc, ok := scores[r.Domain]; ok {
			e.Score = &sc
		}
		out = append(out, e)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// saveResults persists results and scores to the results database and
// records the run.
func saveResults(ctx context.Context, results []check.Result, scores map[string]score.Score, started time.Time, quiet bool) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.AddBatch(ctx, results, scores, started)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if !quiet {
		gray := color.New(color.FgHiBlack).SprintFunc()
		fmt.Printf("  %s\n", gray(fmt.Sprintf("Saved %d results (run %s)", run.Checked, run.ID[:8])))
	}
	return nil
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "skip the local result cache")
	checkCmd.Flags().BoolVar(&checkNoWhois, "no-whois", false, "skip WHOIS verification, DNS only")
	checkCmd.Flags().BoolVar(&checkSave, "save", false, "persist results to the database")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit results as JSON")
	checkCmd.Flags().StringVar(&checkWordlist, "wordlist", "", "file of extra words (JSON array or newline)")
	checkCmd.Flags().Float64Var(&checkMinScore, "min-score", 0, "hide available domains scoring below this")
	rootCmd.AddCommand(checkCmd)
}
