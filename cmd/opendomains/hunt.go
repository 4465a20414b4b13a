package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/check"
	"github.com/opendomains/opendomains/internal/score"
)

var (
	huntCount    int
	huntSeed     int64
	huntMinScore float64
	huntNoSave   bool
	huntJSON     bool
)

var huntCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Generate, check, and score domains in one run",
	Long: `Run the full pipeline: generate candidate words with every method,
cross them with the configured TLDs, check availability, score what is
available, and report the finds by tier:

  gems    score 85 and up
  good    score 75 to 84
  decent  everything else above the minimum

Results are saved to the database unless --no-save is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		genMethod = "all"
		genCount = huntCount
		genSeed = huntSeed

		wordList, err := generateCandidates()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		dict, err := loadDictionary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scorer := newScorer(dict)

		progress := printProgress
		if huntJSON {
			progress = nil
		} else {
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			gray := color.New(color.FgHiBlack).SprintFunc()
			fmt.Printf("\n%s\n", cyan("=== Domain Hunt ==="))
			fmt.Printf("  %s\n\n", gray(fmt.Sprintf("%d words x %d TLDs", len(wordList), len(cfg.TLDs))))
		}

		svc := newCheckService(false)
		ctx := context.Background()
		started := time.Now()

		results, err := svc.CheckBatch(ctx, check.CrossTLDs(wordList, cfg.TLDs), progress)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
			os.Exit(1)
		}
		if !huntJSON {
			fmt.Println()
		}

		scores := make(map[string]score.Score)
		var available []score.Score
		for _, r := range results {
			if !r.Available() {
				continue
			}
			sc := scorer.Score(r.Domain)
			scores[r.Domain] = sc
			if sc.Total >= huntMinScore {
				available = append(available, sc)
			}
		}

		if huntJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(sortByScore(available)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			printTiers(available)
		}

		if !huntNoSave {
			if err := saveResults(ctx, results, scores, started, huntJSON); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

// printTiers buckets scored finds into gems, good, and decent.
func printTiers(scored []score.Score) {
	var gems, good, decent []score.Score
	for _, sc := range scored {
		switch {
		case sc.Total >= 85:
			gems = append(gems, sc)
		case sc.Total >= 75:
			good = append(good, sc)
		default:
			decent = append(decent, sc)
		}
	}

	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	printTier := func(label string, styled func(...interface{}) string, tier []score.Score) {
		if len(tier) == 0 {
			return
		}
		fmt.Printf("\n%s\n", styled(fmt.Sprintf("%s (%d):", label, len(tier))))
		for _, sc := range sortByScore(tier) {
			fmt.Printf("  %-28s %5.1f\n", sc.Domain, sc.Total)
		}
	}

	printTier("💎 Gems", magenta, gems)
	printTier("Good", green, good)
	printTier("Decent", yellow, decent)

	if len(scored) == 0 {
		fmt.Printf("\n  %s\n", gray("No available domains above the minimum score."))
	}
	fmt.Println()
}

func sortByScore(scores []score.Score) []score.Score {
	sorted := make([]score.Score, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Total > sorted[j].Total })
	return sorted
}

func init() {
	huntCmd.Flags().IntVar(&huntCount, "count", 0, "candidate words to generate (0 = config default)")
	huntCmd.Flags().Int64Var(&huntSeed, "seed", 0, "random seed for phonetic generation (0 = time-based)")
	huntCmd.Flags().Float64Var(&huntMinScore, "min-score", 50, "hide finds scoring below this")
	huntCmd.Flags().BoolVar(&huntNoSave, "no-save", false, "do not persist results to the database")
	huntCmd.Flags().BoolVar(&huntJSON, "json", false, "emit scored finds as JSON")
	rootCmd.AddCommand(huntCmd)
}
