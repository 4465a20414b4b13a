package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/storage"
)

var (
	resultsTop      int
	resultsTLD      string
	resultsMinScore float64
	resultsAll      bool
	resultsStats    bool
	resultsRuns     bool
	resultsExport   string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse saved check results",
	Long: `Browse the results database populated by "hunt" and "check --save".

By default shows the best-scoring available domains. Use --stats for
aggregate numbers, --runs for check-batch history, or --export to
write a CSV or Markdown file (format picked by extension).`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		ctx := context.Background()

		switch {
		case resultsStats:
			err = printStats(ctx, store)
		case resultsRuns:
			err = printRuns(ctx, store)
		default:
			err = printRecords(ctx, store)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func printRecords(ctx context.Context, store *storage.Store) error {
	q := storage.Query{
		TLD:   resultsTLD,
		Limit: resultsTop,
	}
	if !resultsAll {
		avail := true
		q.Available = &avail
	}
	if resultsMinScore > 0 {
		q.MinScore = &resultsMinScore
	}

	records, err := store.Find(ctx, q)
	if err != nil {
		return err
	}

	if resultsExport != "" {
		return exportRecords(resultsExport, records)
	}

	gray := color.New(color.FgHiBlack).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if len(records) == 0 {
		fmt.Printf("\n  %s\n\n", gray("No matching results. Run a hunt first."))
		return nil
	}

	fmt.Println()
	for _, r := range records {
		scoreText := gray("    -")
		if r.Score != nil {
			scoreText = fmt.Sprintf("%5.1f", r.Score.Total)
		}
		marker := gray("•")
		if r.Available != nil && *r.Available {
			marker = green("✓")
		}
		fmt.Printf("  %s %-28s %s  %s\n", marker, r.Domain, scoreText,
			gray(r.LastChecked.Format("2006-01-02")))
	}
	fmt.Println()
	return nil
}

func exportRecords(path string, records []storage.Record) error {
	var err error
	switch {
	case strings.HasSuffix(path, ".md"):
		err = storage.ExportMarkdown(path, records)
	default:
		err = storage.ExportCSV(path, records)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d records to %s\n", len(records), path)
	return nil
}

func printStats(ctx context.Context, store *storage.Store) error {
	stats, err := store.GetStats(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s\n\n", cyan("=== Results Database ==="))
	fmt.Printf("  Checked:    %d\n", stats.Total)
	fmt.Printf("  Available:  %s\n", green(fmt.Sprintf("%d", stats.Available)))
	fmt.Printf("  Taken:      %d\n", stats.Unavailable)
	fmt.Printf("  Unknown:    %d\n", stats.Unknown)
	if stats.WithScores > 0 {
		fmt.Printf("\n  Scored available domains: %d\n", stats.WithScores)
		fmt.Printf("  Score range: %.1f - %.1f (avg %.1f)\n",
			stats.MinScore, stats.MaxScore, stats.AvgScore)
	}

	if len(stats.TLDs) > 0 {
		fmt.Printf("\n%s\n", yellow("By TLD:"))
		for tld, t := range stats.TLDs {
			fmt.Printf("  .%-6s %4d checked, %d available\n", tld, t.Total, t.Available)
		}
	}
	fmt.Println()
	return nil
}

func printRuns(ctx context.Context, store *storage.Store) error {
	runs, err := store.Runs(ctx, resultsTop)
	if err != nil {
		return err
	}

	gray := color.New(color.FgHiBlack).SprintFunc()
	if len(runs) == 0 {
		fmt.Printf("\n  %s\n\n", gray("No runs recorded yet."))
		return nil
	}

	fmt.Println()
	for _, run := range runs {
		fmt.Printf("  %s  %s  checked %d, available %d  %s\n",
			run.ID[:8],
			run.StartedAt.Format("2006-01-02 15:04"),
			run.Checked, run.Available,
			gray(run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()))
	}
	fmt.Println()
	return nil
}

func init() {
	resultsCmd.Flags().IntVar(&resultsTop, "top", 20, "max rows to show")
	resultsCmd.Flags().StringVar(&resultsTLD, "tld", "", "filter by TLD")
	resultsCmd.Flags().Float64Var(&resultsMinScore, "min-score", 0, "filter by minimum total score")
	resultsCmd.Flags().BoolVar(&resultsAll, "all", false, "include taken and unknown domains")
	resultsCmd.Flags().BoolVar(&resultsStats, "stats", false, "show aggregate statistics")
	resultsCmd.Flags().BoolVar(&resultsRuns, "runs", false, "show check-batch history")
	resultsCmd.Flags().StringVar(&resultsExport, "export", "", "export to file (.csv or .md)")
	rootCmd.AddCommand(resultsCmd)
}
