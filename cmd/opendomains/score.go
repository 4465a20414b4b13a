package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scoreVerbose bool

var scoreCmd = &cobra.Command{
	Use:   "score <domain> [...]",
	Short: "Score domains for quality and brandability",
	Long: `Score domains without checking availability.

Each domain gets 0-100 component scores for pronounceability,
spellability, length, memorability, brandability, euphony, and
meaning, combined with weights and a TLD multiplier into a total.
Bare words are scored as .com domains.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dict, err := loadDictionary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scorer := newScorer(dict)

		domains := make([]string, 0, len(args))
		for _, arg := range args {
			arg = strings.ToLower(strings.TrimSpace(arg))
			if !strings.Contains(arg, ".") {
				arg += ".com"
			}
			domains = append(domains, arg)
		}

		scores := scorer.Rank(domains, 0)

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Println()
		for _, sc := range scores {
			styled := red
			if sc.Total >= 75 {
				styled = green
			} else if sc.Total >= 50 {
				styled = yellow
			}
			fmt.Printf("  %-28s %s\n", sc.Domain, styled(fmt.Sprintf("%5.1f", sc.Total)))

			if scoreVerbose {
				fmt.Printf("    %s\n", gray(fmt.Sprintf(
					"pron %d  spell %d  len %d  memo %d  brand %d  euphony %d  meaning %d  tld x%.1f",
					sc.Pronounceability, sc.Spellability, sc.Length, sc.Memorability,
					sc.Brandability, sc.Euphony, sc.Meaning, sc.TLDMultiplier)))
			}
		}
		fmt.Println()
	},
}

func init() {
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "show component scores")
	rootCmd.AddCommand(scoreCmd)
}
