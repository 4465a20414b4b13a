package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/generate"
)

var (
	genMethod string
	genCount  int
	genSeed   int64
	genPrefix string
	genSuffix string
	genJSON   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate candidate domain words",
	Long: `Generate candidate words using one or all of the generation methods:

  dictionary  real English words from the wordlist, plus curated
              startup-friendly words and tech-affix variants
  phonetic    invented brandable words built from pleasant syllables
  compound    two-part blends like "brightpath" or "swiftforge"

With --prefix or --suffix, phonetic candidates are anchored to the
given fragment (e.g. --prefix dev, --suffix ly).`,
	Run: func(cmd *cobra.Command, args []string) {
		candidates, err := generateCandidates()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if genJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(candidates); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan(fmt.Sprintf("=== %d candidates (%s) ===", len(candidates), genMethod)))
		for _, word := range candidates {
			fmt.Printf("  %s\n", word)
		}
		fmt.Printf("\n%s\n", gray(fmt.Sprintf("Check availability with: opendomains check %s.com",
			firstOr(candidates, "<word>"))))
	},
}

// generateCandidates runs the selected generators and merges their
// output, deduplicated and sorted.
func generateCandidates() ([]string, error) {
	minLen := cfg.Generator.MinLength
	maxLen := cfg.Generator.MaxLength

	count := genCount
	if count <= 0 {
		count = cfg.Generator.Count
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	phonetic := generate.NewPhoneticGenerator(minLen, maxLen, seed)

	if genPrefix != "" {
		return phonetic.GenerateWithPrefix(genPrefix, count), nil
	}
	if genSuffix != "" {
		return phonetic.GenerateWithSuffix(genSuffix, count), nil
	}

	var batches [][]string
	if genMethod == "all" || genMethod == "dictionary" {
		dict, err := loadDictionary()
		if err != nil {
			return nil, err
		}
		dg := generate.NewDictionaryGenerator(dict, minLen, maxLen)
		batches = append(batches, dg.Generate(count), dg.GenerateCurated())
		batches = append(batches, dg.GenerateWithAffixes(dg.GenerateCurated()))
	}
	if genMethod == "all" || genMethod == "phonetic" {
		batches = append(batches, phonetic.Generate(count))
	}
	if genMethod == "all" || genMethod == "compound" {
		batches = append(batches, generate.NewCompoundGenerator(maxLen).Generate(count))
	}
	if len(batches) == 0 {
		return nil, fmt.Errorf("unknown method %q (want all, dictionary, phonetic, or compound)", genMethod)
	}

	merged := generate.Merge(batches...)
	if count > 0 && len(merged) > count {
		merged = merged[:count]
	}
	return merged, nil
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

func init() {
	generateCmd.Flags().StringVar(&genMethod, "method", "all", "generation method: all, dictionary, phonetic, compound")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "max candidates to emit (0 = config default)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed for phonetic generation (0 = time-based)")
	generateCmd.Flags().StringVar(&genPrefix, "prefix", "", "anchor phonetic words to this prefix")
	generateCmd.Flags().StringVar(&genSuffix, "suffix", "", "anchor phonetic words to this suffix")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "emit candidates as a JSON array")
	rootCmd.AddCommand(generateCmd)
}
