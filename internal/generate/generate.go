// Package generate produces candidate domain-name words: dictionary
// filtering, syllable-based synthesis, and compound blending.
package generate

import "sort"

// Generator produces candidate words. Implementations must only emit
// words that pass their validator.
type Generator interface {
	// Name identifies the generator in CLI output.
	Name() string

	// Generate returns up to limit candidate words. A limit of 0
	// means no cap.
	Generate(limit int) []string
}

// Merge deduplicates the output of several generators into a sorted
// slice.
func Merge(batches ...[]string) []string {
	seen := make(map[string]struct{})
	for _, batch := range batches {
		for _, w := range batch {
			seen[w] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
