package generate

import (
	"sort"

	"github.com/opendomains/opendomains/internal/words"
)

// Curated word categories that make good domains.
var curatedCategories = map[string][]string{
	"action": {
		"build", "ship", "grow", "flow", "sync", "link", "push", "pull",
		"loop", "snap", "dash", "rush", "leap", "zoom", "bolt", "flip",
		"spark", "blend", "craft", "forge", "mint", "cast", "fuse",
	},
	"nature": {
		"wave", "wind", "rain", "fire", "leaf", "seed", "root", "bloom",
		"cloud", "storm", "stone", "river", "ocean", "peak", "dawn", "dusk",
	},
	"tech": {
		"code", "data", "byte", "node", "port", "grid", "mesh", "core",
		"stack", "cache", "queue", "hash", "ping", "sync", "pixel", "vector",
	},
	"abstract": {
		"swift", "bright", "clear", "prime", "vivid", "rapid", "agile",
		"nimble", "sleek", "crisp", "bold", "keen", "pure", "zen",
	},
}

var techSuffixes = []string{"ly", "ify", "io", "app", "kit", "hub", "lab", "box", "pad"}
var techPrefixes = []string{"go", "my", "get", "use", "try", "pro"}

// DictionaryGenerator filters real English words into domain
// candidates.
type DictionaryGenerator struct {
	dict      *words.Dictionary
	validator *words.Validator
}

// NewDictionaryGenerator builds a generator over the given dictionary
// with the given length bounds.
func NewDictionaryGenerator(dict *words.Dictionary, minLength, maxLength int) *DictionaryGenerator {
	return &DictionaryGenerator{
		dict:      dict,
		validator: words.NewValidator(minLength, maxLength),
	}
}

// Name implements Generator.
func (g *DictionaryGenerator) Name() string { return "dictionary" }

// Generate returns validated dictionary words, shortest first, then
// lexical. A limit of 0 returns all.
func (g *DictionaryGenerator) Generate(limit int) []string {
	var candidates []string
	for _, w := range g.dict.Words() {
		if g.validator.IsValid(w) {
			candidates = append(candidates, w)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// GenerateCurated returns the hand-picked category words that pass
// validation.
func (g *DictionaryGenerator) GenerateCurated() []string {
	seen := make(map[string]struct{})
	var candidates []string
	for _, categoryWords := range curatedCategories {
		for _, w := range categoryWords {
			if _, dup := seen[w]; dup {
				continue
			}
			if g.validator.IsValid(w) {
				seen[w] = struct{}{}
				candidates = append(candidates, w)
			}
		}
	}
	sort.Strings(candidates)
	return candidates
}

// GenerateWithAffixes expands base words with tech-friendly prefixes
// and suffixes. A nil base uses the curated set.
func (g *DictionaryGenerator) GenerateWithAffixes(base []string) []string {
	if base == nil {
		base = g.GenerateCurated()
	}

	seen := make(map[string]struct{})
	for _, w := range base {
		seen[w] = struct{}{}
	}
	for _, w := range base {
		for _, suffix := range techSuffixes {
			if candidate := w + suffix; g.validator.IsValid(candidate) {
				seen[candidate] = struct{}{}
			}
		}
		for _, prefix := range techPrefixes {
			if candidate := prefix + w; g.validator.IsValid(candidate) {
				seen[candidate] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
