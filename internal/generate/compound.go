package generate

import (
	"sort"
	"strings"

	"github.com/opendomains/opendomains/internal/words"
)

var compoundAdjectives = []string{
	"swift", "bright", "clear", "quick", "fast", "smart", "sharp", "bold",
	"pure", "true", "deep", "high", "open", "super", "ultra", "mega", "mini",
	"prime", "next", "new", "top", "hot", "cool", "wild", "free", "easy",
}

var compoundVerbs = []string{
	"build", "ship", "grow", "flow", "sync", "link", "push", "pull", "get",
	"run", "fly", "jump", "spin", "flip", "snap", "drop", "pop", "zip",
	"dash", "rush", "boost", "launch", "start", "spark", "craft", "make",
}

var compoundNouns = []string{
	"app", "hub", "lab", "box", "pad", "kit", "base", "dock", "port", "link",
	"node", "core", "flow", "wave", "code", "data", "byte", "sync", "stack",
	"cloud", "pixel", "spark", "forge", "mint", "nest", "hive", "grid", "mesh",
	"path", "gate", "bolt", "beam", "pulse", "shift", "scope", "space", "spot",
}

var compoundSuffixes = []string{
	"ly", "ify", "ize", "io", "ai", "hq", "os", "up", "go", "now", "pro",
}

// CompoundGenerator combines word pairs into compound candidates.
type CompoundGenerator struct {
	validator *words.Validator
	maxLength int
}

// NewCompoundGenerator builds a generator; compounds may run a little
// longer than single words, so callers usually pass maxLength+5.
func NewCompoundGenerator(maxLength int) *CompoundGenerator {
	return &CompoundGenerator{
		validator: words.NewValidator(4, maxLength),
		maxLength: maxLength,
	}
}

// Name implements Generator.
func (g *CompoundGenerator) Name() string { return "compound" }

// Generate returns all compound types, deduplicated. limit caps the
// result when positive.
func (g *CompoundGenerator) Generate(limit int) []string {
	out := Merge(
		g.pairs(compoundAdjectives, compoundNouns),
		g.pairs(compoundVerbs, compoundNouns),
		g.nounNoun(),
		g.withSuffixes(),
	)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GenerateCustom combines two caller-provided word lists.
func (g *CompoundGenerator) GenerateCustom(first, second []string) []string {
	return g.pairs(first, second)
}

// Portmanteau blends two words: overlap merges plus cut-blends.
func (g *CompoundGenerator) Portmanteau(word1, word2 string) []string {
	var candidates []string

	for i := 1; i < min(len(word1), 4); i++ {
		suffix := word1[len(word1)-i:]
		for j := 1; j < min(len(word2), 4); j++ {
			if suffix == word2[:j] {
				blend := word1 + word2[j:]
				if g.validator.IsValid(blend) {
					candidates = append(candidates, blend)
				}
			}
		}
	}

	for i := len(word1) / 2; i < len(word1); i++ {
		for j := 1; j <= len(word2)/2; j++ {
			blend := word1[:i] + word2[j:]
			if g.validator.IsValid(blend) {
				candidates = append(candidates, blend)
			}
		}
	}

	return candidates
}

func (g *CompoundGenerator) pairs(first, second []string) []string {
	seen := make(map[string]struct{})
	for _, a := range first {
		for _, b := range second {
			if !g.flowsWell(a, b) {
				continue
			}
			if compound := a + b; g.validator.IsValid(compound) {
				seen[compound] = struct{}{}
			}
		}
	}
	return setToSorted(seen)
}

func (g *CompoundGenerator) nounNoun() []string {
	seen := make(map[string]struct{})
	for _, a := range compoundNouns {
		for _, b := range compoundNouns {
			if a == b || !g.flowsWell(a, b) {
				continue
			}
			if compound := a + b; g.validator.IsValid(compound) {
				seen[compound] = struct{}{}
			}
		}
	}
	return setToSorted(seen)
}

func (g *CompoundGenerator) withSuffixes() []string {
	seen := make(map[string]struct{})
	base := make([]string, 0, len(compoundAdjectives)+len(compoundVerbs)+len(compoundNouns))
	base = append(base, compoundAdjectives...)
	base = append(base, compoundVerbs...)
	base = append(base, compoundNouns...)

	for _, w := range base {
		for _, suffix := range compoundSuffixes {
			if !g.flowsWell(w, suffix) {
				continue
			}
			if compound := w + suffix; g.validator.IsValid(compound) {
				seen[compound] = struct{}{}
			}
		}
	}
	return setToSorted(seen)
}

// flowsWell rejects junctions that read badly: doubled rare letters
// and triple-consonant pileups.
func (g *CompoundGenerator) flowsWell(word1, word2 string) bool {
	if word1 == "" || word2 == "" {
		return false
	}
	if len(word1)+len(word2) > g.maxLength {
		return false
	}

	junction := word1[len(word1)-1:] + word2[:1]
	badJunctions := []string{"aa", "ii", "uu", "ww", "yy", "hh", "jj", "qq", "vv", "xx"}
	for _, bad := range badJunctions {
		if junction == bad {
			return false
		}
	}

	isV := func(c byte) bool { return strings.IndexByte("aeiou", c) >= 0 }
	last := word1[len(word1)-1]
	first := word2[0]
	if !isV(last) && !isV(first) && len(word1) > 1 && !isV(word1[len(word1)-2]) {
		return false
	}

	return true
}

func setToSorted(seen map[string]struct{}) []string {
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
