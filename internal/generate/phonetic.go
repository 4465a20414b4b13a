package generate

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/opendomains/opendomains/internal/words"
)

// Syllable building blocks.
var onsets = []string{
	"", "b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "v", "w", "z",
	"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr", "sc", "sk", "sl", "sm",
	"sn", "sp", "st", "sw", "tr", "tw", "ch", "sh", "th", "wh",
}

var syllableVowels = []string{"a", "e", "i", "o", "u", "ai", "ea", "ee", "oa", "oo", "ou"}
var simpleVowels = []string{"a", "e", "i", "o", "u"}

var codas = []string{
	"", "b", "d", "f", "g", "k", "l", "m", "n", "p", "r", "s", "t", "x", "z",
	"ck", "ft", "ld", "lk", "lm", "lp", "lt", "mp", "nd", "nk", "nt", "pt",
	"rd", "rk", "rm", "rn", "rp", "rt", "sk", "sp", "st", "ng", "sh", "ch", "th",
}

var techEndings = []string{"io", "ly", "fy", "ix", "ex", "ox", "ax", "um", "us", "ia", "eo", "ara", "ora", "ura"}

// Method selects the synthesis strategy.
type Method string

const (
	MethodSyllable Method = "syllable" // onset+vowel+coda syllables
	MethodCV       Method = "cv"       // strict consonant/vowel alternation
	MethodMixed    Method = "mixed"    // a blend of both
)

// PhoneticGenerator synthesizes pronounceable made-up words for
// brandable domains.
type PhoneticGenerator struct {
	validator *words.Validator
	minLength int
	maxLength int
	method    Method
	rng       *rand.Rand
}

// NewPhoneticGenerator builds a generator with the given bounds and
// seed. The same seed reproduces the same candidates.
func NewPhoneticGenerator(minLength, maxLength int, seed int64) *PhoneticGenerator {
	return &PhoneticGenerator{
		validator: words.NewValidator(minLength, maxLength),
		minLength: minLength,
		maxLength: maxLength,
		method:    MethodMixed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetMethod overrides the default mixed strategy.
func (g *PhoneticGenerator) SetMethod(m Method) { g.method = m }

// Name implements Generator.
func (g *PhoneticGenerator) Name() string { return "phonetic" }

// Generate returns up to limit unique validated words. Attempts are
// bounded at 20x the limit so a tight validator cannot loop forever.
func (g *PhoneticGenerator) Generate(limit int) []string {
	if limit <= 0 {
		limit = 100
	}

	seen := make(map[string]struct{}, limit)
	maxAttempts := limit * 20

	for attempts := 0; len(seen) < limit && attempts < maxAttempts; attempts++ {
		var word string
		switch g.method {
		case MethodSyllable:
			word = g.brandableWord()
		case MethodCV:
			word = g.cvWord()
		default:
			if g.rng.Float64() > 0.4 {
				word = g.brandableWord()
			} else {
				word = g.cvWord()
			}
		}

		word = strings.ToLower(word)
		if g.validator.IsValid(word) {
			seen[word] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// GenerateWithPrefix returns words starting with prefix.
func (g *PhoneticGenerator) GenerateWithPrefix(prefix string, limit int) []string {
	return g.generateAffixed(prefix, "", limit)
}

// GenerateWithSuffix returns words ending with suffix.
func (g *PhoneticGenerator) GenerateWithSuffix(suffix string, limit int) []string {
	return g.generateAffixed("", suffix, limit)
}

func (g *PhoneticGenerator) generateAffixed(prefix, suffix string, limit int) []string {
	if limit <= 0 {
		limit = 50
	}
	remaining := g.maxLength - len(prefix) - len(suffix)
	if remaining < 2 {
		return nil
	}

	seen := make(map[string]struct{}, limit)
	maxAttempts := limit * 30

	for attempts := 0; len(seen) < limit && attempts < maxAttempts; attempts++ {
		n := 2 + g.rng.Intn(min(6, remaining)-1)
		filler := g.cvWord()
		if len(filler) > n {
			filler = filler[:n]
		}

		word := prefix + filler + suffix
		if g.validator.IsValid(word) {
			seen[word] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// syllable builds onset+vowel and, half the time, a coda. Later
// syllables stick to simple vowels.
func (g *PhoneticGenerator) syllable(simple bool) string {
	onset := onsets[g.rng.Intn(len(onsets))]

	var vowel string
	if simple {
		vowel = simpleVowels[g.rng.Intn(len(simpleVowels))]
	} else {
		vowel = syllableVowels[g.rng.Intn(len(syllableVowels))]
	}

	coda := ""
	if g.rng.Float64() > 0.5 {
		coda = codas[g.rng.Intn(len(codas))]
	}

	return onset + vowel + coda
}

func (g *PhoneticGenerator) brandableWord() string {
	numSyllables := 2 + g.rng.Intn(2)
	var word string

	for i := 0; i < numSyllables; i++ {
		word += g.syllable(i > 0)
		if len(word) >= g.maxLength {
			break
		}
	}

	// Occasionally tack on a tech ending.
	if g.rng.Float64() > 0.7 && len(word) <= g.maxLength-2 {
		ending := techEndings[g.rng.Intn(len(techEndings))]
		if len(word) > 0 && strings.IndexByte("aeiou", word[len(word)-1]) >= 0 &&
			strings.IndexByte("aeiou", ending[0]) >= 0 {
			word = word[:len(word)-1]
		}
		word += ending
	}

	if len(word) > g.maxLength {
		word = word[:g.maxLength]
	}
	return word
}

func (g *PhoneticGenerator) cvWord() string {
	const cons = "bcdfghjklmnprstvwz"
	const vows = "aeiou"

	length := g.minLength
	if span := min(8, g.maxLength) - g.minLength; span > 0 {
		length += g.rng.Intn(span + 1)
	}

	startWithConsonant := g.rng.Float64() > 0.3
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if (i%2 == 0) == startWithConsonant {
			b.WriteByte(cons[g.rng.Intn(len(cons))])
		} else {
			b.WriteByte(vows[g.rng.Intn(len(vows))])
		}
	}
	return b.String()
}
