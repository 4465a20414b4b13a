// Package score computes weighted linguistic quality scores for domain
// names: meaning, euphony, brandability, memorability, length,
// pronounceability, and spellability, combined with a TLD multiplier.
package score

import (
	"sort"
	"strings"

	"github.com/opendomains/opendomains/internal/words"
)

// Weight names accepted in configuration.
const (
	WeightMeaning          = "meaning"
	WeightEuphony          = "euphony"
	WeightBrandability     = "brandability"
	WeightMemorability     = "memorability"
	WeightLength           = "length"
	WeightPronounceability = "pronounceability"
	WeightSpellability     = "spellability"
)

// DefaultWeights prioritize euphony and real words over raw phonetics.
var DefaultWeights = map[string]float64{
	WeightMeaning:          0.30,
	WeightEuphony:          0.20,
	WeightBrandability:     0.20,
	WeightMemorability:     0.15,
	WeightLength:           0.05,
	WeightPronounceability: 0.05,
	WeightSpellability:     0.05,
}

// DefaultTLDMultipliers boost scores for desirable TLDs. Unlisted TLDs
// get 1.0.
var DefaultTLDMultipliers = map[string]float64{
	"com":  1.5,
	"io":   1.3,
	"ai":   1.3,
	"co":   1.2,
	"app":  1.2,
	"dev":  1.2,
	"tech": 1.1,
	"net":  1.0,
	"org":  1.0,
}

var commonSuffixes = []string{
	"ify", "ize", "ise", "ly", "er", "or", "ist", "ism",
	"ing", "tion", "sion", "ness", "ment", "able", "ible",
	"ful", "less", "ous", "ive", "ary", "ery", "ory", "ity",
	"ance", "ence", "ant", "ent", "dom", "hood", "ship", "ward",
}

var commonPrefixes = []string{
	"pre", "pro", "con", "dis", "un", "re", "mis", "over", "under",
	"sub", "super", "hyper", "ultra", "mega", "multi", "auto", "bio",
	"eco", "e", "cyber", "inter", "trans", "meta", "micro", "nano", "neo",
}

// Short words that read as brands on their own or inside compounds.
var commonWords = stringSet(
	"tech", "code", "data", "sync", "link", "node", "core", "stack",
	"mesh", "cloud", "flow", "wave", "bolt", "dash", "pulse", "beam",
	"pixel", "byte", "grid", "hub", "lab", "kit", "box", "pad", "dock",
	"scope", "gate", "base", "forge", "hive", "nest", "port", "vault",
	"zone", "net", "web", "app", "site", "page", "feed", "chat", "bot",
	"make", "build", "ship", "grow", "push", "pull", "snap", "flip",
	"zoom", "rush", "jump", "leap", "shift", "spark", "flash", "blast",
	"boost", "launch", "drive", "craft", "mint", "cast", "spin",
	"run", "go", "fly", "rise", "lift", "drop", "pick", "choose",
	"take", "give", "get", "set", "fix", "mix", "blend", "join", "meet",
	"swift", "bright", "clear", "fast", "quick", "smart", "sharp", "bold",
	"pure", "prime", "ultra", "mega", "super", "hyper", "omni", "multi",
	"flex", "open", "free", "easy", "simple", "next", "new", "true",
	"deep", "high", "wide", "grand", "royal", "top", "best",
	"sun", "moon", "star", "sky", "wind", "fire", "ice", "storm",
	"rain", "snow", "leaf", "tree", "rock", "stone", "river", "ocean",
	"peak", "hill", "vale", "field", "lake", "bay", "dawn", "dusk",
	"mind", "soul", "spirit", "dream", "vision", "quest", "path", "way",
	"light", "dark", "time", "space", "void", "edge", "apex", "root",
	"seed", "idea", "notion", "thought", "sense", "glow",
	"ace", "jet", "red", "blue", "green", "gold", "silver",
	"key", "lock", "door", "map", "guide", "tour", "trip", "ride",
	"shop", "store", "trade", "sale", "deal", "buy", "sell", "bid",
	"cash", "pay", "bank", "coin", "fund", "cap", "share", "stock",
)

// Short words recognized when looking for real-word substrings in
// otherwise made-up candidates.
var compoundWords = stringSet(
	"code", "data", "sync", "link", "node", "core", "stack", "mesh",
	"cloud", "flow", "wave", "bolt", "dash", "pulse", "beam", "pixel",
	"byte", "grid", "hub", "lab", "kit", "box", "pad", "dock", "scope",
	"gate", "base", "forge", "hive", "nest", "port", "vault", "zone",
	"tech", "soft", "hard", "ware", "app", "web", "net", "sys",
	"make", "build", "ship", "grow", "push", "pull", "snap", "flip",
	"zoom", "rush", "jump", "leap", "shift", "spark", "flash", "blast",
	"boost", "launch", "drive", "craft", "mint", "cast", "spin",
	"swift", "bright", "clear", "fast", "quick", "smart", "sharp", "bold",
	"pure", "prime", "ultra", "mega", "super", "flex", "open", "free",
	"easy", "simple", "next", "new", "true", "deep", "high", "wide",
	"sun", "moon", "star", "sky", "wind", "fire", "ice", "storm",
	"rain", "snow", "leaf", "tree", "rock", "stone", "river", "ocean",
	"peak", "hill", "vale",
	"mind", "soul", "dream", "vision", "quest", "path", "way", "light",
	"dark", "time", "space", "void", "edge", "apex", "root", "seed",
	"go", "run", "fly", "rise", "lift", "drop", "top", "best", "ace",
	"key", "lock", "map", "guide", "tour", "trip", "ride", "shop",
	"bit", "dot", "pin", "tap", "tag", "cut", "fix", "mix", "fit",
	"set", "get", "let", "put", "bet", "win", "hit", "hot", "cool",
	"warm", "cold", "big", "small", "long", "short", "narrow",
	"pay", "cash", "bank", "fund", "cap", "trade", "deal", "sale",
	"store", "mart", "post", "mail", "send", "order",
	"book", "list", "note", "word", "text", "file", "save", "load",
)

var techMorphemes = []string{
	"tech", "soft", "ware", "byte", "bit", "data", "code", "app", "web",
	"net", "cyber", "digit", "pixel", "bot", "auto", "smart", "intelli",
	"logic", "algo", "cloud", "sync", "link", "node", "hub", "grid",
}

var actionMorphemes = []string{
	"go", "run", "do", "make", "get", "set", "fix", "move", "flow",
	"push", "pull", "drive", "ride", "fly", "jump", "leap", "rise",
	"boost", "lift", "grow", "build", "craft", "forge", "spin",
}

// Greek and Latin morphemes that read as sophisticated.
var greekLatinMorphemes = []string{
	"anti", "auto", "bio", "chrono", "crypto", "cyber", "dyna", "eco",
	"electro", "geo", "hyper", "meta", "micro", "mono", "multi", "neo",
	"omni", "pan", "para", "photo", "poly", "proto", "pseudo", "psycho",
	"quasi", "retro", "semi", "syn", "tele", "trans", "ultra", "uni",
	"aero", "aqua", "arch", "astra", "astro", "audio", "cardi", "centric",
	"chrom", "cogn", "cosm", "crat", "crypt", "cycl", "demo", "derm",
	"dict", "dox", "duc", "dynam", "endo", "erg", "eth", "ethos", "eu",
	"flux", "form", "fract", "gen", "glyph", "gnos", "graph", "grav",
	"helio", "hemi", "hetero", "homo", "hydro", "iso", "kine", "lith",
	"log", "logos", "luc", "lum", "luna", "magn", "manu", "mech", "morph",
	"naut", "nav", "necro", "neur", "nom", "nova", "nox", "ocul", "onym",
	"opt", "ora", "orth", "path", "ped", "pend", "phil", "phon", "phor",
	"phot", "phys", "plex", "polis", "port", "pos", "prim", "pyr", "quant",
	"radi", "rupt", "scop", "scrib", "sect", "sens", "sol", "soph", "spec",
	"spect", "spir", "stat", "stell", "struct", "tact", "techn", "temp",
	"terra", "therm", "thesis", "trop", "typ", "umbr", "vac", "val", "ven",
	"ver", "vid", "vis", "vit", "voc", "vol", "xen", "zer", "zo",
	"tion", "sion", "ism", "ist", "ity", "ous", "ive", "ary", "ory",
	"ment", "ness", "able", "ible", "ful", "less", "ward", "wise",
	"oid", "esque", "ine", "ene", "ase", "ose", "ule", "cule",
	"ia", "io", "ium", "ius", "us", "um", "is", "ix", "ex", "ax", "ox",
	"al", "el", "il", "ol", "ul", "ar", "er", "ir", "or", "ur",
	"an", "en", "in", "on", "un", "ic", "ac", "tic", "nic",
	"ent", "ant", "ence", "ance", "ency", "ancy",
	"phr", "chr", "sph", "nth", "mph", "nch", "rch", "lch",
}

// Letter combinations that sound pleasing.
var euphonicPatterns = []string{
	"ela", "elo", "eli", "ila", "ilo", "ola", "ula", "ulo",
	"ara", "era", "ira", "ora", "ura", "ari", "eri", "ori", "uri",
	"ana", "ena", "ina", "ona", "una", "ani", "eni", "ini", "oni",
	"ata", "eta", "ita", "ota", "uta", "ati", "eti", "iti", "oti",
	"ia", "io", "eo", "ea", "ae", "ei", "ie",
	"le", "la", "li", "lo", "lu", "ly",
	"re", "ra", "ri", "ro", "ru", "ry",
	"ma", "me", "mi", "mo", "mu", "my",
	"na", "ne", "ni", "no", "nu", "ny",
	"sa", "se", "si", "so", "su", "sy",
	"za", "ze", "zi", "zo", "zu", "zy",
	"ba", "be", "bi", "bo", "bu", "by",
	"da", "de", "di", "do", "du", "dy",
	"ga", "ge", "gi", "go", "gu", "gy",
	"ven", "vin", "van", "vel", "val", "vol",
	"zen", "zan", "zin", "zel", "zal", "zol",
	"pher", "ther", "spher", "chron", "tron",
}

var harshClusters = []string{
	"kg", "gk", "dk", "kd", "bp", "pb", "kp", "pk",
	"tg", "gt", "dt", "td", "xb", "bx", "xc", "cx",
}

var natureWords = []string{
	"sun", "moon", "star", "sky", "wind", "fire", "ice",
	"storm", "rain", "snow", "leaf", "tree", "rock", "stone",
	"river", "ocean", "wave", "peak", "hill", "dawn", "dusk",
	"cloud", "spark", "glow", "beam", "light", "flash",
}

func stringSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Score is the full breakdown for one domain.
type Score struct {
	Domain           string  `json:"domain"`
	Total            float64 `json:"total_score"`
	Pronounceability int     `json:"pronounceability"`
	Spellability     int     `json:"spellability"`
	Length           int     `json:"length"`
	Memorability     int     `json:"memorability"`
	Brandability     int     `json:"brandability"`
	Euphony          int     `json:"euphony"`
	Meaning          int     `json:"meaning"`
	TLDMultiplier    float64 `json:"tld_multiplier"`
}

// Scorer scores domains by brandability and meaning.
type Scorer struct {
	weights        map[string]float64
	tldMultipliers map[string]float64
	validator      *words.Validator
	dict           *words.Dictionary
}

// Option customizes a Scorer.
type Option func(*Scorer)

// WithWeights replaces the default weight table.
func WithWeights(w map[string]float64) Option {
	return func(s *Scorer) {
		if len(w) > 0 {
			s.weights = w
		}
	}
}

// WithTLDMultipliers replaces the default TLD multiplier table.
func WithTLDMultipliers(m map[string]float64) Option {
	return func(s *Scorer) {
		if len(m) > 0 {
			s.tldMultipliers = m
		}
	}
}

// New creates a Scorer backed by the given dictionary.
func New(dict *words.Dictionary, opts ...Option) *Scorer {
	s := &Scorer{
		weights:        DefaultWeights,
		tldMultipliers: DefaultTLDMultipliers,
		validator:      words.DefaultValidator(),
		dict:           dict,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SplitDomain separates "word.tld" into its parts. Domains without a
// dot yield an empty TLD.
func SplitDomain(domain string) (word, tld string) {
	parts := strings.Split(strings.ToLower(domain), ".")
	if len(parts) >= 2 {
		return parts[0], parts[len(parts)-1]
	}
	return strings.ToLower(domain), ""
}

// Score computes the full breakdown for one domain.
func (s *Scorer) Score(domain string) Score {
	word, tld := SplitDomain(domain)

	sc := Score{
		Domain:           domain,
		Pronounceability: s.validator.PronounceabilityScore(word),
		Spellability:     s.validator.SpellabilityScore(word),
		Length:           scoreLength(word),
		Memorability:     s.scoreMemorability(word),
		Brandability:     s.scoreBrandability(word),
		Euphony:          s.scoreEuphony(word),
		Meaning:          s.scoreMeaning(word),
	}

	raw := float64(sc.Pronounceability)*s.weights[WeightPronounceability] +
		float64(sc.Spellability)*s.weights[WeightSpellability] +
		float64(sc.Length)*s.weights[WeightLength] +
		float64(sc.Memorability)*s.weights[WeightMemorability] +
		float64(sc.Brandability)*s.weights[WeightBrandability] +
		float64(sc.Euphony)*s.weights[WeightEuphony] +
		float64(sc.Meaning)*s.weights[WeightMeaning]

	sc.TLDMultiplier = 1.0
	if m, ok := s.tldMultipliers[tld]; ok {
		sc.TLDMultiplier = m
	}
	sc.Total = raw * sc.TLDMultiplier

	return sc
}

// ScoreBatch scores multiple domains.
func (s *Scorer) ScoreBatch(domains []string) []Score {
	scores := make([]Score, 0, len(domains))
	for _, d := range domains {
		scores = append(scores, s.Score(d))
	}
	return scores
}

// Rank scores domains, drops those below minScore, and sorts the rest
// by total score descending.
func (s *Scorer) Rank(domains []string, minScore float64) []Score {
	scores := s.ScoreBatch(domains)
	filtered := scores[:0]
	for _, sc := range scores {
		if sc.Total >= minScore {
			filtered = append(filtered, sc)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Total > filtered[j].Total
	})
	return filtered
}

func (s *Scorer) isKnownWord(word string) bool {
	if s.dict != nil && s.dict.Contains(word) {
		return true
	}
	_, ok := commonWords[word]
	return ok
}

// isCompound reports whether word splits into two recognizable parts.
// Both parts must be at least 3 chars; dictionary parts need 4+ chars
// unless they are in the common word set.
func (s *Scorer) isCompound(word string) bool {
	for split := 3; split <= len(word)-3; split++ {
		first, second := word[:split], word[split:]
		if s.isCompoundPart(first) && s.isCompoundPart(second) {
			return true
		}
	}
	return false
}

func (s *Scorer) isCompoundPart(part string) bool {
	if _, ok := commonWords[part]; ok {
		return true
	}
	return len(part) >= 4 && s.dict != nil && s.dict.Contains(part)
}

// isGibberish detects random-syllable words with no recognizable parts.
func (s *Scorer) isGibberish(word string) bool {
	word = strings.ToLower(word)

	hasWordSubstring := false
	for i := 0; i+4 <= len(word); i++ {
		sub := word[i : i+4]
		if (s.dict != nil && s.dict.Contains(sub)) || setContains(compoundWords, sub) {
			hasWordSubstring = true
			break
		}
	}

	hasMorpheme := containsAny(word, commonSuffixes) || containsAny(word, commonPrefixes)
	if hasWordSubstring || hasMorpheme {
		return false
	}

	// Simple alternating CV pattern with no real words reads as
	// gibberish.
	if len(word) >= 5 {
		alternating := 0
		for i := 0; i+3 <= len(word); i++ {
			pattern := cvPattern(word[i : i+3])
			if pattern == "cvc" || pattern == "vcv" {
				alternating++
			}
		}
		if alternating >= len(word)/2 {
			return true
		}
	}

	return false
}

// scoreMeaning rates how much real-word meaning the candidate carries:
// 100 exact word, 85 compound, 70 affixed root, 50 embedded word, 20
// bare morphemes, 0 gibberish.
func (s *Scorer) scoreMeaning(word string) int {
	word = strings.ToLower(word)

	if s.isKnownWord(word) {
		return 100
	}
	if s.isCompound(word) {
		return 85
	}

	for _, suffix := range commonSuffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+3 {
			root := word[:len(word)-len(suffix)]
			if len(root) >= 3 && s.isKnownWord(root) {
				return 70
			}
		}
	}
	for _, prefix := range commonPrefixes {
		if strings.HasPrefix(word, prefix) && len(word) > len(prefix)+3 {
			root := word[len(prefix):]
			if len(root) >= 3 && s.isKnownWord(root) {
				return 70
			}
		}
	}

	if len(word) >= 6 {
		for i := 0; i+4 <= len(word); i++ {
			if s.isKnownWord(word[i : i+4]) {
				return 50
			}
			if i+5 <= len(word) && s.isKnownWord(word[i:i+5]) {
				return 50
			}
		}
	}

	if containsAny(word, commonSuffixes) || containsAny(word, commonPrefixes) {
		return 20
	}

	return 0
}

// scoreBrandability starts at 40 and rewards real words, tech and
// action associations, strong openings, and pleasant endings.
func (s *Scorer) scoreBrandability(word string) int {
	word = strings.ToLower(word)
	result := 40

	if s.isGibberish(word) {
		result -= 20
	}
	if s.isKnownWord(word) || s.isCompound(word) {
		result += 20
	}
	if containsAny(word, techMorphemes) {
		result += 15
	}
	if containsAny(word, actionMorphemes) || containsAny(word, commonSuffixes) {
		result += 10
	}
	if len(word) > 0 && strings.IndexByte("bcdfgklmpstvz", word[0]) >= 0 {
		result += 10
	}

	if len(word) > 0 {
		last := word[len(word)-1]
		pleasantEndings := []string{"ly", "er", "le", "ia", "io"}
		if strings.IndexByte("aeiouy", last) >= 0 {
			result += 10
		} else if hasAnySuffix(word, pleasantEndings) {
			result += 10
		}
	}

	// Many rare bigrams make the word hard to say in a sentence.
	awkward := 0
	const flowingText = "thheinreatondstionelngshar"
	for i := 0; i+2 <= len(word); i++ {
		if !strings.Contains(flowingText, word[i:i+2]) {
			awkward++
		}
	}
	if awkward > len(word)/2 {
		result -= 10
	}

	return clamp(result)
}

// scoreMemorability starts at 30 and favors real words, compounds, and
// imagery-evoking nature words.
func (s *Scorer) scoreMemorability(word string) int {
	word = strings.ToLower(word)
	result := 30

	inDict := s.dict != nil && s.dict.Contains(word)
	compound := !inDict && s.isCompound(word)

	if inDict {
		result += 40
	}
	if compound {
		result += 30
	}
	if containsAny(word, natureWords) {
		result += 20
	}
	if len(word) >= 4 && len(word) <= 6 {
		result += 15
	}

	if s.isGibberish(word) {
		result -= 30
	} else if !inDict && !setContains(commonWords, word) && !compound {
		result -= 20
	}

	return clamp(result)
}

// scoreLength follows the length curve tuned for euphonious names:
// 4-7 chars is ideal, very short or very long is penalized.
func scoreLength(word string) int {
	n := len(word)
	switch {
	case n >= 4 && n <= 7:
		return 100
	case n == 8 || n == 9:
		return 90
	case n == 10:
		return 80
	case n >= 11 && n <= 12:
		return 70
	case n < 4:
		return 50
	default:
		return 40
	}
}

// scoreEuphony rates pleasant sound and morpheme quality, starting at
// a neutral 50.
func (s *Scorer) scoreEuphony(word string) int {
	word = strings.ToLower(word)
	result := 50

	morphemeCount := 0
	for _, m := range greekLatinMorphemes {
		if strings.Contains(word, m) {
			morphemeCount++
		}
	}
	result += min(30, morphemeCount*5)

	patternCount := 0
	for _, p := range euphonicPatterns {
		if strings.Contains(word, p) {
			patternCount++
		}
	}
	result += min(20, patternCount*3)

	// Good flow: most adjacent pairs alternate vowel/consonant. Only
	// rewarded when at least one morpheme anchors the word.
	if len(word) > 1 {
		alternations := 0
		for i := 0; i+1 < len(word); i++ {
			if isVowelByte(word[i]) != isVowelByte(word[i+1]) {
				alternations++
			}
		}
		if float64(alternations)/float64(len(word)-1) > 0.6 && morphemeCount > 0 {
			result += 10
		}
	}

	pleasantEndings := []string{
		"a", "e", "i", "o", "u", "y",
		"ly", "er", "le", "ia", "io", "us", "um", "is",
	}
	if hasAnySuffix(word, pleasantEndings) {
		result += 10
	}

	harshCount := 0
	for _, c := range harshClusters {
		if strings.Contains(word, c) {
			harshCount++
		}
	}
	result -= min(20, harshCount*20)

	if s.isGibberish(word) && morphemeCount == 0 {
		result -= 30
	}

	// Pure alternating CV with no morphemes catches words like
	// "bebade" that slip past the gibberish check.
	if morphemeCount == 0 {
		pattern := cvPattern(word)
		if strings.Contains(pattern, "cvcvcv") || strings.Contains(pattern, "vcvcvc") {
			result -= 20
		}
	}

	return clamp(result)
}

func cvPattern(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		if isVowelByte(word[i]) {
			b.WriteByte('v')
		} else {
			b.WriteByte('c')
		}
	}
	return b.String()
}

func isVowelByte(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}

func containsAny(word string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(word, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func setContains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
