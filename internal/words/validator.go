// Package words provides word validation and the linguistic quality
// heuristics (pronounceability, spellability) that gate and score
// domain-name candidates.
package words

import (
	"regexp"
	"strings"
)

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// Consonant clusters that make a word hard to pronounce. Any hit fails
// validation outright.
var difficultClusters = []string{
	"xq", "zx", "qx", "vx", "bx", "dx", "fx", "gx", "hx", "jx", "kx", "lx",
	"mx", "nx", "px", "rx", "sx", "tx", "wx", "zq", "qz", "vq", "qv",
	"bq", "dq", "fq", "gq", "hq", "jq", "kq", "lq", "mq", "nq", "pq",
	"rq", "sq", "tq", "wq", "xhr", "xhl", "xhn", "zhr", "zhl", "zhn",
	"pfr", "pfl", "scht", "tsch", "dsch", "czk", "szc", "szcz",
}

// High-frequency English bigrams. A high ratio of these means the word
// flows like natural English.
var commonBigrams = newSet(
	"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
	"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
	"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
	"no", "ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne",
	"ea", "ra", "ce", "li", "ch", "be", "ma", "si", "om", "ur",
	"ta", "la", "el", "so", "na", "pe", "ni", "lo", "us", "ad",
	"wa", "ge", "id", "un", "op", "ow", "vi", "mo", "we", "da",
	"po", "pa", "ca", "do", "up", "ke", "go", "di", "fo", "ol",
	"oo", "ee", "ai", "ay", "ey", "oy", "ab", "ob", "ub", "ib",
	"am", "im", "um", "em", "ap", "ip", "ep", "ot", "ut", "et",
	"ag", "ig", "og", "ug", "eg", "ak", "ik", "ok", "uk", "ek",
)

// Bigrams that rarely occur in English; each occurrence is penalized
// heavily.
var awkwardBigrams = newSet(
	"aj", "ej", "ij", "oj", "uj", "bj", "cj", "dj", "fj", "gj",
	"hj", "kj", "lj", "mj", "nj", "pj", "rj", "sj", "tj", "vj",
	"wj", "xj", "yj", "zj", "jb", "jc", "jd", "jf", "jg", "jh",
	"jk", "jl", "jm", "jn", "jp", "jq", "jr", "js", "jt", "jv",
	"jw", "jx", "jy", "jz",
	"iw", "uw", "wf", "wg", "wk", "wm", "wp", "wt", "wv", "wz",
	"qa", "qe", "qi", "qo", "qy", "qb", "qc", "qd", "qf", "qg",
	"qh", "qj", "qk", "ql", "qm", "qn", "qp", "qr", "qs", "qt",
	"qv", "qw", "qx", "qz",
	"xb", "xd", "xf", "xg", "xk", "xl", "xm", "xn", "xq",
	"xr", "xs", "xv", "xw", "xz",
	"zb", "zc", "zd", "zf", "zg", "zj", "zk", "zm", "zn", "zp",
	"zq", "zr", "zs", "zt", "zv", "zw", "zx",
	"vh", "vk", "vp", "vt", "vw", "vz",
	"hk", "hm", "hp", "ht", "hv", "hw", "hz",
	"kg", "kp", "kv", "kz",
	"bk", "bp", "bv", "bz", "bg",
	"dk", "dv", "dz", "dg",
	"fv", "fz", "fg",
	"gk", "gp", "gv", "gz",
	"mk", "mv", "mz", "mg",
	"pk", "pv", "pz", "pg",
	"tk", "tv", "tz", "tg",
)

// Word-final patterns that occur in real English words. Longest match
// wins when classifying an ending.
var strongEndings = newSet(
	"le", "ly", "ty", "ry", "ny", "dy", "fy", "gy", "ky", "my", "py", "sy", "zy",
	"er", "or", "ar", "ir", "ur",
	"en", "on", "an", "in", "un",
	"ed", "es", "ds", "ps", "ks", "ns", "rs", "ls", "ms", "gs", "bs", "ts",
	"ow", "ew", "aw",
	"ay", "ey", "oy",
	"ve", "se", "te", "de", "ge", "ke", "me", "ne", "pe", "re", "ze", "ce", "be",
	"al", "el", "il", "ol", "ul",
	"ch", "ck", "ct", "dge", "ft", "gh", "ld", "lf", "lk", "lm", "ln", "lp",
	"lt", "mp", "nce", "nch", "nd", "ng", "nk", "nse", "nt", "pt", "rb",
	"rce", "rch", "rd", "rf", "rg", "rk", "rl", "rm", "rn", "rp", "rse",
	"rt", "rve", "sh", "sk", "sm", "sp", "ss", "st", "tch", "th",
	"ize", "ise", "ous", "ive", "ble", "tle", "dle", "gle", "ple", "fle",
	"ful", "less", "ness", "ment", "tion", "sion", "ing", "ling", "ting",
	"am", "em", "im", "om", "um",
	"ab", "eb", "ib", "ob", "ub",
	"ad", "id", "od", "ud",
	"ag", "eg", "ig", "og", "ug",
	"ap", "ep", "ip", "op", "up",
	"at", "et", "it", "ot", "ut",
	"ax", "ex", "ix", "ox",
	"a", "e", "i", "o", "y",
	"b", "d", "k", "l", "m", "n", "p", "r", "s", "t",
)

// Technically valid but unusual endings; slight penalty.
var weakEndings = newSet(
	"f", "g", "x", "z", "u",
	"af", "ef", "if", "of", "uf",
	"az", "ez", "iz", "oz", "uz",
	"ux",
)

// Endings that almost never close an English word.
var invalidEndings = newSet(
	"j", "q", "v", "w",
	"uj", "ij", "aj", "oj", "ej",
	"iw", "uw",
	"ww", "jj", "qq", "vv",
	"zf", "zg", "zh", "zk", "zl", "zm", "zn", "zp", "zr", "zt", "zv", "zw",
	"wf", "wg", "wk", "wl", "wm", "wn", "wp", "wr", "wt", "wv", "wz",
	"jf", "jg", "jk", "jl", "jm", "jn", "jp", "jr", "jt", "jv", "jw", "jz",
)

// Letter sequences that read as nonsense wherever they appear.
var awkwardSequences = []string{
	"wew", "zuf", "zaf", "xuf", "vuf",
	"juw", "jow", "jew", "jaw", "jiw",
	"yiy", "yuy", "yoy",
	"uvu", "ovo", "ivi",
	"iwh", "awh", "uwh",
	"oaf", "oach", "ihag",
	"froa", "ploa",
}

var offensivePatterns = []string{
	"fuck", "shit", "damn", "hell", "ass", "bitch", "cunt", "dick", "cock",
	"porn", "xxx", "sex", "nazi", "rape", "kill", "hate", "slut", "whore",
}

var morphemePatterns = []string{
	"ing", "tion", "ness", "ment", "able", "ible", "ful", "less",
	"ize", "ise", "ous", "ive", "ary", "ery", "ory", "ity",
	"pre", "pro", "con", "dis", "un", "re", "mis", "over", "under",
}

var syllableBonusPatterns = []string{
	"ing", "tion", "ness", "ment", "able", "ible", "ful",
	"less", "ize", "ise", "ous", "ive", "ary", "ery", "ory",
}

var charsetRe = regexp.MustCompile(`^[a-z]+[0-9]?$`)

func newSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

// Validator filters candidate words by length, character set, and
// pronounceability rules.
type Validator struct {
	MinLength int
	MaxLength int
}

// NewValidator returns a validator with the given length bounds.
func NewValidator(minLength, maxLength int) *Validator {
	return &Validator{MinLength: minLength, MaxLength: maxLength}
}

// DefaultValidator uses the 4..12 bounds the scorer assumes.
func DefaultValidator() *Validator {
	return NewValidator(4, 12)
}

// IsValid reports whether word passes every validation gate.
func (v *Validator) IsValid(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))

	if len(word) < v.MinLength || len(word) > v.MaxLength {
		return false
	}
	if !charsetRe.MatchString(word) {
		return false
	}
	for _, p := range offensivePatterns {
		if strings.Contains(word, p) {
			return false
		}
	}
	for _, c := range difficultClusters {
		if strings.Contains(word, c) {
			return false
		}
	}
	return isPronounceable(word)
}

func isPronounceable(word string) bool {
	if len(word) < 2 {
		return false
	}

	vowelCount := 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) {
			vowelCount++
		}
	}
	if vowelCount == 0 {
		return false
	}

	if maxRun(word, false) > 3 {
		return false
	}
	if maxRun(word, true) > 2 {
		return false
	}

	ratio := float64(vowelCount) / float64(len(word))
	return ratio >= 0.2 && ratio <= 0.7
}

// maxRun returns the longest run of vowels (wantVowel) or non-vowels.
func maxRun(word string, wantVowel bool) int {
	longest, current := 0, 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) == wantVowel {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// PronounceabilityScore rates word 0-100 using English phonotactics:
// vowel balance, consonant runs, ending quality, and bigram frequency.
func (v *Validator) PronounceabilityScore(word string) int {
	if word == "" {
		return 0
	}

	score := 100
	word = strings.ToLower(word)

	vowelCount := 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) {
			vowelCount++
		}
	}
	ratio := float64(vowelCount) / float64(len(word))
	switch {
	case ratio < 0.2 || ratio > 0.6:
		score -= 25
	case ratio < 0.3 || ratio > 0.5:
		score -= 10
	}

	maxCons := maxRun(word, false)
	if maxCons > 3 {
		score -= (maxCons - 3) * 20
	} else if maxCons > 2 {
		score -= 5
	}

	hasStrongEnding := false
	hasWeakEnding := false
	for _, n := range []int{4, 3, 2, 1} {
		if len(word) < n {
			continue
		}
		ending := word[len(word)-n:]
		if _, ok := strongEndings[ending]; ok {
			hasStrongEnding = true
			break
		}
		if _, ok := weakEndings[ending]; ok {
			hasWeakEnding = true
		}
	}

	hasInvalidEnding := false
	for _, n := range []int{3, 2, 1} {
		if len(word) < n {
			continue
		}
		if _, ok := invalidEndings[word[len(word)-n:]]; ok {
			hasInvalidEnding = true
			break
		}
	}

	awkwardSeqCount := 0
	for _, seq := range awkwardSequences {
		if strings.Contains(word, seq) {
			awkwardSeqCount++
		}
	}

	if hasInvalidEnding {
		score -= 35
	}
	if awkwardSeqCount > 0 {
		score -= 20 * awkwardSeqCount
	}
	if hasWeakEnding && !hasStrongEnding {
		score -= 15
	} else if !hasStrongEnding && !hasInvalidEnding {
		score -= 10
	}

	commonCount := 0
	awkwardCount := 0
	totalBigrams := len(word) - 1
	for i := 0; i < totalBigrams; i++ {
		bigram := word[i : i+2]
		if _, ok := commonBigrams[bigram]; ok {
			commonCount++
		}
		if _, ok := awkwardBigrams[bigram]; ok {
			awkwardCount++
		}
	}

	if totalBigrams > 0 && awkwardCount == 0 && awkwardSeqCount == 0 {
		score += int(float64(commonCount) / float64(totalBigrams) * 15)
	}
	score -= awkwardCount * 20

	// Long made-up words without recognizable morphemes are usually
	// unpronounceable; real long words carry affixes.
	if len(word) >= 8 {
		hasMorpheme := false
		for _, m := range morphemePatterns {
			if strings.Contains(word, m) {
				hasMorpheme = true
				break
			}
		}
		if !hasMorpheme && float64(commonCount) < float64(totalBigrams)*0.5 {
			score -= 15
		}
	}

	for _, p := range syllableBonusPatterns {
		if strings.Contains(word, p) {
			score += 5
		}
	}

	return clamp(score)
}

// SpellabilityScore rates 0-100 how easily the word is spelled after
// hearing it.
func (v *Validator) SpellabilityScore(word string) int {
	score := 100
	word = strings.ToLower(word)

	ambiguous := []string{"ph", "gh", "ck", "qu", "x", "c", "c"}
	for _, a := range ambiguous {
		if strings.Contains(word, a) {
			score -= 5
		}
	}

	for i := 0; i+1 < len(word); i++ {
		if word[i] == word[i+1] {
			score -= 3
		}
	}

	unusual := []string{"ei", "ie", "ough", "augh", "igh"}
	for _, u := range unusual {
		if strings.Contains(word, u) {
			score -= 8
		}
	}

	return clamp(score)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
