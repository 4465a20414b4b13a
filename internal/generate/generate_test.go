package generate

import (
	"sort"
	"strings"
	"testing"

	"github.com/opendomains/opendomains/internal/words"
)

func testDictionary(t *testing.T) *words.Dictionary {
	t.Helper()
	dict, err := words.LoadDictionary("")
	if err != nil {
		t.Fatalf("failed to load dictionary: %v", err)
	}
	return dict
}

func assertAllValid(t *testing.T, candidates []string, v *words.Validator) {
	t.Helper()
	for _, w := range candidates {
		if !v.IsValid(w) {
			t.Errorf("generator emitted invalid word %q", w)
		}
	}
}

func TestDictionaryGenerate(t *testing.T) {
	g := NewDictionaryGenerator(testDictionary(t), 4, 8)

	candidates := g.Generate(50)
	if len(candidates) == 0 {
		t.Fatal("expected dictionary candidates")
	}
	if len(candidates) > 50 {
		t.Errorf("limit not applied: got %d", len(candidates))
	}
	assertAllValid(t, candidates, words.NewValidator(4, 8))

	// Shortest first, then lexical.
	for i := 1; i < len(candidates); i++ {
		a, b := candidates[i-1], candidates[i]
		if len(a) > len(b) || (len(a) == len(b) && a > b) {
			t.Errorf("ordering violated: %q before %q", a, b)
		}
	}
}

func TestDictionaryGenerateNoLimit(t *testing.T) {
	g := NewDictionaryGenerator(testDictionary(t), 4, 10)

	all := g.Generate(0)
	limited := g.Generate(10)
	if len(all) <= len(limited) {
		t.Errorf("limit 0 should return everything: all=%d limited=%d", len(all), len(limited))
	}
}

func TestGenerateCurated(t *testing.T) {
	g := NewDictionaryGenerator(testDictionary(t), 4, 10)

	curated := g.GenerateCurated()
	if len(curated) == 0 {
		t.Fatal("expected curated candidates")
	}
	if !sort.StringsAreSorted(curated) {
		t.Error("curated output not sorted")
	}

	seen := make(map[string]struct{})
	for _, w := range curated {
		if _, dup := seen[w]; dup {
			t.Errorf("duplicate curated word %q", w)
		}
		seen[w] = struct{}{}
	}
	if _, ok := seen["cloud"]; !ok {
		t.Error("expected 'cloud' in curated set")
	}
	if _, ok := seen["zen"]; ok {
		t.Error("'zen' is below the min length and should be filtered")
	}
}

func TestGenerateWithAffixes(t *testing.T) {
	g := NewDictionaryGenerator(testDictionary(t), 4, 10)

	out := g.GenerateWithAffixes([]string{"spark"})
	if len(out) < 2 {
		t.Fatalf("expected base plus affixed variants, got %v", out)
	}

	hasBase, hasAffixed := false, false
	for _, w := range out {
		if w == "spark" {
			hasBase = true
		} else if strings.Contains(w, "spark") {
			hasAffixed = true
		}
	}
	if !hasBase || !hasAffixed {
		t.Errorf("expected base and affixed forms of 'spark' in %v", out)
	}
	assertAllValid(t, out, words.NewValidator(4, 10))
}

func TestPhoneticGenerateDeterministic(t *testing.T) {
	a := NewPhoneticGenerator(4, 8, 42).Generate(30)
	b := NewPhoneticGenerator(4, 8, 42).Generate(30)

	if len(a) == 0 {
		t.Fatal("expected phonetic candidates")
	}
	if len(a) != len(b) {
		t.Fatalf("same seed produced different counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same seed diverged at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestPhoneticGenerateValidAndBounded(t *testing.T) {
	g := NewPhoneticGenerator(4, 8, 7)

	candidates := g.Generate(40)
	if len(candidates) > 40 {
		t.Errorf("limit not applied: got %d", len(candidates))
	}
	assertAllValid(t, candidates, words.NewValidator(4, 8))
	for _, w := range candidates {
		if len(w) < 4 || len(w) > 8 {
			t.Errorf("word %q outside length bounds", w)
		}
	}
}

func TestPhoneticGenerateWithPrefix(t *testing.T) {
	g := NewPhoneticGenerator(4, 10, 42)

	candidates := g.GenerateWithPrefix("dev", 20)
	for _, w := range candidates {
		if !strings.HasPrefix(w, "dev") {
			t.Errorf("word %q missing prefix", w)
		}
		if len(w) > 10 {
			t.Errorf("word %q exceeds max length", w)
		}
	}
}

func TestPhoneticGenerateWithSuffix(t *testing.T) {
	g := NewPhoneticGenerator(4, 10, 42)

	candidates := g.GenerateWithSuffix("ly", 20)
	for _, w := range candidates {
		if !strings.HasSuffix(w, "ly") {
			t.Errorf("word %q missing suffix", w)
		}
	}
}

func TestPhoneticAffixTooLong(t *testing.T) {
	g := NewPhoneticGenerator(4, 6, 42)

	if out := g.GenerateWithPrefix("toolong", 10); out != nil {
		t.Errorf("expected nil when prefix leaves no room, got %v", out)
	}
}

func TestCompoundGenerate(t *testing.T) {
	g := NewCompoundGenerator(12)

	candidates := g.Generate(0)
	if len(candidates) == 0 {
		t.Fatal("expected compound candidates")
	}
	assertAllValid(t, candidates, words.NewValidator(4, 12))
	if !sort.StringsAreSorted(candidates) {
		t.Error("compound output not sorted")
	}
}

func TestCompoundGenerateCustom(t *testing.T) {
	g := NewCompoundGenerator(12)

	out := g.GenerateCustom([]string{"bold"}, []string{"app"})
	if len(out) != 1 || out[0] != "boldapp" {
		t.Errorf("GenerateCustom = %v, want [boldapp]", out)
	}

	// Triple consonant pileup at the junction is rejected.
	if out := g.GenerateCustom([]string{"sharp"}, []string{"gate"}); len(out) != 0 {
		t.Errorf("expected 'rp'+'g' junction to be rejected, got %v", out)
	}
}

func TestPortmanteau(t *testing.T) {
	g := NewCompoundGenerator(12)

	blends := g.Portmanteau("cloud", "dome")
	for _, w := range blends {
		if !strings.HasPrefix(w, "c") {
			t.Errorf("blend %q should start with the first word's head", w)
		}
	}

	// Overlap merge: "cloud" ends with "d", "dome" starts with "d".
	found := false
	for _, w := range blends {
		if w == "cloudome" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected overlap blend 'cloudome' in %v", blends)
	}
}

func TestMerge(t *testing.T) {
	out := Merge([]string{"beta", "alpha"}, []string{"beta", "gamma"}, nil)

	want := []string{"alpha", "beta", "gamma"}
	if len(out) != len(want) {
		t.Fatalf("Merge = %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Merge[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}
