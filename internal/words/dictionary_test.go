package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDictionaryEmbedded(t *testing.T) {
	dict, err := LoadDictionary("")
	if err != nil {
		t.Fatalf("failed to load embedded wordlist: %v", err)
	}

	if dict.Len() == 0 {
		t.Fatal("embedded wordlist is empty")
	}
	for _, word := range []string{"cloud", "spark", "water"} {
		if !dict.Contains(word) {
			t.Errorf("expected embedded wordlist to contain %q", word)
		}
	}
	if dict.Contains("zzzzzz") {
		t.Error("did not expect nonsense word in wordlist")
	}
}

func TestLoadDictionaryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment line\nAlpha\n\nbeta\n  gamma  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("failed to load wordlist: %v", err)
	}

	if dict.Len() != 3 {
		t.Errorf("Len() = %d, want 3", dict.Len())
	}
	if !dict.Contains("alpha") || !dict.Contains("ALPHA") {
		t.Error("expected case-insensitive lookup for 'alpha'")
	}
	if !dict.Contains("gamma") {
		t.Error("expected whitespace-trimmed word 'gamma'")
	}
	if dict.Contains("# comment line") {
		t.Error("comments should be skipped")
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary("/nonexistent/words.txt"); err == nil {
		t.Error("expected error for missing wordlist file")
	}
}

func TestWords(t *testing.T) {
	dict, err := LoadDictionary("")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(dict.Words()); got != dict.Len() {
		t.Errorf("Words() returned %d entries, want %d", got, dict.Len())
	}
}
