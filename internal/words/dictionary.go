package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed wordlist.txt
var embeddedWordlist []byte

// Dictionary is a lowercase English word set shared by the dictionary
// generator and the scorer.
type Dictionary struct {
	words map[string]struct{}
}

// LoadDictionary reads a wordlist file (one word per line, # comments
// allowed). If path is empty the embedded wordlist is used.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return parseWordlist(bytes.NewReader(embeddedWordlist))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist %s: %w", path, err)
	}
	defer f.Close()

	return parseWordlist(f)
}

func parseWordlist(r interface{ Read([]byte) (int, error) }) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	return d, nil
}

// Contains reports whether word (case-insensitive) is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words loaded.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns all words in the dictionary, in map order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	return out
}
