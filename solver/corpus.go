package solver

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:embed words.txt
var content embed.FS

// Load reads a newline-separated word list and returns the usable corpus:
// 5-letter purely alphabetic tokens, lower-cased, deduplicated, in file
// order. Anything else on a line is skipped. An empty corpus is an error;
// callers must not start up against zero candidates.
func Load(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	var words []string
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(word) != WordLen || !alphabetic(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("corpus: no usable 5-letter words")
	}
	return words, nil
}

// Embedded loads the default corpus shipped inside the binary.
func Embedded() ([]string, error) {
	b, err := content.ReadFile("words.txt")
	if err != nil {
		return nil, fmt.Errorf("embedded words.txt: %w", err)
	}
	return Load(bytes.NewReader(b))
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
