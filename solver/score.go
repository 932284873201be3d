package solver

import "sort"

// The scorer favors words whose letters appear in many remaining candidates:
// confirming or eliminating common letters splits the candidate set widely.
// It is a frequency heuristic, not an information-gain computation; over the
// handful of guesses a puzzle allows, the difference rarely matters and the
// heuristic is linear in the candidate count.

// Scored pairs a candidate with its letter-frequency score.
type Scored struct {
	Word  string
	Score int
}

// LetterCounts returns, per letter, the number of candidates containing it
// at least once. A letter repeated within one word is counted once.
func LetterCounts(candidates []string) map[byte]int {
	counts := make(map[byte]int)
	for _, word := range candidates {
		var seen [26]bool
		for i := 0; i < len(word); i++ {
			letter := word[i]
			if seen[letter-'a'] {
				continue
			}
			seen[letter-'a'] = true
			counts[letter]++
		}
	}
	return counts
}

// Score sums the per-letter counts over the word's distinct letters.
func Score(word string, counts map[byte]int) int {
	total := 0
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		letter := word[i]
		if seen[letter-'a'] {
			continue
		}
		seen[letter-'a'] = true
		total += counts[letter]
	}
	return total
}

// Rank orders candidates by descending score. Ties keep input order, so the
// ranking is deterministic for a given candidate slice.
func Rank(candidates []string) []Scored {
	counts := LetterCounts(candidates)
	ranked := make([]Scored, len(candidates))
	for i, word := range candidates {
		ranked[i] = Scored{Word: word, Score: Score(word, counts)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BestGuess picks the top-ranked candidate. A single candidate is returned
// as-is without scoring; ok is false only for an empty candidate set.
func BestGuess(candidates []string) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}
	return Rank(candidates)[0].Word, true
}
