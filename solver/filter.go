package solver

import "strings"

// Filter returns the candidates consistent with every clue, in input order.
// It is a pure function: the same candidates and clues always yield the same
// result, and clue order never changes the result set.
func Filter(candidates []string, clues []Clue) []string {
	var remaining []string
Candidates:
	for _, word := range candidates {
		for _, clue := range clues {
			if !satisfies(word, clue) {
				continue Candidates
			}
		}
		remaining = append(remaining, word)
	}
	return remaining
}

// satisfies reports whether word is consistent with one clue. The Absent
// rule is occurrence-level: a letter marked Absent at any position bans it
// from the whole word, even if the same guess marks another occurrence of
// that letter Correct or Present. The canonical puzzle counts duplicates
// per-multiset instead; this matcher keeps the looser rule on purpose, so
// shared results narrow the corpus the same way players expect from the
// original bot.
func satisfies(word string, clue Clue) bool {
	for i := 0; i < WordLen; i++ {
		letter := clue.Word[i]
		switch clue.Pattern[i] {
		case Correct:
			if word[i] != letter {
				return false
			}
		case Present:
			if word[i] == letter || strings.IndexByte(word, letter) < 0 {
				return false
			}
		case Absent:
			if strings.IndexByte(word, letter) >= 0 {
				return false
			}
		}
	}
	return true
}

// Closest is the degraded-mode companion to Filter: when no candidate
// satisfies every clue, it returns the candidates satisfying the most whole
// clues, with that count. Candidates satisfying no clue at all are never
// surfaced; (nil, 0) means there is no useful guidance.
func Closest(candidates []string, clues []Clue) ([]string, int) {
	var closest []string
	best := 0
	for _, word := range candidates {
		n := 0
		for _, clue := range clues {
			if satisfies(word, clue) {
				n++
			}
		}
		switch {
		case n == 0 || n < best:
		case n > best:
			best = n
			closest = append(closest[:0], word)
		default:
			closest = append(closest, word)
		}
	}
	return closest, best
}
