package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLetterCounts(t *testing.T) {
	t.Parallel()
	counts := LetterCounts([]string{"stale", "slate", "crane"})
	require.Equal(t, map[byte]int{
		's': 2, 't': 2, 'a': 3, 'l': 2, 'e': 3,
		'c': 1, 'r': 1, 'n': 1,
	}, counts)
}

func TestLetterCountsRepeatedLetter(t *testing.T) {
	t.Parallel()
	// "lemma" contains 'm' twice but contributes it once.
	require.Equal(t, map[byte]int{'l': 1, 'e': 1, 'm': 1, 'a': 1},
		LetterCounts([]string{"lemma"}))
}

func TestScoreDistinctLettersOnly(t *testing.T) {
	t.Parallel()
	counts := map[byte]int{'l': 4, 'e': 3, 'm': 2, 'a': 1}
	// l + e + m + a, with the repeated 'm' counted once.
	require.Equal(t, 10, Score("lemma", counts))
}

func TestRank(t *testing.T) {
	t.Parallel()
	candidates := []string{"stale", "slate", "crane"}
	ranked := Rank(candidates)
	require.Equal(t, []Scored{
		{Word: "stale", Score: 12},
		{Word: "slate", Score: 12},
		{Word: "crane", Score: 9},
	}, ranked)
	// Deterministic: same candidates, same ordering, every time.
	require.Equal(t, ranked, Rank(candidates))
}

func TestBestGuess(t *testing.T) {
	t.Parallel()
	_, ok := BestGuess(nil)
	require.False(t, ok)

	// A lone candidate comes back as-is, skipping the scorer.
	word, ok := BestGuess([]string{"fuzzy"})
	require.True(t, ok)
	require.Equal(t, "fuzzy", word)

	word, ok = BestGuess([]string{"stale", "slate", "crane"})
	require.True(t, ok)
	require.Equal(t, "stale", word)
}
