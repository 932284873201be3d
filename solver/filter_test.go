package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()
	corpus := []string{"crane", "crate", "grace", "trace"}
	clue := Clue{
		Word:    "brace",
		Pattern: Pattern{Absent, Correct, Correct, Correct, Correct},
	}
	require.Equal(t, []string{"grace", "trace"}, Filter(corpus, []Clue{clue}))
}

func TestFilterLamarScenario(t *testing.T) {
	t.Parallel()
	// Present at position 0 requires an 'l' elsewhere, knocking out "lamar"
	// and "lemma" ('l' at 0) and "fairy" (no 'l' at all); "cliff" then fails
	// Correct 'a' at position 1. Nothing survives.
	corpus := []string{"lamar", "fairy", "cliff", "lemma"}
	clue := Clue{
		Word:    "lamar",
		Pattern: Pattern{Present, Correct, Absent, Absent, Present},
	}
	require.Empty(t, Filter(corpus, []Clue{clue}))
}

// A letter marked Absent anywhere in a clue bans it from the whole word,
// even when the same guess marks another occurrence of that letter Correct.
// The canonical puzzle scores duplicates per remaining count and would keep
// "apple" here; this filter intentionally reproduces the looser
// occurrence-level rule instead.
func TestFilterOccurrenceLevelAbsent(t *testing.T) {
	t.Parallel()
	clue := Clue{
		Word:    "alpha",
		Pattern: Pattern{Correct, Present, Correct, Absent, Absent},
	}
	require.Empty(t, Filter([]string{"apple"}, []Clue{clue}))
}

func TestFilterSelfConsistency(t *testing.T) {
	t.Parallel()
	// Marking Correct where the letters line up and Absent elsewhere keeps
	// the word itself, as long as the guess's missed letters really are
	// missing from the word.
	cases := []struct{ guess, word string }{
		{"storm", "stove"},
		{"crane", "crush"},
		{"fuzzy", "moist"},
		{"light", "light"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.guess+"/"+tc.word, func(t *testing.T) {
			t.Parallel()
			clue := Clue{Word: tc.guess}
			for i := 0; i < WordLen; i++ {
				if tc.word[i] == tc.guess[i] {
					clue.Pattern[i] = Correct
				}
			}
			require.Equal(t, []string{tc.word}, Filter([]string{tc.word}, []Clue{clue}))
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	t.Parallel()
	corpus := []string{"crane", "crate", "grace", "trace", "moist", "light"}
	clues := []Clue{
		{Word: "brace", Pattern: Pattern{Absent, Correct, Correct, Correct, Correct}},
	}
	once := Filter(corpus, clues)
	require.Equal(t, once, Filter(once, clues))
}

func TestFilterClueOrderIndependent(t *testing.T) {
	t.Parallel()
	corpus := []string{"crane", "crate", "grace", "trace", "moist", "light"}
	a := Clue{Word: "brace", Pattern: Pattern{Absent, Correct, Correct, Correct, Correct}}
	b := Clue{Word: "fuzzy", Pattern: Pattern{Absent, Absent, Absent, Absent, Absent}}
	require.Equal(t,
		Filter(corpus, []Clue{a, b}),
		Filter(corpus, []Clue{b, a}))
}

func TestFilterNoClues(t *testing.T) {
	t.Parallel()
	corpus := []string{"crane", "moist"}
	require.Equal(t, corpus, Filter(corpus, nil))
}

func TestClosest(t *testing.T) {
	t.Parallel()
	corpus := []string{"crane", "slate", "moist"}
	all := Pattern{Correct, Correct, Correct, Correct, Correct}
	clues := []Clue{
		{Word: "crane", Pattern: all},
		{Word: "slate", Pattern: all},
	}
	// The clues contradict each other; no word survives both, but "crane"
	// and "slate" each satisfy one.
	require.Empty(t, Filter(corpus, clues))
	closest, satisfied := Closest(corpus, clues)
	require.Equal(t, []string{"crane", "slate"}, closest)
	require.Equal(t, 1, satisfied)
}

func TestClosestNoGuidance(t *testing.T) {
	t.Parallel()
	clues := []Clue{
		{Word: "crane", Pattern: Pattern{Correct, Correct, Correct, Correct, Correct}},
	}
	closest, satisfied := Closest([]string{"moist"}, clues)
	require.Empty(t, closest)
	require.Zero(t, satisfied)
}
