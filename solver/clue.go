// Package solver narrows a five-letter word corpus using reported puzzle
// feedback and recommends the next guess.
package solver

// WordLen is the puzzle's word length.
const WordLen = 5

// Color is the per-position feedback reported for one letter of a guess.
type Color int

const (
	// Absent: the letter is not in the word.
	Absent Color = iota
	// Present: the letter is in the word, at a different position.
	Present
	// Correct: the letter is in the word at this position.
	Correct
)

// Pattern is the feedback for a whole guess, one Color per position.
type Pattern [WordLen]Color

// Clue is one reported guess outcome: the attempted word and its feedback.
// Word is always lower-case ASCII of length WordLen.
type Clue struct {
	Word    string
	Pattern Pattern
}
