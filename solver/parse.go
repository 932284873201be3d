package solver

import (
	"regexp"
	"strings"
	"unicode"
)

// The puzzle's share sheet has produced three encodings over time. Each is
// matched by an independent strategy; ParseLine tries them newest-first so
// a line matching more than one shape resolves deterministically.
//
//	🟨 🟩 🟥 🟥 🟨 𝗟𝗔𝗠𝗔𝗥      styled: glyphs then math sans-serif bold caps
//	🟨 🟩 🟥 🟥 🟨 **LAMAR**   markup: glyphs then **WORD**
//	GUESS 🟥🟨🟩🟥🟥            legacy: word then 5 contiguous glyphs
var (
	styledRE = regexp.MustCompile(`((?:[🟥🟨🟩]\s*){5})([𝗔-𝗭]{5})`)
	markupRE = regexp.MustCompile(`(?:[🟥🟨🟩]\s*){5}\*\*([a-zA-Z]{5})\*\*`)
	legacyRE = regexp.MustCompile(`([a-zA-Z]{5})\s*([🟥🟨🟩]{5})`)
)

var glyphColors = map[rune]Color{
	'🟥': Absent,
	'🟨': Present,
	'🟩': Correct,
}

// ParseLine extracts a clue from one line of text, trying the styled, markup
// and legacy encodings in that order. A line matching none of them is not an
// error; ok is false and the line is simply not a clue.
func ParseLine(line string) (Clue, bool) {
	for _, match := range []func(string) (Clue, bool){matchStyled, matchMarkup, matchLegacy} {
		if clue, ok := match(line); ok {
			return clue, ok
		}
	}
	return Clue{}, false
}

// ParseBatch extracts clues from a multi-line message, in line order.
// Blank lines and lines that parse as nothing are dropped silently so that
// guesses can be pasted along with surrounding chatter.
func ParseBatch(text string) []Clue {
	var clues []Clue
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if clue, ok := ParseLine(line); ok {
			clues = append(clues, clue)
		}
	}
	return clues
}

func matchStyled(line string) (Clue, bool) {
	m := styledRE.FindStringSubmatch(line)
	if m == nil {
		return Clue{}, false
	}
	pattern, ok := patternFromGlyphs(m[1])
	if !ok {
		return Clue{}, false
	}
	return Clue{Word: unstyle(m[2]), Pattern: pattern}, true
}

func matchMarkup(line string) (Clue, bool) {
	m := markupRE.FindStringSubmatch(line)
	if m == nil {
		return Clue{}, false
	}
	// Glyphs are everything before the first delimiter. If that span holds
	// anything besides 5 glyphs, the line is malformed.
	pattern, ok := patternFromGlyphs(line[:strings.Index(line, "**")])
	if !ok {
		return Clue{}, false
	}
	return Clue{Word: strings.ToLower(m[1]), Pattern: pattern}, true
}

func matchLegacy(line string) (Clue, bool) {
	m := legacyRE.FindStringSubmatch(line)
	if m == nil {
		return Clue{}, false
	}
	pattern, ok := patternFromGlyphs(m[2])
	if !ok {
		return Clue{}, false
	}
	return Clue{Word: strings.ToLower(m[1]), Pattern: pattern}, true
}

// patternFromGlyphs maps a run of color glyphs, with any interleaved
// whitespace removed, onto a Pattern. Exactly WordLen glyphs are required.
func patternFromGlyphs(s string) (Pattern, bool) {
	var pattern Pattern
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		color, ok := glyphColors[r]
		if !ok || n == WordLen {
			return Pattern{}, false
		}
		pattern[n] = color
		n++
	}
	return pattern, n == WordLen
}

const (
	mathBoldA = '𝗔' // U+1D5D4, mathematical sans-serif bold capital A
	mathBoldZ = '𝗭' // U+1D5ED
)

// unstyle maps mathematical sans-serif bold capitals back to plain
// lower-case letters.
func unstyle(styled string) string {
	var b strings.Builder
	for _, r := range styled {
		if r >= mathBoldA && r <= mathBoldZ {
			b.WriteByte(byte('a' + r - mathBoldA))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
