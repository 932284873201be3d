package bot

import (
	"fmt"
	"strings"

	"github.com/jrhy/wordlebot/solver"
)

const formatHelp = `I couldn't read a guess in that. Please use any of these formats:
  🟨 🟩 🟥 🟥 🟨 **LAMAR**
  🟨 🟩 🟥 🟥 🟨 𝗟𝗔𝗠𝗔𝗥
  GUESS 🟥🟨🟩🟥🟥
Or send several guesses, one per line. Make sure each has exactly 5 letters and 5 squares.
Send !reset to start over or !other for suggestions.`

func welcome(corpusSize int) string {
	return fmt.Sprintf(`Welcome to wordlebot. Send me your guesses in any of these formats:
  🟨 🟩 🟥 🟥 🟨 **LAMAR**
  🟨 🟩 🟥 🟥 🟨 𝗟𝗔𝗠𝗔𝗥
  GUESS 🟥🟨🟩🟥🟥

You can also send multiple guesses at once, one per line.

  🟩 = correct letter, correct position
  🟨 = correct letter, wrong position
  🟥 = letter not in the word

Commands: !reset clears your session, !other lists alternative words.
I know %d five-letter words.`, corpusSize)
}

func guessReply(processed int, remaining []string) string {
	var lines []string
	if processed > 1 {
		lines = append(lines, fmt.Sprintf("Processed %d guesses.", processed))
	}
	best, _ := solver.BestGuess(remaining)
	if len(remaining) == 1 {
		lines = append(lines,
			"Found it! The word is "+strings.ToUpper(best)+".",
			"Send !reset to start a new game.")
		return strings.Join(lines, "\n")
	}
	lines = append(lines,
		"Best next guess: "+strings.ToUpper(best),
		fmt.Sprintf("%d possible words remaining.", len(remaining)))
	if len(remaining) <= 10 {
		others := make([]string, 0, 5)
		for _, scored := range solver.Rank(remaining) {
			if scored.Word == best {
				continue
			}
			others = append(others, strings.ToUpper(scored.Word))
			if len(others) == 5 {
				break
			}
		}
		lines = append(lines, "Other possibilities: "+strings.Join(others, ", "))
	}
	lines = append(lines, "Send !other for more suggestions, !reset to start over.")
	return strings.Join(lines, "\n")
}

func alternativesReply(ranked []solver.Scored) string {
	top := make([]string, 0, 8)
	for _, scored := range ranked {
		top = append(top, strings.ToUpper(scored.Word))
		if len(top) == 8 {
			break
		}
	}
	lines := []string{
		fmt.Sprintf("Alternative suggestions (%d possible words):", len(ranked)),
		"Top picks: " + strings.Join(top[:min(3, len(top))], ", "),
	}
	if len(top) > 3 {
		lines = append(lines, "Good options: "+strings.Join(top[3:min(6, len(top))], ", "))
	}
	if len(top) > 6 {
		lines = append(lines, "Other choices: "+strings.Join(top[6:], ", "))
	}
	if len(ranked) <= 15 {
		all := make([]string, len(ranked))
		for i, scored := range ranked {
			all[i] = strings.ToUpper(scored.Word)
		}
		lines = append(lines, "All possibilities: "+strings.Join(all, ", "))
	}
	return strings.Join(lines, "\n")
}

func noMatchReply(closest []string, satisfied, total int) string {
	lines := []string{"No words match all your clues."}
	if satisfied > 0 && len(closest) > 0 {
		shown := closest
		if len(shown) > 8 {
			shown = shown[:8]
		}
		uppered := make([]string, len(shown))
		for i, word := range shown {
			uppered[i] = strings.ToUpper(word)
		}
		lines = append(lines, fmt.Sprintf("Closest, matching %d of %d guesses: %s",
			satisfied, total, strings.Join(uppered, ", ")))
	}
	lines = append(lines, "One of the reported guesses may be mistyped. Send !reset to start over.")
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
