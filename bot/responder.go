// Package bot turns inbound chat text into wordlebot replies. It owns no
// transport; cmd/wordlebot feeds it Matrix messages, and the -stdin mode
// feeds it standard input.
package bot

import (
	"log"
	"strings"

	"github.com/jrhy/wordlebot/solver"
)

// Responder holds the read-only corpus and the per-identity session store.
// The corpus is shared by every identity and never mutated.
type Responder struct {
	words    []string
	sessions *solver.SessionStore
}

func New(words []string, sessions *solver.SessionStore) *Responder {
	return &Responder{words: words, sessions: sessions}
}

// HandleCommand dispatches the "!" commands. handled is false for anything
// else, including guess lines, which take the default path in Respond.
func (r *Responder) HandleCommand(identity, body string) (reply string, handled bool) {
	switch strings.TrimSpace(body) {
	case "!help", "!start":
		return welcome(len(r.words)), true
	case "!reset":
		r.sessions.Reset(identity)
		log.Printf("reset identity=%s", identity)
		return "Session reset. Send me your first guess.", true
	case "!other":
		return r.suggest(identity), true
	default:
		return "", false
	}
}

// Respond processes one inbound message for one identity and returns the
// reply text. Commands are handled first; everything else is treated as one
// or more guess reports.
func (r *Responder) Respond(identity, body string) string {
	if reply, handled := r.HandleCommand(identity, body); handled {
		return reply
	}

	clues := solver.ParseBatch(body)
	if len(clues) == 0 {
		// A message that yields nothing line-by-line gets one more try as a
		// single clue before being rejected.
		if clue, ok := solver.ParseLine(body); ok {
			clues = []solver.Clue{clue}
		}
	}
	session := r.sessions.Get(identity)
	if len(clues) == 0 {
		log.Printf("unparseable identity=%s session=%s bytes=%d", identity, session.ID, len(body))
		return formatHelp
	}

	session.Append(clues...)
	remaining := solver.Filter(r.words, session.Clues())
	log.Printf("guess identity=%s session=%s added=%d total=%d remaining=%d",
		identity, session.ID, len(clues), session.Len(), len(remaining))
	if len(remaining) == 0 {
		return r.noMatch(session)
	}
	return guessReply(len(clues), remaining)
}

// suggest re-runs filter and scorer over the current session without
// requiring a new clue.
func (r *Responder) suggest(identity string) string {
	session := r.sessions.Get(identity)
	if session.Len() == 0 {
		return "No guesses recorded yet. Send me your first guess to get started."
	}
	remaining := solver.Filter(r.words, session.Clues())
	log.Printf("suggest identity=%s session=%s total=%d remaining=%d",
		identity, session.ID, session.Len(), len(remaining))
	if len(remaining) == 0 {
		return r.noMatch(session)
	}
	if len(remaining) == 1 {
		return "Only one word matches your clues: " + strings.ToUpper(remaining[0])
	}
	return alternativesReply(solver.Rank(remaining))
}

// noMatch builds the degraded reply for a session whose clues eliminate the
// whole corpus: best-effort guidance from the words matching the most clues.
func (r *Responder) noMatch(session *solver.Session) string {
	closest, satisfied := solver.Closest(r.words, session.Clues())
	return noMatchReply(closest, satisfied, session.Len())
}
