package solver

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/segmentio/ksuid"
)

// Session is the ordered clue history one identity has reported for the
// current puzzle. The only mutations are Append and Clear. A Session is not
// safe for concurrent use; requests for one identity are serialized by the
// transport's sync loop.
type Session struct {
	// ID tags log lines so one conversation can be followed across turns.
	ID    string
	clues []Clue
}

// Append records clues at the end of the history, preserving arrival order.
func (s *Session) Append(clues ...Clue) {
	s.clues = append(s.clues, clues...)
}

// Clear discards the history.
func (s *Session) Clear() {
	s.clues = nil
}

// Clues returns a copy of the history in arrival order.
func (s *Session) Clues() []Clue {
	return append([]Clue(nil), s.clues...)
}

// Len returns the number of recorded clues.
func (s *Session) Len() int {
	return len(s.clues)
}

// SessionStore hands out per-identity sessions, bounded by an LRU so
// abandoned chats cannot grow memory forever. An identity evicted and seen
// again simply starts a fresh session.
type SessionStore struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewSessionStore creates a store retaining at most capacity identities.
func NewSessionStore(capacity int) (*SessionStore, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	return &SessionStore{cache: cache}, nil
}

// Get returns the identity's session, creating an empty one if absent.
func (st *SessionStore) Get(identity string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if v, ok := st.cache.Get(identity); ok {
		return v.(*Session)
	}
	session := &Session{ID: ksuid.New().String()}
	st.cache.Add(identity, session)
	return session
}

// Reset replaces the identity's session with a fresh empty one.
func (st *SessionStore) Reset(identity string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cache.Add(identity, &Session{ID: ksuid.New().String()})
}
