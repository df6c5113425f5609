// internal/store/memory.go
//
// In-memory store of live rounds for the HTTP surface.
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - Map access guarded by an RWMutex; each Session carries its own mutex
//     serializing guesses against its Round.
//   - Sessions idle longer than the TTL are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Session is one live round and the puzzle it was built from.
type Session struct {
	ID      string
	Puzzle  puzzle.Puzzle
	Started time.Time

	mu       sync.Mutex
	round    *game.Round
	lastSeen time.Time
}

// NewSession wraps r under a fresh ID.
func NewSession(p puzzle.Puzzle, r *game.Round, now time.Time) *Session {
	return &Session{ID: uuid.NewString(), Puzzle: p, Started: now, round: r, lastSeen: now}
}

// With runs fn with exclusive access to the session's round.
func (s *Session) With(now time.Time, fn func(r *game.Round)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
	fn(s.round)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store defines the persistence interface for live sessions.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Memory is a map-based Store.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{sessions: make(map[string]*Session)}
}

// Save adds or replaces the session.
func (m *Memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *Memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete removes a session; unknown IDs are not an error.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle since before now-ttl and returns how many went.
func (m *Memory) Sweep(now time.Time, ttl time.Duration) int {
	cutoff := now.Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
