package auth

import (
	"sync"
	"time"
)

// Session holds the metadata attached to an issued admin token.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

// TokenStore abstracts session storage so the in-memory implementation can
// later be swapped for a shared store with native per-key expiry.
type TokenStore interface {
	Put(session Session)
	Get(token string) (Session, bool)
	Delete(token string)
	// SweepExpired removes every session issued before the cutoff and
	// returns the number removed.
	SweepExpired(cutoff time.Time) int
	Len() int
}

// MemoryTokenStore is a process-local TokenStore. Sessions are never
// persisted: a restart invalidates every token.
type MemoryTokenStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryTokenStore creates an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		sessions: make(map[string]Session),
	}
}

// Put stores a session under its token.
func (s *MemoryTokenStore) Put(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
}

// Get looks up a session by token.
func (s *MemoryTokenStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session, ok
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *MemoryTokenStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SweepExpired removes sessions issued before the cutoff.
func (s *MemoryTokenStore) SweepExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (s *MemoryTokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
