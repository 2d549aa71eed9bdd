package bookingflow

import (
	"sync"
	"time"
)

// Store keeps one live session per traveler. Sessions are ephemeral by
// design; an idle funnel is dropped after staleAfter and the traveler
// starts again from trip selection.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

const staleAfter = 2 * time.Hour

var DefaultStore = NewStore()

func NewStore() *Store {
	s := &Store{sessions: map[string]*Session{}}
	go s.cleanupLoop()
	return s
}

// Get returns a deep copy of the traveler's session, creating a fresh one
// if none exists or the previous one went stale. Callers get a detached
// snapshot; mutations only happen through With.
func (st *Store) Get(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok || time.Since(s.UpdatedAt) > staleAfter {
		s = NewSession(userID)
		st.sessions[userID] = s
	}
	return s.Clone()
}

// With runs fn while holding the store lock, so session mutations never
// race between concurrent requests from the same traveler.
func (st *Store) With(userID string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok || time.Since(s.UpdatedAt) > staleAfter {
		s = NewSession(userID)
		st.sessions[userID] = s
	}
	return fn(s)
}

// Drop removes the traveler's session outright.
func (st *Store) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

func (st *Store) cleanupLoop() {
	for range time.Tick(10 * time.Minute) {
		st.mu.Lock()
		for id, s := range st.sessions {
			if time.Since(s.UpdatedAt) > staleAfter {
				delete(st.sessions, id)
			}
		}
		st.mu.Unlock()
	}
}
