/*
Package session keeps the short-lived server-side records that link an
initial profile/level computation to later follow-up requests. Sessions
live in process memory only; they survive until explicit deletion or
process exit.
*/
package session

import (
	"sync"
	"time"

	"fitcoach/internal/profile"
)

// Session is one stored user context. Generated text is never retained,
// only the inputs that produced it. Extra is the explicit extension point
// for ad hoc fields; everything with known meaning gets a typed field.
type Session struct {
	Profile   profile.UserProfile `json:"profile"`
	BMI       float64             `json:"bmi"`
	Level     int                 `json:"recommendation_level"`
	CreatedAt time.Time           `json:"created_at"`
	Extra     map[string]string   `json:"extra,omitempty"`
}

// Store is a process-wide keyed session store. Access by different ids
// never interferes; concurrent writers to the same id race with
// last-write-wins semantics, which is an accepted limitation.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create upserts a session: an existing entry for the id is replaced
// unconditionally, never merged.
func (s *Store) Create(id string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// Get retrieves a session by id.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session; deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
