package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store holds the in-flight login sessions. Implementations must never
// return a record older than the configured validity window, whether or not
// a physical sweep already removed it.
type Store interface {
	// Create stores a fresh session record and returns its identifier. An
	// identifier collision is reported as an error.
	Create(clientRedirectURL, state string) (string, error)

	// Get returns the session if it is present and unexpired.
	Get(sessionID string) (Session, bool)

	// Consume atomically fetches and deletes the session. Of two callbacks
	// racing on the same identifier, at most one can obtain the record.
	Consume(sessionID string) (Session, bool)

	// Remove deletes the session if present.
	Remove(sessionID string)

	// Sweep evicts every expired record.
	Sweep()
}

// MemoryStore is the transient Store used in production: sessions only ever
// live in memory, bounded by the validity window.
type MemoryStore struct {
	// mu serialises the fetch-and-delete of Consume; the cache's own lock
	// does not span two operations.
	mu      sync.Mutex
	entries *cache.Cache
}

var _ = Store(&MemoryStore{})

// NewMemoryStore creates a store whose records expire after validity. With a
// positive sweepInterval a janitor additionally evicts expired records on a
// timer; expiry is re-checked on every read regardless.
func NewMemoryStore(validity, sweepInterval time.Duration) *MemoryStore {
	return &MemoryStore{entries: cache.New(validity, sweepInterval)}
}

func (s *MemoryStore) Create(clientRedirectURL, state string) (string, error) {
	sessionID := uuid.NewString()
	record := Session{
		ID:                sessionID,
		ClientRedirectURL: clientRedirectURL,
		State:             state,
		CreatedAt:         time.Now(),
	}

	if err := s.entries.Add(sessionID, record, cache.DefaultExpiration); err != nil {
		return "", fmt.Errorf("session id collision: %w", err)
	}

	return sessionID, nil
}

func (s *MemoryStore) Get(sessionID string) (Session, bool) {
	value, ok := s.entries.Get(sessionID)
	if !ok {
		return Session{}, false
	}

	return value.(Session), true
}

func (s *MemoryStore) Consume(sessionID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.Get(sessionID)
	if ok {
		s.entries.Delete(sessionID)
	}

	return record, ok
}

func (s *MemoryStore) Remove(sessionID string) {
	s.entries.Delete(sessionID)
}

func (s *MemoryStore) Sweep() {
	s.entries.DeleteExpired()
}
