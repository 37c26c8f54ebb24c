// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"sync"
	"time"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

// Store persists session states.
// Load reports found=false (and a nil error) for a missing or expired ID.
type Store interface {
	Load(ctx context.Context, id string) (state fullrank.State, found bool, err error)
	Save(ctx context.Context, id string, state fullrank.State) error
	Delete(ctx context.Context, id string) error
}

type memEntry struct {
	state   fullrank.State
	expires time.Time // zero: never
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty store. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memEntry), ttl: ttl, now: time.Now}
}

// Load returns the state for id.
func (s *MemoryStore) Load(ctx context.Context, id string) (fullrank.State, bool, error) {
	if err := ctx.Err(); err != nil {
		return fullrank.State{}, false, err
	}
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && s.now().After(e.expires)) {
		return fullrank.State{}, false, nil
	}

	return e.state, true, nil
}

// Save stores state for id and refreshes its TTL.
func (s *MemoryStore) Save(ctx context.Context, id string, state fullrank.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := memEntry{state: state}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[id] = e
	s.mu.Unlock()

	return nil
}

// Delete removes id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()

	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
			n++
		}
	}

	return n
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
