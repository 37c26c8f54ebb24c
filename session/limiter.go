// SPDX-License-Identifier: MIT

package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateConfig is the per-session token bucket. A zero EventsPerSecond
// disables limiting.
type RateConfig struct {
	EventsPerSecond float64
	Burst           int
	IdleTTL         time.Duration // limiters unused this long are dropped
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// limiterSet keeps one limiter per session ID.
type limiterSet struct {
	mu      sync.Mutex
	cfg     RateConfig
	entries map[string]*limiterEntry
	now     func() time.Time
}

func newLimiterSet(cfg RateConfig) *limiterSet {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &limiterSet{cfg: cfg, entries: make(map[string]*limiterEntry), now: time.Now}
}

// allow consumes one token for id.
func (s *limiterSet) allow(id string) bool {
	if s.cfg.EventsPerSecond <= 0 {
		return true
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(rate.Limit(s.cfg.EventsPerSecond), s.cfg.Burst)}
		s.entries[id] = e
	}
	e.lastSeen = now

	return e.lim.AllowN(now, 1)
}

// prune drops limiters idle for longer than IdleTTL.
func (s *limiterSet) prune() int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.IdleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			n++
		}
	}

	return n
}
