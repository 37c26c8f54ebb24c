// SPDX-License-Identifier: MIT

package design

import (
	"math/rand"
	"sync"
)

const (
	// DefaultSourceSeed seeds the process-wide regeneration source.
	DefaultSourceSeed int64 = 2024

	// SeedUpperBound is the exclusive upper bound of regenerated seeds.
	SeedUpperBound int64 = 10_000_000
)

// SeedSource yields fresh seeds for the regenerate action.
// Implementations must be safe for concurrent use.
type SeedSource interface {
	NextSeed() int64
}

// LockedSource is a mutex-guarded stream of seeds in [0, upper).
type LockedSource struct {
	mu    sync.Mutex
	rng   *rand.Rand
	upper int64
}

// NewLockedSource returns a source seeded with base that yields seeds in [0, upper).
// Errors: ErrBadRange (upper <= 0).
func NewLockedSource(base, upper int64) (*LockedSource, error) {
	if upper <= 0 {
		return nil, designErrorf("NewLockedSource", ErrBadRange)
	}

	return &LockedSource{rng: rand.New(rand.NewSource(base)), upper: upper}, nil
}

// NewDefaultSource returns the source used by the service: base 2024, range [0, 1e7).
func NewDefaultSource() *LockedSource {
	s, _ := NewLockedSource(DefaultSourceSeed, SeedUpperBound) // constants are valid

	return s
}

// NextSeed draws the next seed.
func (s *LockedSource) NextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Int63n(s.upper)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer. It lets callers give every session its own
// decorrelated regeneration stream from one configured base seed.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
