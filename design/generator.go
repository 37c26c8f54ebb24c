// SPDX-License-Identifier: MIT

package design

import (
	"fmt"
	"math/rand"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

const (
	// MinEntry and MaxEntry bound every generated entry (inclusive).
	MinEntry = -9
	MaxEntry = 9

	entrySpan = MaxEntry - MinEntry + 1 // 19 distinct values
)

// rngFromSeed returns a deterministic *rand.Rand for seed.
// Unlike multi-start heuristics there is no "zero means default" policy:
// seed 0 is the initial session seed and must be reproducible as-is.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate returns the n×p design matrix for seed.
// Implementation:
//   - Stage 1: Validate n > 0 and p > 0.
//   - Stage 2: Draw n*p integers in [MinEntry, MaxEntry] from a fresh stream
//     seeded with seed and store them row-major.
//
// Errors:
//   - ErrBadShape (n <= 0 or p <= 0).
//
// Determinism:
//   - A single stream is consumed in row-major order, so (seed, n, p) fully
//     determines X. Changing p reshuffles every row after the first.
//
// Complexity:
//   - Time O(n*p), Space O(n*p).
func Generate(seed int64, n, p int) (*matrix.Dense, error) {
	if n <= 0 || p <= 0 {
		return nil, designErrorf("Generate", fmt.Errorf("%dx%d: %w", n, p, ErrBadShape))
	}

	rng := rngFromSeed(seed)
	data := make([]float64, n*p)
	for k := range data {
		data[k] = float64(rng.Intn(entrySpan) + MinEntry)
	}

	X, err := matrix.NewDenseFrom(n, p, data)
	if err != nil {
		return nil, designErrorf("Generate", err)
	}

	return X, nil
}
