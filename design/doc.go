// SPDX-License-Identifier: MIT

// Package design generates the seeded integer design matrices inspected by
// the rank diagnostic.
//
// Purpose:
//   - Produce an n×p matrix X with entries drawn uniformly from the closed
//     integer range [-9, 9], filled row-major.
//   - Make X a pure function of (seed, n, p): identical inputs yield
//     bit-identical matrices in every process.
//   - Provide SeedSource, the only process-wide random state, from which
//     "regenerate" requests draw fresh seeds.
//
// Concurrency:
//   - Generate allocates its own *rand.Rand per call and is safe for
//     concurrent use.
//   - LockedSource serializes draws with a mutex; it never holds per-session
//     state.
package design
