// SPDX-License-Identifier: MIT

// Package session hosts one fullrank.State per browser session.
//
// A Manager loads the state for a session ID from a Store, folds an event
// into it, saves the result and renders it. Operations on the same session
// ID are serialized by a keyed lock; different sessions run concurrently.
// Each session also has its own token-bucket limiter for inbound events.
//
// Stores:
//   - MemoryStore keeps states in process memory with a TTL.
//   - RedisStore keeps JSON-encoded states in Redis so several server
//     instances can share sessions (last write wins).
//   - BreakerStore wraps any Store in a circuit breaker so a failing backend
//     is cut off instead of stalling every request.
package session
