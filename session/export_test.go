// SPDX-License-Identifier: MIT

package session

import "time"

// Test bridge: exposes clocks and internal sizes to session_test only.

// SetMemoryClock replaces the store clock.
func SetMemoryClock(s *MemoryStore, now func() time.Time) { s.now = now }

// SetLimiterClock replaces the limiter clock of m.
func SetLimiterClock(m *Manager, now func() time.Time) { m.limits.now = now }

// LockedKeys returns the number of session keys with a live lock entry.
func LockedKeys(m *Manager) int { return m.locks.size() }

// LimiterCount returns the number of live per-session limiters.
func LimiterCount(m *Manager) int {
	m.limits.mu.Lock()
	defer m.limits.mu.Unlock()

	return len(m.limits.entries)
}
