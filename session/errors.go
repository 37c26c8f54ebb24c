// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited is returned when a session sends events faster than its limiter allows.
	ErrRateLimited = errors.New("session: rate limited")

	// ErrStoreUnavailable wraps every backend failure (including an open breaker).
	ErrStoreUnavailable = errors.New("session: store unavailable")

	// ErrInvalidID is returned for an empty or malformed session ID.
	ErrInvalidID = errors.New("session: invalid session id")

	// ErrCorruptState is returned when a stored state cannot be decoded.
	ErrCorruptState = errors.New("session: corrupt stored state")
)

func sessionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// asUnavailable tags a backend error with ErrStoreUnavailable once.
func asUnavailable(err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
