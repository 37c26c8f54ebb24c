// SPDX-License-Identifier: MIT

package fullrank

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPreset is returned for a preset key not in Presets.
	ErrUnknownPreset = errors.New("fullrank: unknown preset")

	// ErrShapeOutOfRange is returned when n or p leaves the slider bounds.
	ErrShapeOutOfRange = errors.New("fullrank: shape out of range")

	// ErrUnknownEvent is returned by Dispatch for an unrecognized event type.
	ErrUnknownEvent = errors.New("fullrank: unknown event")

	// ErrNoSeedSource is returned when a regenerate event arrives without a source.
	ErrNoSeedSource = errors.New("fullrank: nil seed source")
)

func fullrankErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
