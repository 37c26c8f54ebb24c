// SPDX-License-Identifier: MIT

package design

import (
	"errors"
	"fmt"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

// ErrBadShape is returned by Generate when n or p is not positive.
// It wraps matrix.ErrBadShape so callers may match either sentinel.
var ErrBadShape = fmt.Errorf("design: invalid shape: %w", matrix.ErrBadShape)

// ErrBadRange is returned by NewLockedSource when the seed range is empty.
var ErrBadRange = errors.New("design: empty seed range")

// designErrorf wraps err with an operation tag, preserving it for errors.Is.
func designErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
