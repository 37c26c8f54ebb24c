// SPDX-License-Identifier: MIT

package rank

import (
	"errors"
	"fmt"
)

// ErrInvalidDesign is returned by Analyze when X cannot be analyzed at all
// (non-finite entries, or a decomposition that did not converge). A design
// with no columns is not an error; it yields a degenerate report.
var ErrInvalidDesign = errors.New("rank: invalid design matrix")

func rankErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
