// SPDX-License-Identifier: MIT

package rank

import (
	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

// NearSingularThreshold is the condition number of XᵀX above which the
// cross-product is treated as numerically singular. It is a fixed design
// constant, not a user setting.
const NearSingularThreshold = 1e10

// Messages shown in place of an unavailable inverse.
const (
	MsgInversionFailed = "Numerical inversion failed."
	MsgSingular        = "XᵀX is singular or ill-conditioned; inverse not available."
	MsgNotApplicable   = "X has no columns; the inverse is not applicable."
)

// InverseResult is the outcome of the inverse step. The concrete type is one
// of InversePresent, InverseSingular, InverseFailed or InverseNotApplicable.
type InverseResult interface {
	// Message returns the text shown instead of a matrix, or "" when present.
	Message() string
	isInverseResult()
}

// InversePresent carries (XᵀX)⁻¹ and its identity residual max|inv·XᵀX − I|.
type InversePresent struct {
	Matrix   *matrix.Dense
	Residual float64
}

// InverseSingular means the inverse was not attempted: X is not full column
// rank or XᵀX is near singular.
type InverseSingular struct{}

// InverseFailed means inversion was attempted on a nominally well-conditioned
// XᵀX and failed numerically.
type InverseFailed struct {
	Err error
}

// InverseNotApplicable marks a degenerate design with no columns.
type InverseNotApplicable struct{}

func (InversePresent) Message() string { return "" }
func (InverseSingular) Message() string { return MsgSingular }
func (InverseFailed) Message() string { return MsgInversionFailed }
func (InverseNotApplicable) Message() string { return MsgNotApplicable }

func (InversePresent) isInverseResult() {}
func (InverseSingular) isInverseResult() {}
func (InverseFailed) isInverseResult() {}
func (InverseNotApplicable) isInverseResult() {}

// Report is the immutable result of Analyze.
type Report struct {
	Design       matrix.Matrix // X as analyzed; nil for a nil input
	Rows, Cols   int           // n, p
	Rank         int           // numeric rank of X, 0 ≤ Rank ≤ min(n, p)
	CrossProduct *matrix.Dense // XᵀX; nil when Degenerate
	Condition    float64       // cond(XᵀX); +Inf when singular or Degenerate
	FullRank     bool          // Rank == Cols (false when Degenerate)
	NearSingular bool          // Condition > NearSingularThreshold (false when Degenerate)
	Degenerate   bool          // X is nil or has no columns
	Inverse      InverseResult // never nil
}

// HasInverse reports whether the inverse panel shows a matrix.
func (r Report) HasInverse() bool {
	_, ok := r.Inverse.(InversePresent)

	return ok
}

// NeedsWarning reports whether the rank warning is raised.
func (r Report) NeedsWarning() bool {
	return !r.FullRank || r.NearSingular
}
