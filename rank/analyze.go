// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"
	"math"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

// eps is the float64 machine epsilon (2⁻⁵²).
const eps = 2.220446049250313e-16

const opAnalyze = "Analyze"

// Analyze builds the rank report for X.
// Implementation:
//   - Stage 1: nil X or zero columns → degenerate report, no decomposition.
//   - Stage 2: XᵀX via matrix.CrossProduct; rank from the singular values of X.
//   - Stage 3: cond(XᵀX) from its singular values; near-singular flag.
//   - Stage 4: if full rank and not near singular, invert XᵀX and measure
//     the identity residual; otherwise record why the inverse is absent.
//
// Errors:
//   - ErrInvalidDesign (wrapping matrix.ErrNaNInf or matrix.ErrSVDFailed)
//     when X holds non-finite values or the SVD does not converge.
//     Inversion failures are not errors; they become InverseFailed.
//
// Complexity:
//   - Time O(n*p^2 + p^3), Space O(n*p).
func Analyze(X matrix.Matrix, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if X == nil || X.Cols() == 0 {
		o.logger.Debug().Msg("degenerate design: no columns")

		return degenerate(X), nil
	}

	n, p := X.Rows(), X.Cols()
	sx, err := matrix.SingularValues(X)
	if err != nil {
		return Report{}, rankErrorf(opAnalyze, invalid(err))
	}
	xtx, err := matrix.CrossProduct(X)
	if err != nil {
		return Report{}, rankErrorf(opAnalyze, invalid(err))
	}
	cond, err := condition(xtx)
	if err != nil {
		return Report{}, rankErrorf(opAnalyze, invalid(err))
	}

	rep := Report{
		Design:       X,
		Rows:         n,
		Cols:         p,
		Rank:         numericRank(sx, n, p),
		CrossProduct: xtx,
		Condition:    cond,
	}
	rep.FullRank = rep.Rank == p
	rep.NearSingular = cond > NearSingularThreshold
	rep.Inverse = invert(xtx, rep.FullRank && !rep.NearSingular, o)

	o.logger.Debug().
		Int("n", n).
		Int("p", p).
		Int("rank", rep.Rank).
		Float64("cond", cond).
		Bool("full_rank", rep.FullRank).
		Bool("near_singular", rep.NearSingular).
		Msg("design analyzed")

	return rep, nil
}

// degenerate is the fixed report for a design without columns.
func degenerate(X matrix.Matrix) Report {
	rep := Report{
		Design:     X,
		Condition:  math.Inf(1),
		Degenerate: true,
		Inverse:    InverseNotApplicable{},
	}
	if X != nil {
		rep.Rows = X.Rows()
	}

	return rep
}

// numericRank counts singular values above max(s)·max(n,p)·ε.
// s must be sorted in descending order.
func numericRank(s []float64, n, p int) int {
	if len(s) == 0 || s[0] == 0 {
		return 0
	}
	tol := s[0] * float64(max(n, p)) * eps
	r := 0
	for _, v := range s {
		if v > tol {
			r++
		}
	}

	return r
}

// condition returns s_max/s_min of a square matrix, +Inf when s_min is zero
// or the ratio is not finite.
func condition(a matrix.Matrix) (float64, error) {
	s, err := matrix.SingularValues(a)
	if err != nil {
		return 0, err
	}
	if len(s) == 0 {
		return math.Inf(1), nil
	}
	sMin := s[len(s)-1]
	if sMin == 0 {
		return math.Inf(1), nil
	}
	c := s[0] / sMin
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return math.Inf(1), nil
	}

	return c, nil
}

// invert runs the inverse step. attempt is false when X is rank deficient or
// XᵀX is near singular.
func invert(xtx *matrix.Dense, attempt bool, o options) InverseResult {
	if !attempt {
		return InverseSingular{}
	}
	inv, err := o.inverter(xtx)
	if err != nil {
		o.logger.Debug().Err(err).Msg("inversion failed")

		return InverseFailed{Err: err}
	}
	res, err := matrix.IdentityResidual(inv, xtx)
	if err != nil {
		o.logger.Debug().Err(err).Msg("identity check failed")

		return InverseFailed{Err: err}
	}
	o.logger.Debug().Float64("residual", res).Msg("inverse computed")

	return InversePresent{Matrix: inv, Residual: res}
}

// invalid tags a kernel error with ErrInvalidDesign; both stay matchable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDesign, err)
}
