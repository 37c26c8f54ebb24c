// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for the tasks the rank diagnostic composes
//     (identity, cross-product, inverse residual, closeness checks).
//   - Each facade delegates to the canonical kernel; no logic duplication.

package matrix

import "errors"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CrossProduct returns XᵀX (p×p for an n×p input).
// Composition of Transpose and Mul; the result is symmetric positive
// semi-definite and, for integer X, exact.
// Complexity: O(n*p^2).
func CrossProduct(x Matrix) (*Dense, error) {
	xt, err := Transpose(x)
	if err != nil {
		return nil, matrixErrorf("CrossProduct", err)
	}
	xtx, err := Mul(xt, x)
	if err != nil {
		return nil, matrixErrorf("CrossProduct", err)
	}

	return xtx, nil
}

// IdentityResidual returns max |inv·a − I|, the quality of an inverse.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n^3).
func IdentityResidual(inv, a Matrix) (float64, error) {
	prod, err := Mul(inv, a)
	if err != nil {
		return 0, matrixErrorf("IdentityResidual", err)
	}
	if err = ValidateSquare(prod); err != nil {
		return 0, matrixErrorf("IdentityResidual", err)
	}
	I, err := NewIdentity(prod.Rows())
	if err != nil {
		return 0, matrixErrorf("IdentityResidual", err)
	}

	return ewMaxAbsDiff(prod, I)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| for identical shapes.
func MaxAbsDiff(a, b Matrix) (float64, error) { return ewMaxAbsDiff(a, b) }

// isSingular reports whether err carries ErrSingular.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }
