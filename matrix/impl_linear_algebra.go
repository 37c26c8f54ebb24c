// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the rank
// diagnostic: multiplication, transpose, LU with partial pivoting, inverse
// and determinant. All functions perform strict fail-fast validation and
// return tagged sentinels on misuse.
//
// Notes:
//   - Kernels never mutate their inputs; results are freshly allocated Dense.
//   - Every kernel has a *Dense fast path over flat slices and a generic
//     At/Set fallback with the same loop order, so both paths agree bitwise.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and accumulation loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly-zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opLU          = "LU"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as *Dense, copying through At when m hides another type.
// Fast path: O(1) for *Dense. Fallback: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; the integer design matrices used here produce
//     exact integer cross-products on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// LUFactors holds the result of a partially pivoted factorization P·A = L·U.
type LUFactors struct {
	L    *Dense  // unit lower triangular
	U    *Dense  // upper triangular
	Perm []int   // row i of P·A is row Perm[i] of A
	Sign float64 // +1 or −1: parity of the row exchanges (for the determinant)
}

// LU computes the Doolittle factorization P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat work buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |A[i,k]| (i ≥ k,
//     first maximum wins), swap it into place, then eliminate below.
//   - Stage 3: Split the work buffer into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (a whole pivot column is zero).
//
// Determinism:
//   - Fixed scan order and first-max tie-breaking give identical factors
//     for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Pivoting bounds the multipliers by 1, which keeps the cross-product
//     inverses of well-conditioned design matrices accurate to ~1e-12.
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	a := make([]float64, n*n) // work buffer; L below diag, U on/above
	copy(a, src.data)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p   int
		maxAbs, cand float64
		f, pivot     float64
	)
	for k = 0; k < n; k++ {
		// Pivot search over column k
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			cand = math.Abs(a[i*n+k])
			if cand > maxAbs {
				p, maxAbs = i, cand
			}
		}
		if maxAbs == ZeroPivot {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		// Row exchange
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		// Elimination below the pivot
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Inverse computes A^{-1} from the pivoted LU factorization.
// Implementation:
//   - Stage 1: LU(m) → P·A = L·U.
//   - Stage 2: For each basis column e_col: forward solve L*y = P*e_col,
//     backward solve U*x = y, write x into column col.
//   - Stage 3: Reject non-finite output (overflow on nearly singular input).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (from LU),
//     ErrNaNInf (the solve overflowed).
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - If you only need A^{-1}*b, solve via LU once instead of forming A^{-1}.
func Inverse(m Matrix) (*Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.U.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum, v    float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
		L, U      = f.L.data, f.U.data
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L[i*n+k] * y[k]
			}
			if f.Perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U[i*n+i] // U[i,i] != 0 guaranteed by LU
		}
		for i = 0; i < n; i++ {
			v = x[i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opInverse, ErrNaNInf)
			}
			inv.data[i*n+col] = v
		}
	}

	return inv, nil
}

// Determinant returns det(A) = sign(P) · Π U[i,i].
// A singular input (zero pivot column) yields 0 with a nil error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		if isSingular(err) {
			return 0, nil
		}
		return 0, matrixErrorf(opDeterminant, err)
	}
	det := f.Sign
	n := f.U.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}
