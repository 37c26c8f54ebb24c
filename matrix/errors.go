// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag) and
// tests check them via errors.Is. No kernel panics on user-triggered input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular, NaN/Inf).

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or a non-square input to LU/Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when LU meets a pivot that is exactly zero after
	// partial pivoting, i.e. the whole remaining column is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (tolerances, inverse output).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadData indicates that a backing slice does not match rows*cols.
	ErrBadData = errors.New("matrix: data length does not match shape")
)
