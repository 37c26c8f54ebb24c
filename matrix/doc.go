// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra primitives behind the
// full-column-rank diagnostic.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels: Mul, Transpose, CrossProduct (XᵀX), LU with partial pivoting,
//     Inverse, Determinant.
//   - Checks: AllClose, MaxAbsDiff, IdentityResidual, IsSymmetric.
//   - SingularValues, bridged to gonum's SVD.
//   - Format, a fixed-precision renderer for display panels.
//
// Matrices here are small (at most 100×10 design matrices and 10×10
// cross-products), so every kernel favors determinism and clarity over
// blocking or parallelism.
package matrix
