// SPDX-License-Identifier: MIT

// Package rank inspects a design matrix X and reports whether ordinary
// least squares has a unique closed-form solution on it.
//
// What:
//   - Analyze computes XᵀX, the numeric rank of X, the condition number of
//     XᵀX and, when the cross-product is safely invertible, (XᵀX)⁻¹.
//   - The inverse outcome is a closed set of variants (InverseResult), so a
//     report carries exactly one of: the inverse, "not attempted because
//     singular or ill-conditioned", "attempted but failed", or "not
//     applicable" for a design with no columns.
//
// How:
//   - Rank uses the singular values of X (gonum SVD) with the usual
//     threshold max(s)·max(n,p)·ε.
//   - The condition number is s_max/s_min of XᵀX; exactly singular or
//     non-finite ratios are reported as +Inf.
//   - The inverse comes from matrix.Inverse (LU with partial pivoting) and is
//     verified with an identity residual max|inv·XᵀX − I|.
//
// Determinism:
//   - Analyze is a pure function of X. Reports are never mutated after
//     construction.
package rank
