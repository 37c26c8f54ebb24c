// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum for the decompositions this package does
// not implement itself (SVD).

package matrix

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSVDFailed indicates that the gonum SVD did not converge.
var ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

const opSVD = "SingularValues"

// ToGonum copies m into a freshly allocated *mat.Dense.
// Errors: ErrNilMatrix, plus any At failure from a non-Dense implementation.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// FromGonum copies a gonum matrix into a new *Dense.
func FromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// SingularValues returns the min(r,c) singular values of m in descending order.
// Implementation:
//   - Stage 1: copy m into gonum; reject non-finite input (LAPACK would loop on NaN).
//   - Stage 2: mat.SVD.Factorize with SVDNone (values only).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func SingularValues(m Matrix) ([]float64, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return nil, matrixErrorf(opSVD, ErrSVDFailed)
	}

	return svd.Values(nil), nil
}
