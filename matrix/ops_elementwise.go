// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons used by numeric checks and tests.

package matrix

import (
	"fmt"
	"math"
)

// ewAllClose reports whether |a−b| ≤ atol + rtol*|b| holds element-wise.
// NaN never compares close; equal infinities do.
// Complexity: O(r*c), no allocation on the *Dense fast path.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	isClose := func(av, bv float64) bool {
		if av == bv {
			return true // covers equal infinities
		}
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv) // NaN fails here
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !isClose(da.data[idx], db.data[idx]) {
					return false, nil // early exit on first violation
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !isClose(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewMaxAbsDiff returns max |a[i,j] − b[i,j]| over identical shapes.
// A NaN difference propagates as NaN.
// Complexity: O(r*c).
func ewMaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	da, err := toDense(a)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	db, err := toDense(b)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	maxDiff := 0.0
	var d float64
	for idx := range da.data {
		d = math.Abs(da.data[idx] - db.data[idx])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
