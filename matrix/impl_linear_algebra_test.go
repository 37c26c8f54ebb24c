// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

const tol = 1e-9

func TestMul_KnownValues(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{2, 0}, {1, 2}})

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)
	// A*B = [[1*2+2*1,1*0+2*2],[3*2+4*1,3*0+4*2]] = [[4,4],[10,8]]
	require.Equal(t, [][]float64{{4, 4}, {10, 8}}, got.RowsData())
}

func TestMul_FallbackMatchesFastPath(t *testing.T) {
	A := MustDense(t, 7, 4)
	B := MustDense(t, 4, 5)
	RandomIntFill(t, A, 1)
	RandomIntFill(t, B, 2)

	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)
	require.Equal(t, fast.RowsData(), slow.RowsData())
}

func TestMul_Errors(t *testing.T) {
	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 2)

	_, err := matrix.Mul(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		t.Run(name, func(t *testing.T) {
			tr, err := matrix.Transpose(in)
			require.NoError(t, err)
			require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.RowsData())
		})
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCrossProduct(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	xtx, err := matrix.CrossProduct(X)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{35, 44}, {44, 56}}, xtx.RowsData())

	sym, err := matrix.IsSymmetric(xtx, 0)
	require.NoError(t, err)
	require.True(t, sym)
}

func TestLU_ReconstructsPermutedInput(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
	}{
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}},
		{"3x3", [][]float64{{2, -1, 0}, {0, 1, 1}, {1, 1, 0}}},
		{"spd", [][]float64{{35, 44}, {44, 56}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			A := MustRows(t, tc.rows)
			f, err := matrix.LU(A)
			require.NoError(t, err)

			LU, err := matrix.Mul(f.L, f.U)
			require.NoError(t, err)
			n := A.Rows()
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					require.InDelta(t, tc.rows[f.Perm[i]][j], MustAt(t, LU, i, j), tol,
						"(P·A)[%d,%d] != (L·U)[%d,%d]", i, j, i, j)
				}
				require.Equal(t, 1.0, MustAt(t, f.L, i, i), "L must be unit lower")
			}
		})
	}
}

func TestLU_Errors(t *testing.T) {
	_, err := matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.LU(MustRows(t, [][]float64{{14, 28}, {28, 56}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_KnownCrossProduct(t *testing.T) {
	xtx := MustRows(t, [][]float64{{35, 44}, {44, 56}})
	inv, err := matrix.Inverse(xtx)
	require.NoError(t, err)

	// det = 35*56 - 44*44 = 24
	want := MustRows(t, [][]float64{{56.0 / 24, -44.0 / 24}, {-44.0 / 24, 35.0 / 24}})
	ok, err := matrix.AllClose(inv, want, 0, 1e-10)
	require.NoError(t, err)
	require.True(t, ok, "inverse mismatch:\n%s", inv)

	res, err := matrix.IdentityResidual(inv, xtx)
	require.NoError(t, err)
	require.Less(t, res, 1e-9)
}

func TestInverse_FallbackMatchesFastPath(t *testing.T) {
	A := MustRows(t, [][]float64{{4, 1, 2}, {1, 5, 3}, {2, 3, 6}})
	fast, err := matrix.Inverse(A)
	require.NoError(t, err)
	slow, err := matrix.Inverse(hide{A})
	require.NoError(t, err)
	require.Equal(t, fast.RowsData(), slow.RowsData())
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse(MustRows(t, [][]float64{{14, 28}, {28, 56}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_RandomCrossProducts(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			X := MustDense(t, 40, 5)
			RandomIntFill(t, X, seed)
			xtx, err := matrix.CrossProduct(X)
			require.NoError(t, err)

			inv, err := matrix.Inverse(xtx)
			require.NoError(t, err)
			res, err := matrix.IdentityResidual(inv, xtx)
			require.NoError(t, err)
			require.Less(t, res, 1e-9)
		})
	}
}

func TestDeterminant(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"3x3", [][]float64{{2, -1, 0}, {0, 1, 1}, {1, 1, 0}}, -3},
		{"cross product", [][]float64{{35, 44}, {44, 56}}, 24},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"singular", [][]float64{{14, 28}, {28, 56}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			det, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, tol)
		})
	}

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSingularValues(t *testing.T) {
	// diag(3, 2) padded with a zero row: singular values are 3 and 2.
	m := MustRows(t, [][]float64{{3, 0}, {0, 2}, {0, 0}})
	s, err := matrix.SingularValues(m)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.InDelta(t, 3, s[0], tol)
	require.InDelta(t, 2, s[1], tol)

	// wide input returns min(r,c) values
	w := MustDense(t, 2, 5)
	RandomIntFill(t, w, 3)
	s, err = matrix.SingularValues(w)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.GreaterOrEqual(t, s[0], s[1])
}
