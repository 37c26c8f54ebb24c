// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]float64
		precision int
		want      string
	}{
		{
			name:      "integers align",
			rows:      [][]float64{{1, -3}, {4, 5}},
			precision: 0,
			want:      "[[ 1, -3],\n [ 4,  5]]",
		},
		{
			name:      "two decimals",
			rows:      [][]float64{{35, 44}, {44, 56}},
			precision: 2,
			want:      "[[35.00, 44.00],\n [44.00, 56.00]]",
		},
		{
			name:      "negative zero",
			rows:      [][]float64{{-0.0000001, 1}},
			precision: 2,
			want:      "[[0.00, 1.00]]",
		},
		{
			name:      "single column",
			rows:      [][]float64{{-9}, {10}},
			precision: 0,
			want:      "[[-9],\n [10]]",
		},
		{
			name:      "negative precision clamps",
			rows:      [][]float64{{2.4}},
			precision: -1,
			want:      "[[2]]",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.Format(MustRows(t, tc.rows), tc.precision))
		})
	}
}

func TestFormat_Nil(t *testing.T) {
	require.Equal(t, "[]", matrix.Format(nil, 2))
}
