// SPDX-License-Identifier: MIT
// Package matrix: fixed-precision text rendering for display panels.

package matrix

import (
	"strconv"
	"strings"
)

// Format renders m as a bracketed block with a fixed number of decimals,
// right-aligning every element to a common width:
//
//	[[ 1, -3],
//	 [ 4,  5]]
//
// Negative zero is printed without its sign so that rounded values such as
// -0.0000001 at precision 2 render as "0.00". A negative precision is
// treated as 0. A nil matrix renders as "[]".
// Complexity: O(r*c).
func Format(m Matrix, precision int) string {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return "[]"
	}
	if precision < 0 {
		precision = 0
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 1: format cells and measure the widest one.
	cells := make([]string, rows*cols)
	width := 0
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // indices bounded by the loop
			s := strconv.FormatFloat(v, 'f', precision, 64)
			if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
				s = s[1:] // -0, -0.00 → 0, 0.00
			}
			cells[i*cols+j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	// Stage 2: assemble rows.
	var sb strings.Builder
	sb.WriteByte('[')
	for i = 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for j = 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			s := cells[i*cols+j]
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
