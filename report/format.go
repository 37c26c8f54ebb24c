// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
	"github.com/tomtranjr/msds601-highdim-group9/rank"
)

// Summary labels.
const (
	labelRows      = "n (rows of X)"
	labelCols      = "p (columns of X)"
	labelRank      = "rank(X)"
	labelCondition = "Condition number of XᵀX"
)

// Format builds the view for rep. n and p are the shape the caller asked
// for and are echoed verbatim in the summary.
//
// Rules:
//   - Warning is set iff the design is degenerate, rank deficient or near
//     singular; a degenerate design gets its own text.
//   - Summary always lists n, p, rank and the condition number ("%.2e", or
//     "undefined" when not finite), then the inverse message if there is one.
//   - Panels are always design (0 dp), cross-product (2 dp), inverse (6 dp)
//     or the inverse message in its place.
func Format(rep rank.Report, n, p int) View {
	var v View

	switch {
	case rep.Degenerate:
		v.Warning = &Warning{Text: WarningDegenerate}
	case rep.NeedsWarning():
		v.Warning = &Warning{Text: WarningRank}
	}

	v.Summary = []Line{
		{Label: labelRows, Value: strconv.Itoa(n)},
		{Label: labelCols, Value: strconv.Itoa(p)},
		{Label: labelRank, Value: strconv.Itoa(rep.Rank)},
		{Label: labelCondition, Value: FormatCondition(rep.Condition)},
	}
	msg := inverseMessage(rep.Inverse)
	if msg != "" {
		v.Summary = append(v.Summary, Line{Value: msg})
	}

	v.Panels = []Panel{
		{Title: TitleDesign, Kind: PanelMatrix, Body: formatMatrix(rep.Design, PrecisionDesign)},
		{Title: TitleCrossProduct, Kind: PanelMatrix, Body: formatMatrix(rep.CrossProduct, PrecisionCrossProduct)},
		inversePanel(rep.Inverse, msg),
	}

	return v
}

// FormatCondition renders a condition number in scientific notation with
// two decimals, or "undefined" when it is not finite.
func FormatCondition(c float64) string {
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return Undefined
	}

	return fmt.Sprintf("%.2e", c)
}

// inverseMessage returns the inverse's message; a report built without
// rank.Analyze has none.
func inverseMessage(inv rank.InverseResult) string {
	if inv == nil {
		return MsgNotComputed
	}

	return inv.Message()
}

func inversePanel(inv rank.InverseResult, msg string) Panel {
	if present, ok := inv.(rank.InversePresent); ok {
		return Panel{
			Title: TitleInverse,
			Kind:  PanelMatrix,
			Body:  matrix.Format(present.Matrix, PrecisionInverse),
		}
	}

	return Panel{Title: TitleInverse, Kind: PanelMessage, Body: msg}
}

// formatMatrix guards the typed-nil case: a nil *Dense stored in the
// interface is not == nil.
func formatMatrix(m matrix.Matrix, precision int) string {
	if d, ok := m.(*matrix.Dense); ok && d == nil {
		return matrix.Format(nil, precision)
	}

	return matrix.Format(m, precision)
}
