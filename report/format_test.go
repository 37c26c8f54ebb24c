// SPDX-License-Identifier: MIT
package report_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/matrix"
	"github.com/tomtranjr/msds601-highdim-group9/rank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
)

func analyzeRows(t *testing.T, rows [][]float64, opts ...rank.Option) rank.Report {
	t.Helper()
	X, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)
	rep, err := rank.Analyze(X, opts...)
	require.NoError(t, err)

	return rep
}

func lines(v report.View) []string {
	out := make([]string, len(v.Summary))
	for i, l := range v.Summary {
		out[i] = l.String()
	}

	return out
}

func TestFormat_FullRank(t *testing.T) {
	t.Parallel()

	rep := analyzeRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	v := report.Format(rep, 3, 2)

	require.Nil(t, v.Warning)
	require.Equal(t, []string{
		"n (rows of X): 3",
		"p (columns of X): 2",
		"rank(X): 2",
		"Condition number of XᵀX: 3.43e+02",
	}, lines(v))

	require.Len(t, v.Panels, 3)
	assert.Equal(t, report.Panel{
		Title: report.TitleDesign,
		Kind:  report.PanelMatrix,
		Body:  "[[1, 2],\n [3, 4],\n [5, 6]]",
	}, v.Panels[0])
	assert.Equal(t, report.Panel{
		Title: report.TitleCrossProduct,
		Kind:  report.PanelMatrix,
		Body:  "[[35.00, 44.00],\n [44.00, 56.00]]",
	}, v.Panels[1])
	assert.Equal(t, report.Panel{
		Title: report.TitleInverse,
		Kind:  report.PanelMatrix,
		Body:  "[[ 2.333333, -1.833333],\n [-1.833333,  1.458333]]",
	}, v.Panels[2])
}

func TestFormat_WidePreset(t *testing.T) {
	t.Parallel()

	X, err := design.Generate(0, 6, 10)
	require.NoError(t, err)
	rep, err := rank.Analyze(X)
	require.NoError(t, err)
	v := report.Format(rep, 6, 10)

	require.NotNil(t, v.Warning)
	require.Equal(t, report.WarningRank, v.Warning.Text)
	require.Len(t, v.Summary, 5)
	require.Equal(t, rank.MsgSingular, v.Summary[4].String())
	require.Equal(t, report.PanelMessage, v.Panels[2].Kind)
	require.Equal(t, rank.MsgSingular, v.Panels[2].Body)
}

func TestFormat_InversionFailed(t *testing.T) {
	t.Parallel()

	rep := analyzeRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}},
		rank.WithInverter(func(matrix.Matrix) (*matrix.Dense, error) {
			return nil, errors.New("pivot underflow")
		}))
	v := report.Format(rep, 3, 2)

	require.Nil(t, v.Warning)
	require.Equal(t, rank.MsgInversionFailed, v.Summary[len(v.Summary)-1].Value)
	require.Equal(t, report.Panel{
		Title: report.TitleInverse,
		Kind:  report.PanelMessage,
		Body:  rank.MsgInversionFailed,
	}, v.Panels[2])
}

func TestFormat_Degenerate(t *testing.T) {
	t.Parallel()

	rep, err := rank.Analyze(nil)
	require.NoError(t, err)
	v := report.Format(rep, 5, 0)

	require.NotNil(t, v.Warning)
	require.Equal(t, report.WarningDegenerate, v.Warning.Text)
	require.Equal(t, "Condition number of XᵀX: undefined", v.Summary[3].String())
	require.Equal(t, "p (columns of X): 0", v.Summary[1].String())
	require.Equal(t, "[]", v.Panels[0].Body)
	require.Equal(t, "[]", v.Panels[1].Body)
	require.Equal(t, rank.MsgNotApplicable, v.Panels[2].Body)
}

func TestFormat_MissingInverse(t *testing.T) {
	t.Parallel()

	v := report.Format(rank.Report{}, 3, 2)

	last := v.Summary[len(v.Summary)-1]
	require.Equal(t, report.MsgNotComputed, last.Value)
	require.NotEqual(t, rank.MsgSingular, last.Value)
	require.Equal(t, report.Panel{
		Title: report.TitleInverse,
		Kind:  report.PanelMessage,
		Body:  report.MsgNotComputed,
	}, v.Panels[2])
}

// Exactly one of {inverse matrix, singular message, failure message} is shown.
func TestFormat_MutualExclusivity(t *testing.T) {
	t.Parallel()

	msgs := map[string]bool{rank.MsgSingular: true, rank.MsgInversionFailed: true, rank.MsgNotApplicable: true}
	for _, sh := range [][2]int{{100, 5}, {40, 8}, {10, 10}, {6, 10}} {
		for seed := int64(0); seed < 4; seed++ {
			X, err := design.Generate(seed, sh[0], sh[1])
			require.NoError(t, err)
			rep, err := rank.Analyze(X)
			require.NoError(t, err)
			v := report.Format(rep, sh[0], sh[1])

			require.Len(t, v.Panels, 3)
			inv := v.Panels[2]
			switch inv.Kind {
			case report.PanelMatrix:
				require.True(t, rep.HasInverse())
				require.Len(t, v.Summary, 4)
			case report.PanelMessage:
				require.False(t, rep.HasInverse())
				require.True(t, msgs[inv.Body], inv.Body)
				require.Equal(t, inv.Body, v.Summary[4].Value)
			default:
				t.Fatalf("unknown panel kind %q", inv.Kind)
			}
			require.Equal(t, rep.NeedsWarning(), v.Warning != nil)
		}
	}
}

func TestFormatCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{343.0390, "3.43e+02"},
		{1, "1.00e+00"},
		{2.5e12, "2.50e+12"},
		{math.Inf(1), report.Undefined},
		{math.NaN(), report.Undefined},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, report.FormatCondition(tc.in))
	}
}
