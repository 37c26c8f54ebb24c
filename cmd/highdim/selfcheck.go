// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
	"github.com/tomtranjr/msds601-highdim-group9/rank"
)

// Closeness tolerances for the self-check comparisons.
const (
	checkRtol = 1e-5
	checkAtol = 1e-8
)

// errSelfcheck is returned when any fixed case fails a check.
var errSelfcheck = errors.New("selfcheck failed")

type selfcheckCase struct {
	name string
	rows [][]float64
}

var selfcheckCases = []selfcheckCase{
	{name: "tall 3x2", rows: [][]float64{{1, 2}, {3, 4}, {5, 6}}},
	{name: "square 3x3", rows: [][]float64{{2, -1, 0}, {0, 1, 1}, {1, 1, 0}}},
}

func selfcheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the linear-algebra kernels on fixed matrices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, c := range selfcheckCases {
				ok, err := runSelfcheckCase(out, c)
				if err != nil {
					return fmt.Errorf("%s: %w", c.name, err)
				}
				if !ok {
					failed++
					a.logger.Error().Str("case", c.name).Msg("selfcheck case failed")
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d cases: %w", failed, len(selfcheckCases), errSelfcheck)
			}
			fmt.Fprintln(out, "All checks passed.")

			return nil
		},
	}
}

// runSelfcheckCase prints one case and reports whether every check held.
func runSelfcheckCase(w io.Writer, c selfcheckCase) (bool, error) {
	X, err := matrix.NewDenseRows(c.rows)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "== %s ==\nX =\n%s\n", c.name, matrix.Format(X, 0))

	xtx, err := matrix.CrossProduct(X)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "XᵀX =\n%s\n", matrix.Format(xtx, 2))

	ref, err := gonumCrossProduct(X)
	if err != nil {
		return false, err
	}
	same, err := matrix.AllClose(xtx, ref, checkRtol, checkAtol)
	if err != nil {
		return false, err
	}
	ok := same
	fmt.Fprintf(w, "XᵀX matches reference: %s\n", verdict(same))

	det, err := matrix.Determinant(xtx)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "det(XᵀX) = %.6f\n", det)

	rep, err := rank.Analyze(X)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "cond(XᵀX) = %.6f\n", rep.Condition)

	inv, err := matrix.Inverse(xtx)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		fmt.Fprintln(w, rank.MsgSingular)
		return ok, nil
	case err != nil:
		return false, err
	}
	fmt.Fprintf(w, "(XᵀX)⁻¹ =\n%s\n", matrix.Format(inv, 6))

	prod, err := matrix.Mul(inv, xtx)
	if err != nil {
		return false, err
	}
	I, err := matrix.NewIdentity(prod.Rows())
	if err != nil {
		return false, err
	}
	identity, err := matrix.AllClose(prod, I, checkRtol, checkAtol)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "(XᵀX)⁻¹·XᵀX ≈ I: %s\n\n", verdict(identity))

	return ok && identity, nil
}

// gonumCrossProduct computes XᵀX independently through gonum.
func gonumCrossProduct(X matrix.Matrix) (*matrix.Dense, error) {
	g, err := matrix.ToGonum(X)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(g.T(), g)

	return matrix.FromGonum(&out)
}

func verdict(ok bool) string {
	if ok {
		return color.GreenString("ok")
	}

	return color.RedString("FAILED")
}
