// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
)

type diagnoseFlags struct {
	n, p    int
	seed    int64
	preset  string
	jsonOut bool
	noColor bool
}

func diagnoseCmd(a *app) *cobra.Command {
	def := fullrank.Initial()
	f := diagnoseFlags{n: def.N, p: def.P, seed: def.Seed}
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Render one diagnostic to the terminal",
		Example: `  highdim diagnose --n 6 --p 10
  highdim diagnose --preset near --seed 42 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := fullrank.State{N: f.n, P: f.p, Seed: f.seed}
			st, err := st.ApplyPreset(f.preset)
			if err != nil {
				return err
			}
			if err = st.Validate(); err != nil {
				return err
			}
			engine := fullrank.NewEngine(fullrank.WithEngineLogger(a.logger))
			res, err := engine.Render(cmd.Context(), st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.jsonOut {
				return writeResultJSON(out, res)
			}
			printView(out, res.View, f.noColor)

			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&f.n, "n", f.n, fmt.Sprintf("rows of X [%d, %d]", fullrank.MinRows, fullrank.MaxRows))
	fs.IntVar(&f.p, "p", f.p, fmt.Sprintf("columns of X [%d, %d]", fullrank.MinCols, fullrank.MaxCols))
	fs.Int64Var(&f.seed, "seed", f.seed, "generator seed")
	fs.StringVar(&f.preset, "preset", "", "preset shape, overrides --n and --p (normal, near, square, wide)")
	fs.BoolVar(&f.jsonOut, "json", false, "print the result as JSON")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	return cmd
}

func writeResultJSON(w io.Writer, res fullrank.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

// printView writes the warning, summary and panels in display order.
func printView(w io.Writer, v report.View, noColor bool) {
	if v.Warning != nil {
		c := color.New(color.FgYellow, color.Bold)
		if noColor {
			c.DisableColor()
		}
		c.Fprintln(w, v.Warning.Text)
		fmt.Fprintln(w)
	}
	for _, l := range v.Summary {
		fmt.Fprintln(w, l.String())
	}
	title := color.New(color.FgCyan, color.Bold)
	if noColor {
		title.DisableColor()
	}
	for _, p := range v.Panels {
		fmt.Fprintln(w)
		title.Fprintln(w, p.Title)
		fmt.Fprintln(w, p.Body)
	}
}
