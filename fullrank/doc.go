// SPDX-License-Identifier: MIT

// Package fullrank is the reactive controller of the full-column-rank
// diagnostic.
//
// A session holds one State value (n, p, seed). Inputs arrive as Events and
// are folded into a new State by Dispatch; the old State is never modified.
// Engine.Render turns a State into a report.View by running
// design.Generate → rank.Analyze → report.Format.
//
// Transitions:
//   - preset:     (n, p) ← Presets[key]; seed unchanged.
//   - regenerate: seed ← SeedSource.NextSeed(); (n, p) unchanged.
//   - shape:      (n, p) ← slider values, bounded to [2,100]×[1,10].
//   - render:     no state change.
//
// Render is synchronous and idempotent: equal States produce equal views.
package fullrank
