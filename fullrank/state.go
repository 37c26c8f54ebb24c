// SPDX-License-Identifier: MIT

package fullrank

import (
	"fmt"
	"sort"

	"github.com/tomtranjr/msds601-highdim-group9/design"
)

// Slider bounds (inclusive).
const (
	MinRows = 2
	MaxRows = 100
	MinCols = 1
	MaxCols = 10
)

// Shape is a named (n, p) pair.
type Shape struct {
	N int `json:"n"`
	P int `json:"p"`
}

// Presets maps preset keys to shapes.
var Presets = map[string]Shape{
	"normal": {N: 100, P: 5},
	"near":   {N: 40, P: 8},
	"square": {N: 10, P: 10},
	"wide":   {N: 6, P: 10},
}

// PresetKeys returns the preset keys in a stable order.
func PresetKeys() []string {
	keys := make([]string, 0, len(Presets))
	for k := range Presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// State is the per-session controller state.
type State struct {
	N    int   `json:"n"`
	P    int   `json:"p"`
	Seed int64 `json:"seed"`
}

// Initial returns the state of a fresh session: n=100, p=5, seed=0.
func Initial() State {
	return State{N: 100, P: 5, Seed: 0}
}

// ApplyPreset overwrites (N, P) from Presets[key]. The seed is kept.
// An empty key (cleared selection) returns s unchanged.
func (s State) ApplyPreset(key string) (State, error) {
	if key == "" {
		return s, nil
	}
	sh, ok := Presets[key]
	if !ok {
		return s, fullrankErrorf("ApplyPreset", fmt.Errorf("%q: %w", key, ErrUnknownPreset))
	}
	s.N, s.P = sh.N, sh.P

	return s, nil
}

// Regenerate draws a new seed from src. (N, P) are kept.
func (s State) Regenerate(src design.SeedSource) State {
	s.Seed = src.NextSeed()

	return s
}

// WithShape sets (N, P) from the sliders.
// Errors: ErrShapeOutOfRange when n ∉ [2,100] or p ∉ [1,10].
func (s State) WithShape(n, p int) (State, error) {
	if err := ValidateShape(n, p); err != nil {
		return s, fullrankErrorf("WithShape", err)
	}
	s.N, s.P = n, p

	return s, nil
}

// Validate checks the state's shape against the slider bounds.
func (s State) Validate() error {
	return ValidateShape(s.N, s.P)
}

// ValidateShape checks n ∈ [MinRows, MaxRows] and p ∈ [MinCols, MaxCols].
func ValidateShape(n, p int) error {
	if n < MinRows || n > MaxRows || p < MinCols || p > MaxCols {
		return fmt.Errorf("n=%d p=%d: %w", n, p, ErrShapeOutOfRange)
	}

	return nil
}
