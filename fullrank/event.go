// SPDX-License-Identifier: MIT

package fullrank

import (
	"fmt"

	"github.com/tomtranjr/msds601-highdim-group9/design"
)

// EventType names a controller input.
type EventType string

const (
	EventPreset     EventType = "preset"
	EventRegenerate EventType = "regenerate"
	EventShape      EventType = "shape"
	EventRender     EventType = "render"
)

// Event is one user input. Preset is read for EventPreset; N and P for EventShape.
type Event struct {
	Type   EventType `json:"type"`
	Preset string    `json:"preset,omitempty"`
	N      int       `json:"n,omitempty"`
	P      int       `json:"p,omitempty"`
}

// Dispatch folds ev into s and returns the next state. On error s is
// returned unchanged.
func Dispatch(s State, ev Event, src design.SeedSource) (State, error) {
	switch ev.Type {
	case EventPreset:
		return s.ApplyPreset(ev.Preset)
	case EventRegenerate:
		if src == nil {
			return s, fullrankErrorf("Dispatch", ErrNoSeedSource)
		}
		return s.Regenerate(src), nil
	case EventShape:
		return s.WithShape(ev.N, ev.P)
	case EventRender:
		return s, nil
	default:
		return s, fullrankErrorf("Dispatch", fmt.Errorf("%q: %w", ev.Type, ErrUnknownEvent))
	}
}
