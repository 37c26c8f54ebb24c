// SPDX-License-Identifier: MIT

package fullrank

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/matrix"
	"github.com/tomtranjr/msds601-highdim-group9/rank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
)

// Result is one completed render.
type Result struct {
	State  State         `json:"state"`
	View   report.View   `json:"view"`
	Report rank.Report   `json:"-"`
	Took   time.Duration `json:"-"`
}

// Observer is notified after every render attempt. res is the zero Result
// when err != nil.
type Observer interface {
	ObserveRender(res Result, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(res Result, err error)

// ObserveRender calls f(res, err).
func (f ObserverFunc) ObserveRender(res Result, err error) { f(res, err) }

// Engine runs the render pipeline.
type Engine struct {
	logger   zerolog.Logger
	observer Observer
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineLogger sets the logger for debug diagnostics.
func WithEngineLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithObserver registers o to be told about every render.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// NewEngine returns an Engine with a no-op logger and no observer.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Render computes the view for s.
// Implementation:
//   - Stage 1: honor ctx cancellation before any work.
//   - Stage 2: X = design.Generate(s.Seed, s.N, s.P); p == 0 skips generation
//     and yields the degenerate report.
//   - Stage 3: rank.Analyze(X) then report.Format(rep, s.N, s.P).
//
// Errors:
//   - ctx.Err(); design.ErrBadShape for n <= 0 or p < 0; rank.ErrInvalidDesign.
//
// Render does not enforce the slider bounds; callers that accept user input
// validate with State.Validate first.
func (e *Engine) Render(ctx context.Context, s State) (Result, error) {
	start := e.now()
	res, err := e.render(ctx, s)
	res.Took = e.now().Sub(start)
	if err != nil {
		e.logger.Debug().Err(err).Int("n", s.N).Int("p", s.P).Int64("seed", s.Seed).Msg("render failed")
		res = Result{}
	}
	if e.observer != nil {
		e.observer.ObserveRender(res, err)
	}

	return res, err
}

func (e *Engine) render(ctx context.Context, s State) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fullrankErrorf("Render", err)
	}

	var X matrix.Matrix // stays nil for p == 0
	if s.P != 0 || s.N <= 0 {
		d, err := design.Generate(s.Seed, s.N, s.P)
		if err != nil {
			return Result{}, fullrankErrorf("Render", err)
		}
		X = d
	}

	rep, err := rank.Analyze(X, rank.WithLogger(e.logger))
	if err != nil {
		return Result{}, fullrankErrorf("Render", err)
	}

	ev := e.logger.Debug().
		Int64("seed", s.Seed).
		Int("n", s.N).
		Int("p", s.P).
		Int("rank", rep.Rank).
		Str("cond", report.FormatCondition(rep.Condition)).
		Str("inverse", InverseKind(rep.Inverse))
	if inv, ok := rep.Inverse.(rank.InversePresent); ok {
		ev = ev.Float64("identity_residual", inv.Residual)
	}
	ev.Msg("render")

	return Result{State: s, View: report.Format(rep, s.N, s.P), Report: rep}, nil
}

// InverseKind names the inverse variant for logs and metrics labels.
func InverseKind(r rank.InverseResult) string {
	switch r.(type) {
	case rank.InversePresent:
		return "present"
	case rank.InverseSingular:
		return "singular"
	case rank.InverseFailed:
		return "failed"
	case rank.InverseNotApplicable:
		return "not_applicable"
	default:
		return "unknown"
	}
}
