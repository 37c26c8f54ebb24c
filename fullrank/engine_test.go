// SPDX-License-Identifier: MIT
package fullrank_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
	"github.com/tomtranjr/msds601-highdim-group9/rank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
)

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	e := fullrank.NewEngine()
	s := fullrank.State{N: 40, P: 8, Seed: 17}
	a, err := e.Render(context.Background(), s)
	require.NoError(t, err)
	b, err := e.Render(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, a.View, b.View)
	require.Equal(t, s, a.State)
}

func TestRender_RegenerateChangesMatrix(t *testing.T) {
	t.Parallel()

	e := fullrank.NewEngine()
	src := design.NewDefaultSource()
	s := fullrank.Initial()
	before, err := e.Render(context.Background(), s)
	require.NoError(t, err)

	next := s.Regenerate(src)
	require.Equal(t, s.N, next.N)
	require.Equal(t, s.P, next.P)
	require.NotEqual(t, s.Seed, next.Seed)

	after, err := e.Render(context.Background(), next)
	require.NoError(t, err)
	require.NotEqual(t, before.View.Panels[0].Body, after.View.Panels[0].Body)
}

func TestRender_PresetKeepsSeed(t *testing.T) {
	t.Parallel()

	e := fullrank.NewEngine()
	s := fullrank.State{N: 100, P: 5, Seed: 99}
	sq, err := s.ApplyPreset("square")
	require.NoError(t, err)
	require.Equal(t, int64(99), sq.Seed)

	res, err := e.Render(context.Background(), sq)
	require.NoError(t, err)
	require.Equal(t, "n (rows of X): 10", res.View.Summary[0].String())
	require.Equal(t, "p (columns of X): 10", res.View.Summary[1].String())
}

func TestRender_Wide(t *testing.T) {
	t.Parallel()

	res, err := fullrank.NewEngine().Render(context.Background(), fullrank.State{N: 6, P: 10, Seed: 0})
	require.NoError(t, err)
	require.NotNil(t, res.View.Warning)
	require.Equal(t, report.WarningRank, res.View.Warning.Text)
	require.Equal(t, rank.MsgSingular, res.View.Panels[2].Body)
}

func TestRender_Degenerate(t *testing.T) {
	t.Parallel()

	res, err := fullrank.NewEngine().Render(context.Background(), fullrank.State{N: 5, P: 0})
	require.NoError(t, err)
	require.True(t, res.Report.Degenerate)
	require.IsType(t, rank.InverseNotApplicable{}, res.Report.Inverse)
	require.Equal(t, report.WarningDegenerate, res.View.Warning.Text)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	var calls []error
	e := fullrank.NewEngine(fullrank.WithObserver(fullrank.ObserverFunc(func(_ fullrank.Result, err error) {
		calls = append(calls, err)
	})))

	_, err := e.Render(context.Background(), fullrank.State{N: 0, P: 3})
	require.ErrorIs(t, err, design.ErrBadShape)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Render(ctx, fullrank.Initial())
	require.ErrorIs(t, err, context.Canceled)

	_, err = e.Render(context.Background(), fullrank.Initial())
	require.NoError(t, err)

	require.Len(t, calls, 3)
	require.Error(t, calls[0])
	require.Error(t, calls[1])
	require.NoError(t, calls[2])
}

func TestRender_DebugLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := fullrank.NewEngine(fullrank.WithEngineLogger(logger)).
		Render(context.Background(), fullrank.State{N: 30, P: 3, Seed: 5})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"render"`)
	require.Contains(t, buf.String(), `"seed":5`)
}

func TestInverseKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, "present", fullrank.InverseKind(rank.InversePresent{}))
	require.Equal(t, "singular", fullrank.InverseKind(rank.InverseSingular{}))
	require.Equal(t, "failed", fullrank.InverseKind(rank.InverseFailed{}))
	require.Equal(t, "not_applicable", fullrank.InverseKind(rank.InverseNotApplicable{}))
	require.Equal(t, "unknown", fullrank.InverseKind(nil))
}
