// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

// Manager runs controller events against per-session state.
type Manager struct {
	store  Store
	engine *fullrank.Engine
	seeds  design.SeedSource
	locks  *keyedMutex
	limits *limiterSet
	logger zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithRateLimit enables per-session event limiting.
func WithRateLimit(cfg RateConfig) Option {
	return func(m *Manager) { m.limits = newLimiterSet(cfg) }
}

// NewManager wires a store, render engine and seed source.
func NewManager(store Store, engine *fullrank.Engine, seeds design.SeedSource, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		engine: engine,
		seeds:  seeds,
		locks:  newKeyedMutex(),
		limits: newLimiterSet(RateConfig{}),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewID returns a fresh random session ID.
func NewID() string { return uuid.NewString() }

// ValidID reports whether id is a well-formed session ID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}

// Current renders the session's state, starting from fullrank.Initial for
// an unknown ID. Nothing is written for an unknown ID; a stored session is
// saved again so that its TTL slides with use. A failed refresh is logged and
// does not fail the render.
func (m *Manager) Current(ctx context.Context, id string) (fullrank.Result, error) {
	if !ValidID(id) {
		return fullrank.Result{}, sessionErrorf("Current", ErrInvalidID)
	}
	unlock := m.locks.Lock(id)
	defer unlock()

	st, found, err := m.load(ctx, id)
	if err != nil {
		return fullrank.Result{}, sessionErrorf("Current", err)
	}
	if found {
		if err = m.store.Save(ctx, id, st); err != nil {
			m.logger.Warn().Err(err).Str("session", id).Msg("refresh session ttl")
		}
	}

	return m.engine.Render(ctx, st)
}

// Apply folds ev into the session's state, saves it and renders it. The
// state is saved whenever it changed or was already stored, so every accepted
// event also refreshes the session TTL.
// Errors:
//   - ErrInvalidID, ErrRateLimited, ErrStoreUnavailable.
//   - fullrank.ErrUnknownPreset, ErrShapeOutOfRange, ErrUnknownEvent: the
//     stored state is left untouched.
func (m *Manager) Apply(ctx context.Context, id string, ev fullrank.Event) (fullrank.Result, error) {
	if !ValidID(id) {
		return fullrank.Result{}, sessionErrorf("Apply", ErrInvalidID)
	}
	if !m.limits.allow(id) {
		return fullrank.Result{}, sessionErrorf("Apply", ErrRateLimited)
	}
	unlock := m.locks.Lock(id)
	defer unlock()

	st, found, err := m.load(ctx, id)
	if err != nil {
		return fullrank.Result{}, sessionErrorf("Apply", err)
	}
	next, err := fullrank.Dispatch(st, ev, m.seeds)
	if err != nil {
		return fullrank.Result{}, sessionErrorf("Apply", err)
	}
	if found || next != st {
		if err = m.store.Save(ctx, id, next); err != nil {
			m.logger.Error().Err(err).Str("session", id).Msg("save session state")
			return fullrank.Result{}, sessionErrorf("Apply", asUnavailable(err))
		}
	}
	m.logger.Debug().Str("session", id).Str("event", string(ev.Type)).
		Int("n", next.N).Int("p", next.P).Int64("seed", next.Seed).Msg("event applied")

	return m.engine.Render(ctx, next)
}

// Reset forgets the session; the next render starts from fullrank.Initial.
func (m *Manager) Reset(ctx context.Context, id string) error {
	if !ValidID(id) {
		return sessionErrorf("Reset", ErrInvalidID)
	}
	unlock := m.locks.Lock(id)
	defer unlock()
	if err := m.store.Delete(ctx, id); err != nil {
		return sessionErrorf("Reset", asUnavailable(err))
	}

	return nil
}

// sweeper is implemented by stores that expire entries in process.
type sweeper interface{ Sweep() int }

// Housekeep drops idle rate limiters and, for in-process stores, expired
// sessions. The server calls it periodically.
func (m *Manager) Housekeep() {
	if n := m.limits.prune(); n > 0 {
		m.logger.Debug().Int("dropped", n).Msg("pruned idle session limiters")
	}
	if sw, ok := m.store.(sweeper); ok {
		if n := sw.Sweep(); n > 0 {
			m.logger.Debug().Int("dropped", n).Msg("swept expired sessions")
		}
	}
}

// RunHousekeeping calls Housekeep every interval until ctx is done.
func (m *Manager) RunHousekeeping(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Housekeep()
		}
	}
}

// load returns the stored state and whether one was found. An absent
// state, or one that no longer passes validation (bounds changed), yields
// fullrank.Initial with found=false.
func (m *Manager) load(ctx context.Context, id string) (fullrank.State, bool, error) {
	st, found, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCorruptState) {
			m.logger.Warn().Err(err).Str("session", id).Msg("discarding corrupt session state")
			return fullrank.Initial(), false, nil
		}
		m.logger.Error().Err(err).Str("session", id).Msg("load session state")
		return fullrank.State{}, false, asUnavailable(err)
	}
	if !found {
		return fullrank.Initial(), false, nil
	}
	if err = st.Validate(); err != nil {
		m.logger.Warn().Err(err).Str("session", id).Msg("stored state out of bounds")
		return fullrank.Initial(), false, nil
	}

	return st, true, nil
}
