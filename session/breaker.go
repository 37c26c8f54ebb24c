// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

// BreakerConfig tunes the store circuit breaker.
type BreakerConfig struct {
	Name                string
	MaxRequests         uint32        // probes allowed while half-open
	Interval            time.Duration // closed-state count reset; 0 never resets
	Timeout             time.Duration // open → half-open delay
	ConsecutiveFailures uint32        // failures that trip the breaker
}

// DefaultBreakerConfig returns the settings used when none are configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                "session-store",
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             10 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakerStore guards a Store with a gobreaker.CircuitBreaker. Every error
// it returns wraps ErrStoreUnavailable; a missing session is not a failure.
type BreakerStore struct {
	inner Store
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerStore wraps inner. State changes are logged at warn level.
func NewBreakerStore(inner Store, cfg BreakerConfig, logger zerolog.Logger) *BreakerStore {
	trip := cfg.ConsecutiveFailures
	if trip == 0 {
		trip = DefaultBreakerConfig().ConsecutiveFailures
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("session store breaker state changed")
		},
	}

	return &BreakerStore{inner: inner, cb: gobreaker.NewCircuitBreaker(settings)}
}

// State reports the breaker state ("closed", "half-open", "open").
func (b *BreakerStore) State() string { return b.cb.State().String() }

type loaded struct {
	state fullrank.State
	found bool
}

// Load runs inner.Load through the breaker.
func (b *BreakerStore) Load(ctx context.Context, id string) (fullrank.State, bool, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		st, found, err := b.inner.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		return loaded{state: st, found: found}, nil
	})
	if err != nil {
		return fullrank.State{}, false, breakerErr(err)
	}
	l := out.(loaded)

	return l.state, l.found, nil
}

// Save runs inner.Save through the breaker.
func (b *BreakerStore) Save(ctx context.Context, id string, state fullrank.State) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.inner.Save(ctx, id, state)
	})

	return breakerErr(err)
}

// Delete runs inner.Delete through the breaker.
func (b *BreakerStore) Delete(ctx context.Context, id string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.inner.Delete(ctx, id)
	})

	return breakerErr(err)
}

func breakerErr(err error) error {
	if err == nil {
		return nil
	}

	return asUnavailable(err)
}
