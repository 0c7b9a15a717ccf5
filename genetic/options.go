package genetic

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Option customizes an Engine.
type Option func(*engineOptions)

// engineOptions accumulates Option values before New applies them.
type engineOptions struct {
	rng      *rand.Rand
	logger   *zap.Logger
	observer Observer
	now      func() time.Time
}

// WithRand injects the RNG stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genetic: WithRand(nil)")
	}

	return func(o *engineOptions) { o.rng = r }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("genetic: WithLogger(nil)")
	}

	return func(o *engineOptions) { o.logger = l }
}

// WithObserver registers a per-generation hook. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("genetic: WithObserver(nil)")
	}

	return func(o *engineOptions) { o.observer = obs }
}

// WithClock replaces time.Now for deadline checks. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("genetic: WithClock(nil)")
	}

	return func(o *engineOptions) { o.now = now }
}
