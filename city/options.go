// SPDX-License-Identifier: MIT
// Package: pathfinding/city
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*generateConfig)).
//   • WithRand panics on nil; range errors surface from Generate.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package city

import "math/rand"

// Option customizes Generate by mutating a generateConfig before use.
type Option func(*generateConfig)

// generateConfig aggregates all knobs used by Generate.
type generateConfig struct {
	rng *rand.Rand // nil means "no randomness" and is rejected by Generate
	p   float64    // probability of an extra edge beyond the Hamiltonian ring
}

// defaultEdgeProbability yields the complete graph K_n.
const defaultEdgeProbability = 1.0

// newGenerateConfig applies opts in order over deterministic defaults.
func newGenerateConfig(opts ...Option) generateConfig {
	cfg := generateConfig{p: defaultEdgeProbability}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("city: WithRand(nil)")
	}
	return func(c *generateConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *generateConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeProbability makes the adjacency sparse: a random Hamiltonian ring is
// always present and every other pair is linked with probability p.
// p == 1 yields the complete graph. Values outside [0,1] surface as
// ErrInvalidProbability from Generate, since p usually comes from config files.
func WithEdgeProbability(p float64) Option {
	return func(c *generateConfig) {
		c.p = p
	}
}
