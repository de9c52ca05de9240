// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG, nil decorator,
//     negative offset). Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes construction by mutating a builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and decorators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOffset numbers nodes from first instead of 0.
func WithOffset(first int) Option {
	if first < 0 {
		panic("builder: WithOffset(negative)")
	}
	return func(c *builderConfig) { c.offset = first }
}

// WithDecorator sets the initial decoration of every node; see RandomFlags
// and Uniform.
func WithDecorator(d Decorator) Option {
	if d == nil {
		panic("builder: WithDecorator(nil)")
	}
	return func(c *builderConfig) { c.decorate = d }
}
