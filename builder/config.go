// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (pure/deterministic unless seeded)
//   • offset   = 0     (first node ID)
//   • decorate = nil   (nodes stay undecorated)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// ID of the first node; constructors number nodes offset, offset+1, ...
	offset int
	// Initial decoration applied after all constructors ran.
	decorate Decorator
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
