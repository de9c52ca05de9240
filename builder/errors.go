// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w ("Path: n=1 < min=2: ...").
//   • Priority when several validations fail: size, then probability, then RNG.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols, partition) below
// the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not proceed (nil constructor
// or a store failure underneath).
var ErrConstructFailed = errors.New("builder: construction failed")
