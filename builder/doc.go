// Package builder constructs graph-state fixtures: common entanglement
// topologies (linear and 2D cluster states, GHZ-type stars, rings, complete and
// bipartite graphs, random G(n,p) graphs) with optional initial decorations.
//
// The package offers:
//
//   - Build(gsOpts, bopts, cons...): single orchestrator returning a
//     *graphstate.GraphState. gsOpts choose the backend (graphstate.WithStore).
//   - Constructors: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//   - Options: WithSeed / WithRand (stochastic paths), WithOffset (first node
//     ID), WithDecorator (initial flags; see RandomFlags and Uniform).
//   - Shared constants: Min* sizes, probability bounds, Method* tags.
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options, seed and constructor order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before mutating and return wrapped sentinels
//     (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
package builder
