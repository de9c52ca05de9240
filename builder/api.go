// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// api.go - public entry point for building graph-state fixtures.
//
// Design contract:
//   - One orchestrator: Build(gsOpts, bopts, cons...). Creates the GraphState,
//     resolves cfg, runs cons in order, then applies the decorator.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical states.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//
// AI-Hints:
//   - Every constructor numbers its nodes from cfg.offset, so two constructors
//     in one Build overlap and their edges merge on the shared IDs.
//   - Use WithSeed(...) to freeze RandomSparse and RandomFlags.

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
)

// Constructor applies a deterministic topology to gs using the resolved config.
// Constructors MUST validate parameters before the first mutation.
type Constructor func(gs *graphstate.GraphState, cfg builderConfig) error

// Decorator returns the initial Flags of node id. rng is the builder's RNG
// (nil unless WithSeed/WithRand was given).
type Decorator func(id int, rng *rand.Rand) core.Flags

// Build creates a GraphState with gsOpts, resolves the builder configuration
// from bopts, applies all constructors in order, and finally decorates every
// node when WithDecorator was supplied (nodes visited in ascending ID order so
// RNG draws are backend-independent).
//
// Errors: constructor errors are wrapped with "Build: %w"; callers branch with
// errors.Is against ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed.
func Build(gsOpts []graphstate.Option, bopts []Option, cons ...Constructor) (*graphstate.GraphState, error) {
	gs, err := graphstate.New(gsOpts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(gs, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if cfg.decorate != nil {
		ids := gs.Nodes()
		sort.Ints(ids)
		for _, id := range ids {
			if err := gs.SetFlags(id, cfg.decorate(id, cfg.rng)); err != nil {
				return nil, fmt.Errorf("Build: decorate %d: %w", id, err)
			}
		}
	}

	return gs, nil
}

// RandomFlags is a Decorator drawing each flag independently with probability
// 1/2. Without an RNG it leaves nodes undecorated.
func RandomFlags(_ int, rng *rand.Rand) core.Flags {
	if rng == nil {
		return core.Flags{}
	}
	bits := rng.Intn(8)

	return core.Flags{Hollow: bits&1 != 0, Loop: bits&2 != 0, Sign: bits&4 != 0}
}

// Uniform returns a Decorator giving every node the same flags.
func Uniform(f core.Flags) Decorator {
	return func(int, *rand.Rand) core.Flags { return f }
}

// Topology factories, implemented in impl_*.go. Node IDs are cfg.offset+i.
//
//	Path(n)              linear cluster state P_n, n ≥ 2
//	Cycle(n)             ring C_n, n ≥ 3
//	Star(n)              center offset, n-1 leaves (GHZ-type), n ≥ 2
//	Wheel(n)             hub offset + ring of n-1, n ≥ 4
//	Complete(n)          K_n, n ≥ 1
//	CompleteBipartite(a,b)  K_{a,b}, a,b ≥ 1
//	Grid(rows, cols)     2D cluster state, row-major IDs
//	RandomSparse(n, p)   Erdős–Rényi G(n,p)

func addNodes(gs *graphstate.GraphState, method string, cfg builderConfig, n int) error {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = cfg.offset + i
	}
	if err := gs.AddNodes(ids...); err != nil {
		return fmt.Errorf("%s: AddNodes: %w", method, err)
	}

	return nil
}

func addEdge(gs *graphstate.GraphState, method string, u, v int) error {
	if err := gs.AddEdges(core.Edge{U: u, V: v}); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, u, v, err)
	}

	return nil
}
