// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_star.go - Star(n): center plus n-1 leaves. Up to local Hadamards on the
// leaves this is the n-qubit GHZ state.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Center is node offset; leaves offset+1..offset+n-1, connected in order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodStar, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(gs, MethodStar, cfg.offset, cfg.offset+i); err != nil {
				return err
			}
		}

		return nil
	}
}
