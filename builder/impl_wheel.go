// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_wheel.go - Wheel(n): hub plus a ring of n-1 nodes.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewNodes).
//   - Hub is node offset; ring offset+1..offset+n-1. Ring edges first, then spokes.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodWheel, cfg, n); err != nil {
			return err
		}
		ring := n - 1
		for i := 0; i < ring; i++ {
			u := cfg.offset + 1 + i
			v := cfg.offset + 1 + (i+1)%ring
			if err := addEdge(gs, MethodWheel, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(gs, MethodWheel, cfg.offset, cfg.offset+i); err != nil {
				return err
			}
		}

		return nil
	}
}
