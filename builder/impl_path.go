// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_path.go - Path(n): the linear cluster state.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes offset..offset+n-1; edges (i-1, i) for i = 1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodPath, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(gs, MethodPath, cfg.offset+i-1, cfg.offset+i); err != nil {
				return err
			}
		}

		return nil
	}
}
