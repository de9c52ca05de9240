// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_cycle.go - Cycle(n): a ring of n qubits.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Path edges in increasing order, then the closing edge (n-1, 0).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodCycle, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(gs, MethodCycle, cfg.offset+i, cfg.offset+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
