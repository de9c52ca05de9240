// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_complete.go - Complete(n): every pair entangled. Locally equivalent to
// the star, which makes it a good fixture for rewrite tests.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Edges (i, j) for i < j in lexicographic order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodComplete, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(gs, MethodComplete, cfg.offset+i, cfg.offset+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
