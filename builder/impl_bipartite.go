// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_bipartite.go - CompleteBipartite(a, b).
//
// Contract:
//   - a ≥ 1 and b ≥ 1 (else ErrTooFewNodes).
//   - Left side offset..offset+a-1, right side offset+a..offset+a+b-1.
//   - Edges (l, r) for l asc, then r asc.
//
// Complexity: O(a·b).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// CompleteBipartite returns a Constructor that builds K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if a < MinPartition || b < MinPartition {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, a, b, MinPartition, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodCompleteBipartite, cfg, a+b); err != nil {
			return err
		}
		for l := 0; l < a; l++ {
			for r := 0; r < b; r++ {
				if err := addEdge(gs, MethodCompleteBipartite, cfg.offset+l, cfg.offset+a+r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
