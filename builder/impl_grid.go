// SPDX-License-Identifier: MIT
// Package: graphsim/builder
//
// impl_grid.go: Grid(rows, cols): the 2D cluster state, the universal resource
// for measurement-based computation.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • Node (r,c) has ID offset + r*cols + c (row-major).
//   • For each (r,c) emit Right then Bottom where present.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsim/graphstate"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(gs *graphstate.GraphState, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewNodes)
		}
		if err := addNodes(gs, MethodGrid, cfg, rows*cols); err != nil {
			return err
		}
		id := func(r, c int) int { return cfg.offset + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(gs, MethodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(gs, MethodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
