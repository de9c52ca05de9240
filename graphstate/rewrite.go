// SPDX-License-Identifier: MIT

package graphstate

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// FillStatus reports how EquivalentFillNode left a node.
type FillStatus int

const (
	// FillConnected: the node is filled and has at least one neighbor.
	FillConnected FillStatus = 0
	// FillHollowIsolated: the node is hollow, loopless and isolated; no rewrite
	// can fill it.
	FillHollowIsolated FillStatus = 1
	// FillIsolated: the node was already filled and has no neighbors.
	FillIsolated FillStatus = 2
)

func (s FillStatus) String() string {
	switch s {
	case FillConnected:
		return "connected"
	case FillHollowIsolated:
		return "hollow-isolated"
	case FillIsolated:
		return "isolated"
	}

	return fmt.Sprintf("FillStatus(%d)", int(s))
}

// LocalComplement toggles every edge between distinct neighbors of id. The
// node's flags and its own edges are untouched; applying it twice is the
// identity.
// Complexity: O(deg(id)²)
func (g *GraphState) LocalComplement(id int) error {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return err
	}
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if err := g.store.ToggleEdge(nbrs[i], nbrs[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// EquivalentGraphE1 rewrites around a looped node into a different decorated
// graph representing the same state: toggle hollow, complement, Advance every
// neighbor, toggle the node's sign, and if that sign ends up set flip every
// neighbor's sign. Returns ErrNoLoop if id has no loop.
// Complexity: O(deg(id)²)
func (g *GraphState) EquivalentGraphE1(id int) error {
	f, err := g.flags(id)
	if err != nil {
		return err
	}
	if !f.Loop {
		return fmt.Errorf("E1 on %d: %w", id, ErrNoLoop)
	}

	if err := g.FlipFill(id); err != nil {
		return err
	}
	if err := g.LocalComplement(id); err != nil {
		return err
	}
	if err := g.forNeighbors(id, g.Advance); err != nil {
		return err
	}
	if err := g.FlipSign(id); err != nil {
		return err
	}
	if f, err = g.flags(id); err != nil {
		return err
	}
	if f.Sign {
		return g.forNeighbors(id, g.FlipSign)
	}

	return nil
}

// EquivalentGraphE2 moves hollowness across the edge {a, b} between two
// loopless nodes: toggle hollow on both, complement along the edge (a, b, a),
// flip the sign of every common neighbor, then re-express each endpoint's
// original sign as a sign on itself and its neighbors.
//
// Errors: ErrSameNode, core.ErrNodeNotFound, ErrNotConnected, ErrHasLoop.
// Complexity: O((deg(a)+deg(b))²)
func (g *GraphState) EquivalentGraphE2(a, b int) error {
	if a == b {
		return fmt.Errorf("E2 on %d: %w", a, ErrSameNode)
	}
	fa, err := g.flags(a)
	if err != nil {
		return err
	}
	fb, err := g.flags(b)
	if err != nil {
		return err
	}
	if !g.store.HasEdge(a, b) {
		return fmt.Errorf("E2 on %d-%d: %w", a, b, ErrNotConnected)
	}
	if fa.Loop || fb.Loop {
		return fmt.Errorf("E2 on %d-%d: %w", a, b, ErrHasLoop)
	}

	if err := g.FlipFill(a); err != nil {
		return err
	}
	if err := g.FlipFill(b); err != nil {
		return err
	}
	for _, id := range [...]int{a, b, a} {
		if err := g.LocalComplement(id); err != nil {
			return err
		}
	}

	na, err := g.Neighbors(a)
	if err != nil {
		return err
	}
	nb, err := g.Neighbors(b)
	if err != nil {
		return err
	}
	for _, c := range intersectSorted(na, nb) {
		if err := g.FlipSign(c); err != nil {
			return err
		}
	}

	for _, side := range [...]struct {
		id   int
		sign bool
	}{{a, fa.Sign}, {b, fb.Sign}} {
		if !side.sign {
			continue
		}
		if err := g.FlipSign(side.id); err != nil {
			return err
		}
		if err := g.forNeighbors(side.id, g.FlipSign); err != nil {
			return err
		}
	}

	return nil
}

// EquivalentFillNode makes id non-hollow using only E1 and E2.
//
//  1. Filled: FillIsolated without neighbors, else FillConnected; no change.
//  2. Hollow with loop: E1(id).
//  3. Hollow, loopless, isolated: FillHollowIsolated; no change.
//  4. Otherwise E2 with the first loopless neighbor (ascending ID), or, when
//     every neighbor has a loop, E1 on the first neighbor (which gives id a
//     loop) followed by E1 on id.
//
// Complexity: O(deg²) of the nodes rewritten.
func (g *GraphState) EquivalentFillNode(id int) (FillStatus, error) {
	f, err := g.flags(id)
	if err != nil {
		return 0, err
	}
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	if !f.Hollow {
		if len(nbrs) == 0 {
			return FillIsolated, nil
		}
		return FillConnected, nil
	}
	if f.Loop {
		return FillConnected, g.EquivalentGraphE1(id)
	}
	if len(nbrs) == 0 {
		return FillHollowIsolated, nil
	}

	for _, n := range nbrs {
		fn, err := g.flags(n)
		if err != nil {
			return 0, err
		}
		if !fn.Loop {
			return FillConnected, g.EquivalentGraphE2(id, n)
		}
	}

	if err := g.EquivalentGraphE1(nbrs[0]); err != nil {
		return 0, err
	}

	return FillConnected, g.EquivalentGraphE1(id)
}

// intersectSorted returns the common elements of two ascending slices.
func intersectSorted(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// requireNode returns a wrapped core.ErrNodeNotFound when id is absent.
func (g *GraphState) requireNode(id int) error {
	if !g.store.HasNode(id) {
		return fmt.Errorf("node %d: %w", id, core.ErrNodeNotFound)
	}

	return nil
}
