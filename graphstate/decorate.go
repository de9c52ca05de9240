// SPDX-License-Identifier: MIT

package graphstate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphsim/clifford"
	"github.com/katalvlaran/graphsim/core"
)

// FlipFill toggles the hollow flag (a local H on the outside).
func (g *GraphState) FlipFill(id int) error {
	return g.update(id, func(f *core.Flags) { f.Hollow = !f.Hollow })
}

// FlipSign toggles the sign flag. Unlike Z, it never touches neighbors: it
// multiplies by Z underneath the node's H and S.
func (g *GraphState) FlipSign(id int) error {
	return g.update(id, func(f *core.Flags) { f.Sign = !f.Sign })
}

// Advance toggles the loop flag underneath H; clearing a set loop also
// toggles the sign, since S·S = Z.
func (g *GraphState) Advance(id int) error {
	return g.update(id, func(f *core.Flags) {
		if f.Loop {
			f.Loop = false
			f.Sign = !f.Sign
			return
		}
		f.Loop = true
	})
}

// VOPs reads every node's decoration back as a single Clifford
// C = H^hollow · S^loop · Z^sign.
func (g *GraphState) VOPs() map[int]clifford.Clifford {
	ids := g.store.Nodes()
	out := make(map[int]clifford.Clifford, len(ids))
	for _, id := range ids {
		f, err := g.store.Flags(id)
		if err != nil {
			continue
		}
		out[id] = vopOf(f)
	}

	return out
}

func vopOf(f core.Flags) clifford.Clifford {
	c := clifford.I
	if f.Sign {
		c = clifford.Z.Mul(c)
	}
	if f.Loop {
		c = clifford.S.Mul(c)
	}
	if f.Hollow {
		c = clifford.H.Mul(c)
	}

	return c
}

// ApplyVOPs applies vops[id] to each listed node as a gate sequence. Nodes are
// processed in ascending ID order; within a node the HSZ word of the Clifford
// is walked right to left, so the rightmost factor acts first.
//
// All nodes and indices are validated before anything is applied.
func (g *GraphState) ApplyVOPs(vops map[int]clifford.Clifford) error {
	ids := make([]int, 0, len(vops))
	for id, c := range vops {
		if !c.Valid() {
			return fmt.Errorf("node %d: %w: %d", id, clifford.ErrInvalidClifford, uint8(c))
		}
		if !g.store.HasNode(id) {
			return fmt.Errorf("node %d: %w", id, core.ErrNodeNotFound)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		word := vops[id].HSZ()
		for k := len(word) - 1; k >= 0; k-- {
			if err := g.applyGate(word[k], id); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *GraphState) applyGate(gate clifford.Gate, id int) error {
	switch gate {
	case clifford.GateH:
		return g.H(id)
	case clifford.GateS:
		return g.S(id)
	default:
		return g.Z(id)
	}
}
