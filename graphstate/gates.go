// SPDX-License-Identifier: MIT

package graphstate

// H applies a Hadamard gate to the qubit id.
// Complexity: O(1)
func (g *GraphState) H(id int) error {
	return g.FlipFill(id)
}

// Z applies a Pauli Z gate to the qubit id.
//
// On a solid node Z lands directly on the sign. On a hollow node it passes
// through the local H as X, and X_v acting on a graph state equals Z on every
// neighbor; with a loop underneath, S†XS = -Y ∝ XZ adds the node's own Z.
// Complexity: O(deg(id))
func (g *GraphState) Z(id int) error {
	f, err := g.flags(id)
	if err != nil {
		return err
	}
	if !f.Hollow {
		return g.FlipSign(id)
	}
	if err := g.forNeighbors(id, g.FlipSign); err != nil {
		return err
	}
	if f.Loop {
		return g.FlipSign(id)
	}

	return nil
}

// S applies a phase gate to the qubit id.
//
//	solid:            Advance(id).
//	hollow, loop:     clear hollow and loop, LocalComplement(id), Advance every
//	                  neighbor; without a sign on id the neighbors also take a Z.
//	hollow, no loop:  LocalComplement(id), Advance every neighbor; with a sign
//	                  on id the neighbors also take a Z.
//
// Neighbor fan-out reads the neighborhood after LocalComplement returns.
// Complexity: O(deg(id)²)
func (g *GraphState) S(id int) error {
	f, err := g.flags(id)
	if err != nil {
		return err
	}
	if !f.Hollow {
		return g.Advance(id)
	}

	// On the complemented graph S·H·S·Z^sign leaves X on the node when sign is
	// clear and Z when it is set; that X is the neighbor Z fan-out.
	flipNeighbors := f.Sign
	if f.Loop {
		f.Hollow, f.Loop = false, false
		if err := g.store.SetFlags(id, f); err != nil {
			return err
		}
		flipNeighbors = !f.Sign
	}
	if err := g.LocalComplement(id); err != nil {
		return err
	}
	if err := g.forNeighbors(id, g.Advance); err != nil {
		return err
	}
	if flipNeighbors {
		return g.forNeighbors(id, g.FlipSign)
	}

	return nil
}
