// SPDX-License-Identifier: MIT

package graphstate

import "fmt"

// Measurements realize the branch selected by choice: outcome 0 is the +1
// eigenvalue, 1 the -1 eigenvalue. Where the state fixes the outcome (isolated
// nodes) the returned bit may differ from choice. The measured node is removed
// in every successful case.

func checkChoice(choice int) error {
	if choice != 0 && choice != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	return nil
}

// MeasureZ measures id in the Z basis.
//
// The node is filled first; for a connected node a choice of 1 flips the sign
// of every remaining neighbor and the outcome is choice. For an isolated node
// the outcome is the node's own sign flag.
func (g *GraphState) MeasureZ(id, choice int) (int, error) {
	if err := checkChoice(choice); err != nil {
		return 0, err
	}
	status, err := g.EquivalentFillNode(id)
	if err != nil {
		return 0, err
	}
	if choice == 1 {
		if err := g.forNeighbors(id, g.FlipSign); err != nil {
			return 0, err
		}
	}

	result := choice
	if status != FillConnected {
		f, err := g.flags(id)
		if err != nil {
			return 0, err
		}
		result = 0
		if f.Sign {
			result = 1
		}
	}

	return result, g.RemoveNode(id)
}

// MeasureX measures id in the X basis. An isolated node is read directly: a
// hollow or looped one yields choice, otherwise the sign (|−⟩ → 1, |+⟩ → 0).
// A connected node is rotated with H and measured in Z.
func (g *GraphState) MeasureX(id, choice int) (int, error) {
	if err := checkChoice(choice); err != nil {
		return 0, err
	}
	f, err := g.flags(id)
	if err != nil {
		return 0, err
	}
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	if len(nbrs) == 0 {
		result := choice
		if !f.Hollow && !f.Loop {
			result = 0
			if f.Sign {
				result = 1
			}
		}
		return result, g.RemoveNode(id)
	}

	if err := g.H(id); err != nil {
		return 0, err
	}

	return g.MeasureZ(id, choice)
}

// MeasureY measures id in the Y basis via the rotation S, Z, H followed by a
// Z measurement.
func (g *GraphState) MeasureY(id, choice int) (int, error) {
	if err := checkChoice(choice); err != nil {
		return 0, err
	}
	if err := g.requireNode(id); err != nil {
		return 0, err
	}
	if err := g.S(id); err != nil {
		return 0, err
	}
	if err := g.Z(id); err != nil {
		return 0, err
	}
	if err := g.H(id); err != nil {
		return 0, err
	}

	return g.MeasureZ(id, choice)
}
