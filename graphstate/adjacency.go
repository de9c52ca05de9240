// SPDX-License-Identifier: MIT

package graphstate

import "strings"

// Adjacency is the 0/1 adjacency matrix Γ of the underlying graph. Row and
// column i belong to IDs[i], which follows Nodes() and therefore the qubit
// order of ToStatevector. Decorations are not part of Γ.
type Adjacency struct {
	IDs   []int
	Index map[int]int
	Rows  [][]uint8
}

// Adjacency materializes Γ.
// Complexity: O(|V|² + |E|)
func (g *GraphState) Adjacency() Adjacency {
	ids := g.store.Nodes()
	a := Adjacency{
		IDs:   ids,
		Index: make(map[int]int, len(ids)),
		Rows:  make([][]uint8, len(ids)),
	}
	for i, id := range ids {
		a.Index[id] = i
		a.Rows[i] = make([]uint8, len(ids))
	}
	for _, e := range g.store.Edges() {
		u, v := a.Index[e.U], a.Index[e.V]
		a.Rows[u][v], a.Rows[v][u] = 1, 1
	}

	return a
}

// Degrees returns the row sums in IDs order.
func (a Adjacency) Degrees() []int {
	out := make([]int, len(a.Rows))
	for i, row := range a.Rows {
		for _, x := range row {
			out[i] += int(x)
		}
	}

	return out
}

// String renders one row per line, e.g. "011\n101\n110" for a triangle.
func (a Adjacency) String() string {
	var b strings.Builder
	for i, row := range a.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, x := range row {
			b.WriteByte('0' + x)
		}
	}

	return b.String()
}
