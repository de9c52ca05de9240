// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, Degrees, Adjacency, Isolates).
// Determinism:
//   - Neighbors() returns IDs sorted ascending.
//   - Degrees()/Isolates() follow Nodes() order.
//   - Adjacency() per-node slices sorted ascending.
// Concurrency:
//   - Read operations hold muNode then muAdj read locks.
// AI-HINT (file):
//   - Neighbors(id) is a snapshot: mutating the graph afterwards never changes the returned slice.
//   - "First neighbor satisfying P" in the engine means first in ascending ID order.

package core

import "sort"

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Implementation:
//   - Stage 1: Acquire muNode and muAdj read locks (in that order).
//   - Stage 2: Validate node existence (ErrNodeNotFound).
//   - Stage 3: Copy the bucket keys and sort.
//
// Behavior highlights:
//   - Fresh slice; safe to retain while the graph is mutated.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	return sortedKeys(g.adj[id]), nil
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNodeNotFound if the node is missing.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adj[id]), nil
}

// Degrees returns (node, degree) pairs in Nodes() order.
// Complexity: O(V).
func (g *Graph) Degrees() []NodeDegree {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]NodeDegree, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, NodeDegree{ID: id, Degree: len(g.adj[id])})
	}

	return out
}

// Adjacency returns a snapshot node → sorted neighbor IDs for every node,
// isolated nodes included with an empty slice.
//
// Determinism:
//   - Per-node slices are sorted; map key order is not deterministic (Go map rule).
//     Use Nodes() to obtain a stable key order.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func (g *Graph) Adjacency() map[int][]int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make(map[int][]int, len(g.nodes))
	for id := range g.nodes {
		out[id] = sortedKeys(g.adj[id])
	}

	return out
}

// Isolates returns nodes with no incident edges, in Nodes() order.
// Complexity: O(V).
func (g *Graph) Isolates() []int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	var out []int
	for _, id := range g.order {
		if len(g.adj[id]) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// sortedKeys copies the keys of a neighbor bucket and sorts them ascending.
func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
