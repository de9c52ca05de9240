// File: methods_clone.go
// Role: Cloning, induced subgraphs and clearing graph instances.
// Determinism:
//   - Clone/Subgraph preserve relative insertion order of the copied nodes.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Use Clone() to branch a simulation (e.g. compare both measurement choices on one pre-measurement copy).

package core

// Clone returns a deep copy of the Graph: nodes, flags, order and adjacency.
//
// Complexity: O(V + E)
func (g *Graph) Clone() Store {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.copyLocked(g.order)
}

// Subgraph returns the induced subgraph on ids as a new independent Graph.
// Flags are copied. The result keeps the source's relative insertion order.
//
// Errors:
//   - ErrNodeNotFound if any id is missing.
//
// Complexity: O(V + E)
func (g *Graph) Subgraph(ids []int) (Store, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return nil, ErrNodeNotFound
		}
		keep[id] = struct{}{}
	}

	order := make([]int, 0, len(keep))
	for _, id := range g.order {
		if _, ok := keep[id]; ok {
			order = append(order, id)
		}
	}

	return g.copyLocked(order), nil
}

// copyLocked builds the induced copy on order. Caller holds read locks.
func (g *Graph) copyLocked(order []int) *Graph {
	clone := NewGraph(WithCapacity(len(order)))
	for _, id := range order {
		f := *g.nodes[id]
		clone.nodes[id] = &f
		clone.order = append(clone.order, id)
		clone.adj[id] = make(map[int]struct{})
	}
	for _, u := range order {
		for v := range g.adj[u] {
			if _, ok := clone.nodes[v]; ok && u < v {
				clone.linkLocked(u, v)
			}
		}
	}

	return clone
}

// Clear resets the graph to an empty state.
//
// Complexity: O(1) for map reallocation.
// Concurrency: acquires both write locks.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muAdj.Lock()
	g.nodes = make(map[int]*Flags)
	g.order = nil
	g.adj = make(map[int]map[int]struct{})
	g.edgeCount = 0
	g.muAdj.Unlock()
	g.muNode.Unlock()
}
