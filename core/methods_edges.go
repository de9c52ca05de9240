// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/RemoveEdge/ToggleEdge) and edge queries.
//
// Determinism:
//   - Edges() returns canonical pairs (U<V) sorted by (U, V).
//
// Concurrency:
//   - AddEdge may auto-create endpoints, so it takes muNode before muAdj.
//   - Remove/Toggle only read the node catalog (muNode read lock) and write adjacency.
//
// AI-HINT (file):
//   - ToggleEdge is the primitive behind local complementation: present → removed, absent → added.
//   - Self-loops are rejected everywhere with ErrSelfLoop.
package core

import "sort"

// AddEdge inserts the undirected edge {u,v}, auto-adding missing endpoints with
// zero Flags. Adding an existing edge is a no-op (simple graph).
//
// Implementation:
//   - Stage 1: Validate u != v (ErrSelfLoop) and u,v ≥ 0 (ErrNegativeNodeID).
//   - Stage 2: Under both write locks, ensure endpoints, then link both buckets.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := validateEdge(u, v); err != nil {
		return err
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.addNodeLocked(u)
	g.addNodeLocked(v)
	g.linkLocked(u, v)

	return nil
}

// AddEdges inserts every edge in order. All pairs are validated first.
//
// Complexity:
//   - Time O(k), Space O(k) for newly created endpoints.
func (g *Graph) AddEdges(edges ...Edge) error {
	for _, e := range edges {
		if err := validateEdge(e.U, e.V); err != nil {
			return err
		}
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, e := range edges {
		g.addNodeLocked(e.U)
		g.addNodeLocked(e.V)
		g.linkLocked(e.U, e.V)
	}

	return nil
}

// RemoveEdge deletes the edge {u,v}.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is missing.
//   - ErrEdgeNotFound if both exist but are not adjacent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if err := g.requireNodesLocked(u, v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(u, v)

	return nil
}

// RemoveEdges deletes every listed edge; all edges are checked before any removal.
func (g *Graph) RemoveEdges(edges ...Edge) error {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, e := range edges {
		if err := g.requireNodesLocked(e.U, e.V); err != nil {
			return err
		}
		if _, ok := g.adj[e.U][e.V]; !ok {
			return ErrEdgeNotFound
		}
	}
	for _, e := range edges {
		if _, ok := g.adj[e.U][e.V]; ok {
			g.unlinkLocked(e.U, e.V)
		}
	}

	return nil
}

// ToggleEdge flips the presence of {u,v}. Both endpoints must exist.
//
// Errors:
//   - ErrSelfLoop if u == v.
//   - ErrNodeNotFound if either endpoint is missing.
//
// Complexity: O(1).
func (g *Graph) ToggleEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if err := g.requireNodesLocked(u, v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; ok {
		g.unlinkLocked(u, v)
	} else {
		g.linkLocked(u, v)
	}

	return nil
}

// HasEdge reports whether {u,v} is present, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// NumberOfEdges returns 1 if {u,v} is present and 0 otherwise.
// For a total count use EdgeCount.
func (g *Graph) NumberOfEdges(u, v int) int {
	if g.HasEdge(u, v) {
		return 1
	}

	return 0
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// Edges returns all edges in canonical orientation sorted by (U, V).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	SortEdges(out)

	return out
}

// SortEdges orders edges by (U, V) in place.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}

// validateEdge checks the shape of an edge request before any lock is taken.
func validateEdge(u, v int) error {
	if u < 0 || v < 0 {
		return ErrNegativeNodeID
	}
	if u == v {
		return ErrSelfLoop
	}

	return nil
}

// requireNodesLocked reports ErrNodeNotFound unless both nodes exist.
// Caller holds at least muNode read lock.
func (g *Graph) requireNodesLocked(u, v int) error {
	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	return nil
}

// linkLocked adds {u,v} if absent. Caller holds muAdj write lock.
func (g *Graph) linkLocked(u, v int) {
	if _, ok := g.adj[u][v]; ok {
		return
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]struct{})
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]struct{})
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++
}

// unlinkLocked removes {u,v}; the edge must exist. Caller holds muAdj write lock.
func (g *Graph) unlinkLocked(u, v int) {
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--
}
