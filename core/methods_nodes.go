// File: methods_nodes.go
// Role: Node lifecycle, decoration access & node queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order (removed IDs drop out; re-added IDs go last).
//
// Concurrency:
//   - Node catalog and flags protected by muNode.
//   - Adjacency bootstrap/cleanup under muAdj (lock order muNode -> muAdj).
//
// AI-Hints (file):
//   - Nodes() is the stable enumeration surface for state-vector export.
//   - RemoveNode cascades: no dangling adjacency survives a removal.
package core

// AddNode inserts a node with zero Flags if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate id ≥ 0 (ErrNegativeNodeID).
//   - Stage 2: Under muNode and muAdj write locks, register the node and its adjacency bucket.
//
// Behavior highlights:
//   - Adding an existing node is a no-op; its Flags are preserved.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.addNodeLocked(id)

	return nil
}

// AddNodes inserts every id in order. Validation happens before any insertion,
// so a negative ID leaves the graph unchanged.
//
// Complexity:
//   - Time O(k), Space O(k).
func (g *Graph) AddNodes(ids ...int) error {
	for _, id := range ids {
		if id < 0 {
			return ErrNegativeNodeID
		}
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, id := range ids {
		g.addNodeLocked(id)
	}

	return nil
}

// addNodeLocked registers id; caller holds both write locks.
func (g *Graph) addNodeLocked(id int) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = &Flags{}
	g.order = append(g.order, id)
	if g.adj[id] == nil {
		g.adj[id] = make(map[int]struct{})
	}
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes a node and all incident edges.
//
// Implementation:
//   - Stage 1: Acquire muNode and muAdj write locks for an atomic topology update.
//   - Stage 2: Verify presence (ErrNodeNotFound).
//   - Stage 3: Unlink id from each neighbor's bucket, drop its own bucket.
//   - Stage 4: Delete from the catalog and the insertion order.
//
// Complexity:
//   - Time O(deg(v) + V) (order slice compaction), Space O(1).
func (g *Graph) RemoveNode(id int) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	g.removeNodeLocked(id)

	return nil
}

// RemoveNodes removes every listed node. All IDs are checked first; a missing
// ID aborts with ErrNodeNotFound and nothing is removed. Duplicates are tolerated.
func (g *Graph) RemoveNodes(ids ...int) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return ErrNodeNotFound
		}
	}
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			g.removeNodeLocked(id)
		}
	}

	return nil
}

// removeNodeLocked performs the cascade; caller holds both write locks.
func (g *Graph) removeNodeLocked(id int) {
	for nbr := range g.adj[id] {
		delete(g.adj[nbr], id)
		g.edgeCount--
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Nodes returns live node IDs in insertion order.
//
// Complexity:
//   - Time O(V), Space O(V) (fresh slice, safe to retain).
func (g *Graph) Nodes() []int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Flags returns a copy of the node's decoration.
//
// Errors:
//   - ErrNodeNotFound if the node is missing.
//
// Complexity: O(1).
func (g *Graph) Flags(id int) (Flags, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	f, ok := g.nodes[id]
	if !ok {
		return Flags{}, ErrNodeNotFound
	}

	return *f, nil
}

// SetFlags overwrites the node's decoration.
//
// Errors:
//   - ErrNodeNotFound if the node is missing (no auto-create).
//
// Complexity: O(1).
func (g *Graph) SetFlags(id int, f Flags) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	cur, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	*cur = f

	return nil
}
