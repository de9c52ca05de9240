// Package bfs provides breadth-first search over a core.Store, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing Order, Depth and Parent.
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort with an error).
//   - Filter individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components splits a store into its connected components; the graph-state
//     engine uses it to report which qubits are entangled with each other.
//
// Determinism
//
//	core.Store.Neighbors returns ascending IDs and BFS enqueues them in that
//	order, so the visit sequence is reproducible on every backend.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the store is nil.
//   - ErrStartNodeNotFound if the start node does not exist.
//   - ErrOptionViolation   for an invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors         if Neighbors fails for any node.
//   - Wrapped OnVisit hook errors and context errors.
package bfs
