// Package core provides the decorated graph store behind the graph-state engine.
//
// A decorated graph G = (V,E) carries, for every node, three booleans:
//
//   - Hollow – local Hadamard applied
//   - Sign   – local Z applied
//   - Loop   – local S applied
//
// Edges are undirected, simple, and never self-loops (the Loop flag is the
// algebraic analogue of a self-loop and is kept apart from structure).
//
// Why a capability interface?
//
//   - The engine in package graphstate consumes Store, not *Graph.
//   - Two interchangeable backends exist: core.Graph (nested maps, insertion-ordered
//     node iteration) and treegraph.Graph (ordered trees, ascending-ID iteration).
//   - Neighbor slices are always sorted ascending, so "first neighbor satisfying P"
//     is reproducible on every backend.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int) error                 // O(1), idempotent
//	AddNodes(ids ...int) error            // O(k)
//	RemoveNode(id int) error              // O(deg(v)), cascades incident edges
//	RemoveNodes(ids ...int) error         // O(Σ deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error               // O(1), auto-adds endpoints, idempotent
//	AddEdges(edges ...Edge) error         // O(k)
//	RemoveEdge(u, v int) error            // O(1)
//	ToggleEdge(u, v int) error            // O(1), both endpoints must exist
//
//	// Query
//	Neighbors(id int) ([]int, error)      // O(d·log d), sorted asc
//	Degree(id int) (int, error)           // O(1)
//	Degrees() []NodeDegree                // O(V), in Nodes() order
//	Nodes() []int                         // O(V), insertion order
//	Edges() []Edge                        // O(E·log E), canonical, sorted
//	Adjacency() map[int][]int             // O(V+E)
//	Isolates() []int                      // O(V), in Nodes() order
//	NumberOfEdges(u, v int) int           // O(1); 0 or 1
//
//	// Decoration
//	Flags(id int) (Flags, error)          // O(1)
//	SetFlags(id int, f Flags) error       // O(1)
//
//	// Copies
//	Clone() Store                         // O(V+E), deep
//	Subgraph(ids []int) (Store, error)    // O(V+E), induced, deep
//
// Errors:
//
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge on RemoveEdge
//	ErrSelfLoop       – u == v on an edge operation
//	ErrNegativeNodeID – id < 0
package core
