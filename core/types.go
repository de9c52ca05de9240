// SPDX-License-Identifier: MIT
// Package core defines the decorated graph store used by the graph-state engine:
// integer node IDs, per-node decoration Flags, simple undirected edges, the Store
// capability interface, and the map-backed Graph implementation.
//
// All Graph methods use separate sync.RWMutex locks internally (muNode for the
// node catalog and flags, muAdj for adjacency), so individual calls are safe
// across goroutines. Multi-call rewrite sequences are NOT atomic; the engine
// assumes one logical owner per graph.
//
// This file declares Flags, Node, Edge, NodeDegree, Store, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - edge endpoints are the same node.
//	ErrNegativeNodeID - node IDs must be ≥ 0.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	// The Loop decoration is the algebraic analogue and is never stored as an edge.
	ErrSelfLoop = errors.New("core: self-loop edges are not allowed")

	// ErrNegativeNodeID indicates a node ID below zero.
	ErrNegativeNodeID = errors.New("core: node ID is negative")
)

// Flags is the decoration triple owned by every node.
//
//	Hollow – a local Hadamard is applied.
//	Sign   – a local Z is applied.
//	Loop   – a local S (phase) gate is applied.
//
// The zero value is the undecorated node.
type Flags struct {
	Hollow bool `yaml:"hollow,omitempty" json:"hollow,omitempty"`
	Sign   bool `yaml:"sign,omitempty" json:"sign,omitempty"`
	Loop   bool `yaml:"loop,omitempty" json:"loop,omitempty"`
}

// Node pairs an ID with its decoration.
type Node struct {
	ID int
	Flags
}

// Edge is an unordered pair of node IDs. Store methods always return the
// canonical orientation U < V.
type Edge struct {
	U int
	V int
}

// Canonical returns e with U < V.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// NodeDegree pairs a node ID with its degree.
type NodeDegree struct {
	ID     int
	Degree int
}

// Store is the capability set the graph-state engine requires from a backend.
// Any implementation over integer node IDs with per-node Flags satisfies it;
// the engine never depends on a concrete backend.
//
// Contract shared by all implementations:
//   - Simple undirected graph: no self-loops, no multi-edges.
//   - Neighbors returns a fresh slice sorted by ID ascending.
//   - Nodes returns a deterministic order documented by the implementation.
//   - Edges returns canonical edges sorted by (U, V).
//   - Missing nodes are reported with ErrNodeNotFound, never silently ignored.
type Store interface {
	AddNode(id int) error
	AddNodes(ids ...int) error
	AddEdge(u, v int) error
	AddEdges(edges ...Edge) error
	RemoveNode(id int) error
	RemoveNodes(ids ...int) error
	RemoveEdge(u, v int) error
	RemoveEdges(edges ...Edge) error
	ToggleEdge(u, v int) error

	HasNode(id int) bool
	HasEdge(u, v int) bool
	Neighbors(id int) ([]int, error)
	Degree(id int) (int, error)
	Degrees() []NodeDegree
	NodeCount() int
	EdgeCount() int
	NumberOfEdges(u, v int) int
	Nodes() []int
	Edges() []Edge
	Adjacency() map[int][]int
	Isolates() []int

	Flags(id int) (Flags, error)
	SetFlags(id int, f Flags) error

	Clone() Store
	Subgraph(ids []int) (Store, error)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog and adjacency maps.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[int]*Flags, n)
			g.adj = make(map[int]map[int]struct{}, n)
			g.order = make([]int, 0, n)
		}
	}
}

// Graph is the map-backed decorated graph store.
//
// muNode protects nodes and order; muAdj protects adj and edgeCount.
// Lock order is always muNode -> muAdj.
type Graph struct {
	muNode sync.RWMutex // guards nodes, order
	muAdj  sync.RWMutex // guards adj, edgeCount

	nodes map[int]*Flags // node ID → decoration
	order []int          // insertion order of live nodes

	// adj[u][v] = struct{}{} for every edge {u,v}, mirrored.
	adj       map[int]map[int]struct{}
	edgeCount int
}

var _ Store = (*Graph)(nil)

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[int]*Flags),
		adj:   make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
