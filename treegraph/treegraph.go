// SPDX-License-Identifier: MIT
// Package treegraph is an ordered core.Store backend built on red-black trees.
//
// The node catalog is a gods treemap (ID → record) and each neighbor set is a
// gods treeset, so every enumeration (Nodes, Neighbors, Edges, Isolates) comes
// out in ascending ID order without a sort pass. Lookups are O(log n).
//
// Compared with core.Graph:
//   - Nodes() is ascending by ID instead of insertion order.
//   - No per-call sorting; memory per node is higher (tree nodes).
//
// Concurrency: a single sync.RWMutex guards the whole structure.
package treegraph

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/graphsim/core"
)

// record is the per-node payload stored in the catalog.
type record struct {
	flags core.Flags
	nbrs  *treeset.Set // ints, ascending
}

// Graph is the tree-backed decorated graph store.
type Graph struct {
	mu        sync.RWMutex
	nodes     *treemap.Map // int → *record
	edgeCount int
}

var _ core.Store = (*Graph)(nil)

// New returns an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{nodes: treemap.NewWithIntComparator()}
}

// get returns the record for id or nil. Caller holds mu.
func (g *Graph) get(id int) *record {
	v, found := g.nodes.Get(id)
	if !found {
		return nil
	}

	return v.(*record)
}

// ensure returns the record for id, creating an undecorated one if missing.
func (g *Graph) ensure(id int) *record {
	if r := g.get(id); r != nil {
		return r
	}
	r := &record{nbrs: treeset.NewWithIntComparator()}
	g.nodes.Put(id, r)

	return r
}

// AddNode inserts an undecorated node if missing (idempotent).
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return core.ErrNegativeNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// AddNodes inserts every id; a negative ID rejects the whole batch.
func (g *Graph) AddNodes(ids ...int) error {
	for _, id := range ids {
		if id < 0 {
			return core.ErrNegativeNodeID
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range ids {
		g.ensure(id)
	}

	return nil
}

// AddEdge links u and v, auto-adding endpoints. Existing edges are left alone.
func (g *Graph) AddEdge(u, v int) error {
	if err := validateEdge(u, v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.link(g.ensure(u), g.ensure(v), u, v)

	return nil
}

// AddEdges links every pair after validating the batch.
func (g *Graph) AddEdges(edges ...core.Edge) error {
	for _, e := range edges {
		if err := validateEdge(e.U, e.V); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range edges {
		g.link(g.ensure(e.U), g.ensure(e.V), e.U, e.V)
	}

	return nil
}

func (g *Graph) link(ru, rv *record, u, v int) {
	if ru.nbrs.Contains(v) {
		return
	}
	ru.nbrs.Add(v)
	rv.nbrs.Add(u)
	g.edgeCount++
}

func (g *Graph) unlink(ru, rv *record, u, v int) {
	ru.nbrs.Remove(v)
	rv.nbrs.Remove(u)
	g.edgeCount--
}

// RemoveNode deletes id and cascades its edges.
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.get(id) == nil {
		return core.ErrNodeNotFound
	}
	g.remove(id)

	return nil
}

// RemoveNodes deletes every listed node; a missing ID rejects the batch.
func (g *Graph) RemoveNodes(ids ...int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if g.get(id) == nil {
			return core.ErrNodeNotFound
		}
	}
	for _, id := range ids {
		if g.get(id) != nil {
			g.remove(id)
		}
	}

	return nil
}

func (g *Graph) remove(id int) {
	r := g.get(id)
	for _, nv := range r.nbrs.Values() {
		g.get(nv.(int)).nbrs.Remove(id)
		g.edgeCount--
	}
	g.nodes.Remove(id)
}

// RemoveEdge unlinks {u,v}.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ru, rv := g.get(u), g.get(v)
	if ru == nil || rv == nil {
		return core.ErrNodeNotFound
	}
	if !ru.nbrs.Contains(v) {
		return core.ErrEdgeNotFound
	}
	g.unlink(ru, rv, u, v)

	return nil
}

// RemoveEdges unlinks every listed edge; the batch is validated first.
func (g *Graph) RemoveEdges(edges ...core.Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		ru, rv := g.get(e.U), g.get(e.V)
		if ru == nil || rv == nil {
			return core.ErrNodeNotFound
		}
		if !ru.nbrs.Contains(e.V) {
			return core.ErrEdgeNotFound
		}
	}
	for _, e := range edges {
		ru, rv := g.get(e.U), g.get(e.V)
		if ru.nbrs.Contains(e.V) {
			g.unlink(ru, rv, e.U, e.V)
		}
	}

	return nil
}

// ToggleEdge flips the presence of {u,v}; both endpoints must exist.
func (g *Graph) ToggleEdge(u, v int) error {
	if u == v {
		return core.ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ru, rv := g.get(u), g.get(v)
	if ru == nil || rv == nil {
		return core.ErrNodeNotFound
	}
	if ru.nbrs.Contains(v) {
		g.unlink(ru, rv, u, v)
	} else {
		g.link(ru, rv, u, v)
	}

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.get(id) != nil
}

// HasEdge reports whether {u,v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := g.get(u)
	return r != nil && r.nbrs.Contains(v)
}

// NumberOfEdges returns 1 if {u,v} exists, else 0.
func (g *Graph) NumberOfEdges(u, v int) int {
	if g.HasEdge(u, v) {
		return 1
	}

	return 0
}

// Neighbors returns the neighbor IDs of id in ascending order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := g.get(id)
	if r == nil {
		return nil, core.ErrNodeNotFound
	}

	return ints(r.nbrs.Values()), nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := g.get(id)
	if r == nil {
		return 0, core.ErrNodeNotFound
	}

	return r.nbrs.Size(), nil
}

// Degrees returns (node, degree) pairs ascending by ID.
func (g *Graph) Degrees() []core.NodeDegree {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]core.NodeDegree, 0, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		out = append(out, core.NodeDegree{ID: it.Key().(int), Degree: it.Value().(*record).nbrs.Size()})
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Size()
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Nodes returns all node IDs ascending.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return ints(g.nodes.Keys())
}

// Edges returns canonical edges sorted by (U, V); tree order makes this sort-free.
func (g *Graph) Edges() []core.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]core.Edge, 0, g.edgeCount)
	it := g.nodes.Iterator()
	for it.Next() {
		u := it.Key().(int)
		for _, nv := range it.Value().(*record).nbrs.Values() {
			if v := nv.(int); u < v {
				out = append(out, core.Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Adjacency returns node → ascending neighbor IDs for every node.
func (g *Graph) Adjacency() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		out[it.Key().(int)] = ints(it.Value().(*record).nbrs.Values())
	}

	return out
}

// Isolates returns degree-zero nodes ascending.
func (g *Graph) Isolates() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	it := g.nodes.Iterator()
	for it.Next() {
		if it.Value().(*record).nbrs.Empty() {
			out = append(out, it.Key().(int))
		}
	}

	return out
}

// Flags returns the decoration of id.
func (g *Graph) Flags(id int) (core.Flags, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := g.get(id)
	if r == nil {
		return core.Flags{}, core.ErrNodeNotFound
	}

	return r.flags, nil
}

// SetFlags overwrites the decoration of an existing node.
func (g *Graph) SetFlags(id int, f core.Flags) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.get(id)
	if r == nil {
		return core.ErrNodeNotFound
	}
	r.flags = f

	return nil
}

// Clone returns a deep copy.
func (g *Graph) Clone() core.Store {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyOf(ints(g.nodes.Keys()))
}

// Subgraph returns the induced subgraph on ids as an independent Graph.
func (g *Graph) Subgraph(ids []int) (core.Store, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range ids {
		if g.get(id) == nil {
			return nil, core.ErrNodeNotFound
		}
	}

	return g.copyOf(ids), nil
}

// copyOf builds the induced copy on ids. Caller holds mu.
func (g *Graph) copyOf(ids []int) *Graph {
	out := New()
	for _, id := range ids {
		out.ensure(id).flags = g.get(id).flags
	}
	for _, id := range ids {
		for _, nv := range g.get(id).nbrs.Values() {
			v := nv.(int)
			if rv := out.get(v); rv != nil && id < v {
				out.link(out.get(id), rv, id, v)
			}
		}
	}

	return out
}

func validateEdge(u, v int) error {
	if u < 0 || v < 0 {
		return core.ErrNegativeNodeID
	}
	if u == v {
		return core.ErrSelfLoop
	}

	return nil
}

// ints converts a gods value slice of ints.
func ints(vals []interface{}) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}
