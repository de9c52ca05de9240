// SPDX-License-Identifier: MIT
// Package graphstate is a decorated graph-state stabilizer simulator.
//
// A GraphState owns one core.Store. Each node is a qubit carrying three
// decoration flags; the represented quantum state is
//
//	|ψ⟩ = ∏_v H_v^hollow · S_v^loop · Z_v^sign · ∏_{(u,v)∈E} CZ_uv |+⟩^⊗n
//
// (Z innermost, H outermost). Single-qubit Clifford gates, the E1/E2
// equivalence rewrites and Pauli measurements are all expressed as flag
// updates plus local complementation, so every operation costs at most
// O(d²) in the degree of the touched node.
//
// Determinism: every "first neighbor" choice and every fan-out walks
// Neighbors in ascending ID order, on every backend.
//
// Concurrency: a GraphState has one logical owner. The store's internal locks
// make single calls safe, but a rewrite is a sequence of store calls and is not
// atomic; callers serialize all mutating calls.
//
// Errors: preconditions (missing node, E1/E2 eligibility, measurement choice)
// are checked before the first mutation.
package graphstate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphsim/bfs"
	"github.com/katalvlaran/graphsim/core"
)

// GraphState is the decorated graph plus the operations acting on it.
type GraphState struct {
	store core.Store
}

// Option configures a GraphState at construction.
type Option func(*config)

type config struct {
	store core.Store
}

// WithStore makes the GraphState operate on s. The GraphState takes exclusive
// ownership; the caller must not mutate s afterwards.
func WithStore(s core.Store) Option {
	return func(c *config) { c.store = s }
}

// New returns an empty GraphState backed by core.Graph unless WithStore is given.
func New(opts ...Option) (*GraphState, error) {
	c := config{store: core.NewGraph()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.store == nil {
		return nil, ErrNilStore
	}

	return &GraphState{store: c.store}, nil
}

// Store exposes the backing store for read access.
func (g *GraphState) Store() core.Store { return g.store }

// AddNodes adds undecorated nodes; existing nodes keep their flags.
func (g *GraphState) AddNodes(ids ...int) error { return g.store.AddNodes(ids...) }

// AddEdges adds edges, creating missing endpoints undecorated.
func (g *GraphState) AddEdges(edges ...core.Edge) error { return g.store.AddEdges(edges...) }

// RemoveNode deletes a node and its edges.
func (g *GraphState) RemoveNode(id int) error {
	if err := g.store.RemoveNode(id); err != nil {
		return fmt.Errorf("remove node %d: %w", id, err)
	}

	return nil
}

// SetFlags overwrites a node's decoration.
func (g *GraphState) SetFlags(id int, f core.Flags) error {
	if err := g.store.SetFlags(id, f); err != nil {
		return fmt.Errorf("set flags of %d: %w", id, err)
	}

	return nil
}

// Flags returns a node's decoration.
func (g *GraphState) Flags(id int) (core.Flags, error) {
	f, err := g.store.Flags(id)
	if err != nil {
		return core.Flags{}, fmt.Errorf("node %d: %w", id, err)
	}

	return f, nil
}

// Neighbors returns the ascending neighbor IDs of id.
func (g *GraphState) Neighbors(id int) ([]int, error) {
	nbrs, err := g.store.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", id, err)
	}

	return nbrs, nil
}

// Nodes returns node IDs in the store's iteration order (qubit order of export).
func (g *GraphState) Nodes() []int { return g.store.Nodes() }

// Edges returns canonical edges sorted by (U, V).
func (g *GraphState) Edges() []core.Edge { return g.store.Edges() }

// Isolates returns the nodes without edges.
func (g *GraphState) Isolates() []int { return g.store.Isolates() }

// Clone returns an independent deep copy on the same backend type.
func (g *GraphState) Clone() *GraphState {
	return &GraphState{store: g.store.Clone()}
}

// Components returns the connected components (entangled groups of qubits).
func (g *GraphState) Components() ([][]int, error) {
	return bfs.Components(g.store)
}

// Equal reports whether both states have the same nodes, edges and flags.
// Node iteration order is ignored.
func (g *GraphState) Equal(other *GraphState) bool {
	a, b := g.store.Nodes(), other.store.Nodes()
	if len(a) != len(b) || g.store.EdgeCount() != other.store.EdgeCount() {
		return false
	}
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
		fa, _ := g.store.Flags(a[i])
		fb, err := other.store.Flags(a[i])
		if err != nil || fa != fb {
			return false
		}
	}
	for _, e := range g.store.Edges() {
		if !other.store.HasEdge(e.U, e.V) {
			return false
		}
	}

	return true
}

// flags reads a node's decoration, wrapping a missing node with its ID.
func (g *GraphState) flags(id int) (core.Flags, error) {
	return g.Flags(id)
}

// update applies fn to a node's decoration in place.
func (g *GraphState) update(id int, fn func(*core.Flags)) error {
	f, err := g.flags(id)
	if err != nil {
		return err
	}
	fn(&f)

	return g.store.SetFlags(id, f)
}

// forNeighbors calls fn for every current neighbor of id, ascending.
func (g *GraphState) forNeighbors(id int, fn func(int) error) error {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return err
	}
	for _, n := range nbrs {
		if err := fn(n); err != nil {
			return err
		}
	}

	return nil
}
