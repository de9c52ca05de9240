// SPDX-License-Identifier: MIT
// Package storetest holds the behavioral contract every core.Store backend must pass.
//
// Purpose:
//   - One suite, many backends: core.Graph and treegraph.Graph both call Run.
//   - Lock in ordering guarantees (Neighbors asc, Edges canonical) and error sentinels.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
)

// Factory returns a fresh, empty store.
type Factory func() core.Store

// Run executes the full contract against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("NodeLifecycle", func(t *testing.T) { testNodeLifecycle(t, newStore()) })
	t.Run("EdgeLifecycle", func(t *testing.T) { testEdgeLifecycle(t, newStore()) })
	t.Run("ToggleEdge", func(t *testing.T) { testToggleEdge(t, newStore()) })
	t.Run("RemoveCascades", func(t *testing.T) { testRemoveCascades(t, newStore()) })
	t.Run("Flags", func(t *testing.T) { testFlags(t, newStore()) })
	t.Run("Queries", func(t *testing.T) { testQueries(t, newStore()) })
	t.Run("CloneIsDeep", func(t *testing.T) { testCloneIsDeep(t, newStore()) })
	t.Run("Subgraph", func(t *testing.T) { testSubgraph(t, newStore()) })
	t.Run("BatchValidation", func(t *testing.T) { testBatchValidation(t, newStore()) })
}

func testNodeLifecycle(t *testing.T, s core.Store) {
	require.ErrorIs(t, s.AddNode(-1), core.ErrNegativeNodeID)

	require.NoError(t, s.AddNode(3))
	require.True(t, s.HasNode(3))
	require.NoError(t, s.AddNode(3), "AddNode is idempotent")
	require.Equal(t, 1, s.NodeCount())

	require.NoError(t, s.AddNodes(1, 2))
	require.Equal(t, 3, s.NodeCount())

	require.ErrorIs(t, s.RemoveNode(42), core.ErrNodeNotFound)
	require.NoError(t, s.RemoveNode(3))
	require.False(t, s.HasNode(3))
	require.ErrorIs(t, s.RemoveNode(3), core.ErrNodeNotFound)

	_, err := s.Neighbors(3)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func testEdgeLifecycle(t *testing.T, s core.Store) {
	require.ErrorIs(t, s.AddEdge(1, 1), core.ErrSelfLoop)
	require.ErrorIs(t, s.AddEdge(-1, 1), core.ErrNegativeNodeID)

	// Endpoints are auto-added.
	require.NoError(t, s.AddEdge(2, 1))
	require.True(t, s.HasNode(1))
	require.True(t, s.HasNode(2))
	require.True(t, s.HasEdge(1, 2))
	require.True(t, s.HasEdge(2, 1))
	require.Equal(t, 1, s.NumberOfEdges(2, 1))

	// Simple graph: re-adding is a no-op.
	require.NoError(t, s.AddEdge(1, 2))
	require.Equal(t, 1, s.EdgeCount())

	require.ErrorIs(t, s.RemoveEdge(1, 9), core.ErrNodeNotFound)
	require.NoError(t, s.AddNode(9))
	require.ErrorIs(t, s.RemoveEdge(1, 9), core.ErrEdgeNotFound)

	require.NoError(t, s.RemoveEdge(2, 1))
	require.False(t, s.HasEdge(1, 2))
	require.Equal(t, 0, s.EdgeCount())
	require.Equal(t, 0, s.NumberOfEdges(1, 2))
}

func testToggleEdge(t *testing.T, s core.Store) {
	require.NoError(t, s.AddNodes(0, 1))
	require.ErrorIs(t, s.ToggleEdge(0, 0), core.ErrSelfLoop)
	require.ErrorIs(t, s.ToggleEdge(0, 5), core.ErrNodeNotFound)

	require.NoError(t, s.ToggleEdge(0, 1))
	require.True(t, s.HasEdge(0, 1))
	require.NoError(t, s.ToggleEdge(1, 0))
	require.False(t, s.HasEdge(0, 1))
	require.Equal(t, 0, s.EdgeCount())
}

func testRemoveCascades(t *testing.T, s core.Store) {
	// Star centered on 0.
	require.NoError(t, s.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 0, V: 2}, core.Edge{U: 0, V: 3}, core.Edge{U: 2, V: 3}))
	require.Equal(t, 4, s.EdgeCount())

	require.NoError(t, s.RemoveNode(0))
	require.Equal(t, 1, s.EdgeCount())
	for _, id := range []int{1, 2, 3} {
		nbrs, err := s.Neighbors(id)
		require.NoError(t, err)
		require.NotContains(t, nbrs, 0)
	}
	require.Equal(t, []core.Edge{{U: 2, V: 3}}, s.Edges())
}

func testFlags(t *testing.T, s core.Store) {
	require.NoError(t, s.AddNode(7))

	f, err := s.Flags(7)
	require.NoError(t, err)
	require.Equal(t, core.Flags{}, f, "new nodes are undecorated")

	want := core.Flags{Hollow: true, Loop: true}
	require.NoError(t, s.SetFlags(7, want))
	f, err = s.Flags(7)
	require.NoError(t, err)
	require.Equal(t, want, f)

	// AddNode on an existing node must keep its decoration.
	require.NoError(t, s.AddNode(7))
	f, _ = s.Flags(7)
	require.Equal(t, want, f)

	_, err = s.Flags(8)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.ErrorIs(t, s.SetFlags(8, want), core.ErrNodeNotFound)
	require.False(t, s.HasNode(8), "SetFlags must not auto-create")
}

func testQueries(t *testing.T, s core.Store) {
	require.NoError(t, s.AddNodes(5, 4, 3, 2, 1, 0))
	require.NoError(t, s.AddEdges(core.Edge{U: 3, V: 0}, core.Edge{U: 3, V: 5}, core.Edge{U: 3, V: 1}, core.Edge{U: 1, V: 0}))

	nbrs, err := s.Neighbors(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 5}, nbrs, "neighbors are sorted ascending")

	d, err := s.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 3, d)
	_, err = s.Degree(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	require.Equal(t,
		[]core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 3}, {U: 3, V: 5}},
		s.Edges())

	require.ElementsMatch(t, []int{2, 4}, s.Isolates())

	adj := s.Adjacency()
	require.Len(t, adj, 6)
	require.Equal(t, []int{0, 1, 5}, adj[3])
	require.Empty(t, adj[2])

	degrees := map[int]int{}
	for _, nd := range s.Degrees() {
		degrees[nd.ID] = nd.Degree
	}
	require.Equal(t, map[int]int{0: 2, 1: 2, 2: 0, 3: 3, 4: 0, 5: 1}, degrees)

	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, s.Nodes())
}

func testCloneIsDeep(t *testing.T, s core.Store) {
	require.NoError(t, s.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}))
	require.NoError(t, s.SetFlags(1, core.Flags{Sign: true}))

	c := s.Clone()
	require.Equal(t, s.Nodes(), c.Nodes())
	require.Equal(t, s.Edges(), c.Edges())

	require.NoError(t, c.ToggleEdge(0, 2))
	require.NoError(t, c.SetFlags(1, core.Flags{}))
	require.NoError(t, c.RemoveNode(0))

	require.False(t, s.HasEdge(0, 2))
	require.True(t, s.HasNode(0))
	f, _ := s.Flags(1)
	require.True(t, f.Sign)
}

func testSubgraph(t *testing.T, s core.Store) {
	require.NoError(t, s.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 0}, core.Edge{U: 2, V: 3}))
	require.NoError(t, s.SetFlags(2, core.Flags{Hollow: true}))

	sub, err := s.Subgraph([]int{2, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 3, sub.NodeCount())
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}, sub.Edges())
	f, err := sub.Flags(2)
	require.NoError(t, err)
	require.True(t, f.Hollow)

	_, err = s.Subgraph([]int{1, 77})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func testBatchValidation(t *testing.T, s core.Store) {
	require.NoError(t, s.AddEdges(core.Edge{U: 0, V: 1}))

	require.ErrorIs(t, s.AddNodes(2, -3), core.ErrNegativeNodeID)
	require.False(t, s.HasNode(2), "AddNodes validates before inserting")

	require.ErrorIs(t, s.AddEdges(core.Edge{U: 4, V: 5}, core.Edge{U: 6, V: 6}), core.ErrSelfLoop)
	require.False(t, s.HasNode(4), "AddEdges validates before inserting")

	require.ErrorIs(t, s.RemoveNodes(0, 42), core.ErrNodeNotFound)
	require.True(t, s.HasNode(0), "RemoveNodes validates before removing")

	require.ErrorIs(t, s.RemoveEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 0, V: 42}), core.ErrNodeNotFound)
	require.True(t, s.HasEdge(0, 1), "RemoveEdges validates before removing")

	require.NoError(t, s.RemoveNodes(0, 1))
	require.Equal(t, 0, s.NodeCount())
}
