// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Run the shared Store contract against the map-backed backend.
//   - Lock in Graph-specific guarantees (insertion-ordered Nodes, Clear).

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/core/storetest"
)

// TestGraph_StoreContract runs the backend-agnostic suite.
func TestGraph_StoreContract(t *testing.T) {
	storetest.Run(t, func() core.Store { return core.NewGraph() })
}

// TestGraph_NodesInsertionOrder VERIFIES that Nodes() follows insertion order,
// and that a removed-then-re-added node moves to the end.
func TestGraph_NodesInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddNodes(10, 2, 7))
	require.NoError(t, g.AddEdge(7, 1)) // 1 is auto-added last
	require.Equal(t, []int{10, 2, 7, 1}, g.Nodes())

	require.NoError(t, g.RemoveNode(2))
	require.NoError(t, g.AddNode(2))
	require.Equal(t, []int{10, 7, 1, 2}, g.Nodes())

	require.Equal(t, []int{10, 2}, g.Isolates())
}

// TestGraph_Clear VERIFIES Clear drops every node and edge.
func TestGraph_Clear(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}))
	g.Clear()
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Nodes())
}

// TestEdge_Canonical VERIFIES orientation normalization.
func TestEdge_Canonical(t *testing.T) {
	require.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 4, V: 1}.Canonical())
	require.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 1, V: 4}.Canonical())
}

// TestGraph_ConcurrentReaders VERIFIES that readers racing a writer never observe
// dangling adjacency (run with -race).
func TestGraph_ConcurrentReaders(t *testing.T) {
	const n = 64
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				if _, err := g.Neighbors(0); err != nil {
					errs <- err
					return
				}
				_ = g.Edges()
			}
		}()
	}
	for i := 1; i < n; i += 2 {
		require.NoError(t, g.ToggleEdge(0, i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, n/2-1, d)
}
