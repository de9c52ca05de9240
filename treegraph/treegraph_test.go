package treegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/core/storetest"
	"github.com/katalvlaran/graphsim/treegraph"
)

func TestGraph_StoreContract(t *testing.T) {
	storetest.Run(t, func() core.Store { return treegraph.New() })
}

func TestGraph_AscendingEnumeration(t *testing.T) {
	g := treegraph.New()
	require.NoError(t, g.AddNodes(9, 3, 6))
	require.NoError(t, g.AddEdge(6, 1))
	require.Equal(t, []int{1, 3, 6, 9}, g.Nodes())
	require.Equal(t, []int{3, 9}, g.Isolates())

	degrees := g.Degrees()
	require.Equal(t, core.NodeDegree{ID: 1, Degree: 1}, degrees[0])
	require.Equal(t, core.NodeDegree{ID: 9, Degree: 0}, degrees[3])
}
