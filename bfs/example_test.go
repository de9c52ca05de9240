package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphsim/bfs"
	"github.com/katalvlaran/graphsim/core"
)

// ExampleBFS walks a three-node path and prints each node's depth.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2})

	res, _ := bfs.BFS(g, 0)
	for _, id := range res.Order {
		fmt.Printf("%d@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output: 0@0 1@1 2@2
}
