// SPDX-License-Identifier: MIT

package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/treegraph"
)

type buildFlags struct {
	n, rows, cols int
	p             float64
	seed          int64
	offset        int
	random        bool
	backend       string
}

var topologies = map[string]func(f buildFlags) builder.Constructor{
	"path":      func(f buildFlags) builder.Constructor { return builder.Path(f.n) },
	"cycle":     func(f buildFlags) builder.Constructor { return builder.Cycle(f.n) },
	"star":      func(f buildFlags) builder.Constructor { return builder.Star(f.n) },
	"wheel":     func(f buildFlags) builder.Constructor { return builder.Wheel(f.n) },
	"complete":  func(f buildFlags) builder.Constructor { return builder.Complete(f.n) },
	"bipartite": func(f buildFlags) builder.Constructor { return builder.CompleteBipartite(f.rows, f.cols) },
	"grid":      func(f buildFlags) builder.Constructor { return builder.Grid(f.rows, f.cols) },
	"random":    func(f buildFlags) builder.Constructor { return builder.RandomSparse(f.n, f.p) },
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

func newBuildCmd() *cobra.Command {
	var (
		bf   buildFlags
		db   dbFlags
		view viewFlags
	)
	cmd := &cobra.Command{
		Use:   "build TOPOLOGY",
		Short: "Build a graph state from a standard topology (" + topologyNames() + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := buildTopology(args[0], bf)
			if err != nil {
				return err
			}
			if err := printState(cmd.OutOrStdout(), gs, view); err != nil {
				return err
			}

			return saveState(db, gs)
		},
	}
	cmd.Flags().IntVar(&bf.n, "n", 4, "node count (path, cycle, star, wheel, complete, random)")
	cmd.Flags().IntVar(&bf.rows, "rows", 2, "grid rows / first bipartite side")
	cmd.Flags().IntVar(&bf.cols, "cols", 2, "grid columns / second bipartite side")
	cmd.Flags().Float64Var(&bf.p, "p", 0.5, "edge probability (random)")
	cmd.Flags().Int64Var(&bf.seed, "seed", 1, "random seed (random topology, --decorate)")
	cmd.Flags().IntVar(&bf.offset, "offset", 0, "first node ID")
	cmd.Flags().BoolVar(&bf.random, "decorate", false, "draw random initial flags")
	cmd.Flags().StringVar(&bf.backend, "backend", "map", "store backend (map|tree)")
	db.register(cmd, true)
	view.register(cmd)

	return cmd
}

func buildTopology(name string, bf buildFlags) (*graphstate.GraphState, error) {
	mk, ok := topologies[name]
	if !ok {
		return nil, errors.Errorf("unknown topology %q (want %s)", name, topologyNames())
	}
	if bf.offset < 0 {
		return nil, errors.Errorf("--offset must be non-negative, got %d", bf.offset)
	}

	var store core.Store
	switch bf.backend {
	case "map":
		store = core.NewGraph()
	case "tree":
		store = treegraph.New()
	default:
		return nil, errors.Errorf("unknown backend %q (want map|tree)", bf.backend)
	}

	bopts := []builder.Option{builder.WithSeed(bf.seed), builder.WithOffset(bf.offset)}
	if bf.random {
		bopts = append(bopts, builder.WithDecorator(builder.RandomFlags))
	}

	gs, err := builder.Build([]graphstate.Option{graphstate.WithStore(store)}, bopts, mk(bf))
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", name)
	}

	return gs, nil
}
