// SPDX-License-Identifier: MIT
// Package: graphsim/program
//
// program.go: the operation program model.
//
// A Program describes an initial decorated graph (nodes, edges, flags) and a
// list of ops applied to it in order. Programs come from YAML (LoadYAML) or
// from the line-oriented text form (ParseText); both produce the same value.

package program

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/treegraph"
)

// Kind names an op.
type Kind string

// Op kinds. Node-only kinds act on Op.Node; E2 also reads Op.Other; the
// measurements read Op.Choice; VOPs reads Op.VOPs.
const (
	KindH        Kind = "h"
	KindS        Kind = "s"
	KindZ        Kind = "z"
	KindFlipFill Kind = "flip_fill"
	KindFlipSign Kind = "flip_sign"
	KindAdvance  Kind = "advance"
	KindLC       Kind = "lc"
	KindE1       Kind = "e1"
	KindE2       Kind = "e2"
	KindFill     Kind = "fill"
	KindMX       Kind = "mx"
	KindMY       Kind = "my"
	KindMZ       Kind = "mz"
	KindVOPs     Kind = "vops"
	KindRemove   Kind = "remove"
)

// arity is the number of integer arguments each kind takes in text form.
// VOPs is variadic (pairs) and handled separately.
var arity = map[Kind]int{
	KindH: 1, KindS: 1, KindZ: 1,
	KindFlipFill: 1, KindFlipSign: 1, KindAdvance: 1,
	KindLC: 1, KindE1: 1, KindE2: 2, KindFill: 1,
	KindMX: 2, KindMY: 2, KindMZ: 2,
	KindRemove: 1,
	KindVOPs:   -1,
}

// Kinds returns every known op kind in ascending order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(arity))
	for k := range arity {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Op is one step of a program.
type Op struct {
	Kind   Kind        `yaml:"op"`
	Node   int         `yaml:"node"`
	Other  int         `yaml:"other,omitempty"`
	Choice int         `yaml:"choice,omitempty"`
	VOPs   map[int]int `yaml:"vops,omitempty,flow"`
}

// Backend names.
const (
	BackendMap  = "map"
	BackendTree = "tree"
)

// Program is an initial state plus ops.
type Program struct {
	Backend string             `yaml:"backend,omitempty"`
	Nodes   []int              `yaml:"nodes,flow"`
	Edges   [][2]int           `yaml:"edges,flow"`
	Flags   map[int]core.Flags `yaml:"flags,omitempty"`
	Ops     []Op               `yaml:"ops"`
}

// Validate checks backend, op kinds and per-kind arguments without touching
// any graph. Node existence is checked when the op runs.
func (p *Program) Validate() error {
	if _, err := newStore(p.Backend); err != nil {
		return err
	}
	for i, op := range p.Ops {
		if _, ok := arity[op.Kind]; !ok {
			return errors.Wrapf(ErrUnknownOp, "step %d: %q", i, op.Kind)
		}
		switch op.Kind {
		case KindMX, KindMY, KindMZ:
			if op.Choice != 0 && op.Choice != 1 {
				return errors.Wrapf(ErrBadArgument, "step %d: choice %d", i, op.Choice)
			}
		case KindVOPs:
			if len(op.VOPs) == 0 {
				return errors.Wrapf(ErrArity, "step %d: vops needs at least one node", i)
			}
		}
	}

	return nil
}

// newStore returns an empty store for the named backend ("" means map).
func newStore(name string) (core.Store, error) {
	switch name {
	case "", BackendMap:
		return core.NewGraph(), nil
	case BackendTree:
		return treegraph.New(), nil
	}

	return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
}

// Initial builds the program's starting GraphState.
func (p *Program) Initial() (*graphstate.GraphState, error) {
	store, err := newStore(p.Backend)
	if err != nil {
		return nil, err
	}
	gs, err := graphstate.New(graphstate.WithStore(store))
	if err != nil {
		return nil, err
	}

	if err := gs.AddNodes(p.Nodes...); err != nil {
		return nil, errors.Wrap(err, "nodes")
	}
	edges := make([]core.Edge, len(p.Edges))
	for i, e := range p.Edges {
		edges[i] = core.Edge{U: e[0], V: e[1]}
	}
	if err := gs.AddEdges(edges...); err != nil {
		return nil, errors.Wrap(err, "edges")
	}

	ids := make([]int, 0, len(p.Flags))
	for id := range p.Flags {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if err := gs.SetFlags(id, p.Flags[id]); err != nil {
			return nil, errors.Wrap(err, "flags")
		}
	}

	return gs, nil
}
