// SPDX-License-Identifier: MIT

package program

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphsim/clifford"
	"github.com/katalvlaran/graphsim/graphstate"
)

// Outcome records the value produced by a measurement (the outcome bit) or a
// fill (the graphstate.FillStatus).
type Outcome struct {
	Step  int  `yaml:"step"`
	Kind  Kind `yaml:"op"`
	Node  int  `yaml:"node"`
	Value int  `yaml:"value"`
}

// Result is the final state and the recorded outcomes in step order.
type Result struct {
	State    *graphstate.GraphState
	Outcomes []Outcome
}

// Run validates p, builds its initial state and executes every op in order.
// ctx is checked before each step. On error the partial Result reached so far
// is returned with an error naming the failing step.
func Run(ctx context.Context, p *Program) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	gs, err := p.Initial()
	if err != nil {
		return nil, errors.Wrap(err, "initial state")
	}
	klog.V(1).Infof("program: %d nodes, %d edges, %d ops on %q backend",
		len(gs.Nodes()), len(gs.Edges()), len(p.Ops), backendName(p.Backend))

	res := &Result{State: gs}
	for i, op := range p.Ops {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "step %d", i)
		}
		value, recorded, err := step(gs, op)
		if err != nil {
			return res, errors.Wrapf(err, "step %d (%s %d)", i, op.Kind, op.Node)
		}
		if recorded {
			res.Outcomes = append(res.Outcomes, Outcome{Step: i, Kind: op.Kind, Node: op.Node, Value: value})
			klog.V(2).Infof("step %d: %s %d -> %d", i, op.Kind, op.Node, value)
		} else {
			klog.V(2).Infof("step %d: %s %d", i, op.Kind, op.Node)
		}
	}

	return res, nil
}

func backendName(name string) string {
	if name == "" {
		return BackendMap
	}

	return name
}

// step applies one op. recorded reports whether value is meaningful.
func step(gs *graphstate.GraphState, op Op) (value int, recorded bool, err error) {
	switch op.Kind {
	case KindH:
		return 0, false, gs.H(op.Node)
	case KindS:
		return 0, false, gs.S(op.Node)
	case KindZ:
		return 0, false, gs.Z(op.Node)
	case KindFlipFill:
		return 0, false, gs.FlipFill(op.Node)
	case KindFlipSign:
		return 0, false, gs.FlipSign(op.Node)
	case KindAdvance:
		return 0, false, gs.Advance(op.Node)
	case KindLC:
		return 0, false, gs.LocalComplement(op.Node)
	case KindE1:
		return 0, false, gs.EquivalentGraphE1(op.Node)
	case KindE2:
		return 0, false, gs.EquivalentGraphE2(op.Node, op.Other)
	case KindRemove:
		return 0, false, gs.RemoveNode(op.Node)
	case KindFill:
		st, err := gs.EquivalentFillNode(op.Node)
		return int(st), err == nil, err
	case KindMX:
		v, err := gs.MeasureX(op.Node, op.Choice)
		return v, err == nil, err
	case KindMY:
		v, err := gs.MeasureY(op.Node, op.Choice)
		return v, err == nil, err
	case KindMZ:
		v, err := gs.MeasureZ(op.Node, op.Choice)
		return v, err == nil, err
	case KindVOPs:
		return 0, false, gs.ApplyVOPs(vopMap(op.VOPs))
	}

	return 0, false, errors.Wrapf(ErrUnknownOp, "%q", op.Kind)
}

// vopMap converts raw indices; out-of-range values are left for ApplyVOPs to
// reject.
func vopMap(raw map[int]int) map[int]clifford.Clifford {
	out := make(map[int]clifford.Clifford, len(raw))
	for id, c := range raw {
		if c < 0 || c >= clifford.Count {
			c = clifford.Count
		}
		out[id] = clifford.Clifford(c)
	}

	return out
}
