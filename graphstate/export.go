// SPDX-License-Identifier: MIT

package graphstate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/graphsim/clifford"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/statevec"
)

// QubitIndex maps node ID → qubit index of ToStatevector (position in Nodes()).
func (g *GraphState) QubitIndex() map[int]int {
	ids := g.store.Nodes()
	out := make(map[int]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}

	return out
}

// ToStatevector builds the dense state: |+⟩ on every qubit, CZ on every edge,
// then per qubit Z if sign, S if loop, H if hollow, in that order.
// Qubit i is Nodes()[i]; see QubitIndex.
// Complexity: O((|V| + |E|)·2^|V|)
func (g *GraphState) ToStatevector() (*statevec.Statevec, error) {
	ids := g.store.Nodes()
	idx := g.QubitIndex()
	sv, err := statevec.New(len(ids))
	if err != nil {
		return nil, err
	}
	for _, e := range g.store.Edges() {
		if err := sv.Entangle(idx[e.U], idx[e.V]); err != nil {
			return nil, err
		}
	}

	flags := make([]core.Flags, len(ids))
	for i, id := range ids {
		if flags[i], err = g.store.Flags(id); err != nil {
			return nil, err
		}
	}
	layers := []struct {
		op  statevec.Op
		set func(core.Flags) bool
	}{
		{statevec.OpZ, func(f core.Flags) bool { return f.Sign }},
		{statevec.OpS, func(f core.Flags) bool { return f.Loop }},
		{statevec.OpH, func(f core.Flags) bool { return f.Hollow }},
	}
	for _, layer := range layers {
		for i := range ids {
			if !layer.set(flags[i]) {
				continue
			}
			if err := sv.EvolveSingle(layer.op, i); err != nil {
				return nil, err
			}
		}
	}

	return sv, nil
}

// PauliString is a signed tensor product of Paulis keyed by node ID.
// Identity factors are omitted from Ops.
type PauliString struct {
	Negative bool
	Ops      map[int]clifford.Pauli
}

// String renders the factors in ascending node order, e.g. "-X0 Z1 Z3".
func (p PauliString) String() string {
	ids := make([]int, 0, len(p.Ops))
	for id := range p.Ops {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	if p.Negative {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	if len(ids) == 0 {
		b.WriteByte('I')
	}
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%d", p.Ops[id], id)
	}

	return b.String()
}

// Stabilizers returns one stabilizer generator per node, in Nodes() order.
//
// The undecorated graph state is stabilized by K_v = X_v ∏_{u∈N(v)} Z_u; the
// decorated state by C·K_v·C† with C the tensor product of VOPs(). Each factor
// is conjugated qubit by qubit and the signs multiply.
func (g *GraphState) Stabilizers() ([]PauliString, error) {
	ids := g.store.Nodes()
	vops := g.VOPs()
	out := make([]PauliString, 0, len(ids))
	for _, v := range ids {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		ps := PauliString{Ops: make(map[int]clifford.Pauli, len(nbrs)+1)}
		add := func(id int, p clifford.Pauli) {
			q, neg := vops[id].Conjugate(p)
			ps.Negative = ps.Negative != neg
			if q != clifford.PauliI {
				ps.Ops[id] = q
			}
		}
		add(v, clifford.PauliX)
		for _, u := range nbrs {
			add(u, clifford.PauliZ)
		}
		out = append(out, ps)
	}

	return out, nil
}
