// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/snapshot"
)

const ampEpsilon = 1e-12

func flagString(f core.Flags) string {
	var parts []string
	if f.Hollow {
		parts = append(parts, "hollow")
	}
	if f.Loop {
		parts = append(parts, "loop")
	}
	if f.Sign {
		parts = append(parts, "sign")
	}
	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, ",")
}

// printState writes the graph summary followed by whatever view selects.
func printState(w io.Writer, gs *graphstate.GraphState, view viewFlags) error {
	ids := gs.Nodes()
	fmt.Fprintf(w, "nodes: %d  edges: %d\n", len(ids), len(gs.Edges()))
	for _, id := range ids {
		f, err := gs.Flags(id)
		if err != nil {
			return err
		}
		nbrs, err := gs.Neighbors(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d [%s] -> %v\n", id, flagString(f), nbrs)
	}

	if view.stabilizers {
		stabs, err := gs.Stabilizers()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "stabilizers:")
		for _, s := range stabs {
			fmt.Fprintf(w, "  %s\n", s)
		}
	}

	if view.adjacency {
		fmt.Fprintf(w, "adjacency (qubit order %v):\n%s\n", gs.Nodes(), gs.Adjacency())
	}

	if view.export {
		if err := printStatevector(w, gs); err != nil {
			return err
		}
	}

	if view.yaml {
		snap, err := snapshot.Capture(gs)
		if err != nil {
			return err
		}
		data, err := snap.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	}

	return nil
}

func printStatevector(w io.Writer, gs *graphstate.GraphState) error {
	sv, err := gs.ToStatevector()
	if err != nil {
		return errors.Wrap(err, "export")
	}
	n := sv.NumQubits()
	fmt.Fprintf(w, "statevector (qubit order %v):\n", gs.Nodes())
	for k, a := range sv.Amplitudes() {
		if cmplx.Abs(a) < ampEpsilon {
			continue
		}
		fmt.Fprintf(w, "  |%0*b>  %+.4f%+.4fi\n", n, k, real(a), imag(a))
	}

	return nil
}

// saveState stores gs under flags.save when both --db and --save are given.
func saveState(flags dbFlags, gs *graphstate.GraphState) error {
	if flags.save == "" {
		return nil
	}
	if flags.dir == "" {
		return errors.New("--save needs --db")
	}
	st, err := snapshot.Open(snapshot.Options{Dir: flags.dir})
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := snapshot.Capture(gs)
	if err != nil {
		return err
	}
	if err := st.Put(flags.save, snap); err != nil {
		return err
	}
	klog.V(1).Infof("saved %q (%d nodes) to %s", flags.save, len(snap.Nodes), flags.dir)

	return nil
}
