// SPDX-License-Identifier: MIT
// Package: graphsim/snapshot
//
// snapshot.go: plain-data form of a decorated graph state.
//
// A Snapshot lists nodes in qubit order (the order of GraphState.Nodes at
// capture time) so that Restore followed by ToStatevector reproduces the same
// qubit layout on the map backend. Edges are canonical pairs sorted by (U, V).

package snapshot

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
)

var (
	// ErrNotFound indicates no snapshot is stored under the requested name.
	ErrNotFound = errors.New("snapshot: not found")

	// ErrEmptyName indicates an empty snapshot name.
	ErrEmptyName = errors.New("snapshot: empty name")

	// ErrInvalid indicates a snapshot that does not describe a simple graph
	// (duplicate node, self-loop, or an edge to an unlisted node).
	ErrInvalid = errors.New("snapshot: invalid contents")
)

// NodeRecord is one node and its decoration.
type NodeRecord struct {
	ID         int `yaml:"id"`
	core.Flags `yaml:",inline"`
}

// Snapshot is a serializable copy of a GraphState.
type Snapshot struct {
	Nodes []NodeRecord `yaml:"nodes"`
	Edges [][2]int     `yaml:"edges,flow"`
}

// Capture copies gs into a Snapshot.
func Capture(gs *graphstate.GraphState) (Snapshot, error) {
	ids := gs.Nodes()
	edges := gs.Edges()
	snap := Snapshot{
		Nodes: make([]NodeRecord, 0, len(ids)),
		Edges: make([][2]int, 0, len(edges)),
	}
	for _, id := range ids {
		f, err := gs.Flags(id)
		if err != nil {
			return Snapshot{}, errors.Wrap(err, "capture")
		}
		snap.Nodes = append(snap.Nodes, NodeRecord{ID: id, Flags: f})
	}
	for _, e := range edges {
		snap.Edges = append(snap.Edges, [2]int{e.U, e.V})
	}

	return snap, nil
}

// Validate checks that s describes a simple decorated graph.
func (s Snapshot) Validate() error {
	seen := make(map[int]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID < 0 {
			return errors.Wrapf(ErrInvalid, "negative node %d", n.ID)
		}
		if _, dup := seen[n.ID]; dup {
			return errors.Wrapf(ErrInvalid, "duplicate node %d", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range s.Edges {
		if e[0] == e[1] {
			return errors.Wrapf(ErrInvalid, "self-loop on %d", e[0])
		}
		for _, id := range e {
			if _, ok := seen[id]; !ok {
				return errors.Wrapf(ErrInvalid, "edge %v names unlisted node %d", e, id)
			}
		}
	}

	return nil
}

// Restore rebuilds a GraphState from s. Nodes are added in snapshot order;
// opts select the backend as in graphstate.New.
func Restore(s Snapshot, opts ...graphstate.Option) (*graphstate.GraphState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	gs, err := graphstate.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "restore")
	}

	for _, n := range s.Nodes {
		if err := gs.AddNodes(n.ID); err != nil {
			return nil, errors.Wrapf(err, "restore node %d", n.ID)
		}
		if err := gs.SetFlags(n.ID, n.Flags); err != nil {
			return nil, errors.Wrapf(err, "restore node %d", n.ID)
		}
	}
	edges := make([]core.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = core.Edge{U: e[0], V: e[1]}
	}
	if err := gs.AddEdges(edges...); err != nil {
		return nil, errors.Wrap(err, "restore edges")
	}

	return gs, nil
}

// Marshal encodes s as YAML.
func (s Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes YAML produced by Marshal. The result is validated.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
