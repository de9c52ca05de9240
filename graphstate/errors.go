// SPDX-License-Identifier: MIT

package graphstate

import "errors"

// Sentinel errors. Missing nodes surface as core.ErrNodeNotFound (wrapped with
// the node ID); match with errors.Is.
//
// Every precondition is checked before the first mutation, so an operation
// returning one of these left the graph untouched.
var (
	// ErrNoLoop is returned by EquivalentGraphE1 on a node without a loop.
	ErrNoLoop = errors.New("graphstate: node must have a loop")

	// ErrNotConnected is returned by EquivalentGraphE2 when the two nodes share no edge.
	ErrNotConnected = errors.New("graphstate: nodes must be connected by an edge")

	// ErrHasLoop is returned by EquivalentGraphE2 when either node carries a loop.
	ErrHasLoop = errors.New("graphstate: nodes must not have a loop")

	// ErrSameNode is returned by EquivalentGraphE2 when both arguments name one node.
	ErrSameNode = errors.New("graphstate: E2 needs two distinct nodes")

	// ErrInvalidChoice is returned by the measurements for choice outside {0,1}.
	ErrInvalidChoice = errors.New("graphstate: choice must be 0 or 1")

	// ErrNilStore is returned by New when WithStore is given nil.
	ErrNilStore = errors.New("graphstate: nil store")
)
