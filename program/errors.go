// SPDX-License-Identifier: MIT

package program

import "github.com/pkg/errors"

var (
	// ErrUnknownOp indicates an op or statement name the runner does not know.
	ErrUnknownOp = errors.New("program: unknown op")

	// ErrArity indicates the wrong number of arguments for an op.
	ErrArity = errors.New("program: wrong number of arguments")

	// ErrUnknownBackend indicates a backend name other than "map" or "tree".
	ErrUnknownBackend = errors.New("program: unknown backend")

	// ErrBadArgument indicates an argument of the wrong kind (a word where a
	// number is expected, or an unknown flag name).
	ErrBadArgument = errors.New("program: bad argument")
)
