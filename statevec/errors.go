// SPDX-License-Identifier: MIT
// Package statevec: sentinel error set.
// Every message is prefixed with "statevec: ...". Callers match with errors.Is;
// context, when added, is wrapped with fmt.Errorf("...: %w", ErrX).

package statevec

import "errors"

var (
	// ErrTooManyQubits is returned when a state larger than MaxQubits is requested.
	ErrTooManyQubits = errors.New("statevec: too many qubits")

	// ErrNegativeQubits is returned for a negative qubit count.
	ErrNegativeQubits = errors.New("statevec: negative qubit count")

	// ErrQubitOutOfRange indicates a qubit index outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("statevec: qubit index out of range")

	// ErrSameQubit indicates a two-qubit primitive addressed one qubit twice.
	ErrSameQubit = errors.New("statevec: two-qubit gate on a single qubit")

	// ErrDimensionMismatch indicates two states of different sizes were compared.
	ErrDimensionMismatch = errors.New("statevec: dimension mismatch")

	// ErrUnknownOp is returned for an Op outside the supported set.
	ErrUnknownOp = errors.New("statevec: unknown operator")

	// ErrInvalidOutcome is returned by Project for an outcome outside {0,1}.
	ErrInvalidOutcome = errors.New("statevec: outcome must be 0 or 1")

	// ErrZeroProbability is returned by Project when the requested branch has
	// (numerically) zero weight.
	ErrZeroProbability = errors.New("statevec: projection has zero probability")
)
