// SPDX-License-Identifier: MIT
// Package statevec is a dense n-qubit state vector used as the export target
// of decorated graph states.
//
// Layout: amplitude index bit (n-1-q) holds qubit q, so qubit 0 is the most
// significant bit. For n = 2 the basis order is |00⟩, |01⟩, |10⟩, |11⟩ with
// the left digit being qubit 0.
//
// A fresh state is |+⟩^⊗n, the graph-state starting point; Entangle applies CZ
// and EvolveSingle applies one of a fixed set of single-qubit gates. Memory is
// 16·2^n bytes, so n is capped at MaxQubits.
//
// Concurrency: a Statevec is not safe for concurrent mutation.
package statevec

import (
	"fmt"
	"math"
	"math/cmplx"
)

// MaxQubits bounds the dense representation (2^24 amplitudes, 256 MiB).
const MaxQubits = 24

// Op names a single-qubit operator.
type Op uint8

// Supported operators.
const (
	OpI Op = iota
	OpX
	OpY
	OpZ
	OpH
	OpS
	OpSdg
)

var opNames = [...]string{"I", "X", "Y", "Z", "H", "S", "Sdg"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Matrix returns the 2×2 unitary of o.
func (o Op) Matrix() ([2][2]complex128, error) {
	r := complex(1/math.Sqrt2, 0)
	switch o {
	case OpI:
		return [2][2]complex128{{1, 0}, {0, 1}}, nil
	case OpX:
		return [2][2]complex128{{0, 1}, {1, 0}}, nil
	case OpY:
		return [2][2]complex128{{0, -1i}, {1i, 0}}, nil
	case OpZ:
		return [2][2]complex128{{1, 0}, {0, -1}}, nil
	case OpH:
		return [2][2]complex128{{r, r}, {r, -r}}, nil
	case OpS:
		return [2][2]complex128{{1, 0}, {0, 1i}}, nil
	case OpSdg:
		return [2][2]complex128{{1, 0}, {0, -1i}}, nil
	}

	return [2][2]complex128{}, fmt.Errorf("%w: %d", ErrUnknownOp, uint8(o))
}

// Statevec holds 2^n complex amplitudes.
type Statevec struct {
	n    int
	amps []complex128
}

// New returns |+⟩^⊗n. n = 0 yields the scalar state [1].
// Complexity: O(2^n)
func New(n int) (*Statevec, error) {
	if n < 0 {
		return nil, ErrNegativeQubits
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, n, MaxQubits)
	}

	size := 1 << n
	amp := complex(1/math.Sqrt(float64(size)), 0)
	amps := make([]complex128, size)
	for i := range amps {
		amps[i] = amp
	}

	return &Statevec{n: n, amps: amps}, nil
}

// FromAmplitudes builds a state over len(amps) = 2^n amplitudes (copied, not
// normalized).
func FromAmplitudes(amps []complex128) (*Statevec, error) {
	n := 0
	for 1<<n < len(amps) {
		n++
	}
	if len(amps) == 0 || 1<<n != len(amps) {
		return nil, fmt.Errorf("%w: %d amplitudes is not a power of two", ErrDimensionMismatch, len(amps))
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, n, MaxQubits)
	}
	cp := make([]complex128, len(amps))
	copy(cp, amps)

	return &Statevec{n: n, amps: cp}, nil
}

// NumQubits returns n.
func (s *Statevec) NumQubits() int { return s.n }

// Amplitudes returns a copy of the amplitude vector.
func (s *Statevec) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// Clone returns a deep copy.
func (s *Statevec) Clone() *Statevec {
	return &Statevec{n: s.n, amps: s.Amplitudes()}
}

func (s *Statevec) bit(q int) int { return 1 << (s.n - 1 - q) }

func (s *Statevec) checkQubit(q int) error {
	if q < 0 || q >= s.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrQubitOutOfRange, q, s.n)
	}

	return nil
}

// Entangle applies CZ between qubits i and j.
// Complexity: O(2^n)
func (s *Statevec) Entangle(i, j int) error {
	if err := s.checkQubit(i); err != nil {
		return err
	}
	if err := s.checkQubit(j); err != nil {
		return err
	}
	if i == j {
		return ErrSameQubit
	}

	mask := s.bit(i) | s.bit(j)
	for k := range s.amps {
		if k&mask == mask {
			s.amps[k] = -s.amps[k]
		}
	}

	return nil
}

// EvolveSingle applies op to qubit q.
func (s *Statevec) EvolveSingle(op Op, q int) error {
	m, err := op.Matrix()
	if err != nil {
		return err
	}

	return s.EvolveMatrix(m, q)
}

// EvolveMatrix applies an arbitrary 2×2 matrix to qubit q.
// Complexity: O(2^n)
func (s *Statevec) EvolveMatrix(m [2][2]complex128, q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}

	bit := s.bit(q)
	for k := range s.amps {
		if k&bit != 0 {
			continue
		}
		a0, a1 := s.amps[k], s.amps[k|bit]
		s.amps[k] = m[0][0]*a0 + m[0][1]*a1
		s.amps[k|bit] = m[1][0]*a0 + m[1][1]*a1
	}

	return nil
}

// Norm returns the Euclidean norm.
func (s *Statevec) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(sum)
}

// Normalize rescales to unit norm; a zero vector is left unchanged.
func (s *Statevec) Normalize() {
	nrm := s.Norm()
	if nrm == 0 {
		return
	}
	k := complex(1/nrm, 0)
	for i := range s.amps {
		s.amps[i] *= k
	}
}

// Inner returns ⟨s|other⟩.
func (s *Statevec) Inner(other *Statevec) (complex128, error) {
	if s.n != other.n {
		return 0, fmt.Errorf("%w: %d vs %d qubits", ErrDimensionMismatch, s.n, other.n)
	}

	var acc complex128
	for i, a := range s.amps {
		acc += cmplx.Conj(a) * other.amps[i]
	}

	return acc, nil
}

// Fidelity returns |⟨s|other⟩|² / (‖s‖²‖other‖²).
func (s *Statevec) Fidelity(other *Statevec) (float64, error) {
	in, err := s.Inner(other)
	if err != nil {
		return 0, err
	}
	den := s.Norm() * other.Norm()
	if den == 0 {
		return 0, nil
	}
	f := cmplx.Abs(in) / den

	return f * f, nil
}

// EqualUpToGlobalPhase reports whether s = e^{iφ}·other within tol, comparing
// normalized directions and norms.
func (s *Statevec) EqualUpToGlobalPhase(other *Statevec, tol float64) (bool, error) {
	f, err := s.Fidelity(other)
	if err != nil {
		return false, err
	}
	if math.Abs(s.Norm()-other.Norm()) > tol {
		return false, nil
	}

	return f >= 1-tol, nil
}

// Expectation returns ⟨s|P|s⟩ for the tensor product P of ops keyed by qubit.
// Qubits not in ops carry the identity.
func (s *Statevec) Expectation(ops map[int]Op) (complex128, error) {
	t := s.Clone()
	for q, op := range ops {
		if err := t.EvolveSingle(op, q); err != nil {
			return 0, err
		}
	}

	return s.Inner(t)
}

// Project measures qubit q in the computational basis, keeps the branch with
// the given outcome, and returns the normalized (n-1)-qubit remainder together
// with the branch probability. The receiver is not modified.
func (s *Statevec) Project(q, outcome int) (*Statevec, float64, error) {
	if err := s.checkQubit(q); err != nil {
		return nil, 0, err
	}
	if outcome != 0 && outcome != 1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidOutcome, outcome)
	}

	bit := s.bit(q)
	want := 0
	if outcome == 1 {
		want = bit
	}
	total := s.Norm()
	out := &Statevec{n: s.n - 1, amps: make([]complex128, len(s.amps)/2)}
	lowMask := bit - 1
	for k, a := range s.amps {
		if k&bit != want {
			continue
		}
		// squeeze bit q out of the index
		j := (k>>1)&^lowMask | k&lowMask
		out.amps[j] = a
	}

	nrm := out.Norm()
	if total == 0 || nrm < 1e-12 {
		return nil, 0, fmt.Errorf("%w: qubit %d outcome %d", ErrZeroProbability, q, outcome)
	}
	out.Normalize()

	return out, (nrm * nrm) / (total * total), nil
}
