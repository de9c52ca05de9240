// SPDX-License-Identifier: MIT

package clifford

import "fmt"

// Pauli is a single-qubit Pauli operator without phase.
type Pauli uint8

// Pauli letters.
const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

func (p Pauli) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	}

	return fmt.Sprintf("Pauli(%d)", uint8(p))
}

// Matrix returns the Hermitian matrix of p.
func (p Pauli) Matrix() Matrix2 {
	return pauliMatrices[p&3]
}

var pauliMatrices = [4]Matrix2{
	{{1, 0}, {0, 1}},
	{{0, 1}, {1, 0}},
	{{0, -1i}, {1i, 0}},
	{{1, 0}, {0, -1}},
}

// conjTable[c][p] = (p', negative) with c·p·c† = ±p'.
var conjTable [Count][4]struct {
	p   Pauli
	neg bool
}

// buildConjugation fills conjTable; called from init after the group exists.
func buildConjugation() {
	for c := 0; c < Count; c++ {
		m := matrices[c]
		md := dagger(m)
		for p := PauliI; p <= PauliZ; p++ {
			r := mul(mul(m, p.Matrix()), md)
			conjTable[c][p].p, conjTable[c][p].neg = identifyPauli(r)
		}
	}
}

// Conjugate returns c·p·c† as a Pauli letter and a sign flag (true = minus).
// Conjugation is insensitive to the global phase of c.
func (c Clifford) Conjugate(p Pauli) (Pauli, bool) {
	e := conjTable[c][p&3]

	return e.p, e.neg
}

// identifyPauli matches r against ±{I,X,Y,Z}. Clifford conjugation of a Pauli
// always lands in that set.
func identifyPauli(r Matrix2) (Pauli, bool) {
	for q := PauliI; q <= PauliZ; q++ {
		if approxEqual(r, q.Matrix()) {
			return q, false
		}
		if approxEqual(r, scale(q.Matrix(), -1)) {
			return q, true
		}
	}
	panic("clifford: conjugation left the Pauli group")
}
