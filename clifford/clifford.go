// SPDX-License-Identifier: MIT
// Package clifford implements the 24-element single-qubit Clifford group,
// modulo global phase, as a small integer index.
//
// Index layout:
//
//	0 I   1 X   2 Y   3 Z   4 S   5 SDG   6 H
//	7..23 fixed by deterministic closure of {H, S} over the seven above.
//
// Every element carries:
//   - a canonical 2×2 unitary (global phase fixed so the first non-zero
//     entry, row-major, is real and positive),
//   - a shortest word over {H, S, Z} (HSZ) whose ordered product equals it,
//   - a row in the 24×24 multiplication table.
//
// Composition convention: a.Mul(b) is the matrix product a·b, i.e. b acts first.
// HSZ words follow the same convention, so a caller applying a word gate by gate
// to a state must walk it from the last factor to the first.
package clifford

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Count is the order of the single-qubit Clifford group modulo phase.
const Count = 24

// ErrInvalidClifford indicates an index outside 0..23.
var ErrInvalidClifford = errors.New("clifford: index out of range")

// Clifford is an element of the group, by index.
type Clifford uint8

// Named elements with fixed indices.
const (
	I Clifford = iota
	X
	Y
	Z
	S
	SDG
	H
)

// Matrix2 is a 2×2 complex matrix, row-major.
type Matrix2 [2][2]complex128

// Gate is one letter of an HSZ word.
type Gate uint8

// HSZ alphabet. The search order H, S, Z is part of the contract: it decides
// which of several equally short words is reported.
const (
	GateH Gate = iota
	GateS
	GateZ
)

func (g Gate) String() string {
	switch g {
	case GateH:
		return "H"
	case GateS:
		return "S"
	case GateZ:
		return "Z"
	}

	return fmt.Sprintf("Gate(%d)", uint8(g))
}

// Clifford returns the group element of the gate.
func (g Gate) Clifford() Clifford {
	switch g {
	case GateH:
		return H
	case GateS:
		return S
	default:
		return Z
	}
}

const eps = 1e-9

var (
	matrices [Count]Matrix2
	mulTable [Count][Count]Clifford
	invTable [Count]Clifford
	hszTable [Count][]Gate
)

var names = [...]string{"I", "X", "Y", "Z", "S", "SDG", "H"}

func init() {
	r := complex(1/math.Sqrt2, 0)
	seeds := []Matrix2{
		{{1, 0}, {0, 1}},    // I
		{{0, 1}, {1, 0}},    // X
		{{0, -1i}, {1i, 0}}, // Y
		{{1, 0}, {0, -1}},   // Z
		{{1, 0}, {0, 1i}},   // S
		{{1, 0}, {0, -1i}},  // SDG
		{{r, r}, {r, -r}},   // H
	}

	elems := make([]Matrix2, 0, Count)
	for _, m := range seeds {
		elems = append(elems, canonical(m))
	}
	gens := []Matrix2{elems[H], elems[S]}
	for i := 0; i < len(elems) && len(elems) < Count; i++ {
		for _, g := range gens {
			p := canonical(mul(g, elems[i]))
			if indexIn(elems, p) < 0 {
				elems = append(elems, p)
			}
		}
	}
	if len(elems) != Count {
		panic(fmt.Sprintf("clifford: closure produced %d elements", len(elems)))
	}
	copy(matrices[:], elems)

	for a := 0; a < Count; a++ {
		for b := 0; b < Count; b++ {
			mulTable[a][b] = Clifford(indexIn(elems, canonical(mul(elems[a], elems[b]))))
		}
		invTable[a] = Clifford(indexIn(elems, canonical(dagger(elems[a]))))
	}

	buildHSZ()
	buildConjugation()
}

// buildHSZ runs a breadth-first search over words in {H,S,Z}, right-extending
// each word, so the first word reaching an element is a shortest one.
func buildHSZ() {
	found := [Count]bool{I: true}
	hszTable[I] = []Gate{}
	queue := []Clifford{I}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, g := range []Gate{GateH, GateS, GateZ} {
			next := mulTable[c][g.Clifford()]
			if found[next] {
				continue
			}
			found[next] = true
			word := make([]Gate, len(hszTable[c])+1)
			copy(word, hszTable[c])
			word[len(word)-1] = g
			hszTable[next] = word
			queue = append(queue, next)
		}
	}
}

// Valid reports whether c is within 0..23.
func (c Clifford) Valid() bool { return c < Count }

// Parse converts an integer index into a Clifford.
func Parse(idx int) (Clifford, error) {
	if idx < 0 || idx >= Count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidClifford, idx)
	}

	return Clifford(idx), nil
}

func (c Clifford) String() string {
	if int(c) < len(names) {
		return names[c]
	}

	return fmt.Sprintf("C%d", uint8(c))
}

// Matrix returns the canonical unitary of c.
func (c Clifford) Matrix() Matrix2 { return matrices[c] }

// Mul returns c·other (other acts first).
func (c Clifford) Mul(other Clifford) Clifford { return mulTable[c][other] }

// Inv returns the inverse of c.
func (c Clifford) Inv() Clifford { return invTable[c] }

// HSZ returns a shortest word g1 g2 … gk over {H,S,Z} with c = g1·g2·…·gk.
// The identity has the empty word. The returned slice is a copy.
func (c Clifford) HSZ() []Gate {
	out := make([]Gate, len(hszTable[c]))
	copy(out, hszTable[c])

	return out
}

// FromMatrix identifies a 2×2 unitary up to global phase.
func FromMatrix(m Matrix2) (Clifford, bool) {
	idx := indexIn(matrices[:], canonical(m))
	if idx < 0 {
		return 0, false
	}

	return Clifford(idx), true
}

// canonical rescales m by a unit phase so its first non-zero entry is real positive.
func canonical(m Matrix2) Matrix2 {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if a := cmplx.Abs(m[i][j]); a > eps {
				ph := cmplx.Conj(m[i][j]) / complex(a, 0)
				return scale(m, ph)
			}
		}
	}

	return m
}

func scale(m Matrix2, k complex128) Matrix2 {
	return Matrix2{
		{m[0][0] * k, m[0][1] * k},
		{m[1][0] * k, m[1][1] * k},
	}
}

func mul(a, b Matrix2) Matrix2 {
	var out Matrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return out
}

func dagger(m Matrix2) Matrix2 {
	return Matrix2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

func approxEqual(a, b Matrix2) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}

	return true
}

func indexIn(set []Matrix2, m Matrix2) int {
	for i := range set {
		if approxEqual(set[i], m) {
			return i
		}
	}

	return -1
}
