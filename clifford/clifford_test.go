package clifford_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/clifford"
)

func all() []clifford.Clifford {
	out := make([]clifford.Clifford, clifford.Count)
	for i := range out {
		out[i] = clifford.Clifford(i)
	}
	return out
}

func TestGroup_MultiplicationTableIsLatinSquare(t *testing.T) {
	for _, a := range all() {
		rowSeen := map[clifford.Clifford]bool{}
		colSeen := map[clifford.Clifford]bool{}
		for _, b := range all() {
			rowSeen[a.Mul(b)] = true
			colSeen[b.Mul(a)] = true
		}
		require.Len(t, rowSeen, clifford.Count, "row %v", a)
		require.Len(t, colSeen, clifford.Count, "column %v", a)
	}
}

func TestGroup_IdentityAndInverse(t *testing.T) {
	for _, c := range all() {
		require.Equal(t, c, clifford.I.Mul(c))
		require.Equal(t, c, c.Mul(clifford.I))
		require.Equal(t, clifford.I, c.Mul(c.Inv()), "c=%v", c)
		require.Equal(t, clifford.I, c.Inv().Mul(c), "c=%v", c)
	}
}

func TestGroup_Associativity(t *testing.T) {
	for _, a := range all() {
		for _, b := range all() {
			for _, c := range []clifford.Clifford{clifford.H, clifford.S, clifford.Y, 17} {
				require.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
			}
		}
	}
}

func TestNamedRelations(t *testing.T) {
	h, s, z, x := clifford.H, clifford.S, clifford.Z, clifford.X
	require.Equal(t, clifford.I, h.Mul(h), "HH = I")
	require.Equal(t, z, s.Mul(s), "SS = Z")
	require.Equal(t, clifford.SDG, s.Mul(s).Mul(s), "SSS = S†")
	require.Equal(t, x, h.Mul(z).Mul(h), "HZH = X")
	require.Equal(t, clifford.Y, x.Mul(z), "XZ = Y up to phase")
	require.Equal(t, clifford.SDG, s.Inv())
}

func TestHSZ_ProductReconstructsElement(t *testing.T) {
	for _, c := range all() {
		word := c.HSZ()
		got := clifford.I
		for _, g := range word {
			got = got.Mul(g.Clifford())
		}
		require.Equal(t, c, got, "c=%v word=%v", c, word)
	}
	require.Empty(t, clifford.I.HSZ())
}

// TestHSZ_DecorationWords locks the words of the eight flag-triple elements
// H^h·S^l·Z^s: each must decompose into exactly its own letters, in that order.
func TestHSZ_DecorationWords(t *testing.T) {
	h, s, z := clifford.GateH, clifford.GateS, clifford.GateZ
	cases := []struct {
		c    clifford.Clifford
		word []clifford.Gate
	}{
		{clifford.I, []clifford.Gate{}},
		{clifford.Z, []clifford.Gate{z}},
		{clifford.S, []clifford.Gate{s}},
		{clifford.S.Mul(clifford.Z), []clifford.Gate{s, z}},
		{clifford.H, []clifford.Gate{h}},
		{clifford.H.Mul(clifford.Z), []clifford.Gate{h, z}},
		{clifford.H.Mul(clifford.S), []clifford.Gate{h, s}},
		{clifford.H.Mul(clifford.S).Mul(clifford.Z), []clifford.Gate{h, s, z}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.word, tc.c.HSZ(), "c=%v", tc.c)
	}
}

func TestFromMatrix_IgnoresGlobalPhase(t *testing.T) {
	for _, c := range all() {
		m := c.Matrix()
		ph := cmplx.Exp(complex(0, 0.73))
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				m[i][j] *= ph
			}
		}
		got, ok := clifford.FromMatrix(m)
		require.True(t, ok)
		require.Equal(t, c, got)
	}

	_, ok := clifford.FromMatrix(clifford.Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, 0.1))}})
	require.False(t, ok, "a generic phase gate is not Clifford")
}

func TestConjugate(t *testing.T) {
	cases := []struct {
		c    clifford.Clifford
		in   clifford.Pauli
		out  clifford.Pauli
		neg  bool
		name string
	}{
		{clifford.H, clifford.PauliX, clifford.PauliZ, false, "HXH=Z"},
		{clifford.H, clifford.PauliZ, clifford.PauliX, false, "HZH=X"},
		{clifford.H, clifford.PauliY, clifford.PauliY, true, "HYH=-Y"},
		{clifford.S, clifford.PauliX, clifford.PauliY, false, "SXS†=Y"},
		{clifford.S, clifford.PauliY, clifford.PauliX, true, "SYS†=-X"},
		{clifford.S, clifford.PauliZ, clifford.PauliZ, false, "SZS†=Z"},
		{clifford.Z, clifford.PauliX, clifford.PauliX, true, "ZXZ=-X"},
		{clifford.X, clifford.PauliI, clifford.PauliI, false, "XIX=I"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, neg := tc.c.Conjugate(tc.in)
			require.Equal(t, tc.out, p)
			require.Equal(t, tc.neg, neg)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := clifford.Parse(6)
	require.NoError(t, err)
	require.Equal(t, clifford.H, c)
	require.Equal(t, "H", c.String())
	require.Equal(t, "C23", clifford.Clifford(23).String())

	_, err = clifford.Parse(24)
	require.ErrorIs(t, err, clifford.ErrInvalidClifford)
	_, err = clifford.Parse(-1)
	require.ErrorIs(t, err, clifford.ErrInvalidClifford)
	require.False(t, clifford.Clifford(30).Valid())
}
