package statevec_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/statevec"
)

const tol = 1e-9

func requireAmps(t *testing.T, want []complex128, s *statevec.Statevec) {
	t.Helper()
	got := s.Amplitudes()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(got[i]-want[i]), tol, "amplitude %d: got %v want %v", i, got[i], want[i])
	}
}

func TestNew(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.Equal(t, 2, s.NumQubits())
	requireAmps(t, []complex128{0.5, 0.5, 0.5, 0.5}, s)
	require.InDelta(t, 1, s.Norm(), tol)

	s0, err := statevec.New(0)
	require.NoError(t, err)
	requireAmps(t, []complex128{1}, s0)

	_, err = statevec.New(statevec.MaxQubits + 1)
	require.ErrorIs(t, err, statevec.ErrTooManyQubits)
	_, err = statevec.New(-1)
	require.ErrorIs(t, err, statevec.ErrNegativeQubits)
}

func TestEntangle_CZPattern(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.Entangle(0, 1))
	requireAmps(t, []complex128{0.5, 0.5, 0.5, -0.5}, s)

	require.ErrorIs(t, s.Entangle(0, 0), statevec.ErrSameQubit)
	require.ErrorIs(t, s.Entangle(0, 2), statevec.ErrQubitOutOfRange)
}

func TestEvolveSingle_QubitZeroIsMostSignificant(t *testing.T) {
	s, err := statevec.FromAmplitudes([]complex128{1, 0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, s.EvolveSingle(statevec.OpX, 0))
	requireAmps(t, []complex128{0, 0, 1, 0}, s)

	require.NoError(t, s.EvolveSingle(statevec.OpX, 1))
	requireAmps(t, []complex128{0, 0, 0, 1}, s)
}

func TestEvolveSingle_Gates(t *testing.T) {
	r := complex(1/math.Sqrt2, 0)
	cases := []struct {
		op   statevec.Op
		in   []complex128
		want []complex128
	}{
		{statevec.OpH, []complex128{1, 0}, []complex128{r, r}},
		{statevec.OpH, []complex128{r, r}, []complex128{1, 0}},
		{statevec.OpZ, []complex128{r, r}, []complex128{r, -r}},
		{statevec.OpS, []complex128{r, r}, []complex128{r, 1i * r}},
		{statevec.OpSdg, []complex128{r, 1i * r}, []complex128{r, r}},
		{statevec.OpY, []complex128{1, 0}, []complex128{0, 1i}},
		{statevec.OpI, []complex128{0, 1}, []complex128{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			s, err := statevec.FromAmplitudes(tc.in)
			require.NoError(t, err)
			require.NoError(t, s.EvolveSingle(tc.op, 0))
			requireAmps(t, tc.want, s)
		})
	}

	s, err := statevec.New(1)
	require.NoError(t, err)
	require.ErrorIs(t, s.EvolveSingle(statevec.Op(42), 0), statevec.ErrUnknownOp)
}

func TestEqualUpToGlobalPhase(t *testing.T) {
	a, err := statevec.New(3)
	require.NoError(t, err)
	require.NoError(t, a.Entangle(0, 2))

	b := a.Clone()
	ph := cmplx.Exp(complex(0, 1.1))
	amps := b.Amplitudes()
	for i := range amps {
		amps[i] *= ph
	}
	b, err = statevec.FromAmplitudes(amps)
	require.NoError(t, err)

	ok, err := a.EqualUpToGlobalPhase(b, tol)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, b.EvolveSingle(statevec.OpZ, 1))
	ok, err = a.EqualUpToGlobalPhase(b, tol)
	require.NoError(t, err)
	require.False(t, ok)

	c, err := statevec.New(2)
	require.NoError(t, err)
	_, err = a.EqualUpToGlobalPhase(c, tol)
	require.ErrorIs(t, err, statevec.ErrDimensionMismatch)
}

func TestExpectation_GraphStateStabilizer(t *testing.T) {
	s, err := statevec.New(3)
	require.NoError(t, err)
	require.NoError(t, s.Entangle(0, 1))
	require.NoError(t, s.Entangle(1, 2))

	// K_1 = Z_0 X_1 Z_2 stabilizes the path 0-1-2.
	e, err := s.Expectation(map[int]statevec.Op{0: statevec.OpZ, 1: statevec.OpX, 2: statevec.OpZ})
	require.NoError(t, err)
	require.InDelta(t, 1, real(e), tol)
	require.InDelta(t, 0, imag(e), tol)

	e, err = s.Expectation(map[int]statevec.Op{1: statevec.OpX})
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(e), tol)
}

func TestProject(t *testing.T) {
	r := complex(1/math.Sqrt2, 0)
	// Bell state (|00⟩+|11⟩)/√2.
	s, err := statevec.FromAmplitudes([]complex128{r, 0, 0, r})
	require.NoError(t, err)

	rest, p, err := s.Project(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, tol)
	requireAmps(t, []complex128{0, 1}, rest)

	// |0⟩⊗|+⟩: projecting qubit 1 keeps qubit 0 intact.
	s, err = statevec.FromAmplitudes([]complex128{r, r, 0, 0})
	require.NoError(t, err)
	rest, p, err = s.Project(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, tol)
	requireAmps(t, []complex128{1, 0}, rest)

	_, _, err = s.Project(0, 1)
	require.ErrorIs(t, err, statevec.ErrZeroProbability)
	_, _, err = s.Project(0, 2)
	require.ErrorIs(t, err, statevec.ErrInvalidOutcome)
	_, _, err = s.Project(5, 0)
	require.ErrorIs(t, err, statevec.ErrQubitOutOfRange)
}

func TestFromAmplitudes_RejectsBadLength(t *testing.T) {
	_, err := statevec.FromAmplitudes([]complex128{1, 0, 0})
	require.ErrorIs(t, err, statevec.ErrDimensionMismatch)
	_, err = statevec.FromAmplitudes(nil)
	require.ErrorIs(t, err, statevec.ErrDimensionMismatch)
}
