package graphstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/statevec"
	"github.com/katalvlaran/graphsim/treegraph"
)

const tol = 1e-9

type backend struct {
	name string
	new  func() core.Store
}

var backends = []backend{
	{"map", func() core.Store { return core.NewGraph() }},
	{"tree", func() core.Store { return treegraph.New() }},
}

// eachBackend runs fn once per store implementation.
func eachBackend(t *testing.T, fn func(t *testing.T, b backend)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) { fn(t, b) })
	}
}

func newState(t *testing.T, b backend) *graphstate.GraphState {
	t.Helper()
	gs, err := graphstate.New(graphstate.WithStore(b.new()))
	require.NoError(t, err)

	return gs
}

// randomState builds a decorated G(n, p) graph; equal seeds give equal states.
func randomState(t *testing.T, b backend, seed int64, n int, p float64) *graphstate.GraphState {
	t.Helper()
	gs, err := builder.Build(
		[]graphstate.Option{graphstate.WithStore(b.new())},
		[]builder.Option{builder.WithSeed(seed), builder.WithDecorator(builder.RandomFlags)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return gs
}

func export(t *testing.T, gs *graphstate.GraphState) *statevec.Statevec {
	t.Helper()
	sv, err := gs.ToStatevector()
	require.NoError(t, err)

	return sv
}

func requireSameState(t *testing.T, want, got *statevec.Statevec, msgAndArgs ...interface{}) {
	t.Helper()
	ok, err := want.EqualUpToGlobalPhase(got, tol)
	require.NoError(t, err)
	require.True(t, ok, msgAndArgs...)
}

func setFlags(t *testing.T, gs *graphstate.GraphState, id int, f core.Flags) {
	t.Helper()
	require.NoError(t, gs.SetFlags(id, f))
}

func flagsOf(t *testing.T, gs *graphstate.GraphState, id int) core.Flags {
	t.Helper()
	f, err := gs.Flags(id)
	require.NoError(t, err)

	return f
}

// allFlags enumerates the eight decorations.
func allFlags() []core.Flags {
	out := make([]core.Flags, 0, 8)
	for bits := 0; bits < 8; bits++ {
		out = append(out, core.Flags{Hollow: bits&1 != 0, Loop: bits&2 != 0, Sign: bits&4 != 0})
	}

	return out
}

var seeds = []int64{1, 2, 3, 5, 8, 13, 21, 34}
