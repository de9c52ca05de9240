package graphstate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/builder"
	"github.com/katalvlaran/graphsim/clifford"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/statevec"
)

func TestNew(t *testing.T) {
	gs, err := graphstate.New()
	require.NoError(t, err)
	require.Empty(t, gs.Nodes())
	require.IsType(t, &core.Graph{}, gs.Store())

	_, err = graphstate.New(graphstate.WithStore(nil))
	require.ErrorIs(t, err, graphstate.ErrNilStore)
}

func TestToStatevector_TwoQubitGraphState(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := newState(t, b)
		require.NoError(t, gs.AddEdges(core.Edge{U: 0, V: 1}))

		want, err := statevec.FromAmplitudes([]complex128{0.5, 0.5, 0.5, -0.5})
		require.NoError(t, err)
		requireSameState(t, want, export(t, gs))

		// a Hadamard on one end gives the Bell state (|00⟩+|11⟩)/√2
		require.NoError(t, gs.H(1))
		r := complex(1/math.Sqrt2, 0)
		bell, err := statevec.FromAmplitudes([]complex128{r, 0, 0, r})
		require.NoError(t, err)
		requireSameState(t, bell, export(t, gs))
	})
}

func TestMeasureZ_IsolatedReadsSign(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := newState(t, b)
		require.NoError(t, gs.AddNodes(0))
		setFlags(t, gs, 0, core.Flags{Sign: true})

		got, err := gs.MeasureZ(0, 0)
		require.NoError(t, err)
		require.Equal(t, 1, got)

		_, err = gs.Neighbors(0)
		require.ErrorIs(t, err, core.ErrNodeNotFound)
		require.False(t, gs.Store().HasNode(0))
	})
}

func TestEquivalentFillNode_HollowIsolatedUnchanged(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := newState(t, b)
		require.NoError(t, gs.AddNodes(0))
		setFlags(t, gs, 0, core.Flags{Hollow: true})

		st, err := gs.EquivalentFillNode(0)
		require.NoError(t, err)
		require.Equal(t, graphstate.FillHollowIsolated, st)
		require.Equal(t, []int{0}, gs.Nodes())
		require.Empty(t, gs.Edges())
		require.Equal(t, core.Flags{Hollow: true}, flagsOf(t, gs, 0))
	})
}

func TestVOPs_Readback(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		for _, seed := range seeds {
			gs := randomState(t, b, seed, 6, 0.4)
			vops := gs.VOPs()
			require.Len(t, vops, 6)

			bare := gs.Clone()
			for _, id := range bare.Nodes() {
				setFlags(t, bare, id, core.Flags{})
			}
			want := export(t, bare)
			idx := bare.QubitIndex()
			for id, c := range vops {
				require.NoError(t, want.EvolveMatrix([2][2]complex128(c.Matrix()), idx[id]))
			}
			requireSameState(t, want, export(t, gs), "seed %d", seed)

			require.NoError(t, bare.ApplyVOPs(vops))
			require.True(t, gs.Equal(bare), "seed %d", seed)
		}
	})
}

func TestApplyVOPs_MatchesDenseEvolution(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		for _, seed := range seeds {
			gs := randomState(t, b, seed, 5, 0.6)
			want := export(t, gs)
			idx := gs.QubitIndex()

			vops := make(map[int]clifford.Clifford)
			for i, id := range gs.Nodes() {
				c := clifford.Clifford((int(seed)*5 + i*7) % clifford.Count)
				vops[id] = c
				require.NoError(t, want.EvolveMatrix([2][2]complex128(c.Matrix()), idx[id]))
			}

			require.NoError(t, gs.ApplyVOPs(vops))
			requireSameState(t, want, export(t, gs), "seed %d", seed)
		}
	})
}

func TestApplyVOPs_ValidatesFirst(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := randomState(t, b, 3, 3, 1)
		before := gs.Clone()

		err := gs.ApplyVOPs(map[int]clifford.Clifford{0: clifford.H, 1: clifford.Count})
		require.ErrorIs(t, err, clifford.ErrInvalidClifford)
		err = gs.ApplyVOPs(map[int]clifford.Clifford{0: clifford.S, 42: clifford.H})
		require.ErrorIs(t, err, core.ErrNodeNotFound)

		require.True(t, before.Equal(gs))
	})
}

func TestStabilizers_ExpectationPlusOne(t *testing.T) {
	toOp := map[clifford.Pauli]statevec.Op{
		clifford.PauliX: statevec.OpX,
		clifford.PauliY: statevec.OpY,
		clifford.PauliZ: statevec.OpZ,
	}
	eachBackend(t, func(t *testing.T, b backend) {
		for _, seed := range seeds {
			gs := randomState(t, b, seed, 5, 0.5)
			sv := export(t, gs)
			idx := gs.QubitIndex()

			stabs, err := gs.Stabilizers()
			require.NoError(t, err)
			require.Len(t, stabs, 5)
			for _, ps := range stabs {
				ops := make(map[int]statevec.Op, len(ps.Ops))
				for id, p := range ps.Ops {
					ops[idx[id]] = toOp[p]
				}
				ev, err := sv.Expectation(ops)
				require.NoError(t, err)
				want := 1.0
				if ps.Negative {
					want = -1
				}
				require.InDelta(t, want, real(ev), tol, "%s", ps)
				require.InDelta(t, 0, imag(ev), tol)
			}
		}
	})
}

func TestPauliString_String(t *testing.T) {
	ps := graphstate.PauliString{
		Negative: true,
		Ops:      map[int]clifford.Pauli{3: clifford.PauliZ, 0: clifford.PauliX, 1: clifford.PauliZ},
	}
	require.Equal(t, "-X0 Z1 Z3", ps.String())
	require.Equal(t, "+I", graphstate.PauliString{}.String())
}

func TestStabilizers_PathGraph(t *testing.T) {
	gs, err := builder.Build(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, gs.FlipFill(0))

	stabs, err := gs.Stabilizers()
	require.NoError(t, err)
	got := make([]string, len(stabs))
	for i, s := range stabs {
		got[i] = s.String()
	}
	require.Equal(t, []string{"+Z0 Z1", "+X0 X1 Z2", "+Z1 X2"}, got)
}

func TestComponentsAndClone(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := newState(t, b)
		require.NoError(t, gs.AddEdges(core.Edge{U: 4, V: 5}, core.Edge{U: 0, V: 2}))
		require.NoError(t, gs.AddNodes(3))

		comps, err := gs.Components()
		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 2}, {3}, {4, 5}}, comps)
		require.Equal(t, []int{3}, gs.Isolates())

		c := gs.Clone()
		require.True(t, c.Equal(gs))
		require.NoError(t, c.H(3))
		require.NoError(t, c.LocalComplement(0))
		require.NoError(t, c.AddEdges(core.Edge{U: 2, V: 3}))
		require.False(t, c.Equal(gs))
		require.Equal(t, core.Flags{}, flagsOf(t, gs, 3))
		require.False(t, gs.Store().HasEdge(2, 3))
	})
}

func TestEqual_IgnoresBackendAndOrder(t *testing.T) {
	a := newState(t, backends[0])
	require.NoError(t, a.AddNodes(2, 0, 1))
	require.NoError(t, a.AddEdges(core.Edge{U: 1, V: 2}))
	setFlags(t, a, 0, core.Flags{Loop: true})

	b := newState(t, backends[1])
	require.NoError(t, b.AddEdges(core.Edge{U: 2, V: 1}))
	require.NoError(t, b.AddNodes(0))
	setFlags(t, b, 0, core.Flags{Loop: true})
	require.True(t, a.Equal(b))

	setFlags(t, b, 0, core.Flags{Sign: true})
	require.False(t, a.Equal(b))
}

func TestAdjacency(t *testing.T) {
	eachBackend(t, func(t *testing.T, b backend) {
		gs := newState(t, b)
		require.NoError(t, gs.AddEdges(core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}))
		require.Equal(t, "010\n101\n010", gs.Adjacency().String())

		require.NoError(t, gs.LocalComplement(1))
		adj := gs.Adjacency()
		require.Equal(t, "011\n101\n110", adj.String())
		require.Equal(t, []int{2, 2, 2}, adj.Degrees())

		for _, seed := range seeds {
			gs := randomState(t, b, seed, 7, 0.4)
			adj := gs.Adjacency()
			require.Equal(t, gs.Nodes(), adj.IDs)
			for i, u := range adj.IDs {
				deg, err := gs.Store().Degree(u)
				require.NoError(t, err)
				require.Equal(t, deg, adj.Degrees()[i])
				for j, v := range adj.IDs {
					require.Equal(t, adj.Rows[i][j], adj.Rows[j][i])
					require.Equal(t, gs.Store().HasEdge(u, v), adj.Rows[i][j] == 1)
				}
			}
		}
	})
}
