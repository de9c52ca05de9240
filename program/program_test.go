package program_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/clifford"
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/graphstate"
	"github.com/katalvlaran/graphsim/program"
)

const clusterText = `
# linear cluster, phase on the hollow middle qubit
backend tree;
nodes 0 1 2;
edge 0 1; edge 1 2;
flags 1 hollow;
s 1;      // complements {0, 2}
fill 1;
mz 1 1;
vops 0 3 2 5;
`

const clusterYAML = `
backend: tree
nodes: [0, 1, 2]
edges: [[0, 1], [1, 2]]
flags:
  1: {hollow: true}
ops:
  - {op: s, node: 1}
  - {op: fill, node: 1}
  - {op: mz, node: 1, choice: 1}
  - {op: vops, node: 0, vops: {0: 3, 2: 5}}
`

func TestParseText(t *testing.T) {
	p, err := program.ParseText(clusterText)
	require.NoError(t, err)
	require.Equal(t, &program.Program{
		Backend: program.BackendTree,
		Nodes:   []int{0, 1, 2},
		Edges:   [][2]int{{0, 1}, {1, 2}},
		Flags:   map[int]core.Flags{1: {Hollow: true}},
		Ops: []program.Op{
			{Kind: program.KindS, Node: 1},
			{Kind: program.KindFill, Node: 1},
			{Kind: program.KindMZ, Node: 1, Choice: 1},
			{Kind: program.KindVOPs, Node: 0, VOPs: map[int]int{0: 3, 2: 5}},
		},
	}, p)
}

func TestTextAndYAMLAgree(t *testing.T) {
	fromText, err := program.ParseText(clusterText)
	require.NoError(t, err)
	fromYAML, err := program.LoadYAML(strings.NewReader(clusterYAML))
	require.NoError(t, err)
	require.Equal(t, fromText, fromYAML)

	var buf bytes.Buffer
	require.NoError(t, fromText.Encode(&buf))
	again, err := program.LoadYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, fromText, again)
}

func TestParseText_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "cnot 0 1;", program.ErrUnknownOp},
		{"too many args", "nodes 0 1; h 0 1;", program.ErrArity},
		{"too few args", "nodes 0 1; e2 0;", program.ErrArity},
		{"measure without choice", "nodes 0; mz 0;", program.ErrArity},
		{"odd vops", "nodes 0; vops 0 1 2;", program.ErrArity},
		{"word for number", "nodes 0; h zero;", program.ErrBadArgument},
		{"unknown flag", "nodes 0; flags 0 shiny;", program.ErrBadArgument},
		{"flags without node", "flags hollow;", program.ErrArity},
		{"backend", "backend graphviz;", program.ErrUnknownBackend},
		{"choice", "nodes 0; mx 0 2;", program.ErrBadArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := program.ParseText(tc.src)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := program.ParseText("nodes 0 1")
	require.Error(t, err, "missing semicolon")
}

func TestLoadYAML_Errors(t *testing.T) {
	_, err := program.LoadYAML(strings.NewReader("ops: [{op: teleport, node: 0}]"))
	require.ErrorIs(t, err, program.ErrUnknownOp)
	_, err = program.LoadYAML(strings.NewReader("backend: dense"))
	require.ErrorIs(t, err, program.ErrUnknownBackend)
	_, err = program.LoadYAML(strings.NewReader("ops: [{op: vops, node: 0}]"))
	require.ErrorIs(t, err, program.ErrArity)
	_, err = program.LoadYAML(strings.NewReader("nodez: [0]"))
	require.Error(t, err)

	p, err := program.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, p.Ops)
}

func TestRun_Cluster(t *testing.T) {
	p, err := program.ParseText(clusterText)
	require.NoError(t, err)

	res, err := program.Run(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []program.Outcome{
		{Step: 1, Kind: program.KindFill, Node: 1, Value: int(graphstate.FillConnected)},
		{Step: 2, Kind: program.KindMZ, Node: 1, Value: 1},
	}, res.Outcomes)

	// replay by hand on the same backend
	want, err := p.Initial()
	require.NoError(t, err)
	require.NoError(t, want.S(1))
	_, err = want.EquivalentFillNode(1)
	require.NoError(t, err)
	_, err = want.MeasureZ(1, 1)
	require.NoError(t, err)
	require.NoError(t, want.ApplyVOPs(map[int]clifford.Clifford{0: 3, 2: 5}))

	require.True(t, want.Equal(res.State))
	require.Equal(t, []int{0, 2}, res.State.Nodes())
}

func TestRun_EveryKind(t *testing.T) {
	src := `
nodes 0 1 2 3 4;
edge 0 1; edge 1 2; edge 2 3; edge 3 4;
h 0; s 1; z 2;
flip_fill 3; flip_sign 3; advance 3;
lc 2;
e1 3;
e2 0 1;
fill 2;
mx 4 0;
my 3 1;
mz 2 0;
vops 0 7;
remove 1;
`
	p, err := program.ParseText(src)
	require.NoError(t, err)
	require.Len(t, p.Ops, 15)

	res, err := program.Run(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 4)
	require.Equal(t, []int{0}, res.State.Nodes())
}

func TestRun_StopsAtFailingStep(t *testing.T) {
	p, err := program.ParseText("nodes 0 1; edge 0 1; h 0; e1 0; z 1;")
	require.NoError(t, err)

	res, err := program.Run(context.Background(), p)
	require.ErrorIs(t, err, graphstate.ErrNoLoop)
	require.Contains(t, err.Error(), "step 1")
	require.NotNil(t, res)
	f, ferr := res.State.Flags(0)
	require.NoError(t, ferr)
	require.True(t, f.Hollow)
	f, ferr = res.State.Flags(1)
	require.NoError(t, ferr)
	require.False(t, f.Sign, "ops after the failure must not run")

	p, err = program.ParseText("nodes 0; vops 0 24;")
	require.NoError(t, err)
	_, err = program.Run(context.Background(), p)
	require.ErrorIs(t, err, clifford.ErrInvalidClifford)

	p, err = program.ParseText("nodes 0; h 5;")
	require.NoError(t, err)
	_, err = program.Run(context.Background(), p)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestRun_Canceled(t *testing.T) {
	p, err := program.ParseText("nodes 0; h 0; h 0;")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := program.Run(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "cluster.gs")
	yamlPath := filepath.Join(dir, "cluster.YAML")
	require.NoError(t, os.WriteFile(textPath, []byte(clusterText), 0o600))
	require.NoError(t, os.WriteFile(yamlPath, []byte(clusterYAML), 0o600))

	a, err := program.Load(textPath)
	require.NoError(t, err)
	b, err := program.Load(yamlPath)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = program.Load(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestKinds(t *testing.T) {
	kinds := program.Kinds()
	require.Len(t, kinds, 15)
	require.Equal(t, program.KindAdvance, kinds[0])
	require.Contains(t, kinds, program.KindMZ)
}
