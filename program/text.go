// SPDX-License-Identifier: MIT
// Package: graphsim/program
//
// text.go: line-oriented program syntax.
//
//	# linear cluster, measure the middle qubit
//	backend tree;
//	nodes 0 1 2;
//	edge 0 1; edge 1 2;
//	flags 1 hollow;
//	s 1;
//	mz 1 0;          // node choice
//	vops 0 3 2 5;    // node clifford, repeated
//
// Every statement is a name followed by integers or words and a semicolon.
// "#" and "//" start a comment that runs to the end of the line.

package program

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphsim/core"
)

type textFile struct {
	Stmts []*textStmt `@@*`
}

type textStmt struct {
	Pos  lexer.Position
	Name string     `@Ident`
	Args []*textArg `@@* ";"`
}

type textArg struct {
	Int  *int    `  @Int`
	Word *string `| @Ident`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `;`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseText = participle.MustBuild[textFile](
	participle.Lexer(textLexer),
	participle.Elide("Comment"),
)

// ParseText parses the text form into a Program and validates it.
func ParseText(src string) (*Program, error) {
	file, err := parseText.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "parse program")
	}

	p := &Program{Flags: map[int]core.Flags{}}
	for _, st := range file.Stmts {
		if err := p.apply(st); err != nil {
			return nil, errors.Wrapf(err, "%s", st.Pos)
		}
	}
	if len(p.Flags) == 0 {
		p.Flags = nil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Program) apply(st *textStmt) error {
	switch st.Name {
	case "backend":
		if len(st.Args) != 1 || st.Args[0].Word == nil {
			return errors.Wrap(ErrArity, "backend takes one name")
		}
		p.Backend = *st.Args[0].Word
		return nil

	case "nodes":
		ids, err := ints(st.Args)
		if err != nil {
			return err
		}
		p.Nodes = append(p.Nodes, ids...)
		return nil

	case "edge":
		ids, err := intsN(st.Name, st.Args, 2)
		if err != nil {
			return err
		}
		p.Edges = append(p.Edges, [2]int{ids[0], ids[1]})
		return nil

	case "flags":
		return p.applyFlags(st.Args)
	}

	kind := Kind(st.Name)
	n, ok := arity[kind]
	if !ok {
		return errors.Wrapf(ErrUnknownOp, "%q", st.Name)
	}

	if kind == KindVOPs {
		ids, err := ints(st.Args)
		if err != nil {
			return err
		}
		if len(ids) == 0 || len(ids)%2 != 0 {
			return errors.Wrap(ErrArity, "vops takes node/clifford pairs")
		}
		op := Op{Kind: kind, Node: ids[0], VOPs: make(map[int]int, len(ids)/2)}
		for i := 0; i < len(ids); i += 2 {
			op.VOPs[ids[i]] = ids[i+1]
		}
		p.Ops = append(p.Ops, op)
		return nil
	}

	ids, err := intsN(st.Name, st.Args, n)
	if err != nil {
		return err
	}
	op := Op{Kind: kind, Node: ids[0]}
	switch kind {
	case KindE2:
		op.Other = ids[1]
	case KindMX, KindMY, KindMZ:
		op.Choice = ids[1]
	}
	p.Ops = append(p.Ops, op)

	return nil
}

func (p *Program) applyFlags(args []*textArg) error {
	if len(args) == 0 || args[0].Int == nil {
		return errors.Wrap(ErrArity, "flags takes a node then flag names")
	}
	id := *args[0].Int
	f := p.Flags[id]
	for _, a := range args[1:] {
		if a.Word == nil {
			return errors.Wrapf(ErrBadArgument, "flag name expected, got %d", *a.Int)
		}
		switch *a.Word {
		case "hollow":
			f.Hollow = true
		case "sign":
			f.Sign = true
		case "loop":
			f.Loop = true
		default:
			return errors.Wrapf(ErrBadArgument, "unknown flag %q", *a.Word)
		}
	}
	p.Flags[id] = f

	return nil
}

func ints(args []*textArg) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		if a.Int == nil {
			return nil, errors.Wrapf(ErrBadArgument, "number expected, got %q", *a.Word)
		}
		out[i] = *a.Int
	}

	return out, nil
}

func intsN(name string, args []*textArg, n int) ([]int, error) {
	if len(args) != n {
		return nil, errors.Wrap(ErrArity, fmt.Sprintf("%s takes %d arguments, got %d", name, n, len(args)))
	}

	return ints(args)
}
