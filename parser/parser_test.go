package parser

import (
	"testing"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/diagnostic"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// cstDiffOpts ignores source positions so a structural CST comparison isn't
// broken by column/offset bookkeeping the test doesn't care about.
var cstDiffOpts = cmp.Options{cmpopts.IgnoreTypes(diagnostic.Position{})}

func TestParseStructAndEnum(t *testing.T) {
	src := `
		struct Pair[T: Type, E: Effect] { x: T, y: Foo }
		enum Opt[T: Type] { some(T), none(()) }
	`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)
	require.Len(t, defns, 2)

	s := defns[0]
	require.Equal(t, ast.DStruct, s.Tag)
	require.Equal(t, "Pair", s.Name.Name)
	require.Len(t, s.KindParams, 2)
	require.Equal(t, "T", s.KindParams[0].Name.Name)
	require.Equal(t, ast.Type, *s.KindParams[0].Kind)
	require.Equal(t, ast.Effect, *s.KindParams[1].Kind)
	require.Len(t, s.Fields, 2)
	require.Equal(t, "x", s.Fields[0].Name.Name)
	require.Equal(t, "y", s.Fields[1].Name.Name)

	e := defns[1]
	require.Equal(t, ast.DEnum, e.Tag)
	require.Equal(t, "Opt", e.Name.Name)
	require.Len(t, e.Ctors, 2)
	require.Equal(t, "some", e.Ctors[0].Name.Name)
	require.Equal(t, "none", e.Ctors[1].Name.Name)
	require.Equal(t, ast.KdTuple, e.Ctors[1].Type.Tag)
	require.Empty(t, e.Ctors[1].Type.Elems)
}

func TestParseFuncWithRequiresEnsuresAffects(t *testing.T) {
	src := `
		fn f[T: Type](x: T): T affects {Stdout} requires true ensures true { x }
	`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)
	require.Len(t, defns, 1)

	fn := defns[0]
	require.Equal(t, ast.DFunc, fn.Tag)
	require.Equal(t, "f", fn.Name.Name)
	require.Len(t, fn.ValueParams, 1)
	require.Equal(t, "x", fn.ValueParams[0].Name.Name)
	require.Equal(t, ast.KdEffectful, fn.Return.Tag)
	require.Equal(t, "T", fn.Return.Type.Name)
	require.Equal(t, ast.KdSet, fn.Return.Effects.Tag)
	require.NotNil(t, fn.Requires)
	require.NotNil(t, fn.Ensures)
	require.NotNil(t, fn.Body.Tail)
}

func TestParseMethodCallAndFieldGet(t *testing.T) {
	src := `fn main(): Nat { 2.add(3) }`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)

	tail := defns[0].Body.Tail
	require.Equal(t, ast.EMethodCall, tail.Tag)
	require.Equal(t, "add", tail.Name)
	require.NotNil(t, tail.Receiver)
	require.Equal(t, ast.ENumber, tail.Receiver.Tag)
	require.Len(t, tail.Args, 1)
}

func TestParseMatchArms(t *testing.T) {
	src := `
		fn main(): Nat {
			match some(3) { some(n) { n } none(_) { 0 } }
		}
	`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)

	tail := defns[0].Body.Tail
	require.Equal(t, ast.EMatch, tail.Tag)
	require.Len(t, tail.Arms, 2)
	require.Equal(t, ast.PCtor, tail.Arms[0].Pat.Tag)
	require.Equal(t, "some", tail.Arms[0].Pat.Name)
	require.Equal(t, ast.PIdent, tail.Arms[0].Pat.Inner.Tag)
	require.Equal(t, ast.PCtor, tail.Arms[1].Pat.Tag)
	require.Equal(t, ast.PWildcard, tail.Arms[1].Pat.Inner.Tag)
}

func TestParseMatchArmPatternsStructurally(t *testing.T) {
	src := `
		fn main(): Nat {
			match some(3) { some(n) { n } none(_) { 0 } }
		}
	`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)

	got := []ast.Pat{defns[0].Body.Tail.Arms[0].Pat, defns[0].Body.Tail.Arms[1].Pat}
	want := []ast.Pat{
		{Tag: ast.PCtor, Name: "some", Inner: &ast.Pat{Tag: ast.PIdent, Name: "n"}},
		{Tag: ast.PCtor, Name: "none", Inner: &ast.Pat{Tag: ast.PWildcard}},
	}
	if diff := cmp.Diff(want, got, cstDiffOpts); diff != "" {
		t.Errorf("match arm patterns differ (-want +got):\n%s", diff)
	}
}

func TestParseLetStmtAndOrPattern(t *testing.T) {
	src := `
		fn main(): Nat {
			let a | b = 3;
			a
		}
	`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)
	stmts := defns[0].Body.Stmts
	require.Len(t, stmts, 1)
	require.Equal(t, ast.POr, stmts[0].Pat.Tag)
	require.Len(t, stmts[0].Pat.Elems, 2)
}

func TestParseEmptyKindedParamsIsError(t *testing.T) {
	_, err := Parse("test.eff", []byte(`struct S[] { }`))
	require.Error(t, err)
}

func TestParseSingleElementTupleNormalized(t *testing.T) {
	src := `fn main(): Nat { (3) }`
	defns, err := Parse("test.eff", []byte(src))
	require.NoError(t, err)
	require.Equal(t, ast.ENumber, defns[0].Body.Tail.Tag)
}

func TestParseExprStandalone(t *testing.T) {
	e, err := ParseExpr("<repl>", []byte(`1.add(2)`))
	require.NoError(t, err)
	require.Equal(t, ast.EMethodCall, e.Tag)
}

func TestParseUnexpectedTokenFails(t *testing.T) {
	_, err := Parse("test.eff", []byte(`fn`))
	require.Error(t, err)
}
