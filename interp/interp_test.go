package interp

import (
	"math"
	"testing"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/checker"
	"github.com/efflang/efflang/desugar"
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/parser"
	"github.com/efflang/efflang/prelude"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) (Value, error) {
	t.Helper()
	defns, err := parser.Parse("t", []byte(src))
	require.NoError(t, err)
	defns = desugar.Defns(defns)
	all := append(append([]ast.TopDefn{}, prelude.Defns()...), defns...)
	prog, err := checker.Check(all)
	require.NoError(t, err)
	return Run(prog)
}

func TestApplyPrimitiveArithmetic(t *testing.T) {
	v, err := applyPrimitive("add", []Value{NumberValue(2), NumberValue(3)}, diagnostic.Position{})
	require.NoError(t, err)
	require.Equal(t, NumberValue(5), v)

	v, err = applyPrimitive("mul", []Value{NumberValue(4), NumberValue(5)}, diagnostic.Position{})
	require.NoError(t, err)
	require.Equal(t, NumberValue(20), v)
}

func TestApplyPrimitiveSubtractionWraps(t *testing.T) {
	v, err := applyPrimitive("sub", []Value{NumberValue(0), NumberValue(1)}, diagnostic.Position{})
	require.NoError(t, err)
	require.Equal(t, NumberValue(uint64(math.MaxUint64)), v)
}

func TestApplyPrimitiveDivByZero(t *testing.T) {
	_, err := applyPrimitive("div", []Value{NumberValue(1), NumberValue(0)}, diagnostic.Position{})
	require.Error(t, err)
	var internal *errdefs.ErrInternalError
	require.ErrorAs(t, err, &internal)
}

func TestApplyPrimitiveComparisons(t *testing.T) {
	require.True(t, mustPrim(t, "eq", NumberValue(3), NumberValue(3)).IsTrue())
	require.False(t, mustPrim(t, "eq", NumberValue(3), NumberValue(4)).IsTrue())
	require.True(t, mustPrim(t, "lt", NumberValue(3), NumberValue(4)).IsTrue())
	require.True(t, mustPrim(t, "gt", NumberValue(4), NumberValue(3)).IsTrue())
	require.True(t, mustPrim(t, "neq", NumberValue(3), NumberValue(4)).IsTrue())
}

func TestApplyPrimitiveBooleanOps(t *testing.T) {
	require.True(t, mustPrim(t, "and", BoolValue(true), BoolValue(true)).IsTrue())
	require.False(t, mustPrim(t, "and", BoolValue(true), BoolValue(false)).IsTrue())
	require.True(t, mustPrim(t, "or", BoolValue(false), BoolValue(true)).IsTrue())
	require.False(t, mustPrim(t, "not", BoolValue(true), Value{}).IsTrue())
}

func mustPrim(t *testing.T, name string, a, b Value) Value {
	t.Helper()
	v, err := applyPrimitive(name, []Value{a, b}, diagnostic.Position{})
	require.NoError(t, err)
	return v
}

func TestBoolValueRoundTrip(t *testing.T) {
	require.True(t, BoolValue(true).IsTrue())
	require.False(t, BoolValue(false).IsTrue())
	require.False(t, NumberValue(1).IsTrue())
}

func TestSprintString(t *testing.T) {
	prog := &checker.Program{}
	require.Equal(t, `"hi"`, Sprint(prog, StringValue("hi")))
}

func TestSprintNumber(t *testing.T) {
	prog := &checker.Program{}
	require.Equal(t, "42", Sprint(prog, NumberValue(42)))
}

func TestSprintTuple(t *testing.T) {
	prog := &checker.Program{}
	got := Sprint(prog, TupleValue(NumberValue(1), NumberValue(2)))
	require.Equal(t, "(1, 2)", got)
}

func TestSprintCtor(t *testing.T) {
	prog := &checker.Program{}
	got := Sprint(prog, CtorValue("some", NumberValue(3)))
	require.Equal(t, "some(3)", got)
}

func TestSprintStructUsesDeclaredFieldOrder(t *testing.T) {
	prog := &checker.Program{
		Structs: map[string]checker.StructInfo{
			"Pair": {
				Fields: []ast.Param{
					{Name: ast.Ident{Name: "x"}},
					{Name: ast.Ident{Name: "y"}},
				},
			},
		},
	}
	v := StructValue("Pair", map[string]Value{
		"y": NumberValue(2),
		"x": NumberValue(1),
	})
	require.Equal(t, "Pair { x: 1, y: 2 }", Sprint(prog, v))
}

func TestRunHelloWorld(t *testing.T) {
	v, err := runSource(t, `fn main(): Str { "hello" }`)
	require.NoError(t, err)
	require.Equal(t, StringValue("hello"), v)
}

func TestRunArithmeticChain(t *testing.T) {
	v, err := runSource(t, `fn main(): Nat { 2.add(3).mul(4) }`)
	require.NoError(t, err)
	require.Equal(t, NumberValue(20), v)
}

func TestRunGenericIdentity(t *testing.T) {
	v, err := runSource(t, `
		fn id[T: Type](x: T): T { x }
		fn main(): Nat { id[Nat](7) }
	`)
	require.NoError(t, err)
	require.Equal(t, NumberValue(7), v)
}

func TestRunMatchOnEnumConstructor(t *testing.T) {
	v, err := runSource(t, `
		enum Opt[T: Type] { some(T), none(()) }
		fn main(): Nat { match some[Nat](3) { some(n) { n } none(_) { 0 } } }
	`)
	require.NoError(t, err)
	require.Equal(t, NumberValue(3), v)
}

func TestRunRequiresFailed(t *testing.T) {
	_, err := runSource(t, `
		fn f(x: Nat): Nat requires x.eq(0) { x }
		fn main(): Nat { f(1) }
	`)
	require.Error(t, err)
	var reqFailed *errdefs.ErrRequiresFailed
	require.ErrorAs(t, err, &reqFailed)
	require.Equal(t, "f", reqFailed.Name)
}

func TestRunNonExhaustiveMatch(t *testing.T) {
	_, err := runSource(t, `
		enum E { a(()), b(()) }
		fn main(): Nat { match a(()) { b(_) { 0 } } }
	`)
	require.Error(t, err)
	var nonExhaustive *errdefs.ErrNonExhaustiveMatch
	require.ErrorAs(t, err, &nonExhaustive)
}

func TestRunEnsuresFailed(t *testing.T) {
	_, err := runSource(t, `
		fn f(): Nat ensures ret.eq(1) { 2 }
		fn main(): Nat { f() }
	`)
	require.Error(t, err)
	var ensFailed *errdefs.ErrEnsuresFailed
	require.ErrorAs(t, err, &ensFailed)
	require.Equal(t, "f", ensFailed.Name)
}

func TestRunStructConstructionAndFieldGet(t *testing.T) {
	v, err := runSource(t, `
		struct Pair { x: Nat, y: Nat }
		fn main(): Nat { Pair { x: 1, y: 2 }.y }
	`)
	require.NoError(t, err)
	require.Equal(t, NumberValue(2), v)
}

func TestRunStructFieldHoldsTupleStructurally(t *testing.T) {
	v, err := runSource(t, `
		struct Box { pair: (Nat, Nat) }
		fn main(): Box { Box { pair: (1, 2) } }
	`)
	require.NoError(t, err)

	want := StructValue("Box", map[string]Value{
		"pair": TupleValue(NumberValue(1), NumberValue(2)),
	})
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("result value differs (-want +got):\n%s", diff)
	}
}

func TestRunLetTuplePattern(t *testing.T) {
	v, err := runSource(t, `
		fn pair(a: Nat, b: Nat): (Nat, Nat) { (a, b) }
		fn main(): Nat {
			let (a, b) = pair(3, 4);
			a.add(b)
		}
	`)
	require.NoError(t, err)
	require.Equal(t, NumberValue(7), v)
}
