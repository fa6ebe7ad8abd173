package desugar

import (
	"testing"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/parser"
	"github.com/stretchr/testify/require"
)

func TestExprRewritesMethodCall(t *testing.T) {
	e, err := parser.ParseExpr("t", []byte(`2.add(3)`))
	require.NoError(t, err)
	require.Equal(t, ast.EMethodCall, e.Tag)

	got := Expr(e)
	require.Equal(t, ast.ECall, got.Tag)
	require.Equal(t, "add", got.Name)
	require.Len(t, got.Args, 2)
	require.Equal(t, ast.ENumber, got.Args[0].Tag)
	require.Equal(t, uint64(2), got.Args[0].NumberVal)
	require.Equal(t, ast.ENumber, got.Args[1].Tag)
	require.Equal(t, uint64(3), got.Args[1].NumberVal)
}

func TestExprRewritesNestedMethodCallInsideMatch(t *testing.T) {
	e, err := parser.ParseExpr("t", []byte(`match some(1) { some(n) { n.add(1) } none(_) { 0 } }`))
	require.NoError(t, err)

	got := Expr(e)
	require.Equal(t, ast.EMatch, got.Tag)
	firstArmTail := got.Arms[0].Body.Tail
	require.Equal(t, ast.ECall, firstArmTail.Tag)
	require.Equal(t, "add", firstArmTail.Name)
	require.Equal(t, ast.EIdent, firstArmTail.Args[0].Tag)
}

func TestDefnsPreservesCountAndOrder(t *testing.T) {
	defns, err := parser.Parse("t", []byte(`
		struct S { }
		fn main(): Nat { 1.add(2) }
	`))
	require.NoError(t, err)

	out := Defns(defns)
	require.Len(t, out, 2)
	require.Equal(t, ast.DStruct, out[0].Tag)
	require.Equal(t, ast.DFunc, out[1].Tag)
	require.Equal(t, ast.ECall, out[1].Body.Tail.Tag)
}

func TestDefnLeavesNonFunctionsUntouched(t *testing.T) {
	defns, err := parser.Parse("t", []byte(`struct Pair { x: Nat, y: Nat }`))
	require.NoError(t, err)
	out := Defn(defns[0])
	require.Equal(t, defns[0], out)
}
