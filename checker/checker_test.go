package checker

import (
	"testing"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/desugar"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/parser"
	"github.com/efflang/efflang/prelude"
	"github.com/stretchr/testify/require"
)

func checkSource(t *testing.T, src string) (*Program, error) {
	t.Helper()
	defns, err := parser.Parse("t", []byte(src))
	require.NoError(t, err)
	defns = desugar.Defns(defns)
	all := append(append([]ast.TopDefn{}, prelude.Defns()...), defns...)
	return CheckOpen(all)
}

func TestCheckDuplicateStructName(t *testing.T) {
	_, err := checkSource(t, `
		struct S { }
		struct S { }
		fn main(): Nat { 0 }
	`)
	require.Error(t, err)
	var dup *errdefs.ErrDuplicateIdentifier
	require.ErrorAs(t, err, &dup)
}

func TestCheckUndefinedIdentifierSuggestsCandidate(t *testing.T) {
	_, err := checkSource(t, `
		fn main(): Nat { addd(1, 2) }
	`)
	require.Error(t, err)
	var undef *errdefs.ErrUndefinedIdentifier
	require.ErrorAs(t, err, &undef)
	require.Equal(t, "addd", undef.Name)
	require.Equal(t, "add", undef.Suggestion)
}

func TestCheckWrongNumArgsOnStructConstruction(t *testing.T) {
	_, err := checkSource(t, `
		struct Pair { x: Nat, y: Nat }
		fn main(): Pair { Pair { x: 1 } }
	`)
	require.Error(t, err)
	var wrong *errdefs.ErrWrongNumArgs
	require.ErrorAs(t, err, &wrong)
}

func TestCheckNoSuchField(t *testing.T) {
	_, err := checkSource(t, `
		struct Pair { x: Nat, y: Nat }
		fn main(): Pair { Pair { x: 1, z: 2 } }
	`)
	require.Error(t, err)
	var noField *errdefs.ErrNoSuchField
	require.ErrorAs(t, err, &noField)
}

func TestCheckInvalidEffectUseOnMain(t *testing.T) {
	_, err := checkSource(t, `
		fn greet(): Str affects {Stdout} { "hi" }
		fn main(): Str { greet() }
	`)
	require.Error(t, err)
	var invalidEff *errdefs.ErrInvalidEffectUse
	require.ErrorAs(t, err, &invalidEff)
	require.Equal(t, "main", invalidEff.Fn)
	require.Equal(t, "Stdout", invalidEff.Effect)
}

func TestCheckGenericIdentityFunction(t *testing.T) {
	prog, err := checkSource(t, `
		fn id[T: Type](x: T): T { x }
		fn main(): Nat { id[Nat](7) }
	`)
	require.NoError(t, err)
	require.Contains(t, prog.Fns, "id")
}

func TestCheckEnumConstructorNameCollidesWithFunction(t *testing.T) {
	_, err := checkSource(t, `
		enum E { add(()) }
		fn main(): Nat { 0 }
	`)
	require.Error(t, err)
	var dup *errdefs.ErrDuplicateIdentifier
	require.ErrorAs(t, err, &dup)
}

func TestCheckFunctionNameCollidesWithEarlierEnumConstructor(t *testing.T) {
	_, err := checkSource(t, `
		enum E { foo(()) }
		fn foo(): Nat { 0 }
		fn main(): Nat { 0 }
	`)
	require.Error(t, err)
	var dup *errdefs.ErrDuplicateIdentifier
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "foo", dup.Name)
}

func TestCheckRejectsMainWithParams(t *testing.T) {
	defns, err := parser.Parse("t", []byte(`fn main(x: Nat): Nat { x }`))
	require.NoError(t, err)
	defns = desugar.Defns(defns)
	all := append(append([]ast.TopDefn{}, prelude.Defns()...), defns...)
	_, err = Check(all)
	require.Error(t, err)
	var invalidMain *errdefs.ErrInvalidMain
	require.ErrorAs(t, err, &invalidMain)
}

func TestCheckMissingMain(t *testing.T) {
	defns, err := parser.Parse("t", []byte(`struct S { }`))
	require.NoError(t, err)
	defns = desugar.Defns(defns)
	all := append(append([]ast.TopDefn{}, prelude.Defns()...), defns...)
	_, err = Check(all)
	require.Error(t, err)
	var noMain *errdefs.ErrNoMain
	require.ErrorAs(t, err, &noMain)
}

func TestTypeOfExprAgainstCheckedProgram(t *testing.T) {
	defns, err := parser.Parse("t", []byte(`fn main(): Nat { 1 }`))
	require.NoError(t, err)
	defns = desugar.Defns(defns)
	all := append(append([]ast.TopDefn{}, prelude.Defns()...), defns...)
	prog, err := Check(all)
	require.NoError(t, err)

	e, err := parser.ParseExpr("t", []byte(`2.add(3)`))
	require.NoError(t, err)
	e = desugar.Expr(e)

	typ, eff, err := TypeOfExpr(prog, e)
	require.NoError(t, err)
	require.Equal(t, "Nat", typ.Name)
	require.Empty(t, eff.Names())
}
