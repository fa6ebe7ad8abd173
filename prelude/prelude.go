// Package prelude builds the fixed list of top-level definitions and effect
// labels prepended to every program before checking, grounded on
// github.com/openllb/hlb/checker/builtin.go's pre-registered GlobalScope
// idiom (here: a literal, hand-built defn list rather than a reflection-based
// callable registry, since this prelude is a small closed set).
package prelude

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/diagnostic"
)

// Effects is the fixed set of effect labels pre-registered as big
// identifiers of kind Effect. No primitive performs any of
// them; they exist so user programs can declare and discharge them.
var Effects = []string{"Stdin", "Stdout", "Stderr", "Randomness"}

// PrimitiveNames is the set of function names the interpreter intercepts by
// name instead of evaluating their placeholder body.
var PrimitiveNames = map[string]bool{
	"add": true, "sub": true, "mul": true, "div": true,
	"eq": true, "lt": true, "gt": true, "neq": true,
	"and": true, "or": true, "not": true,
}

func unitTuple() ast.Kinded { return ast.TupleKinded(diagnostic.Position{}) }

func natIdent() ast.Kinded  { return ast.IdentKinded(diagnostic.Position{}, "Nat") }
func boolIdent() ast.Kinded { return ast.IdentKinded(diagnostic.Position{}, "Bool") }
func strIdent() ast.Kinded  { return ast.IdentKinded(diagnostic.Position{}, "Str") }

func ident(name string) ast.Ident { return ast.Ident{Name: name} }

func block(tail ast.Expr) *ast.Block { return &ast.Block{Tail: &tail} }

func identExpr(name string) ast.Expr { return ast.Expr{Tag: ast.EIdent, Name: name} }

// trueExpr builds a call to the Bool constructor `true`, used as a
// placeholder body for primitives whose declared return type is Bool but
// whose parameters aren't (eq, lt, gt, neq): the body only needs to
// type-check, since the interpreter never actually runs it for these names.
func trueExpr() ast.Expr {
	return ast.Expr{Tag: ast.ECall, Name: "true", Args: []ast.Expr{{Tag: ast.ETuple}}}
}

func binaryFn(name string, paramType, retType ast.Kinded, body ast.Expr) ast.TopDefn {
	return ast.TopDefn{
		Tag:  ast.DFunc,
		Name: ident(name),
		ValueParams: []ast.Param{
			ast.TypeParam(ident("a"), paramType),
			ast.TypeParam(ident("b"), paramType),
		},
		Return: &retType,
		Body:   block(body),
	}
}

func unaryFn(name string, paramType, retType ast.Kinded, body ast.Expr) ast.TopDefn {
	return ast.TopDefn{
		Tag:         ast.DFunc,
		Name:        ident(name),
		ValueParams: []ast.Param{ast.TypeParam(ident("a"), paramType)},
		Return:      &retType,
		Body:        block(body),
	}
}

// Defns returns the prelude's top-level definitions in a fixed order: Bool,
// then Nat and Str, then the primitive functions.
func Defns() []ast.TopDefn {
	boolEnum := ast.TopDefn{
		Tag:  ast.DEnum,
		Name: ident("Bool"),
		Ctors: []ast.Param{
			ast.TypeParam(ident("true"), unitTuple()),
			ast.TypeParam(ident("false"), unitTuple()),
		},
	}
	natEnum := ast.TopDefn{Tag: ast.DEnum, Name: ident("Nat")}
	strEnum := ast.TopDefn{Tag: ast.DEnum, Name: ident("Str")}

	nat, bl := natIdent(), boolIdent()

	defns := []ast.TopDefn{boolEnum, natEnum, strEnum}
	for _, name := range []string{"add", "sub", "mul", "div"} {
		defns = append(defns, binaryFn(name, nat, nat, identExpr("a")))
	}
	for _, name := range []string{"eq", "lt", "gt", "neq"} {
		defns = append(defns, binaryFn(name, nat, bl, trueExpr()))
	}
	for _, name := range []string{"and", "or"} {
		defns = append(defns, binaryFn(name, bl, bl, identExpr("a")))
	}
	defns = append(defns, unaryFn("not", bl, bl, identExpr("a")))
	return defns
}

// keep strIdent referenced: Str is opaque, introduced only by literals, so no
// primitive function takes or returns it — but it must remain part of the
// closed type vocabulary callers can reference.
var _ = strIdent
