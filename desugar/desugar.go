// Package desugar performs the single CST→CST transformation: `x.f[K…](e…)`
// becomes `f[K…](x, e…)`. Every other node is walked structurally and
// reproduced, in the style of
// github.com/openllb/hlb/parser's walk.go structural-rewrite idiom.
package desugar

import "github.com/efflang/efflang/ast"

// Defns desugars every top-level definition in place and returns the slice
// (desugaring never changes the number or order of definitions).
func Defns(defns []ast.TopDefn) []ast.TopDefn {
	for i := range defns {
		defns[i] = Defn(defns[i])
	}
	return defns
}

func Defn(d ast.TopDefn) ast.TopDefn {
	if d.Tag != ast.DFunc {
		return d
	}
	if d.Requires != nil {
		e := Expr(*d.Requires)
		d.Requires = &e
	}
	if d.Ensures != nil {
		e := Expr(*d.Ensures)
		d.Ensures = &e
	}
	if d.Body != nil {
		b := Block(*d.Body)
		d.Body = &b
	}
	return d
}

func Block(b ast.Block) ast.Block {
	for i := range b.Stmts {
		b.Stmts[i].Value = Expr(b.Stmts[i].Value)
	}
	if b.Tail != nil {
		e := Expr(*b.Tail)
		b.Tail = &e
	}
	return b
}

// Expr rewrites a single expression node, recursing into its children and
// rewriting any EMethodCall it finds into an ECall with the receiver
// prepended to the argument list.
func Expr(e ast.Expr) ast.Expr {
	switch e.Tag {
	case ast.ETuple:
		for i := range e.Elems {
			e.Elems[i] = Expr(e.Elems[i])
		}
	case ast.EStructLit:
		for i := range e.Fields {
			e.Fields[i].Value = Expr(e.Fields[i].Value)
		}
	case ast.ECall:
		for i := range e.Args {
			e.Args[i] = Expr(e.Args[i])
		}
	case ast.EMethodCall:
		recv := Expr(*e.Receiver)
		args := make([]ast.Expr, 0, len(e.Args)+1)
		args = append(args, recv)
		for _, a := range e.Args {
			args = append(args, Expr(a))
		}
		e = ast.Expr{
			Tag: ast.ECall, Pos: e.Pos,
			Name: e.Name, KindArgs: e.KindArgs, Args: args,
		}
	case ast.EFieldGet:
		recv := Expr(*e.Receiver)
		e.Receiver = &recv
	case ast.EMatch:
		scrut := Expr(*e.Scrutinee)
		e.Scrutinee = &scrut
		for i := range e.Arms {
			e.Arms[i].Body = Block(e.Arms[i].Body)
		}
	case ast.EBlock:
		b := Block(*e.Block)
		e.Block = &b
	}
	return e
}
