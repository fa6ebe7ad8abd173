package main

import (
	"fmt"

	"github.com/efflang/efflang/ast"
	"github.com/xlab/treeprint"
)

// dumpTopDefn renders a parsed top-level definition as an indented tree, for
// the `--dump-cst` / `:dump-cst` debug surface. It is a read-only aid;
// nothing in `interpret` depends on it.
func dumpTopDefn(d ast.TopDefn) treeprint.Tree {
	tree := treeprint.New()
	switch d.Tag {
	case ast.DStruct:
		tree.SetValue(fmt.Sprintf("struct %s", d.Name.Name))
		dumpKindParams(tree, d.KindParams)
		for _, f := range d.Fields {
			tree.AddMetaBranch("field", f.Name.Name).AddNode(dumpKinded(*f.Type))
		}
	case ast.DEnum:
		tree.SetValue(fmt.Sprintf("enum %s", d.Name.Name))
		dumpKindParams(tree, d.KindParams)
		for _, c := range d.Ctors {
			tree.AddMetaBranch("ctor", c.Name.Name).AddNode(dumpKinded(*c.Type))
		}
	case ast.DFunc:
		tree.SetValue(fmt.Sprintf("fn %s", d.Name.Name))
		dumpKindParams(tree, d.KindParams)
		for _, p := range d.ValueParams {
			tree.AddMetaBranch("param", p.Name.Name).AddNode(dumpKinded(*p.Type))
		}
		tree.AddMetaBranch("returns", dumpKinded(*d.Return))
		if d.Requires != nil {
			dumpExpr(tree.AddBranch("requires"), *d.Requires)
		}
		if d.Ensures != nil {
			dumpExpr(tree.AddBranch("ensures"), *d.Ensures)
		}
		if d.Body != nil {
			dumpBlock(tree.AddBranch("body"), *d.Body)
		}
	}
	return tree
}

func dumpKindParams(tree treeprint.Tree, params []ast.Param) {
	for _, p := range params {
		tree.AddMetaBranch("kind-param", p.Name.Name).AddNode(p.Kind.String())
	}
}

func dumpKinded(k ast.Kinded) string { return k.String() }

func dumpBlock(tree treeprint.Tree, b ast.Block) {
	for _, stmt := range b.Stmts {
		branch := tree.AddBranch(fmt.Sprintf("let %s", dumpPatString(stmt.Pat)))
		dumpExpr(branch, stmt.Value)
	}
	if b.Tail != nil {
		dumpExpr(tree.AddBranch("tail"), *b.Tail)
	}
}

func dumpPatString(p ast.Pat) string {
	switch p.Tag {
	case ast.PWildcard:
		return "_"
	case ast.PString:
		return fmt.Sprintf("%q", p.StringVal)
	case ast.PNumber:
		return fmt.Sprintf("%d", p.NumberVal)
	case ast.PIdent:
		return p.Name
	case ast.PCtor:
		return p.Name + "(...)"
	case ast.PTuple:
		return "(...)"
	case ast.POr:
		return "(... | ...)"
	}
	return "?"
}

func dumpExpr(tree treeprint.Tree, e ast.Expr) {
	switch e.Tag {
	case ast.EString:
		tree.SetValue(fmt.Sprintf("%q", e.StringVal))
	case ast.ENumber:
		tree.SetValue(fmt.Sprintf("%d", e.NumberVal))
	case ast.EIdent:
		tree.SetValue(e.Name)
	case ast.ETuple:
		tree.SetValue("tuple")
		for _, el := range e.Elems {
			dumpExpr(tree.AddBranch("elem"), el)
		}
	case ast.EStructLit:
		tree.SetValue(fmt.Sprintf("%s{...}", e.Name))
		for _, f := range e.Fields {
			dumpExpr(tree.AddBranch(f.Name.Name), f.Value)
		}
	case ast.ECall:
		tree.SetValue(fmt.Sprintf("%s(...)", e.Name))
		for _, a := range e.Args {
			dumpExpr(tree.AddBranch("arg"), a)
		}
	case ast.EMethodCall:
		tree.SetValue(fmt.Sprintf(".%s(...)", e.Name))
		dumpExpr(tree.AddBranch("receiver"), *e.Receiver)
		for _, a := range e.Args {
			dumpExpr(tree.AddBranch("arg"), a)
		}
	case ast.EFieldGet:
		tree.SetValue(fmt.Sprintf(".%s", e.Field.Name))
		dumpExpr(tree.AddBranch("receiver"), *e.Receiver)
	case ast.EMatch:
		tree.SetValue("match")
		dumpExpr(tree.AddBranch("scrutinee"), *e.Scrutinee)
		for _, arm := range e.Arms {
			dumpBlock(tree.AddBranch(dumpPatString(arm.Pat)), arm.Body)
		}
	case ast.EBlock:
		tree.SetValue("block")
		dumpBlock(tree, *e.Block)
	}
}
