package ast

import "github.com/efflang/efflang/diagnostic"

// TopDefnTag distinguishes Struct/Enum/Function top-level definitions.
type TopDefnTag int

const (
	DStruct TopDefnTag = iota
	DEnum
	DFunc
)

// TopDefn is one top-level definition: a struct, an enum, or a function.
type TopDefn struct {
	Tag TopDefnTag
	Pos diagnostic.Position

	Name       Ident
	KindParams []Param

	// DStruct
	Fields []Param

	// DEnum
	Ctors []Param

	// DFunc
	ValueParams []Param
	Return      *Kinded
	Requires    *Expr
	Ensures     *Expr
	Body        *Block
}

func (d *TopDefn) Position() diagnostic.Position { return d.Pos }

// String names the kind of definition, for error messages ("function f",
// "struct Pair", ...).
func (d *TopDefn) String() string {
	switch d.Tag {
	case DStruct:
		return "struct " + d.Name.Name
	case DEnum:
		return "enum " + d.Name.Name
	case DFunc:
		return "function " + d.Name.Name
	}
	return d.Name.Name
}
