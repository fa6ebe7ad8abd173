package checker

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/prelude"
)

// StructInfo is the checked signature of a struct definition.
type StructInfo struct {
	KindParams []ast.Param
	Fields     []ast.Param
}

func (s StructInfo) fieldType(name string) (ast.Kinded, bool) {
	for _, f := range s.Fields {
		if f.Name.Name == name {
			return *f.Type, true
		}
	}
	return ast.Kinded{}, false
}

// EnumInfo is the checked signature of an enum definition.
type EnumInfo struct {
	KindParams []ast.Param
	Ctors      []ast.Param
}

func (e EnumInfo) ctorType(name string) (ast.Kinded, bool) {
	for _, c := range e.Ctors {
		if c.Name.Name == name {
			return *c.Type, true
		}
	}
	return ast.Kinded{}, false
}

// FnInfo is the checked signature of a function definition.
type FnInfo struct {
	KindParams  []ast.Param
	ValueParams []ast.Param
	Return      ast.Kinded
}

// Program is the result of a successful Check: the global symbol tables the
// interpreter evaluates against.
type Program struct {
	Structs map[string]StructInfo
	Enums   map[string]EnumInfo
	Fns     map[string]FnInfo
	Effects map[string]bool

	// CtorEnum maps a constructor's small-identifier name to the enum that
	// declares it, since constructors are globally addressable.
	CtorEnum map[string]string

	// Defns retains the original (post-desugar) function bodies, needed by
	// the interpreter to evaluate calls and pre/post predicates.
	Defns map[string]ast.TopDefn
}

// newProgram seeds Effects with the fixed effect vocabulary (Stdin, Stdout,
// Stderr, Randomness). Unlike structs, enums, and functions, effect labels
// have no top-level definition syntax of their own, so there's nowhere else
// in the pipeline for them to be declared.
func newProgram() *Program {
	prog := &Program{
		Structs:  map[string]StructInfo{},
		Enums:    map[string]EnumInfo{},
		Fns:      map[string]FnInfo{},
		Effects:  map[string]bool{},
		CtorEnum: map[string]string{},
		Defns:    map[string]ast.TopDefn{},
	}
	for _, name := range prelude.Effects {
		prog.Effects[name] = true
	}
	return prog
}
