package checker

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
)

// checker holds the global declaration tables built up while processing
// top-level definitions in source order.
type checker struct {
	prog *Program
}

// Check type-checks a desugared, prelude-merged program and returns the
// resulting Program (the interpreter's global symbol tables) or the first
// diagnostic encountered. main must be present and take no parameters.
func Check(defns []ast.TopDefn) (*Program, error) {
	prog, err := CheckOpen(defns)
	if err != nil {
		return nil, err
	}

	main, ok := prog.Fns["main"]
	if !ok {
		return nil, &errdefs.ErrNoMain{}
	}
	mainDefn := prog.Defns["main"]
	if len(main.KindParams) != 0 || len(main.ValueParams) != 0 || mainDefn.Requires != nil || mainDefn.Ensures != nil {
		return nil, &errdefs.ErrInvalidMain{Pos: mainDefn.Pos}
	}

	return prog, nil
}

// CheckOpen type-checks a set of definitions without requiring a main
// function, for hosts (the repl) that build up a program incrementally and
// want to validate each definition as it arrives.
func CheckOpen(defns []ast.TopDefn) (*Program, error) {
	c := &checker{prog: newProgram()}

	for _, d := range defns {
		var err error
		switch d.Tag {
		case ast.DStruct:
			err = c.checkStruct(d)
		case ast.DEnum:
			err = c.checkEnum(d)
		case ast.DFunc:
			err = c.checkFunc(d)
		}
		if err != nil {
			return nil, err
		}
	}

	return c.prog, nil
}

// TypeOfExpr types a standalone expression against an already-checked
// program, with no value bindings in scope beyond the program's own
// functions, structs, and enums. It exists for the repl's `:type` command,
// which needs typing without wrapping the expression in a synthetic
// function.
func TypeOfExpr(prog *Program, e ast.Expr) (ast.Kinded, *KindSet, error) {
	c := &checker{prog: prog}
	return c.typeOf(e, newScope(nil))
}

func (c *checker) fnNameCandidates() []string {
	var names []string
	for n := range c.prog.Fns {
		names = append(names, n)
	}
	for n := range c.prog.CtorEnum {
		names = append(names, n)
	}
	return names
}

// headScope builds a fresh scope with the definition's kind-parameters bound,
// rejecting duplicate parameter names.
func (c *checker) headScope(name string, kindParams []ast.Param) (*scope, error) {
	sc := newScope(nil)
	for _, p := range kindParams {
		if _, ok := sc.big[p.Name.Name]; ok {
			return nil, &errdefs.ErrDuplicateIdentifier{Pos: p.Name.Pos, Name: p.Name.Name}
		}
		sc.insertBig(p.Name.Name, *p.Kind)
	}
	return sc, nil
}

func (c *checker) checkStruct(d ast.TopDefn) error {
	if _, ok := c.prog.Structs[d.Name.Name]; ok {
		return &errdefs.ErrDuplicateIdentifier{Pos: d.Pos, Name: d.Name.Name}
	}
	sc, err := c.headScope(d.Name.Name, d.KindParams)
	if err != nil {
		return err
	}

	fieldNames := map[string]bool{}
	for _, f := range d.Fields {
		k, err := c.kindOf(*f.Type, sc)
		if err != nil {
			return err
		}
		if k.Tag != ast.KType {
			return &errdefs.ErrMismatchedKinds{Pos: f.Type.Pos, Expected: ast.Type, Found: k}
		}
		if fieldNames[f.Name.Name] {
			return &errdefs.ErrDuplicateField{Pos: f.Name.Pos, StructName: d.Name.Name, Field: f.Name.Name}
		}
		fieldNames[f.Name.Name] = true
	}

	c.prog.Structs[d.Name.Name] = StructInfo{KindParams: d.KindParams, Fields: d.Fields}
	return nil
}

func (c *checker) checkEnum(d ast.TopDefn) error {
	if _, ok := c.prog.Enums[d.Name.Name]; ok {
		return &errdefs.ErrDuplicateIdentifier{Pos: d.Pos, Name: d.Name.Name}
	}
	sc, err := c.headScope(d.Name.Name, d.KindParams)
	if err != nil {
		return err
	}

	for _, ctor := range d.Ctors {
		k, err := c.kindOf(*ctor.Type, sc)
		if err != nil {
			return err
		}
		if k.Tag != ast.KType {
			return &errdefs.ErrMismatchedKinds{Pos: ctor.Type.Pos, Expected: ast.Type, Found: k}
		}
		if _, ok := c.prog.Fns[ctor.Name.Name]; ok {
			return &errdefs.ErrDuplicateIdentifier{Pos: ctor.Name.Pos, Name: ctor.Name.Name}
		}
		if _, ok := c.prog.CtorEnum[ctor.Name.Name]; ok {
			return &errdefs.ErrDuplicateIdentifier{Pos: ctor.Name.Pos, Name: ctor.Name.Name}
		}
	}

	for _, ctor := range d.Ctors {
		c.prog.CtorEnum[ctor.Name.Name] = d.Name.Name
	}
	c.prog.Enums[d.Name.Name] = EnumInfo{KindParams: d.KindParams, Ctors: d.Ctors}
	return nil
}

func (c *checker) checkFunc(d ast.TopDefn) error {
	if _, ok := c.prog.Fns[d.Name.Name]; ok {
		return &errdefs.ErrDuplicateIdentifier{Pos: d.Pos, Name: d.Name.Name}
	}
	if _, ok := c.prog.CtorEnum[d.Name.Name]; ok {
		return &errdefs.ErrDuplicateIdentifier{Pos: d.Pos, Name: d.Name.Name}
	}

	sc, err := c.headScope(d.Name.Name, d.KindParams)
	if err != nil {
		return err
	}
	for _, p := range d.ValueParams {
		if _, ok := sc.vars[p.Name.Name]; ok {
			return &errdefs.ErrDuplicateIdentifier{Pos: p.Name.Pos, Name: p.Name.Name}
		}
		sc.insertVar(p.Name.Name, *p.Type)
	}

	retKind, err := c.kindOf(*d.Return, sc)
	if err != nil {
		return err
	}
	if retKind.Tag != ast.KType {
		return &errdefs.ErrMismatchedKinds{Pos: d.Return.Pos, Expected: ast.Type, Found: retKind}
	}

	if d.Requires != nil {
		reqTy, reqEff, err := c.typeOf(*d.Requires, sc)
		if err != nil {
			return err
		}
		if !reqTy.Equal(boolType()) {
			return &errdefs.ErrMismatchedTypes{Pos: d.Requires.Pos, Expected: boolType(), Found: reqTy}
		}
		if len(reqEff.Names()) != 0 {
			return &errdefs.ErrInvalidEffectUse{Pos: d.Requires.Pos, Fn: d.Name.Name, Effect: reqEff.Names()[0]}
		}
	}

	retType, declaredEffects := splitEffectful(*d.Return)

	if d.Ensures != nil {
		ensScope := newScope(sc)
		ensScope.insertVar("ret", retType)
		ensTy, ensEff, err := c.typeOf(*d.Ensures, ensScope)
		if err != nil {
			return err
		}
		if !ensTy.Equal(boolType()) {
			return &errdefs.ErrMismatchedTypes{Pos: d.Ensures.Pos, Expected: boolType(), Found: ensTy}
		}
		if len(ensEff.Names()) != 0 {
			return &errdefs.ErrInvalidEffectUse{Pos: d.Ensures.Pos, Fn: d.Name.Name, Effect: ensEff.Names()[0]}
		}
	}

	c.prog.Fns[d.Name.Name] = FnInfo{KindParams: d.KindParams, ValueParams: d.ValueParams, Return: *d.Return}
	c.prog.Defns[d.Name.Name] = d

	bodyTy, bodyEff, err := c.typeOfBlock(*d.Body, sc)
	if err != nil {
		return err
	}
	if !bodyTy.Equal(retType) {
		return &errdefs.ErrMismatchedTypes{Pos: d.Body.Pos, Expected: retType, Found: bodyTy}
	}
	allowed := flattenEffects(declaredEffects)
	if !bodyEff.IsSubset(allowed) {
		for _, name := range bodyEff.Names() {
			if !allowed.Has(name) {
				return &errdefs.ErrInvalidEffectUse{Pos: d.Body.Pos, Fn: d.Name.Name, Effect: name}
			}
		}
	}

	return nil
}

// splitEffectful strips an Effectful(T, E) wrapper from a declared return
// type, returning (T, E); a bare type returns (T, empty Set).
func splitEffectful(k ast.Kinded) (ast.Kinded, ast.Kinded) {
	if k.Tag == ast.KdEffectful {
		return *k.Type, *k.Effects
	}
	return k, ast.SetKinded(k.Pos)
}
