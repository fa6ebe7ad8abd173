package checker

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
)

func ident(pos diagnostic.Position, name string) ast.Kinded { return ast.IdentKinded(pos, name) }

// boolType is the Kinded reference to the prelude's Bool enum, used
// wherever a position-independent comparison against Bool is needed.
func boolType() ast.Kinded { return ast.IdentKinded(diagnostic.Position{}, "Bool") }

func (c *checker) typesEqual(a, b ast.Kinded) bool { return a.Equal(b) }

// typeOf infers an expression's (type, effect-set) pair.
func (c *checker) typeOf(e ast.Expr, sc *scope) (ast.Kinded, *KindSet, error) {
	switch e.Tag {
	case ast.EString:
		return ident(e.Pos, "Str"), NewKindSet(), nil

	case ast.ENumber:
		return ident(e.Pos, "Nat"), NewKindSet(), nil

	case ast.ETuple:
		elemTys := make([]ast.Kinded, len(e.Elems))
		eff := NewKindSet()
		for i, el := range e.Elems {
			t, ef, err := c.typeOf(el, sc)
			if err != nil {
				return ast.Kinded{}, nil, err
			}
			elemTys[i] = t
			eff = eff.Union(ef)
		}
		return ast.TupleKinded(e.Pos, elemTys...), eff, nil

	case ast.EStructLit:
		return c.typeOfStructLit(e, sc)

	case ast.EIdent:
		if t, ok := sc.lookupVar(e.Name); ok {
			return t, NewKindSet(), nil
		}
		return ast.Kinded{}, nil, errdefs.WithUndefinedIdentifier(e.Pos, e.Name, sc.allVarNames())

	case ast.ECall:
		return c.typeOfCall(e, sc)

	case ast.EFieldGet:
		return c.typeOfFieldGet(e, sc)

	case ast.EMatch:
		return c.typeOfMatch(e, sc)

	case ast.EBlock:
		return c.typeOfBlock(*e.Block, sc)
	}
	panic("checker: unreachable expression tag")
}

func (c *checker) typeOfStructLit(e ast.Expr, sc *scope) (ast.Kinded, *KindSet, error) {
	info, ok := c.prog.Structs[e.Name]
	if !ok {
		return ast.Kinded{}, nil, errdefs.WithUndefinedIdentifier(e.Pos, e.Name, c.bigNameCandidates())
	}
	if len(e.KindArgs) != len(info.KindParams) {
		return ast.Kinded{}, nil, &errdefs.ErrWrongNumArgs{Pos: e.Pos, Name: e.Name, Expected: len(info.KindParams), Found: len(e.KindArgs)}
	}
	for i, arg := range e.KindArgs {
		argKind, err := c.kindOf(arg, sc)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		if !argKind.Equal(*info.KindParams[i].Kind) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedKinds{Pos: arg.Pos, Expected: *info.KindParams[i].Kind, Found: argKind}
		}
	}
	subst := bindKindArgs(info.KindParams, e.KindArgs)

	eff := NewKindSet()
	seen := map[string]bool{}
	for _, f := range e.Fields {
		fieldTy, ok := info.fieldType(f.Name.Name)
		if !ok {
			return ast.Kinded{}, nil, &errdefs.ErrNoSuchField{Pos: f.Name.Pos, StructName: e.Name, Field: f.Name.Name}
		}
		if seen[f.Name.Name] {
			return ast.Kinded{}, nil, &errdefs.ErrDuplicateField{Pos: f.Name.Pos, StructName: e.Name, Field: f.Name.Name}
		}
		seen[f.Name.Name] = true

		valTy, valEff, err := c.typeOf(f.Value, sc)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		want := substitute(fieldTy, subst)
		if !c.typesEqual(want, valTy) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedTypes{Pos: f.Value.Pos, Expected: want, Found: valTy}
		}
		eff = eff.Union(valEff)
	}
	if len(seen) != len(info.Fields) {
		return ast.Kinded{}, nil, &errdefs.ErrWrongNumArgs{Pos: e.Pos, Name: e.Name, Expected: len(info.Fields), Found: len(seen)}
	}
	return ast.IdentKinded(e.Pos, e.Name, e.KindArgs...), eff, nil
}

// ctorSignature builds the synthetic unary-function signature of an enum
// constructor: kind-params -> carrier -> enum-name[kind-params].
func (c *checker) ctorSignature(enumName, ctorName string) (FnInfo, bool) {
	info, ok := c.prog.Enums[enumName]
	if !ok {
		return FnInfo{}, false
	}
	carrier, ok := info.ctorType(ctorName)
	if !ok {
		return FnInfo{}, false
	}
	args := make([]ast.Kinded, len(info.KindParams))
	for i, p := range info.KindParams {
		args[i] = ast.IdentKinded(p.Name.Pos, p.Name.Name)
	}
	return FnInfo{
		KindParams:  info.KindParams,
		ValueParams: []ast.Param{ast.TypeParam(ast.Ident{Name: "_"}, carrier)},
		Return:      ast.IdentKinded(p0(info), enumName, args...),
	}, true
}

func p0(info EnumInfo) diagnostic.Position {
	if len(info.Ctors) > 0 {
		return info.Ctors[0].Name.Pos
	}
	return diagnostic.Position{}
}

func (c *checker) typeOfCall(e ast.Expr, sc *scope) (ast.Kinded, *KindSet, error) {
	var fn FnInfo
	if info, ok := c.prog.Fns[e.Name]; ok {
		fn = info
	} else if enumName, ok := c.prog.CtorEnum[e.Name]; ok {
		fn, _ = c.ctorSignature(enumName, e.Name)
	} else {
		return ast.Kinded{}, nil, errdefs.WithUndefinedIdentifier(e.Pos, e.Name, c.fnNameCandidates())
	}

	if len(e.KindArgs) != len(fn.KindParams) {
		return ast.Kinded{}, nil, &errdefs.ErrWrongNumArgs{Pos: e.Pos, Name: e.Name, Expected: len(fn.KindParams), Found: len(e.KindArgs)}
	}
	for i, arg := range e.KindArgs {
		argKind, err := c.kindOf(arg, sc)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		if !argKind.Equal(*fn.KindParams[i].Kind) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedKinds{Pos: arg.Pos, Expected: *fn.KindParams[i].Kind, Found: argKind}
		}
	}
	if len(e.Args) != len(fn.ValueParams) {
		return ast.Kinded{}, nil, &errdefs.ErrWrongNumArgs{Pos: e.Pos, Name: e.Name, Expected: len(fn.ValueParams), Found: len(e.Args)}
	}
	subst := bindKindArgs(fn.KindParams, e.KindArgs)

	eff := NewKindSet()
	for i, argExpr := range e.Args {
		argTy, argEff, err := c.typeOf(argExpr, sc)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		want := substitute(*fn.ValueParams[i].Type, subst)
		if !c.typesEqual(want, argTy) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedTypes{Pos: argExpr.Pos, Expected: want, Found: argTy}
		}
		eff = eff.Union(argEff)
	}

	ret := substitute(fn.Return, subst)
	if ret.Tag == ast.KdEffectful {
		eff = eff.Union(flattenEffects(*ret.Effects))
		ret = *ret.Type
	}
	return ret, eff, nil
}

func (c *checker) typeOfFieldGet(e ast.Expr, sc *scope) (ast.Kinded, *KindSet, error) {
	recvTy, eff, err := c.typeOf(*e.Receiver, sc)
	if err != nil {
		return ast.Kinded{}, nil, err
	}
	if recvTy.Tag != ast.KdIdent {
		return ast.Kinded{}, nil, &errdefs.ErrNotStruct{Pos: e.Pos, Field: e.Field.Name}
	}
	info, ok := c.prog.Structs[recvTy.Name]
	if !ok {
		return ast.Kinded{}, nil, &errdefs.ErrNotStruct{Pos: e.Pos, Field: e.Field.Name}
	}
	fieldTy, ok := info.fieldType(e.Field.Name)
	if !ok {
		return ast.Kinded{}, nil, &errdefs.ErrNoSuchField{Pos: e.Field.Pos, StructName: recvTy.Name, Field: e.Field.Name}
	}
	subst := bindKindArgs(info.KindParams, recvTy.Args)
	return substitute(fieldTy, subst), eff, nil
}

func (c *checker) typeOfMatch(e ast.Expr, sc *scope) (ast.Kinded, *KindSet, error) {
	scrutTy, eff, err := c.typeOf(*e.Scrutinee, sc)
	if err != nil {
		return ast.Kinded{}, nil, err
	}
	if len(e.Arms) == 0 {
		return ast.Kinded{}, nil, &errdefs.ErrEmptyMatch{Pos: e.Pos}
	}
	var resultTy ast.Kinded
	for i, arm := range e.Arms {
		bindings, err := c.matchPat(arm.Pat, scrutTy)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		armScope := newScope(sc)
		for name, t := range bindings {
			armScope.insertVar(name, t)
		}
		armTy, armEff, err := c.typeOfBlock(arm.Body, armScope)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		if i == 0 {
			resultTy = armTy
		} else if !c.typesEqual(resultTy, armTy) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedTypes{Pos: arm.Pos, Expected: resultTy, Found: armTy}
		}
		eff = eff.Union(armEff)
	}
	return resultTy, eff, nil
}

func (c *checker) typeOfBlock(b ast.Block, parent *scope) (ast.Kinded, *KindSet, error) {
	sc := newScope(parent)
	eff := NewKindSet()
	for _, stmt := range b.Stmts {
		valTy, valEff, err := c.typeOf(stmt.Value, sc)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		if stmt.Type != nil && !c.typesEqual(*stmt.Type, valTy) {
			return ast.Kinded{}, nil, &errdefs.ErrMismatchedTypes{Pos: stmt.Pos, Expected: *stmt.Type, Found: valTy}
		}
		bindings, err := c.matchPat(stmt.Pat, valTy)
		if err != nil {
			return ast.Kinded{}, nil, err
		}
		for name, t := range bindings {
			sc.insertVar(name, t)
		}
		eff = eff.Union(valEff)
	}
	if b.Tail == nil {
		return ast.Kinded{}, nil, &errdefs.ErrNoExprForBlock{Pos: b.Pos}
	}
	tailTy, tailEff, err := c.typeOf(*b.Tail, sc)
	if err != nil {
		return ast.Kinded{}, nil, err
	}
	return tailTy, eff.Union(tailEff), nil
}
