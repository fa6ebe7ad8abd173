package checker

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
)

// paramsKind assembles the kind of a parameter list the way an Arrow
// constructor's argument position expects it: a single parameter's own kind,
// or a Tuple of all of them when there's more than one.
func paramsKind(params []ast.Param) ast.Kind {
	if len(params) == 1 {
		return *params[0].Kind
	}
	kinds := make([]ast.Kind, len(params))
	for i, p := range params {
		kinds[i] = *p.Kind
	}
	return ast.TupleKind(kinds...)
}

// kindOfUnapplied computes the kind of a bare (unapplied) Ident: a
// kind-parameter, a struct, an enum, or an effect label.
func (c *checker) kindOfUnapplied(name string, pos diagnostic.Position, sc *scope) (ast.Kind, error) {
	if k, ok := sc.lookupBig(name); ok {
		return k, nil
	}
	if s, ok := c.prog.Structs[name]; ok {
		if len(s.KindParams) == 0 {
			return ast.Type, nil
		}
		return ast.ArrowKind(paramsKind(s.KindParams), ast.Type), nil
	}
	if e, ok := c.prog.Enums[name]; ok {
		if len(e.KindParams) == 0 {
			return ast.Type, nil
		}
		return ast.ArrowKind(paramsKind(e.KindParams), ast.Type), nil
	}
	if c.prog.Effects[name] {
		return ast.Effect, nil
	}
	return ast.Kind{}, errdefs.WithUndefinedIdentifier(pos, name, c.bigNameCandidates())
}

func (c *checker) bigNameCandidates() []string {
	var names []string
	for n := range c.prog.Structs {
		names = append(names, n)
	}
	for n := range c.prog.Enums {
		names = append(names, n)
	}
	for n := range c.prog.Effects {
		names = append(names, n)
	}
	return names
}

// kindOf computes the kind of a Kinded term.
func (c *checker) kindOf(k ast.Kinded, sc *scope) (ast.Kind, error) {
	switch k.Tag {
	case ast.KdIdent:
		base, err := c.kindOfUnapplied(k.Name, k.Pos, sc)
		if err != nil {
			return ast.Kind{}, err
		}
		if len(k.Args) == 0 {
			return base, nil
		}
		if base.Tag != ast.KArrow {
			return ast.Kind{}, &errdefs.ErrInvalidKindedApp{Pos: k.Pos, Name: k.Name, FoundKind: base}
		}
		argKinds := make([]ast.Kind, len(k.Args))
		for i, a := range k.Args {
			ak, err := c.kindOf(a, sc)
			if err != nil {
				return ast.Kind{}, err
			}
			argKinds[i] = ak
		}
		var assembled ast.Kind
		if len(argKinds) == 1 {
			assembled = argKinds[0]
		} else {
			assembled = ast.TupleKind(argKinds...)
		}
		if !assembled.Equal(*base.Arg) {
			return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: k.Pos, Expected: *base.Arg, Found: assembled}
		}
		return *base.Res, nil

	case ast.KdTuple:
		for _, e := range k.Elems {
			ek, err := c.kindOf(e, sc)
			if err != nil {
				return ast.Kind{}, err
			}
			if ek.Tag != ast.KType {
				return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: e.Pos, Expected: ast.Type, Found: ek}
			}
		}
		return ast.Type, nil

	case ast.KdSet:
		for _, e := range k.Elems {
			ek, err := c.kindOf(e, sc)
			if err != nil {
				return ast.Kind{}, err
			}
			if ek.Tag != ast.KEffect {
				return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: e.Pos, Expected: ast.Effect, Found: ek}
			}
		}
		return ast.Effect, nil

	case ast.KdArrow:
		inK, err := c.kindOf(*k.In, sc)
		if err != nil {
			return ast.Kind{}, err
		}
		if inK.Tag != ast.KType {
			return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: k.In.Pos, Expected: ast.Type, Found: inK}
		}
		outK, err := c.kindOf(*k.Out, sc)
		if err != nil {
			return ast.Kind{}, err
		}
		if outK.Tag != ast.KType {
			return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: k.Out.Pos, Expected: ast.Type, Found: outK}
		}
		return ast.Type, nil

	case ast.KdEffectful:
		tk, err := c.kindOf(*k.Type, sc)
		if err != nil {
			return ast.Kind{}, err
		}
		if tk.Tag != ast.KType {
			return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: k.Type.Pos, Expected: ast.Type, Found: tk}
		}
		ek, err := c.kindOf(*k.Effects, sc)
		if err != nil {
			return ast.Kind{}, err
		}
		if ek.Tag != ast.KEffect {
			return ast.Kind{}, &errdefs.ErrMismatchedKinds{Pos: k.Effects.Pos, Expected: ast.Effect, Found: ek}
		}
		return ast.Type, nil
	}
	return ast.Kind{}, nil
}
