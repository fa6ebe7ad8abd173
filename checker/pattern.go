package checker

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
)

// mergeDisjoint unions two binding maps, failing with DuplicateIdentifier if
// a name is bound by both: the elements of a tuple pattern must bind
// disjointly. (Or-pattern alternatives instead must bind identically; see
// sameBindings.)
func mergeDisjoint(pos diagnostic.Position, a, b map[string]ast.Kinded) (map[string]ast.Kinded, error) {
	out := make(map[string]ast.Kinded, len(a)+len(b))
	for name, t := range a {
		out[name] = t
	}
	for name, t := range b {
		if _, ok := out[name]; ok {
			return nil, &errdefs.ErrDuplicateIdentifier{Pos: pos, Name: name}
		}
		out[name] = t
	}
	return out, nil
}

// matchPat checks that pat can match values of type typ, returning the
// binding map it introduces.
func (c *checker) matchPat(pat ast.Pat, typ ast.Kinded) (map[string]ast.Kinded, error) {
	switch pat.Tag {
	case ast.PWildcard:
		return map[string]ast.Kinded{}, nil

	case ast.PString:
		if !typ.Equal(ident(typ.Pos, "Str")) {
			return nil, &errdefs.ErrMismatchedTypes{Pos: pat.Pos, Expected: ident(pat.Pos, "Str"), Found: typ}
		}
		return map[string]ast.Kinded{}, nil

	case ast.PNumber:
		if !typ.Equal(ident(typ.Pos, "Nat")) {
			return nil, &errdefs.ErrMismatchedTypes{Pos: pat.Pos, Expected: ident(pat.Pos, "Nat"), Found: typ}
		}
		return map[string]ast.Kinded{}, nil

	case ast.PTuple:
		if typ.Tag != ast.KdTuple || len(typ.Elems) != len(pat.Elems) {
			return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
		}
		bindings := map[string]ast.Kinded{}
		for i, sub := range pat.Elems {
			subBindings, err := c.matchPat(sub, typ.Elems[i])
			if err != nil {
				return nil, err
			}
			bindings, err = mergeDisjoint(pat.Pos, bindings, subBindings)
			if err != nil {
				return nil, err
			}
		}
		return bindings, nil

	case ast.PCtor:
		if typ.Tag != ast.KdIdent {
			return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
		}
		enumInfo, ok := c.prog.Enums[typ.Name]
		if !ok {
			return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
		}
		carrier, ok := enumInfo.ctorType(pat.Name)
		if !ok {
			return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
		}
		subst := bindKindArgs(enumInfo.KindParams, typ.Args)
		return c.matchPat(*pat.Inner, substitute(carrier, subst))

	case ast.PIdent:
		return map[string]ast.Kinded{pat.Name: typ}, nil

	case ast.POr:
		if len(pat.Elems) == 0 {
			return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
		}
		first, err := c.matchPat(pat.Elems[0], typ)
		if err != nil {
			return nil, err
		}
		for _, sub := range pat.Elems[1:] {
			bindings, err := c.matchPat(sub, typ)
			if err != nil {
				return nil, err
			}
			if !sameBindings(first, bindings) {
				return nil, &errdefs.ErrInvalidPattern{Pos: pat.Pos, Type: typ}
			}
		}
		return first, nil
	}
	panic("checker: unreachable pattern tag")
}

func sameBindings(a, b map[string]ast.Kinded) bool {
	if len(a) != len(b) {
		return false
	}
	for name, t := range a {
		other, ok := b[name]
		if !ok || !t.Equal(other) {
			return false
		}
	}
	return true
}
