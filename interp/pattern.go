package interp

import "github.com/efflang/efflang/ast"

// matchPat is pat_match: a pure, total function that either
// succeeds with a binding map or reports failure. The checker guarantees a
// let-statement's pattern always succeeds; a match expression's arms may all
// fail, which the caller reports as NonExhaustiveMatch.
func matchPat(pat ast.Pat, v Value) (map[string]Value, bool) {
	switch pat.Tag {
	case ast.PWildcard:
		return map[string]Value{}, true

	case ast.PString:
		if v.Tag == VString && v.Str == pat.StringVal {
			return map[string]Value{}, true
		}
		return nil, false

	case ast.PNumber:
		if v.Tag == VNumber && v.Num == pat.NumberVal {
			return map[string]Value{}, true
		}
		return nil, false

	case ast.PTuple:
		if v.Tag != VTuple || len(v.Elems) != len(pat.Elems) {
			return nil, false
		}
		bindings := map[string]Value{}
		for i, sub := range pat.Elems {
			subBindings, ok := matchPat(sub, v.Elems[i])
			if !ok {
				return nil, false
			}
			for name, bv := range subBindings {
				bindings[name] = bv
			}
		}
		return bindings, true

	case ast.PCtor:
		if v.Tag != VCtor || v.CtorName != pat.Name {
			return nil, false
		}
		return matchPat(*pat.Inner, *v.Inner)

	case ast.PIdent:
		return map[string]Value{pat.Name: v}, true

	case ast.POr:
		for _, sub := range pat.Elems {
			if bindings, ok := matchPat(sub, v); ok {
				return bindings, true
			}
		}
		return nil, false
	}
	panic("interp: unreachable pattern tag")
}
