package checker

import "github.com/efflang/efflang/ast"

// substitute applies a kind-argument substitution (param name -> Kinded) to
// every Ident reference to a substituted parameter within k. A saturated
// reference (no args of its own) is replaced outright; an applied reference
// to a higher-kinded parameter
// rewrites the identifier but carries its own arguments through (substituted
// too) — the only higher-kinded application this language supports.
func substitute(k ast.Kinded, subst map[string]ast.Kinded) ast.Kinded {
	switch k.Tag {
	case ast.KdIdent:
		newArgs := substituteAll(k.Args, subst)
		if val, ok := subst[k.Name]; ok {
			if len(k.Args) == 0 {
				return val
			}
			return ast.IdentKinded(k.Pos, val.Name, newArgs...)
		}
		return ast.IdentKinded(k.Pos, k.Name, newArgs...)
	case ast.KdTuple:
		return ast.TupleKinded(k.Pos, substituteAll(k.Elems, subst)...)
	case ast.KdSet:
		return ast.SetKinded(k.Pos, substituteAll(k.Elems, subst)...)
	case ast.KdArrow:
		in := substitute(*k.In, subst)
		out := substitute(*k.Out, subst)
		return ast.ArrowKinded(k.Pos, in, out)
	case ast.KdEffectful:
		t := substitute(*k.Type, subst)
		e := substitute(*k.Effects, subst)
		return ast.EffectfulKinded(k.Pos, t, e)
	}
	return k
}

func substituteAll(ks []ast.Kinded, subst map[string]ast.Kinded) []ast.Kinded {
	if ks == nil {
		return nil
	}
	out := make([]ast.Kinded, len(ks))
	for i, k := range ks {
		out[i] = substitute(k, subst)
	}
	return out
}

// bindKindArgs builds the param-name -> argument substitution map for a
// kind-parameterized reference, after arity has already been checked.
func bindKindArgs(params []ast.Param, args []ast.Kinded) map[string]ast.Kinded {
	subst := make(map[string]ast.Kinded, len(params))
	for i, p := range params {
		subst[p.Name.Name] = args[i]
	}
	return subst
}
