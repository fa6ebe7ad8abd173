package ast

import (
	"strings"

	"github.com/efflang/efflang/diagnostic"
)

// KindedTag distinguishes the cases of the Kinded sum. Types and effects
// share this one sum, rather than being separate ASTs.
type KindedTag int

const (
	KdIdent KindedTag = iota
	KdTuple
	KdSet
	KdArrow
	KdEffectful
)

// Kinded is a type-or-effect expression: the term that inhabits a Kind.
type Kinded struct {
	Tag KindedTag
	Pos diagnostic.Position

	// KdIdent
	Name string
	Args []Kinded

	// KdTuple / KdSet
	Elems []Kinded

	// KdArrow
	In, Out *Kinded

	// KdEffectful
	Type    *Kinded
	Effects *Kinded
}

// IdentKinded builds an unapplied or applied Ident reference.
func IdentKinded(pos diagnostic.Position, name string, args ...Kinded) Kinded {
	return Kinded{Tag: KdIdent, Pos: pos, Name: name, Args: args}
}

func TupleKinded(pos diagnostic.Position, elems ...Kinded) Kinded {
	return Kinded{Tag: KdTuple, Pos: pos, Elems: elems}
}

func SetKinded(pos diagnostic.Position, elems ...Kinded) Kinded {
	return Kinded{Tag: KdSet, Pos: pos, Elems: elems}
}

func ArrowKinded(pos diagnostic.Position, in, out Kinded) Kinded {
	return Kinded{Tag: KdArrow, Pos: pos, In: &in, Out: &out}
}

func EffectfulKinded(pos diagnostic.Position, t, e Kinded) Kinded {
	return Kinded{Tag: KdEffectful, Pos: pos, Type: &t, Effects: &e}
}

// Equal reports structural equality between two Kinded terms, ignoring
// position. Used by the checker to compare inferred vs. declared/expected
// types. (Effect sets are deduplicated by label name in checker.KindSet.)
func (k Kinded) Equal(other Kinded) bool {
	if k.Tag != other.Tag {
		return false
	}
	switch k.Tag {
	case KdIdent:
		if k.Name != other.Name || len(k.Args) != len(other.Args) {
			return false
		}
		for i := range k.Args {
			if !k.Args[i].Equal(other.Args[i]) {
				return false
			}
		}
		return true
	case KdTuple, KdSet:
		if len(k.Elems) != len(other.Elems) {
			return false
		}
		for i := range k.Elems {
			if !k.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case KdArrow:
		return k.In.Equal(*other.In) && k.Out.Equal(*other.Out)
	case KdEffectful:
		return k.Type.Equal(*other.Type) && k.Effects.Equal(*other.Effects)
	}
	return false
}

func (k Kinded) String() string {
	switch k.Tag {
	case KdIdent:
		if len(k.Args) == 0 {
			return k.Name
		}
		parts := make([]string, len(k.Args))
		for i, a := range k.Args {
			parts[i] = a.String()
		}
		return k.Name + "[" + strings.Join(parts, ", ") + "]"
	case KdTuple:
		parts := make([]string, len(k.Elems))
		for i, e := range k.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KdSet:
		parts := make([]string, len(k.Elems))
		for i, e := range k.Elems {
			parts[i] = e.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KdArrow:
		return k.In.String() + " -> " + k.Out.String()
	case KdEffectful:
		return k.Type.String() + " affects " + k.Effects.String()
	}
	return "?"
}
