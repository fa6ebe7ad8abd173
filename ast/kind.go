package ast

import "strings"

// KindTag distinguishes the cases of the Kind sum.
type KindTag int

const (
	KType KindTag = iota
	KEffect
	KTuple
	KArrow
)

// Kind is the type of a type-or-effect expression (a Kinded term). It is a
// small finite algebra: Type, Effect, Tuple([K...]), Arrow(K, K).
type Kind struct {
	Tag KindTag

	// KTuple
	Elems []Kind

	// KArrow
	Arg, Res *Kind
}

var (
	Type   = Kind{Tag: KType}
	Effect = Kind{Tag: KEffect}
)

// TupleKind builds a Tuple kind. It does not normalize a single element: the
// parser drops one-element parenthesized kinds itself, and the checker passes
// a lone parameter's or argument's kind through directly instead of calling
// TupleKind with len(elems) == 1.
func TupleKind(elems ...Kind) Kind {
	return Kind{Tag: KTuple, Elems: elems}
}

// ArrowKind builds the kind of a generic type/effect constructor.
func ArrowKind(arg, res Kind) Kind {
	return Kind{Tag: KArrow, Arg: &arg, Res: &res}
}

// Equal reports structural equality between two kinds.
func (k Kind) Equal(other Kind) bool {
	if k.Tag != other.Tag {
		return false
	}
	switch k.Tag {
	case KType, KEffect:
		return true
	case KTuple:
		if len(k.Elems) != len(other.Elems) {
			return false
		}
		for i := range k.Elems {
			if !k.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case KArrow:
		return k.Arg.Equal(*other.Arg) && k.Res.Equal(*other.Res)
	}
	return false
}

func (k Kind) String() string {
	switch k.Tag {
	case KType:
		return "Type"
	case KEffect:
		return "Effect"
	case KTuple:
		parts := make([]string, len(k.Elems))
		for i, e := range k.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KArrow:
		return k.Arg.String() + " -> " + k.Res.String()
	}
	return "?"
}
