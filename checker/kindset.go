package checker

import "github.com/efflang/efflang/ast"

// KindSet is a deduplicated set of effect labels, used to represent an
// inferred or declared effect set. Ported from
// github.com/openllb/hlb/checker.KindSet's map-backed membership idiom,
// generalized from HLB's Kind strings to this language's Kinded effect
// idents.
type KindSet struct {
	set map[string]bool
}

func NewKindSet(names ...string) *KindSet {
	ks := &KindSet{set: map[string]bool{}}
	for _, n := range names {
		ks.set[n] = true
	}
	return ks
}

func (ks *KindSet) Has(name string) bool {
	return ks.set[name]
}

func (ks *KindSet) Add(name string) {
	ks.set[name] = true
}

func (ks *KindSet) Union(other *KindSet) *KindSet {
	out := NewKindSet()
	for n := range ks.set {
		out.set[n] = true
	}
	for n := range other.set {
		out.set[n] = true
	}
	return out
}

// IsSubset reports whether every label in ks is also in other.
func (ks *KindSet) IsSubset(other *KindSet) bool {
	for n := range ks.set {
		if !other.set[n] {
			return false
		}
	}
	return true
}

// Names returns the set's members, unordered.
func (ks *KindSet) Names() []string {
	names := make([]string, 0, len(ks.set))
	for n := range ks.set {
		names = append(names, n)
	}
	return names
}

// flattenEffects recursively unions a Kinded effect term down to its atomic Ident
// labels: Ident is an atomic label, Set is a union of its elements. Other
// shapes are unreachable at this position.
func flattenEffects(k ast.Kinded) *KindSet {
	switch k.Tag {
	case ast.KdIdent:
		return NewKindSet(k.Name)
	case ast.KdSet:
		out := NewKindSet()
		for _, e := range k.Elems {
			out = out.Union(flattenEffects(e))
		}
		return out
	}
	return NewKindSet()
}
