package ast

// Param pairs a name with its declared Kind or Kinded type. It's used for
// kind-parameters (Name: big Ident, Kind: Kind), struct fields and function
// value-parameters (Name: small Ident, Type: Kinded), and enum constructors
// (Name: small Ident, Type: the one payload type).
type Param struct {
	Name Ident
	Kind *Kind
	Type *Kinded
}

func KindParam(name Ident, k Kind) Param {
	return Param{Name: name, Kind: &k}
}

func TypeParam(name Ident, t Kinded) Param {
	return Param{Name: name, Type: &t}
}
