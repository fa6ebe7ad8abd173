// Package ast defines the concrete-syntax-tree node shapes produced by
// package parser: kinds, kinded terms (types and effects), top-level
// definitions, expressions, patterns, and statements. Every node carries its
// source Position, in the style of github.com/openllb/hlb/parser.Node.
package ast

import "github.com/efflang/efflang/diagnostic"

// Ident is an immutable string-wrapper identifier. Two identifiers are the
// same identifier when their Names are equal; Go's == on Ident (and its use
// as a map key) also compares Pos, so lookups key by Name instead.
type Ident struct {
	Name string
	Pos  diagnostic.Position
}

func (i Ident) String() string { return i.Name }

// IsBig reports whether this identifier belongs to the big-identifier lexical
// class (types, effects, kind parameters): begins with an uppercase letter.
func (i Ident) IsBig() bool {
	return i.Name != "" && i.Name[0] >= 'A' && i.Name[0] <= 'Z'
}

// IsSmall reports whether this identifier belongs to the small-identifier
// lexical class (values: functions, variables, constructors, fields).
func (i Ident) IsSmall() bool {
	return i.Name != "" && i.Name[0] >= 'a' && i.Name[0] <= 'z'
}
