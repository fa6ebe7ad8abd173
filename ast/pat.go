package ast

import "github.com/efflang/efflang/diagnostic"

// PatTag distinguishes the cases of the Pat sum.
type PatTag int

const (
	PWildcard PatTag = iota
	PString
	PNumber
	PTuple
	PCtor
	PIdent
	POr
)

// Pat is a pattern node.
type Pat struct {
	Tag PatTag
	Pos diagnostic.Position

	StringVal string
	NumberVal uint64

	Elems []Pat // PTuple, POr

	Name  string // PCtor (constructor name), PIdent (binding name)
	Inner *Pat   // PCtor
}

func (p *Pat) Position() diagnostic.Position { return p.Pos }
