package ast

import "github.com/efflang/efflang/diagnostic"

// Stmt is a `let` statement: `let <pat>[: <type>] = <expr>;`.
type Stmt struct {
	Pos   diagnostic.Position
	Pat   Pat
	Type  *Kinded
	Value Expr
}

func (s *Stmt) Position() diagnostic.Position { return s.Pos }

// Block is `{ stmts... ; optional tail expression }`. A Block with a nil Tail
// is ill-formed and is rejected by the checker.
type Block struct {
	Pos   diagnostic.Position
	Stmts []Stmt
	Tail  *Expr
}

func (b *Block) Position() diagnostic.Position { return b.Pos }
