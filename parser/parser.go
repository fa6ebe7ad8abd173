// Package parser is a hand-written recursive-descent parser, tokens → CST.
// Each production commits on its first required token (no backtracking
// deeper than one alternative), matching the Node/CST idiom of
// github.com/openllb/hlb/parser but without its participle grammar — see
// DESIGN.md for why a declarative grammar library doesn't fit this
// language's exact disambiguation rules.
package parser

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/lexer"
	"github.com/efflang/efflang/token"
)

// Parse lexes and parses an entire source file into its top-level
// definitions, in source order.
func Parse(filename string, src []byte) ([]ast.TopDefn, error) {
	toks, err := lexer.Lex(filename, src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var defns []ast.TopDefn
	for p.cur().Kind != token.EOF {
		d, err := p.parseTopDefn()
		if err != nil {
			return nil, err
		}
		defns = append(defns, d)
	}
	return defns, nil
}

// ParseExpr lexes and parses a single standalone expression, consuming the
// entire input. It exists for the repl's `:type` command, which types one
// expression at a time rather than a whole top-level definition.
func ParseExpr(filename string, src []byte) (ast.Expr, error) {
	toks, err := lexer.Lex(filename, src)
	if err != nil {
		return ast.Expr{}, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return ast.Expr{}, err
	}
	if p.cur().Kind != token.EOF {
		return ast.Expr{}, errdefs.WithParse(p.cur().Pos, "end of expression", p.cur())
	}
	return e, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peekNext() token.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expect consumes the current token if it has kind k, else fails with
// ErrParse naming what was expected.
func (p *parser) expect(k token.Kind, expected string) (token.Token, error) {
	if p.cur().Kind != k {
		return token.Token{}, errdefs.WithParse(p.cur().Pos, expected, p.cur())
	}
	return p.advance(), nil
}
