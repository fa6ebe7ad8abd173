package parser

import (
	"strconv"
	"strings"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/token"
)

// parsePattern parses a pattern, including the or-pattern `p1 | p2 | ...`
// which binds at the lowest precedence.
func (p *parser) parsePattern() (ast.Pat, error) {
	first, err := p.parsePatternPrimary()
	if err != nil {
		return ast.Pat{}, err
	}
	if p.cur().Kind != token.Pipe {
		return first, nil
	}
	elems := []ast.Pat{first}
	for p.cur().Kind == token.Pipe {
		p.advance()
		next, err := p.parsePatternPrimary()
		if err != nil {
			return ast.Pat{}, err
		}
		elems = append(elems, next)
	}
	return ast.Pat{Tag: ast.POr, Pos: first.Pos, Elems: elems}, nil
}

func (p *parser) parsePatternPrimary() (ast.Pat, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Underscore:
		p.advance()
		return ast.Pat{Tag: ast.PWildcard, Pos: tok.Pos}, nil

	case token.String:
		p.advance()
		return ast.Pat{Tag: ast.PString, Pos: tok.Pos, StringVal: tok.Literal}, nil

	case token.Number:
		p.advance()
		n, err := strconv.ParseUint(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
		if err != nil {
			return ast.Pat{}, errdefs.WithParse(tok.Pos, "a valid number literal", tok)
		}
		return ast.Pat{Tag: ast.PNumber, Pos: tok.Pos, NumberVal: n}, nil

	case token.LParen:
		p.advance()
		var elems []ast.Pat
		if p.cur().Kind != token.RParen {
			for {
				pat, err := p.parsePattern()
				if err != nil {
					return ast.Pat{}, err
				}
				elems = append(elems, pat)
				if p.cur().Kind == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(token.RParen, "`)`"); err != nil {
			return ast.Pat{}, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return ast.Pat{Tag: ast.PTuple, Pos: tok.Pos, Elems: elems}, nil

	case token.SmallIdent:
		p.advance()
		if p.cur().Kind == token.LParen {
			p.advance()
			inner, err := p.parsePattern()
			if err != nil {
				return ast.Pat{}, err
			}
			if _, err := p.expect(token.RParen, "`)`"); err != nil {
				return ast.Pat{}, err
			}
			return ast.Pat{Tag: ast.PCtor, Pos: tok.Pos, Name: tok.Literal, Inner: &inner}, nil
		}
		return ast.Pat{Tag: ast.PIdent, Pos: tok.Pos, Name: tok.Literal}, nil
	}
	return ast.Pat{}, errdefs.WithParse(tok.Pos, "a pattern", tok)
}
