package parser

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/token"
)

// parseKinded parses a Kinded term: an Ident (optionally applied), a tuple, a
// set, or an arrow type. It does not parse the `affects` clause — that only
// appears once, right after a function's return type (parseFuncDefn).
func (p *parser) parseKinded() (ast.Kinded, error) {
	atom, err := p.parseKindedAtom()
	if err != nil {
		return ast.Kinded{}, err
	}
	if p.cur().Kind == token.Arrow {
		p.advance()
		out, err := p.parseKinded()
		if err != nil {
			return ast.Kinded{}, err
		}
		return ast.ArrowKinded(atom.Pos, atom, out), nil
	}
	return atom, nil
}

func (p *parser) parseKindedAtom() (ast.Kinded, error) {
	switch p.cur().Kind {
	case token.LBrace:
		lb := p.advance()
		var elems []ast.Kinded
		if p.cur().Kind != token.RBrace {
			for {
				k, err := p.parseKinded()
				if err != nil {
					return ast.Kinded{}, err
				}
				elems = append(elems, k)
				if p.cur().Kind == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(token.RBrace, "`}`"); err != nil {
			return ast.Kinded{}, err
		}
		return ast.SetKinded(lb.Pos, elems...), nil

	case token.LParen:
		lp := p.advance()
		var elems []ast.Kinded
		if p.cur().Kind != token.RParen {
			for {
				k, err := p.parseKinded()
				if err != nil {
					return ast.Kinded{}, err
				}
				elems = append(elems, k)
				if p.cur().Kind == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(token.RParen, "`)`"); err != nil {
			return ast.Kinded{}, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return ast.TupleKinded(lp.Pos, elems...), nil

	case token.BigIdent:
		tok := p.advance()
		args, err := p.parseOptionalKindedArgs()
		if err != nil {
			return ast.Kinded{}, err
		}
		return ast.IdentKinded(tok.Pos, tok.Literal, args...), nil
	}
	return ast.Kinded{}, errdefs.WithParse(p.cur().Pos, "a type", p.cur())
}

// parseOptionalKindedArgs parses an optional `[ Kinded, ... ]` argument list.
// Omitting the brackets yields nil args; `[]` is EmptyKindedArgs.
func (p *parser) parseOptionalKindedArgs() ([]ast.Kinded, error) {
	if p.cur().Kind != token.LBracket {
		return nil, nil
	}
	lb := p.advance()
	if p.cur().Kind == token.RBracket {
		return nil, &errdefs.ErrEmptyKindedArgs{Pos: lb.Pos}
	}
	var args []ast.Kinded
	for {
		k, err := p.parseKinded()
		if err != nil {
			return nil, err
		}
		args = append(args, k)
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket, "`]`"); err != nil {
		return nil, err
	}
	return args, nil
}
