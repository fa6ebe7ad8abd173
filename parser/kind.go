package parser

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/token"
)

// parseKindParamsOpt parses an optional `[ Name: Kind, ... ]` list. Omitting
// the brackets entirely yields nil; `[]` is a static error (EmptyKindedParams)
// distinct from omission.
func (p *parser) parseKindParamsOpt() ([]ast.Param, error) {
	if p.cur().Kind != token.LBracket {
		return nil, nil
	}
	lb := p.advance()
	if p.cur().Kind == token.RBracket {
		return nil, &errdefs.ErrEmptyKindedParams{Pos: lb.Pos}
	}
	var params []ast.Param
	for {
		nameTok, err := p.expect(token.BigIdent, "kind-parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "`:`"); err != nil {
			return nil, err
		}
		k, err := p.parseKind()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.KindParam(ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, k))
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket, "`]`"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseKind parses a Kind: Type, Effect, a tuple of kinds, or an arrow.
func (p *parser) parseKind() (ast.Kind, error) {
	atom, err := p.parseKindAtom()
	if err != nil {
		return ast.Kind{}, err
	}
	if p.cur().Kind == token.Arrow {
		p.advance()
		res, err := p.parseKind()
		if err != nil {
			return ast.Kind{}, err
		}
		return ast.ArrowKind(atom, res), nil
	}
	return atom, nil
}

func (p *parser) parseKindAtom() (ast.Kind, error) {
	switch p.cur().Kind {
	case token.LParen:
		p.advance()
		var elems []ast.Kind
		if p.cur().Kind != token.RParen {
			for {
				k, err := p.parseKind()
				if err != nil {
					return ast.Kind{}, err
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
			return ast.Kind{}, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return ast.TupleKind(elems...), nil
	case token.BigIdent:
		tok := p.advance()
		switch tok.Literal {
		case "Type":
			return ast.Type, nil
		case "Effect":
			return ast.Effect, nil
		}
		return ast.Kind{}, errdefs.WithParse(tok.Pos, "`Type` or `Effect`", tok)
	}
	return ast.Kind{}, errdefs.WithParse(p.cur().Pos, "a kind", p.cur())
}
