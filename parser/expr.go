package parser

import (
	"strconv"
	"strings"

	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/token"
)

func (p *parser) parseExpr() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return ast.Expr{}, err
	}
	for p.cur().Kind == token.Dot {
		p.advance()
		nameTok, err := p.expect(token.SmallIdent, "field or method name")
		if err != nil {
			return ast.Expr{}, err
		}
		if p.cur().Kind == token.LBracket || p.cur().Kind == token.LParen {
			kindArgs, err := p.parseOptionalKindedArgs()
			if err != nil {
				return ast.Expr{}, err
			}
			args, err := p.parseParenArgs()
			if err != nil {
				return ast.Expr{}, err
			}
			recv := e
			e = ast.Expr{
				Tag: ast.EMethodCall, Pos: recv.Pos,
				Name: nameTok.Literal, KindArgs: kindArgs, Args: args, Receiver: &recv,
			}
			continue
		}
		recv := e
		e = ast.Expr{
			Tag: ast.EFieldGet, Pos: recv.Pos,
			Field: ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, Receiver: &recv,
		}
	}
	return e, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.String:
		p.advance()
		return ast.Expr{Tag: ast.EString, Pos: tok.Pos, StringVal: tok.Literal}, nil

	case token.Number:
		p.advance()
		n, err := strconv.ParseUint(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
		if err != nil {
			return ast.Expr{}, errdefs.WithParse(tok.Pos, "a valid number literal", tok)
		}
		return ast.Expr{Tag: ast.ENumber, Pos: tok.Pos, NumberVal: n}, nil

	case token.LParen:
		p.advance()
		var elems []ast.Expr
		if p.cur().Kind != token.RParen {
			for {
				e, err := p.parseExpr()
				if err != nil {
					return ast.Expr{}, err
				}
				elems = append(elems, e)
				if p.cur().Kind == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(token.RParen, "`)`"); err != nil {
			return ast.Expr{}, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return ast.Expr{Tag: ast.ETuple, Pos: tok.Pos, Elems: elems}, nil

	case token.BigIdent:
		p.advance()
		kindArgs, err := p.parseOptionalKindedArgs()
		if err != nil {
			return ast.Expr{}, err
		}
		if _, err := p.expect(token.LBrace, "`{`"); err != nil {
			return ast.Expr{}, err
		}
		fields, err := p.parseFieldInits()
		if err != nil {
			return ast.Expr{}, err
		}
		if _, err := p.expect(token.RBrace, "`}`"); err != nil {
			return ast.Expr{}, err
		}
		return ast.Expr{Tag: ast.EStructLit, Pos: tok.Pos, Name: tok.Literal, KindArgs: kindArgs, Fields: fields}, nil

	case token.SmallIdent:
		p.advance()
		if p.cur().Kind == token.LBracket || p.cur().Kind == token.LParen {
			kindArgs, err := p.parseOptionalKindedArgs()
			if err != nil {
				return ast.Expr{}, err
			}
			args, err := p.parseParenArgs()
			if err != nil {
				return ast.Expr{}, err
			}
			return ast.Expr{Tag: ast.ECall, Pos: tok.Pos, Name: tok.Literal, KindArgs: kindArgs, Args: args}, nil
		}
		return ast.Expr{Tag: ast.EIdent, Pos: tok.Pos, Name: tok.Literal}, nil

	case token.LBrace:
		block, err := p.parseBlock()
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.Expr{Tag: ast.EBlock, Pos: tok.Pos, Block: block}, nil

	case token.Match:
		p.advance()
		scrut, err := p.parseExpr()
		if err != nil {
			return ast.Expr{}, err
		}
		if _, err := p.expect(token.LBrace, "`{`"); err != nil {
			return ast.Expr{}, err
		}
		var arms []ast.MatchArm
		for p.cur().Kind != token.RBrace {
			arm, err := p.parseMatchArm()
			if err != nil {
				return ast.Expr{}, err
			}
			arms = append(arms, arm)
		}
		if _, err := p.expect(token.RBrace, "`}`"); err != nil {
			return ast.Expr{}, err
		}
		return ast.Expr{Tag: ast.EMatch, Pos: tok.Pos, Scrutinee: &scrut, Arms: arms}, nil
	}
	return ast.Expr{}, errdefs.WithParse(tok.Pos, "an expression", tok)
}

func (p *parser) parseFieldInits() ([]ast.FieldInit, error) {
	var fields []ast.FieldInit
	for p.cur().Kind == token.SmallIdent {
		nameTok := p.advance()
		if _, err := p.expect(token.Colon, "`:`"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.FieldInit{Name: ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, Value: val})
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return fields, nil
}

func (p *parser) parseParenArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.cur().Kind != token.RParen {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if p.cur().Kind == token.Comma {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseMatchArm() (ast.MatchArm, error) {
	pos := p.cur().Pos
	pat, err := p.parsePattern()
	if err != nil {
		return ast.MatchArm{}, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return ast.MatchArm{}, err
	}
	return ast.MatchArm{Pos: pos, Pat: pat, Body: *block}, nil
}
