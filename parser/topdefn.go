package parser

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/token"
)

func (p *parser) parseTopDefn() (ast.TopDefn, error) {
	switch p.cur().Kind {
	case token.Struct:
		return p.parseStructDefn()
	case token.Enum:
		return p.parseEnumDefn()
	case token.Fn:
		return p.parseFuncDefn()
	}
	return ast.TopDefn{}, errdefs.WithParse(p.cur().Pos, "`struct`, `enum`, or `fn`", p.cur())
}

func (p *parser) parseStructDefn() (ast.TopDefn, error) {
	kw, err := p.expect(token.Struct, "`struct`")
	if err != nil {
		return ast.TopDefn{}, err
	}
	nameTok, err := p.expect(token.BigIdent, "struct name")
	if err != nil {
		return ast.TopDefn{}, err
	}
	kindParams, err := p.parseKindParamsOpt()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.LBrace, "`{`"); err != nil {
		return ast.TopDefn{}, err
	}
	fields, err := p.parseTypedFieldList()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.RBrace, "`}`"); err != nil {
		return ast.TopDefn{}, err
	}
	return ast.TopDefn{
		Tag: ast.DStruct, Pos: kw.Pos,
		Name: ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, KindParams: kindParams, Fields: fields,
	}, nil
}

// parseTypedFieldList parses `name: type, ...` used by struct fields and
// function value-parameters.
func (p *parser) parseTypedFieldList() ([]ast.Param, error) {
	var fields []ast.Param
	for p.cur().Kind == token.SmallIdent {
		nameTok := p.advance()
		if _, err := p.expect(token.Colon, "`:`"); err != nil {
			return nil, err
		}
		typ, err := p.parseKinded()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.TypeParam(ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, typ))
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return fields, nil
}

func (p *parser) parseEnumDefn() (ast.TopDefn, error) {
	kw, err := p.expect(token.Enum, "`enum`")
	if err != nil {
		return ast.TopDefn{}, err
	}
	nameTok, err := p.expect(token.BigIdent, "enum name")
	if err != nil {
		return ast.TopDefn{}, err
	}
	kindParams, err := p.parseKindParamsOpt()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.LBrace, "`{`"); err != nil {
		return ast.TopDefn{}, err
	}
	var ctors []ast.Param
	for p.cur().Kind == token.SmallIdent {
		nameTok := p.advance()
		if _, err := p.expect(token.LParen, "`(`"); err != nil {
			return ast.TopDefn{}, err
		}
		typ, err := p.parseKinded()
		if err != nil {
			return ast.TopDefn{}, err
		}
		if _, err := p.expect(token.RParen, "`)`"); err != nil {
			return ast.TopDefn{}, err
		}
		ctors = append(ctors, ast.TypeParam(ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, typ))
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBrace, "`}`"); err != nil {
		return ast.TopDefn{}, err
	}
	return ast.TopDefn{
		Tag: ast.DEnum, Pos: kw.Pos,
		Name: ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos}, KindParams: kindParams, Ctors: ctors,
	}, nil
}

func (p *parser) parseFuncDefn() (ast.TopDefn, error) {
	kw, err := p.expect(token.Fn, "`fn`")
	if err != nil {
		return ast.TopDefn{}, err
	}
	nameTok, err := p.expect(token.SmallIdent, "function name")
	if err != nil {
		return ast.TopDefn{}, err
	}
	kindParams, err := p.parseKindParamsOpt()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return ast.TopDefn{}, err
	}
	valueParams, err := p.parseTypedFieldList()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.RParen, "`)`"); err != nil {
		return ast.TopDefn{}, err
	}
	if _, err := p.expect(token.Colon, "`:`"); err != nil {
		return ast.TopDefn{}, err
	}
	ret, err := p.parseKinded()
	if err != nil {
		return ast.TopDefn{}, err
	}
	if p.cur().Kind == token.Affects {
		p.advance()
		effSet, err := p.parseKinded()
		if err != nil {
			return ast.TopDefn{}, err
		}
		ret = ast.EffectfulKinded(ret.Pos, ret, effSet)
	}

	var requires, ensures *ast.Expr
	if p.cur().Kind == token.Requires {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return ast.TopDefn{}, err
		}
		requires = &e
	}
	if p.cur().Kind == token.Ensures {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return ast.TopDefn{}, err
		}
		ensures = &e
	}

	body, err := p.parseBlock()
	if err != nil {
		return ast.TopDefn{}, err
	}

	return ast.TopDefn{
		Tag: ast.DFunc, Pos: kw.Pos,
		Name:        ast.Ident{Name: nameTok.Literal, Pos: nameTok.Pos},
		KindParams:  kindParams,
		ValueParams: valueParams,
		Return:      &ret,
		Requires:    requires,
		Ensures:     ensures,
		Body:        body,
	}, nil
}
