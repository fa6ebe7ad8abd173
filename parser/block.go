package parser

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/token"
)

// parseBlock parses `{ stmts... ; optional-tail-expr }`. A missing tail
// expression is allowed here (it's a static-check error, not a parse error).
func (p *parser) parseBlock() (*ast.Block, error) {
	lb, err := p.expect(token.LBrace, "`{`")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur().Kind == token.Let {
		s, err := p.parseLetStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	var tail *ast.Expr
	if p.cur().Kind != token.RBrace {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		tail = &e
	}
	if _, err := p.expect(token.RBrace, "`}`"); err != nil {
		return nil, err
	}
	return &ast.Block{Pos: lb.Pos, Stmts: stmts, Tail: tail}, nil
}

func (p *parser) parseLetStmt() (ast.Stmt, error) {
	letTok, err := p.expect(token.Let, "`let`")
	if err != nil {
		return ast.Stmt{}, err
	}
	pat, err := p.parsePattern()
	if err != nil {
		return ast.Stmt{}, err
	}
	var typ *ast.Kinded
	if p.cur().Kind == token.Colon {
		p.advance()
		k, err := p.parseKinded()
		if err != nil {
			return ast.Stmt{}, err
		}
		typ = &k
	}
	if _, err := p.expect(token.Equals, "`=`"); err != nil {
		return ast.Stmt{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.Stmt{}, err
	}
	if _, err := p.expect(token.Semicolon, "`;`"); err != nil {
		return ast.Stmt{}, err
	}
	return ast.Stmt{Pos: letTok.Pos, Pat: pat, Type: typ, Value: value}, nil
}
