package parser

import (
	"github.com/fflang/ffc/internal/ast"
	"github.com/fflang/ffc/pkg/parseerr"
	"github.com/fflang/ffc/pkg/token"
)

// parseStmt implements spec.md §4.3's statement dispatch. It never
// consumes the trailing semicolon that terminates the statement — that is
// always the caller's job (parseBody, parseIf), since "if" is exempt from
// the semicolon requirement and only the caller knows which statement it
// just parsed. An "if" statement consumes its own closing braces (see
// parseIf).
func (p *Parser) parseStmt() (ast.Stmt, error) {
	curLex := p.cur.Lexeme

	switch {
	case p.isType(curLex) && p.peekIsIdent():
		return p.parseDecl()
	case p.isIdent(curLex) && p.peekIs(token.Eq):
		return p.parseAssign()
	case p.isIdent(curLex) && p.peekIs(token.OpP):
		call, err := p.parseFncCall()
		if err != nil {
			return nil, err
		}

		return &ast.ExprStmt{baseNode: ast.WithPos(call.Position()), X: call}, nil
	}

	switch p.cur.Kind {
	case token.IntLit, token.FloatLit, token.StrLit, token.BoolLit:
		lit, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return &ast.ExprStmt{baseNode: ast.WithPos(lit.Position()), X: lit}, nil
	case token.Ret:
		return p.parseRet()
	case token.If:
		return p.parseIf()
	default:
		return nil, parseerr.UnknownExpression(p.curPos, p.cur)
	}
}

// parseDecl parses "typeExpr IDENT ("=" expr)?" — the variable-creation
// half of spec.md's "var" production.
func (p *Parser) parseDecl() (*ast.Decl, error) {
	pos := p.curPos
	tt, err := p.parseTypeExpr("")
	if err != nil {
		return nil, err
	}

	if !p.isIdent(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	name := p.cur.Lexeme
	p.advance() // eat name

	if p.curIs(token.Eq) {
		p.advance() // eat "="
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return &ast.Decl{baseNode: ast.WithPos(pos), Name: name, Type: tt, Initialiser: val}, nil
	}

	if !p.curIs(token.Semicolon) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Eq, token.Semicolon)
	}

	return &ast.Decl{baseNode: ast.WithPos(pos), Name: name, Type: tt}, nil
}

// parseAssign parses "IDENT" "=" expr — the assignment half of spec.md's
// "var" production.
func (p *Parser) parseAssign() (*ast.Assign, error) {
	pos, name := p.curPos, p.cur.Lexeme
	p.advance() // eat name
	p.advance() // eat "="

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{baseNode: ast.WithPos(pos), Name: name, Value: val}, nil
}

// parseRet parses "ret" expr? — a bare "ret" returns void.
func (p *Parser) parseRet() (*ast.Ret, error) {
	pos := p.curPos
	p.advance() // eat "ret"

	if p.curIs(token.Semicolon) {
		return &ast.Ret{baseNode: ast.WithPos(pos)}, nil
	}

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Ret{baseNode: ast.WithPos(pos), Value: val}, nil
}

// parseIf parses "if" expr "{" stmt* "}" ("else" "{" stmt "}")?. It fully
// consumes both its then-brace and (if present) its else-brace, which is
// why callers never look for a trailing semicolon after an "if" statement.
// The else body is genuinely single-statement — original_source's
// parseIf parses exactly one statement there, confirmed by spec.md §4.3.
func (p *Parser) parseIf() (*ast.If, error) {
	pos := p.curPos
	p.advance() // eat "if"

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	thenBody, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Stmt
	if p.curIs(token.Else) {
		p.advance() // eat "else"
		if err := p.expect(token.OpCB); err != nil {
			return nil, err
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		elseBody = append(elseBody, stmt)

		if _, isIf := stmt.(*ast.If); !isIf && !p.curIs(token.ClCB) {
			if err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
		}

		if err := p.expect(token.ClCB); err != nil {
			return nil, err
		}
	}

	return &ast.If{baseNode: ast.WithPos(pos), Cond: cond, ThenBody: thenBody, ElseBody: elseBody}, nil
}
