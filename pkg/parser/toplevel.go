package parser

import (
	"github.com/fflang/ffc/internal/ast"
	"github.com/fflang/ffc/internal/types"
	"github.com/fflang/ffc/pkg/parseerr"
	"github.com/fflang/ffc/pkg/token"
)

// parseTypeExpr resolves and consumes one type expression: a primitive, a
// declared custom name, the active generic type parameter (if any), or a
// "ref"-prefixed wrapping of another type expression (spec.md's TType
// Reference variant — not present in original_source's strToType, added
// here because scenario 4 of spec.md §8 requires it).
func (p *Parser) parseTypeExpr(typeParam string) (types.TType, error) {
	if p.curIs(token.Ref) {
		p.advance() // eat "ref"
		referent, err := p.parseTypeExpr(typeParam)
		if err != nil {
			return types.TType{}, err
		}

		return types.Reference(referent), nil
	}

	if typeParam != "" && p.cur.Kind == token.Ident && p.cur.Lexeme == typeParam {
		p.advance() // eat type-parameter name

		return types.Named(typeParam), nil
	}

	if !p.isType(p.cur.Lexeme) {
		return types.TType{}, parseerr.UnknownType(p.curPos, p.cur)
	}
	tt, err := p.parseType()
	if err != nil {
		return types.TType{}, err
	}
	p.advance() // eat type token

	return tt, nil
}

// isTypeExprStart reports whether cur could begin a type expression under
// the active (possibly empty) generic type parameter — used to decide
// whether a trailing return-type annotation is present at all.
func (p *Parser) isTypeExprStart(typeParam string) bool {
	if p.curIs(token.Ref) {
		return true
	}
	if typeParam != "" && p.cur.Kind == token.Ident && p.cur.Lexeme == typeParam {
		return true
	}

	return p.isType(p.cur.Lexeme)
}

// maybeReturnType parses an optional trailing return type. Absent means
// Void, matching spec.md Invariant 2.
func (p *Parser) maybeReturnType(typeParam string) (types.TType, error) {
	if !p.isTypeExprStart(typeParam) {
		return types.Primitive(types.KVoid), nil
	}

	return p.parseTypeExpr(typeParam)
}

// parseParamList parses "(" (typeExpr IDENT)* ")", used by both function
// and generic-function definitions.
func (p *Parser) parseParamList(typeParam string) ([]ast.Param, error) {
	if err := p.expect(token.OpP); err != nil {
		return nil, err
	}

	var params []ast.Param
	for !p.curIs(token.ClP) {
		tt, err := p.parseTypeExpr(typeParam)
		if err != nil {
			return nil, err
		}
		if !p.isIdent(p.cur.Lexeme) {
			return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
		}
		name := p.cur.Lexeme
		p.advance() // eat name
		params = append(params, ast.Param{Name: name, Type: tt})
	}

	return params, p.expect(token.ClP)
}

// parseBody parses "{" stmt* "}", consuming the opening and matching
// closing brace and nothing beyond — spec.md §8's body terminator
// invariant, enforced directly here rather than left to a caller's
// leftover-token cleanup.
func (p *Parser) parseBody() ([]ast.Stmt, error) {
	if err := p.expect(token.OpCB); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for !p.curIs(token.ClCB) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)

		if _, isIf := stmt.(*ast.If); !isIf && !p.curIs(token.ClCB) {
			if err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
		}
	}

	return body, p.expect(token.ClCB)
}

// parseFuncDefOrGeneric parses "fnc" ("<" IDENT ">")? IDENT paramList
// typeExpr? body, returning a *ast.FuncDef when no type parameter is
// present and a *ast.GenericFuncDef otherwise (spec.md §4.6 — the "<T>"
// syntax itself is this module's own choice, since the distilled grammar
// summary never shows one; see DESIGN.md).
func (p *Parser) parseFuncDefOrGeneric() (*ast.FuncDef, *ast.GenericFuncDef, error) {
	pos := p.curPos
	p.advance() // eat "fnc"

	typeParam := ""
	if p.curIs(token.Operator) && p.cur.Lexeme == "<" {
		p.advance() // eat "<"
		if !p.isIdent(p.cur.Lexeme) {
			return nil, nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
		}
		typeParam = p.cur.Lexeme
		p.advance() // eat type-parameter name
		if !(p.curIs(token.Operator) && p.cur.Lexeme == ">") {
			return nil, nil, parseerr.Unexpected(p.curPos, p.cur, token.Operator)
		}
		p.advance() // eat ">"
	}

	if !p.isIdent(p.cur.Lexeme) {
		return nil, nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	name := p.cur.Lexeme
	p.advance() // eat name

	args, err := p.parseParamList(typeParam)
	if err != nil {
		return nil, nil, err
	}

	retType, err := p.maybeReturnType(typeParam)
	if err != nil {
		return nil, nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, nil, err
	}

	if typeParam != "" {
		return nil, &ast.GenericFuncDef{
			baseNode: ast.WithPos(pos), Name: name, TypeParam: typeParam,
			Args: args, ReturnType: retType, Body: body,
		}, nil
	}

	return &ast.FuncDef{
		baseNode: ast.WithPos(pos), Name: name,
		Args: args, ReturnType: retType, Body: body,
	}, nil, nil
}

// parseExternFuncDef parses "extern" IDENT "(" typeExpr* ")" typeExpr? ";".
// Extern declarations carry argument types only — the grammar has no
// argument names here.
func (p *Parser) parseExternFuncDef() (*ast.ExternFuncDef, error) {
	pos := p.curPos
	p.advance() // eat "extern"

	if !p.isIdent(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	name := p.cur.Lexeme
	p.advance() // eat name

	if err := p.expect(token.OpP); err != nil {
		return nil, err
	}

	var argTypes []types.TType
	for !p.curIs(token.ClP) {
		tt, err := p.parseTypeExpr("")
		if err != nil {
			return nil, err
		}
		argTypes = append(argTypes, tt)
	}
	if err := p.expect(token.ClP); err != nil {
		return nil, err
	}

	retType, err := p.maybeReturnType("")
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.ExternFuncDef{
		baseNode: ast.WithPos(pos), Name: name,
		ArgTypes: argTypes, ReturnType: retType,
	}, nil
}

// parseOperatorDef parses "operator" OP "(" typeExpr IDENT typeExpr IDENT
// ")" typeExpr "{" stmt* "}". Exactly two fixed parameters, matching
// original_source's hard-coded lhs/rhs parse sequence (no loop) and
// spec.md §4.5's grammar summary.
func (p *Parser) parseOperatorDef() (*ast.OperatorDef, error) {
	pos := p.curPos
	p.advance() // eat "operator"

	if !p.curIs(token.Operator) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Operator)
	}
	op := p.cur.Lexeme
	p.advance() // eat operator symbol

	if err := p.expect(token.OpP); err != nil {
		return nil, err
	}

	lhsType, err := p.parseTypeExpr("")
	if err != nil {
		return nil, err
	}
	if !p.isIdent(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	lhsName := p.cur.Lexeme
	p.advance() // eat name

	rhsType, err := p.parseTypeExpr("")
	if err != nil {
		return nil, err
	}
	if !p.isIdent(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	rhsName := p.cur.Lexeme
	p.advance() // eat name

	if err := p.expect(token.ClP); err != nil {
		return nil, err
	}

	retType, err := p.parseTypeExpr("")
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.OperatorDef{
		baseNode:   ast.WithPos(pos),
		Op:         op,
		Lhs:        ast.Param{Name: lhsName, Type: lhsType},
		Rhs:        ast.Param{Name: rhsName, Type: rhsType},
		ReturnType: retType,
		Body:       body,
	}, nil
}

// parseTypeDef parses "type" IDENT "{" (typeExpr IDENT ";")* "}". The
// declared name is registered immediately after it is read, so later
// fields (and anything parsed afterward) may refer to it as a type —
// spec.md Invariant 1.
func (p *Parser) parseTypeDef() (*ast.TypeDef, error) {
	pos := p.curPos
	p.advance() // eat "type"

	if !p.isIdent(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
	}
	name := p.cur.Lexeme
	p.types.Declare(name)
	p.advance() // eat name

	if err := p.expect(token.OpCB); err != nil {
		return nil, err
	}

	var fields []ast.Param
	for !p.curIs(token.ClCB) {
		tt, err := p.parseTypeExpr("")
		if err != nil {
			return nil, err
		}
		if !p.isIdent(p.cur.Lexeme) {
			return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
		}
		fieldName := p.cur.Lexeme
		p.advance() // eat field name
		if err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		fields = append(fields, ast.Param{Name: fieldName, Type: tt})
	}

	if err := p.expect(token.ClCB); err != nil {
		return nil, err
	}

	return &ast.TypeDef{baseNode: ast.WithPos(pos), Name: name, Fields: fields}, nil
}

// parseIncludeDecl parses "include" STR+ ";".
func (p *Parser) parseIncludeDecl() (*ast.IncludeDecl, error) {
	pos := p.curPos
	p.advance() // eat "include"

	if !p.curIs(token.StrLit) {
		return nil, parseerr.Unexpected(p.curPos, p.cur, token.StrLit)
	}

	var modules []string
	for !p.curIs(token.Semicolon) {
		if !p.curIs(token.StrLit) {
			return nil, parseerr.Unexpected(p.curPos, p.cur, token.StrLit, token.Semicolon)
		}
		modules = append(modules, p.cur.Lexeme)
		p.advance()
	}

	return &ast.IncludeDecl{baseNode: ast.WithPos(pos), Modules: modules}, p.expect(token.Semicolon)
}
