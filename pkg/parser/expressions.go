package parser

import (
	"strconv"

	"github.com/fflang/ffc/internal/ast"
	"github.com/fflang/ffc/pkg/parseerr"
	"github.com/fflang/ffc/pkg/token"
)

// parseExpr implements spec.md §4.3's expression dispatch. The
// parsingOperand re-entry guard is what gives operator chains their right
// associativity with no precedence table: the very first call into an
// operator chain parses only the leftmost atom as its lhs (re-entry
// disabled), then recurses into parseExpr again for the rhs with re-entry
// re-enabled, so "a + b + c" nests as a + (b + c).
func (p *Parser) parseExpr() (ast.Expr, error) {
	if !p.parsingOperand && p.peekIs(token.Operator) {
		p.parsingOperand = true
		lhs, err := p.parseExpr()
		p.parsingOperand = false
		if err != nil {
			return nil, err
		}

		return p.parseOperatorExpr(lhs)
	}

	switch {
	case p.curIs(token.IntLit):
		return p.parseIntLiteral()
	case p.curIs(token.BoolLit):
		// Routed directly to the boolean constructor — the original
		// source mis-routes this through its float-literal parser
		// (spec.md §9's flagged bug). Fixed here, not reproduced.
		return p.parseBoolLiteral()
	case p.curIs(token.FloatLit):
		return p.parseFloatLiteral()
	case p.curIs(token.StrLit):
		return p.parseStrLiteral()
	case p.curIs(token.OpP):
		return p.parseParenExpr()
	case p.isIdent(p.cur.Lexeme):
		switch {
		case p.peekIs(token.OpP):
			return p.parseFncCall()
		case p.peekIs(token.Dot):
			return p.parseTypeFieldLoad()
		default:
			pos, name := p.curPos, p.cur.Lexeme
			p.advance()

			return &ast.Ident{baseNode: ast.WithPos(pos), Name: name}, nil
		}
	case p.isType(p.cur.Lexeme):
		return p.parseTypeLit()
	default:
		return nil, parseerr.UnknownExpression(p.curPos, p.cur)
	}
}

func (p *Parser) parseOperatorExpr(lhs ast.Expr) (ast.Expr, error) {
	pos, op := p.curPos, p.cur.Lexeme
	p.advance() // eat operator
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Operator{baseNode: ast.WithPos(pos), Op: op, Lhs: lhs, Rhs: rhs}, nil
}

// parseParenExpr parses a parenthesised sub-expression; if an operator
// immediately follows the closing ")", the parenthesised value becomes the
// lhs of an operator expression (spec.md §4.3 step 2, "OpP" case).
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.advance() // eat "("
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ClP); err != nil {
		return nil, err
	}
	if p.curIs(token.Operator) {
		return p.parseOperatorExpr(inner)
	}

	return inner, nil
}

func (p *Parser) parseIntLiteral() (ast.Expr, error) {
	pos, lexeme := p.curPos, p.cur.Lexeme
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, &parseerr.Diagnostic{Pos: pos, Actual: p.cur, Message: "invalid integer literal: " + err.Error()}
	}
	p.advance()

	return &ast.IntLit{baseNode: ast.WithPos(pos), Value: v}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expr, error) {
	pos, lexeme := p.curPos, p.cur.Lexeme
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, &parseerr.Diagnostic{Pos: pos, Actual: p.cur, Message: "invalid float literal: " + err.Error()}
	}
	p.advance()

	return &ast.FloatLit{baseNode: ast.WithPos(pos), Value: v}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expr, error) {
	pos := p.curPos
	v := p.cur.Lexeme == "true"
	p.advance()

	return &ast.BoolLit{baseNode: ast.WithPos(pos), Value: v}, nil
}

func (p *Parser) parseStrLiteral() (ast.Expr, error) {
	pos, lexeme := p.curPos, p.cur.Lexeme
	p.advance()

	return &ast.StrLit{baseNode: ast.WithPos(pos), Value: lexeme}, nil
}

// parseFncCall parses "IDENT" "(" expr* ")" — arguments are
// space-separated, no commas in the grammar.
func (p *Parser) parseFncCall() (*ast.FncCall, error) {
	pos, name := p.curPos, p.cur.Lexeme
	p.advance() // eat name
	if err := p.expect(token.OpP); err != nil {
		return nil, err
	}

	var args []ast.Expr
	for !p.curIs(token.ClP) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return &ast.FncCall{baseNode: ast.WithPos(pos), Name: name, Args: args}, p.expect(token.ClP)
}

// parseTypeFieldLoad parses "IDENT" "." "IDENT". The receiver must not
// itself name a type (original_source asserts this explicitly).
func (p *Parser) parseTypeFieldLoad() (*ast.TypeFieldLoad, error) {
	pos := p.curPos
	if p.isType(p.cur.Lexeme) {
		return nil, parseerr.Unexpected(pos, p.cur, token.Ident)
	}
	name := p.cur.Lexeme
	p.advance() // eat variable name

	if err := p.expect(token.Dot); err != nil {
		return nil, err
	}

	field := p.cur.Lexeme
	p.advance() // eat field name

	return &ast.TypeFieldLoad{baseNode: ast.WithPos(pos), VariableName: name, FieldName: field}, nil
}

// parseTypeLit parses "TYPENAME" "{" (IDENT "=" expr)* "}".
func (p *Parser) parseTypeLit() (*ast.TypeLit, error) {
	pos, name := p.curPos, p.cur.Lexeme
	p.advance() // eat type name

	if err := p.expect(token.OpCB); err != nil {
		return nil, err
	}

	var fields []ast.FieldInit
	for !p.curIs(token.ClCB) {
		if !p.isIdent(p.cur.Lexeme) {
			return nil, parseerr.Unexpected(p.curPos, p.cur, token.Ident)
		}
		fieldName := p.cur.Lexeme
		p.advance() // eat field name

		if err := p.expect(token.Eq); err != nil {
			return nil, err
		}

		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.FieldInit{Name: fieldName, Value: val})
	}

	return &ast.TypeLit{baseNode: ast.WithPos(pos), TypeName: name, Fields: fields}, p.expect(token.ClCB)
}
