package parser

import (
	"github.com/fflang/ffc/internal/ast"
	"github.com/fflang/ffc/internal/typeset"
	"github.com/fflang/ffc/internal/types"
	"github.com/fflang/ffc/pkg/lexer"
	"github.com/fflang/ffc/pkg/parseerr"
	"github.com/fflang/ffc/pkg/token"
)

// Parser holds all state for one parse run. A fresh Parser (via New or
// Parse) owns its own lexer.Stream, typeset.Set, and re-entry flag —
// nothing here is shared across invocations or touched by package-level
// state (spec.md §5).
type Parser struct {
	lex  *lexer.Stream
	cur  token.Token
	peek token.Token

	curPos  token.Pos
	peekPos token.Pos

	types *typeset.Set

	// parsingOperand is the re-entry guard described in spec.md §4.3: it is
	// set for the duration of parsing an operator chain's left operand so
	// that a nested call into parseExpr does not itself try to start a new
	// operator chain. Scoped to this *Parser value, never a package global.
	parsingOperand bool
}

// Parse lexes and parses src in one call, returning the six top-level
// collections or the first diagnostic encountered. There is no partial
// result on error.
func Parse(src string) (*Result, error) {
	p := New(lexer.New(src))

	return p.parseProgram()
}

// New builds a Parser over an already-constructed token stream. Exported
// so callers that already have a *lexer.Stream (for example to reuse it
// across tooling) don't need to re-tokenize.
func New(lex *lexer.Stream) *Parser {
	p := &Parser{lex: lex, types: typeset.New()}
	p.advance()
	p.advance()

	return p
}

// advance shifts the one-token lookahead window forward: cur becomes the
// old peek, and a fresh token is pulled from the lexer into peek.
func (p *Parser) advance() {
	p.cur = p.peek
	p.curPos = p.peekPos
	p.peek = p.lex.Peek()
	p.peekPos = p.lex.PeekPos()
	// lexer.Stream.Advance both returns and consumes the next token; since
	// Peek/PeekPos already observed it, Advance here only moves the cursor.
	p.lex.Advance() //nolint:errcheck // ErrEndOfInput is signalled via peek.Kind == token.EOF, checked by callers
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) isType(lexeme string) bool  { return p.types.IsTypeToken(p.cur.Kind, lexeme) }
func (p *Parser) isIdent(lexeme string) bool { return p.types.IsIdentToken(p.cur.Kind, lexeme) }
func (p *Parser) peekIsIdent() bool          { return p.types.IsIdentToken(p.peek.Kind, p.peek.Lexeme) }

// expect asserts cur.Kind is one of kinds and advances past it; otherwise
// it returns an *parseerr.Diagnostic (spec.md §7.1's assertion-failure
// category).
func (p *Parser) expect(kinds ...token.Kind) error {
	for _, k := range kinds {
		if p.cur.Kind == k {
			p.advance()

			return nil
		}
	}

	return parseerr.Unexpected(p.curPos, p.cur, kinds...)
}

// parseType resolves the current token's lexeme to a TType via the live
// registry, matching the original's strToType. Does not advance.
func (p *Parser) parseType() (types.TType, error) {
	tt, err := types.FromName(p.cur.Lexeme, p.types.IsType)
	if err != nil {
		return types.TType{}, parseerr.UnknownType(p.curPos, p.cur)
	}

	return tt, nil
}

// atEnd reports whether the lexer has nothing left to give: both cur and
// peek have fallen off the end of the stream.
func (p *Parser) atEnd() bool {
	return p.cur.Kind == token.EOF && p.peek.Kind == token.EOF
}

// parseProgram runs the top-level dispatch loop (spec.md §4.2) to
// completion and then resolves generic call sites (spec.md §4.6).
func (p *Parser) parseProgram() (*Result, error) {
	res := newResult()

	for !p.atEnd() {
		switch p.cur.Kind {
		case token.Fnc:
			fn, gfn, err := p.parseFuncDefOrGeneric()
			if err != nil {
				return nil, err
			}
			if gfn != nil {
				res.GenericFuncs[gfn.Name] = gfn
			} else {
				res.Functions = append(res.Functions, fn)
			}
		case token.Extern:
			ext, err := p.parseExternFuncDef()
			if err != nil {
				return nil, err
			}
			res.ExternFuncs = append(res.ExternFuncs, ext)
		case token.Include:
			inc, err := p.parseIncludeDecl()
			if err != nil {
				return nil, err
			}
			res.Includes = append(res.Includes, inc)
		case token.TypeDef:
			td, err := p.parseTypeDef()
			if err != nil {
				return nil, err
			}
			res.TypeDefs[td.Name] = td
		case token.OperatorDef:
			op, err := p.parseOperatorDef()
			if err != nil {
				return nil, err
			}
			res.Operators[op.Key()] = op
		default:
			p.advance()
		}
	}

	collectGenericUses(res)

	return res, nil
}

// collectGenericUses scans every parsed function body (generic and
// non-generic alike, since a generic function can be invoked from
// anywhere) for FncCall nodes naming a generic function, per spec.md §4.6.
func collectGenericUses(res *Result) {
	if len(res.GenericFuncs) == 0 {
		return
	}

	var walkStmts func([]ast.Stmt)
	var walkExpr func(ast.Expr)

	walkExpr = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.FncCall:
			if _, ok := res.GenericFuncs[n.Name]; ok {
				res.GenericUses[n.Name] = append(res.GenericUses[n.Name], n)
			}
			for _, a := range n.Args {
				walkExpr(a)
			}
		case *ast.Operator:
			walkExpr(n.Lhs)
			walkExpr(n.Rhs)
		case *ast.If:
			walkExpr(n.Cond)
			walkStmts(n.ThenBody)
			walkStmts(n.ElseBody)
		case *ast.TypeLit:
			for _, f := range n.Fields {
				walkExpr(f.Value)
			}
		}
	}

	walkStmts = func(stmts []ast.Stmt) {
		for _, s := range stmts {
			switch n := s.(type) {
			case *ast.Decl:
				if n.Initialiser != nil {
					walkExpr(n.Initialiser)
				}
			case *ast.Assign:
				walkExpr(n.Value)
			case *ast.Ret:
				if n.Value != nil {
					walkExpr(n.Value)
				}
			case *ast.ExprStmt:
				walkExpr(n.X)
			case *ast.If:
				walkExpr(n.Cond)
				walkStmts(n.ThenBody)
				walkStmts(n.ElseBody)
			}
		}
	}

	for _, fn := range res.Functions {
		walkStmts(fn.Body)
	}
	for _, op := range res.Operators {
		walkStmts(op.Body)
	}
	for _, gf := range res.GenericFuncs {
		walkStmts(gf.Body)
	}
}

// ErrEndOfInput re-exports lexer.ErrEndOfInput for callers that want to
// distinguish normal end-of-input from a real diagnostic without
// importing pkg/lexer directly.
var ErrEndOfInput = lexer.ErrEndOfInput
