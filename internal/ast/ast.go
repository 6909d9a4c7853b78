package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fflang/ffc/internal/types"
	"github.com/fflang/ffc/pkg/token"
)

// Node is any node in the tree. All concrete node types implement it.
type Node interface {
	String() string
	Position() token.Pos
}

// Expr is a node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node that can appear directly inside a function, operator, or
// if body.
type Stmt interface {
	Node
	stmtNode()
}

// baseNode carries the position every node needs; embed it, don't repeat it.
type baseNode struct {
	Pos token.Pos
}

func (n baseNode) Position() token.Pos { return n.Pos }

// WithPos builds the embeddable baseNode for a given position.
func WithPos(pos token.Pos) baseNode { return baseNode{Pos: pos} }

// ============================================================================
// Expressions
// ============================================================================

// IntLit is an integer literal.
type IntLit struct {
	baseNode
	Value int64
}

func (e *IntLit) String() string { return strconv.FormatInt(e.Value, 10) }
func (e *IntLit) exprNode()      {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	baseNode
	Value float64
}

func (e *FloatLit) String() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }
func (e *FloatLit) exprNode()      {}

// BoolLit is a boolean literal. Routed here directly from BoolLit tokens —
// never through FloatLit parsing.
type BoolLit struct {
	baseNode
	Value bool
}

func (e *BoolLit) String() string { return strconv.FormatBool(e.Value) }
func (e *BoolLit) exprNode()      {}

// StrLit is a string literal, verbatim (no escape processing happened at
// lex time, so none happens here either).
type StrLit struct {
	baseNode
	Value string
}

func (e *StrLit) String() string { return strconv.Quote(e.Value) }
func (e *StrLit) exprNode()      {}

// Ident is a bare identifier reference, used where the parser has already
// established (via the typedef registry) that the name is not a type use.
type Ident struct {
	baseNode
	Name string
}

func (e *Ident) String() string { return e.Name }
func (e *Ident) exprNode()      {}

// FncCall is a function call used as an expression: name(args...).
type FncCall struct {
	baseNode
	Name string
	Args []Expr
}

func (e *FncCall) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, " "))
}
func (e *FncCall) exprNode() {}

// Operator is a binary operator application. There is no precedence table:
// Rhs is whatever the recursive descent into the rhs position produced,
// which is what gives operator chains their right associativity.
type Operator struct {
	baseNode
	Op  string
	Lhs Expr
	Rhs Expr
}

func (e *Operator) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs.String(), e.Op, e.Rhs.String())
}
func (e *Operator) exprNode() {}

// If is usable as both an expression and the leading token of a statement;
// ThenBody and ElseBody hold statements regardless of which position it
// appears in. ElseBody is declared []Stmt for shape uniformity with
// ThenBody, but the parser only ever appends exactly one statement to it —
// the grammar's else body is single-statement by design, not a loop that
// was left unfinished.
type If struct {
	baseNode
	Cond     Expr
	ThenBody []Stmt
	ElseBody []Stmt
}

func (e *If) String() string {
	then := make([]string, len(e.ThenBody))
	for i, s := range e.ThenBody {
		then[i] = s.String()
	}
	if len(e.ElseBody) == 0 {
		return fmt.Sprintf("if %s { %s }", e.Cond.String(), strings.Join(then, "; "))
	}
	els := make([]string, len(e.ElseBody))
	for i, s := range e.ElseBody {
		els[i] = s.String()
	}

	return fmt.Sprintf("if %s { %s } else { %s }", e.Cond.String(), strings.Join(then, "; "), strings.Join(els, "; "))
}
func (e *If) exprNode() {}
func (e *If) stmtNode() {}

// FieldInit is one "field = expr" entry inside a composite literal, in
// source order.
type FieldInit struct {
	Name  string
	Value Expr
}

// TypeLit is a composite-literal construction: TypeName { field = expr ... }.
type TypeLit struct {
	baseNode
	TypeName string
	Fields   []FieldInit
}

func (e *TypeLit) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s = %s", f.Name, f.Value.String())
	}

	return fmt.Sprintf("%s { %s }", e.TypeName, strings.Join(parts, " "))
}
func (e *TypeLit) exprNode() {}

// TypeFieldLoad reads a field off a variable: variable.field. The variable
// name must not itself name a type — the parser enforces this at
// construction time, not here.
type TypeFieldLoad struct {
	baseNode
	VariableName string
	FieldName    string
}

func (e *TypeFieldLoad) String() string { return e.VariableName + "." + e.FieldName }
func (e *TypeFieldLoad) exprNode()      {}

// ============================================================================
// Statements
// ============================================================================

// Decl is a variable declaration, with an optional initialiser.
type Decl struct {
	baseNode
	Name        string
	Type        types.TType
	Initialiser Expr // nil when absent
}

func (s *Decl) String() string {
	if s.Initialiser == nil {
		return fmt.Sprintf("%s %s;", s.Type.String(), s.Name)
	}

	return fmt.Sprintf("%s %s = %s;", s.Type.String(), s.Name, s.Initialiser.String())
}
func (s *Decl) stmtNode() {}

// Assign is a variable assignment to an already-declared name.
type Assign struct {
	baseNode
	Name  string
	Value Expr
}

func (s *Assign) String() string { return fmt.Sprintf("%s = %s;", s.Name, s.Value.String()) }
func (s *Assign) stmtNode()      {}

// Ret is a return statement, with an optional value (bare "ret" returns
// void).
type Ret struct {
	baseNode
	Value Expr // nil when absent
}

func (s *Ret) String() string {
	if s.Value == nil {
		return "ret;"
	}

	return fmt.Sprintf("ret %s;", s.Value.String())
}
func (s *Ret) stmtNode() {}

// ExprStmt wraps an expression used as a statement: a FncCall called for
// its side effect, or a bare literal.
type ExprStmt struct {
	baseNode
	X Expr
}

func (s *ExprStmt) String() string { return s.X.String() + ";" }
func (s *ExprStmt) stmtNode()      {}

// ============================================================================
// Top-level forms
// ============================================================================

// Param is one (name, type) entry in an ordered parameter list. The source
// language's own parser loses declaration order by storing parameters in an
// unordered map; this port keeps them as a slice precisely to fix that
// observed bug, since code generation depends on positional argument order.
type Param struct {
	Name string
	Type types.TType
}

// FuncDef is a top-level function definition.
type FuncDef struct {
	baseNode
	Name       string
	Args       []Param
	ReturnType types.TType
	Body       []Stmt
}

func (d *FuncDef) String() string {
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		args[i] = fmt.Sprintf("%s %s", a.Type.String(), a.Name)
	}

	return fmt.Sprintf("fnc %s(%s) %s { ... }", d.Name, strings.Join(args, " "), d.ReturnType.String())
}

// ExternFuncDef is an extern function declaration; it carries argument
// types only, never argument names (the source grammar has none).
type ExternFuncDef struct {
	baseNode
	Name       string
	ArgTypes   []types.TType
	ReturnType types.TType
}

func (d *ExternFuncDef) String() string {
	args := make([]string, len(d.ArgTypes))
	for i, t := range d.ArgTypes {
		args[i] = t.String()
	}

	return fmt.Sprintf("extern %s(%s) %s;", d.Name, strings.Join(args, " "), d.ReturnType.String())
}

// OperatorDef is a binary operator definition with exactly two fixed
// parameters — the grammar never generalises this to N-ary operators.
type OperatorDef struct {
	baseNode
	Op         string
	Lhs        Param
	Rhs        Param
	ReturnType types.TType
	Body       []Stmt
}

// Key is the mangled map key this definition is stored under:
// canon(lhs) ++ op ++ canon(rhs).
func (d *OperatorDef) Key() string {
	return d.Lhs.Type.Canonical() + d.Op + d.Rhs.Type.Canonical()
}

func (d *OperatorDef) String() string {
	return fmt.Sprintf("operator %s(%s %s %s %s) %s { ... }",
		d.Op, d.Lhs.Type.String(), d.Lhs.Name, d.Rhs.Type.String(), d.Rhs.Name, d.ReturnType.String())
}

// TypeDef is a composite type definition; Fields preserves source order.
type TypeDef struct {
	baseNode
	Name   string
	Fields []Param
}

func (d *TypeDef) String() string {
	parts := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		parts[i] = fmt.Sprintf("%s %s;", f.Type.String(), f.Name)
	}

	return fmt.Sprintf("type %s { %s }", d.Name, strings.Join(parts, " "))
}

// IncludeDecl is one or more string-literal module names, in source order.
// File resolution is the code-generator's responsibility, not the
// parser's.
type IncludeDecl struct {
	baseNode
	Modules []string
}

func (d *IncludeDecl) String() string {
	quoted := make([]string, len(d.Modules))
	for i, m := range d.Modules {
		quoted[i] = strconv.Quote(m)
	}

	return fmt.Sprintf("include %s;", strings.Join(quoted, " "))
}

// GenericFuncDef is a FuncDef parameterised over one abstract type
// parameter. TypeParam is lexed as a plain Ident — it is never registered
// in the typedef registry, since it names no concrete type.
type GenericFuncDef struct {
	baseNode
	Name       string
	TypeParam  string
	Args       []Param
	ReturnType types.TType
	Body       []Stmt
}

func (d *GenericFuncDef) String() string {
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		args[i] = fmt.Sprintf("%s %s", a.Type.String(), a.Name)
	}

	return fmt.Sprintf("fnc<%s> %s(%s) %s { ... }", d.TypeParam, d.Name, strings.Join(args, " "), d.ReturnType.String())
}
