package ast

import (
	"testing"

	"github.com/fflang/ffc/internal/types"
	"github.com/fflang/ffc/pkg/token"
	"github.com/stretchr/testify/assert"
)

func pos() token.Pos { return token.Pos{Line: 1, Column: 1} }

func TestLiteralStrings(t *testing.T) {
	assert.Equal(t, "42", (&IntLit{baseNode: WithPos(pos()), Value: 42}).String())
	assert.Equal(t, "true", (&BoolLit{baseNode: WithPos(pos()), Value: true}).String())
	assert.Equal(t, `"hi"`, (&StrLit{baseNode: WithPos(pos()), Value: "hi"}).String())
}

func TestFncCallString(t *testing.T) {
	call := &FncCall{
		baseNode: WithPos(pos()),
		Name:     "add",
		Args:     []Expr{&IntLit{Value: 1}, &IntLit{Value: 2}},
	}
	assert.Equal(t, "add(1 2)", call.String())
}

func TestOperatorRightAssociativeShape(t *testing.T) {
	// a + (b + c): constructing it this way is itself evidence the Rhs
	// field, not a precedence table, is what carries right associativity.
	inner := &Operator{Op: "+", Lhs: &Ident{Name: "b"}, Rhs: &Ident{Name: "c"}}
	outer := &Operator{Op: "+", Lhs: &Ident{Name: "a"}, Rhs: inner}
	assert.Equal(t, "(a + (b + c))", outer.String())
}

func TestIfElseSingleStatementBody(t *testing.T) {
	ifStmt := &If{
		Cond:     &BoolLit{Value: true},
		ThenBody: []Stmt{&Ret{Value: &IntLit{Value: 1}}},
		ElseBody: []Stmt{&Ret{Value: &IntLit{Value: 0}}},
	}
	assert.Len(t, ifStmt.ElseBody, 1)
	assert.Equal(t, "if true { ret 1; } else { ret 0; }", ifStmt.String())

	var _ Expr = ifStmt
	var _ Stmt = ifStmt
}

func TestDeclWithAndWithoutInitialiser(t *testing.T) {
	withInit := &Decl{Name: "x", Type: types.Primitive(types.KInt), Initialiser: &IntLit{Value: 5}}
	assert.Equal(t, "int x = 5;", withInit.String())

	bare := &Decl{Name: "x", Type: types.Primitive(types.KInt)}
	assert.Equal(t, "int x;", bare.String())
}

func TestRetBareAndWithValue(t *testing.T) {
	assert.Equal(t, "ret;", (&Ret{}).String())
	assert.Equal(t, "ret 1;", (&Ret{Value: &IntLit{Value: 1}}).String())
}

func TestOperatorDefKeyMangling(t *testing.T) {
	def := &OperatorDef{
		Op:  "+",
		Lhs: Param{Name: "x", Type: types.Primitive(types.KInt)},
		Rhs: Param{Name: "y", Type: types.Primitive(types.KStr)},
	}
	assert.Equal(t, "int+str", def.Key())

	refDef := &OperatorDef{
		Op:  "+",
		Lhs: Param{Name: "x", Type: types.Reference(types.Primitive(types.KInt))},
		Rhs: Param{Name: "y", Type: types.Reference(types.Primitive(types.KStr))},
	}
	assert.Equal(t, "ref_int+ref_str", refDef.Key())
}

func TestTypeDefPreservesFieldOrder(t *testing.T) {
	def := &TypeDef{
		Name: "Point",
		Fields: []Param{
			{Name: "x", Type: types.Primitive(types.KInt)},
			{Name: "y", Type: types.Primitive(types.KInt)},
		},
	}
	assert.Equal(t, []Param{
		{Name: "x", Type: types.Primitive(types.KInt)},
		{Name: "y", Type: types.Primitive(types.KInt)},
	}, def.Fields)
}

func TestIncludeDeclModuleOrder(t *testing.T) {
	decl := &IncludeDecl{Modules: []string{"a", "b"}}
	assert.Equal(t, `include "a" "b";`, decl.String())
}

func TestFuncDefArgsAreOrderedSlice(t *testing.T) {
	def := &FuncDef{
		Name: "f",
		Args: []Param{
			{Name: "a", Type: types.Primitive(types.KInt)},
			{Name: "b", Type: types.Primitive(types.KStr)},
		},
		ReturnType: types.Primitive(types.KVoid),
	}
	assert.Equal(t, "a", def.Args[0].Name)
	assert.Equal(t, "b", def.Args[1].Name)
}

func TestGenericFuncDefString(t *testing.T) {
	def := &GenericFuncDef{
		Name:       "identity",
		TypeParam:  "T",
		Args:       []Param{{Name: "x", Type: types.Named("T")}},
		ReturnType: types.Named("T"),
	}
	assert.Contains(t, def.String(), "fnc<T> identity")
}

func TestAllExprVariantsImplementExprInterface(t *testing.T) {
	var exprs = []Expr{
		&IntLit{}, &FloatLit{}, &BoolLit{}, &StrLit{}, &Ident{},
		&FncCall{}, &Operator{}, &If{}, &TypeLit{}, &TypeFieldLoad{},
	}
	for _, e := range exprs {
		assert.NotPanics(t, func() { _ = e.String() })
	}
}

func TestAllStmtVariantsImplementStmtInterface(t *testing.T) {
	var stmts = []Stmt{
		&Decl{Type: types.Primitive(types.KInt)}, &Assign{Value: &IntLit{}}, &Ret{}, &ExprStmt{X: &IntLit{}}, &If{},
	}
	for _, s := range stmts {
		assert.NotPanics(t, func() { _ = s.String() })
	}
}
