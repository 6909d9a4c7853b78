package parser

import (
	"github.com/fflang/ffc/internal/ast"
	"github.com/fflang/ffc/pkg/token"
)

// Result is the AST/code-generator interface: the six named collections
// spec.md assigns to a complete parse, plus the generic-call-site index.
type Result struct {
	Functions    []*ast.FuncDef
	ExternFuncs  []*ast.ExternFuncDef
	Operators    map[string]*ast.OperatorDef
	Includes     []*ast.IncludeDecl
	TypeDefs     map[string]*ast.TypeDef
	GenericFuncs map[string]*ast.GenericFuncDef
	// GenericUses maps a generic function name to every call site found
	// across all parsed function bodies. Resolving a specialisation from a
	// call site is code-generator business; collecting the call sites is
	// the parser's sole obligation here (spec.md §4.6).
	GenericUses map[string][]*ast.FncCall
}

func newResult() *Result {
	return &Result{
		Operators:    make(map[string]*ast.OperatorDef),
		TypeDefs:     make(map[string]*ast.TypeDef),
		GenericFuncs: make(map[string]*ast.GenericFuncDef),
		GenericUses:  make(map[string][]*ast.FncCall),
	}
}

// IsType reports whether name is a primitive or a type declared anywhere
// in the parsed source — a convenience mirroring the registry predicate
// the parser itself used during parsing, exposed for downstream
// consumers that want the same answer after the fact.
func (r *Result) IsType(name string) bool {
	for _, p := range token.Primitives {
		if p == name {
			return true
		}
	}
	_, ok := r.TypeDefs[name]

	return ok
}
