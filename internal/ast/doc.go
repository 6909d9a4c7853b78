// Package ast defines the closed family of AST node variants pkg/parser
// produces: expressions, statements, and top-level declarations.
//
// Every node is owned by exactly one parent; the root owners are the six
// collections on parser.Result. There are no cycles and no weak
// back-references — a node never needs to know who holds it.
//
// Expr and Stmt are thin marker interfaces (no behavior beyond String and
// Position) rather than a visitor-dispatch hierarchy: the code-generator this
// package hands its tree to is expected to type-switch on the concrete
// node types, the same way the front-end's own tests do.
package ast
