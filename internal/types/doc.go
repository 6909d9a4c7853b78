// Package types defines TType, the type descriptor attached to every typed
// position in the AST: declaration types, function argument and return
// types, operator operand/return types, and type-definition fields.
//
// TType is a small closed sum (primitive, named custom type, or reference
// to another TType) rather than an interface hierarchy, matching how the
// rest of the front-end represents closed variant families. Its Canonical
// method is the single source of truth for the mangled keys pkg/parser
// uses to index operator definitions; generic-function definitions are
// indexed by their plain name.
package types
