// Package typeset implements the parser's live typedef registry: the
// mapping from declared type name to field list, seeded with the five
// primitives at parser construction and grown by each "type" declaration
// the parser consumes.
//
// The registry is what makes the front-end's lexing context-sensitive
// (spec Invariant 1) without requiring the lexer itself to know anything
// about parse state: pkg/lexer always emits Ident for a user type name,
// and pkg/parser asks Set.IsType at every grammar position that needs to
// tell a type use apart from a plain identifier.
package typeset
