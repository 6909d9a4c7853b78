// Package parser implements the ff recursive-descent AST parser: it
// consumes a *lexer.Stream and produces a *Result holding the six
// top-level collections a downstream code-generator consumes.
//
// There is no precedence table and no error recovery. The grammar is flat
// and right-associative by construction (see the re-entry flag in
// expressions.go), and Parse returns on the first malformed token rather
// than attempting to continue.
package parser
