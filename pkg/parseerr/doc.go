// Package parseerr is the structured diagnostic type pkg/parser reports
// through (pkg/lexer never fails). Unlike a REPL-oriented parser, which wants to
// collect every error it can find before giving up, this front-end's
// contract is first-failure-aborts: Diagnostic is a single value, not an
// accumulating collection.
package parseerr
