// Package lexer turns ff source text into a materialized token stream.
//
// Tokenization is eager and single-pass: New scans the entire input once
// and returns a Stream backed by a fixed slice of token.Token values. There
// is no re-lexing and no interleaving with the parser — classification of
// an identifier as a declared type name is explicitly NOT this package's
// job (see pkg/parser and internal/typeset); the lexer only ever resolves
// the five primitive type keywords to token.Type, since those are known
// before a single byte is read.
//
// Classification at a given position follows a fixed order, first match
// wins: string literal, operator run, identifier/keyword, numeric literal,
// '='/'==' disambiguation, then single-character punctuation. This order
// is part of the package's contract, not an implementation detail — it
// determines behavior on ambiguous prefixes (for example, a bare '=' can
// never start an operator run; only a longer run already in progress may
// absorb one).
package lexer
