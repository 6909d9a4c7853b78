package typeset

import "github.com/fflang/ffc/pkg/token"

// Set is the live typedef registry. The zero value is not usable; use New.
type Set struct {
	declared map[string]bool
}

// New returns a registry seeded with the five primitive type names.
func New() *Set {
	s := &Set{declared: make(map[string]bool, len(token.Primitives)+4)}
	for _, name := range token.Primitives {
		s.declared[name] = true
	}

	return s
}

// Declare registers name as a known type. Called once per parsed "type"
// declaration, immediately after its name is read — the declared name
// becomes recognized as a type for every subsequent token in the source,
// including the remainder of its own definition.
func (s *Set) Declare(name string) {
	s.declared[name] = true
}

// IsType reports whether name is a primitive or a previously declared
// custom type.
func (s *Set) IsType(name string) bool {
	return s.declared[name]
}

// IsTypeToken mirrors the original parser's if_type predicate: a token
// counts as a type use if the lexer already tagged it token.Type (always
// true for the primitives), or if it is an Ident whose lexeme names a
// declared custom type.
func (s *Set) IsTypeToken(kind token.Kind, lexeme string) bool {
	return kind == token.Type || (kind == token.Ident && s.IsType(lexeme))
}

// IsIdentToken mirrors the original parser's if_ident predicate: a token
// counts as a plain identifier only if the lexer tagged it token.Ident and
// its lexeme does not name a declared type.
func (s *Set) IsIdentToken(kind token.Kind, lexeme string) bool {
	return kind == token.Ident && !s.IsType(lexeme)
}
