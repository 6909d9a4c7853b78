package typeset

import (
	"testing"

	"github.com/fflang/ffc/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestNewSeedsPrimitives(t *testing.T) {
	s := New()
	for _, name := range token.Primitives {
		assert.True(t, s.IsType(name), "expected %q to be a primitive type", name)
	}
	assert.False(t, s.IsType("Point"))
}

func TestDeclareAddsCustomType(t *testing.T) {
	s := New()
	assert.False(t, s.IsType("Point"))
	s.Declare("Point")
	assert.True(t, s.IsType("Point"))
}

func TestContextSensitivity(t *testing.T) {
	// An identifier declared via "type X { ... }" at some point in the
	// source lexes as Ident throughout (the lexer never re-tags it), but
	// the registry must classify it as a type only from the point of
	// declaration onward — this is spec Invariant 1's context sensitivity,
	// expressed as "declare, then recheck" rather than "relex".
	s := New()
	before := s.IsTypeToken(token.Ident, "Point")
	s.Declare("Point")
	after := s.IsTypeToken(token.Ident, "Point")

	assert.False(t, before)
	assert.True(t, after)
}

func TestIsTypeTokenAndIsIdentTokenAreComplementaryForIdentKind(t *testing.T) {
	s := New()
	s.Declare("Point")

	assert.True(t, s.IsTypeToken(token.Ident, "Point"))
	assert.False(t, s.IsIdentToken(token.Ident, "Point"))

	assert.False(t, s.IsTypeToken(token.Ident, "x"))
	assert.True(t, s.IsIdentToken(token.Ident, "x"))
}

func TestIsIdentTokenFalseForNonIdentKind(t *testing.T) {
	s := New()
	assert.False(t, s.IsIdentToken(token.Type, "int"))
}
