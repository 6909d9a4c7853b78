package parseerr

import (
	"testing"

	"github.com/fflang/ffc/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnexpectedFormatsExpectedSet(t *testing.T) {
	d := Unexpected(token.Pos{Line: 2, Column: 5}, token.Token{Kind: token.Semicolon, Lexeme: ";"}, token.OpP, token.Ident)
	var err error = d
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:5")
	assert.Contains(t, err.Error(), "OpP")
	assert.Contains(t, err.Error(), "Ident")
	assert.Contains(t, err.Error(), `Semicolon(";")`)
}

func TestUnknownTypeQuotesLexeme(t *testing.T) {
	d := UnknownType(token.Pos{Line: 1, Column: 1}, token.Token{Kind: token.Ident, Lexeme: "Bogus"})
	assert.Contains(t, d.Error(), `"Bogus"`)
}

func TestUnknownExpressionHasNoExpectedSet(t *testing.T) {
	d := UnknownExpression(token.Pos{Line: 3, Column: 1}, token.Token{Kind: token.Semicolon, Lexeme: ";"})
	assert.Empty(t, d.Expected)
	assert.NotContains(t, d.Error(), "expected one of")
}

func TestDiagnosticSatisfiesErrorInterface(t *testing.T) {
	var _ error = &Diagnostic{}
}
