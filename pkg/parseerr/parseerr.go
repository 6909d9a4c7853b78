package parseerr

import (
	"fmt"
	"strings"

	"github.com/fflang/ffc/pkg/token"
)

// Diagnostic is a single parse failure: a structural grammar violation, an
// unknown-type lookup, or an unknown-expression dispatch. It carries enough
// to render a useful message without needing to re-walk the token stream.
type Diagnostic struct {
	Pos      token.Pos
	Expected []token.Kind // nil when not an "expected one of" failure
	Actual   token.Token
	Message  string
}

func (d *Diagnostic) Error() string {
	if len(d.Expected) == 0 {
		return fmt.Sprintf("%s: %s (got %s)", d.Pos, d.Message, d.Actual)
	}

	want := make([]string, len(d.Expected))
	for i, k := range d.Expected {
		want[i] = k.String()
	}

	return fmt.Sprintf("%s: %s (expected one of [%s], got %s)", d.Pos, d.Message, strings.Join(want, ", "), d.Actual)
}

// Unexpected builds a Diagnostic for "wanted one of these kinds, got this
// token" — the assertion-failure category of spec.md §7.1.
func Unexpected(pos token.Pos, actual token.Token, expected ...token.Kind) *Diagnostic {
	return &Diagnostic{Pos: pos, Expected: expected, Actual: actual, Message: "unexpected token"}
}

// UnknownType builds a Diagnostic for an unrecognised type lexeme. The
// message is "unknown type: " followed by the lexeme in Go-quoted form.
func UnknownType(pos token.Pos, actual token.Token) *Diagnostic {
	return &Diagnostic{Pos: pos, Actual: actual, Message: fmt.Sprintf("unknown type: %q", actual.Lexeme)}
}

// UnknownExpression builds a Diagnostic for an expression-position token
// the dispatcher cannot classify.
func UnknownExpression(pos token.Pos, actual token.Token) *Diagnostic {
	return &Diagnostic{Pos: pos, Actual: actual, Message: "unknown expression"}
}
