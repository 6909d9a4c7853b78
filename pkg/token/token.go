// Package token defines the lexical token kinds produced by pkg/lexer and
// consumed by pkg/parser.
package token

import "fmt"

// Kind classifies a lexical token. The zero value is Ident, matching the
// fallback case in the lexer's classification order (string literal ->
// operator run -> identifier/keyword -> numeric literal -> '='/'=='
// disambiguation -> single-character punctuation).
type Kind int

const (
	Ident Kind = iota
	Type
	IntLit
	FloatLit
	StrLit
	BoolLit
	Operator
	Fnc
	Extern
	OperatorDef
	Include
	TypeDef
	If
	Else
	Ret
	Ref
	Eq
	OpP
	ClP
	OpCB
	ClCB
	Semicolon
	Dot
	// EOF never appears in a materialized token stream; it is only used as
	// the Kind of the empty Token that lexer.Stream.Peek returns past the
	// end and that lexer.Stream.Advance returns alongside
	// lexer.ErrEndOfInput.
	EOF
)

var kindNames = map[Kind]string{
	Ident:       "Ident",
	Type:        "Type",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StrLit:      "StrLit",
	BoolLit:     "BoolLit",
	Operator:    "Operator",
	Fnc:         "Fnc",
	Extern:      "Extern",
	OperatorDef: "OperatorDef",
	Include:     "Include",
	TypeDef:     "TypeDef",
	If:          "If",
	Else:        "Else",
	Ret:         "Ret",
	Ref:         "Ref",
	Eq:          "Eq",
	OpP:         "OpP",
	ClP:         "ClP",
	OpCB:        "OpCB",
	ClCB:        "ClCB",
	Semicolon:   "Semicolon",
	Dot:         "Dot",
	EOF:         "EOF",
}

// String implements fmt.Stringer, primarily for diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved lexemes to their token kind. Primitive type names
// are deliberately included here: they are the only type names the lexer
// itself ever resolves to Type, since they are known before a single byte
// of source is read. User-declared type names always lex as Ident; the
// parser reclassifies them via its typedef registry (see internal/typeset).
var keywords = map[string]Kind{
	"fnc":      Fnc,
	"extern":   Extern,
	"operator": OperatorDef,
	"include":  Include,
	"type":     TypeDef,
	"if":       If,
	"else":     Else,
	"ret":      Ret,
	"ref":      Ref,
	"true":     BoolLit,
	"false":    BoolLit,
	"int":      Type,
	"float":    Type,
	"bool":     Type,
	"str":      Type,
	"void":     Type,
}

// LookupIdent resolves a scanned identifier-shaped lexeme to its keyword
// kind, or Ident if it names neither a keyword nor a primitive type.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return Ident
}

// Primitives lists the primitive type keywords, in the order the typedef
// registry seeds them at parser construction.
var Primitives = []string{"int", "float", "bool", "str", "void"}

// OperatorChars is the set of characters that can form an Operator run.
// The bare '=' is excluded from the run: standing alone (not followed by
// another '=') it lexes as Eq instead, per the lexer's classification
// order.
const OperatorChars = "!~@#$%^&*-+\\/<>="

// IsOperatorChar reports whether b is one of OperatorChars.
func IsOperatorChar(b byte) bool {
	for i := 0; i < len(OperatorChars); i++ {
		if OperatorChars[i] == b {
			return true
		}
	}

	return false
}

// Token is an immutable (kind, lexeme) pair.
type Token struct {
	Kind   Kind
	Lexeme string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

// Pos is a source position, used by AST nodes and diagnostics.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
