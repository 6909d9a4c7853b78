package lexer

import (
	"testing"

	"github.com/fflang/ffc/pkg/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	s := New(src)
	var got []token.Token
	for {
		tok, err := s.Advance()
		if err != nil {
			break
		}
		got = append(got, tok)
	}

	return got
}

func TestTokenizeFunctionSignature(t *testing.T) {
	src := `fnc main() int { ret 42; }`

	want := []token.Token{
		{Kind: token.Fnc, Lexeme: "fnc"},
		{Kind: token.Ident, Lexeme: "main"},
		{Kind: token.OpP, Lexeme: "("},
		{Kind: token.ClP, Lexeme: ")"},
		{Kind: token.Type, Lexeme: "int"},
		{Kind: token.OpCB, Lexeme: "{"},
		{Kind: token.Ret, Lexeme: "ret"},
		{Kind: token.IntLit, Lexeme: "42"},
		{Kind: token.Semicolon, Lexeme: ";"},
		{Kind: token.ClCB, Lexeme: "}"},
	}

	got := collect(t, src)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOperatorRuns(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{"==", []token.Token{{Kind: token.Operator, Lexeme: "=="}}},
		{"=", []token.Token{{Kind: token.Eq, Lexeme: "="}}},
		{"+", []token.Token{{Kind: token.Operator, Lexeme: "+"}}},
		{"<=", []token.Token{{Kind: token.Operator, Lexeme: "<="}}},
		{"!~", []token.Token{{Kind: token.Operator, Lexeme: "!~"}}},
	}

	for _, tt := range tests {
		got := collect(t, tt.src)
		if len(got) != len(tt.want) {
			t.Fatalf("src %q: got %d tokens %v, want %d", tt.src, len(got), got, len(tt.want))
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("src %q token %d: got %v, want %v", tt.src, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEqDoesNotEatFollowingToken(t *testing.T) {
	// Regression for the observed '=' lookahead bug (spec.md §9): a bare
	// '=' must not consume the first character of the next token.
	got := collect(t, "x=1;")
	want := []token.Token{
		{Kind: token.Ident, Lexeme: "x"},
		{Kind: token.Eq, Lexeme: "="},
		{Kind: token.IntLit, Lexeme: "1"},
		{Kind: token.Semicolon, Lexeme: ";"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStringLiteralNoEscapes(t *testing.T) {
	got := collect(t, `"a\nb"`)
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(got), got)
	}
	if got[0].Kind != token.StrLit {
		t.Fatalf("kind = %v, want StrLit", got[0].Kind)
	}
	if got[0].Lexeme != `a\nb` {
		t.Fatalf("lexeme = %q, want %q", got[0].Lexeme, `a\nb`)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"3.14", token.FloatLit},
	}
	for _, tt := range tests {
		got := collect(t, tt.src)
		if len(got) != 1 || got[0].Kind != tt.kind || got[0].Lexeme != tt.src {
			t.Errorf("src %q: got %v, want single %v token", tt.src, got, tt.kind)
		}
	}
}

func TestBoolAndKeywordLiterals(t *testing.T) {
	got := collect(t, "true false if else ret include extern operator type")
	wantKinds := []token.Kind{
		token.BoolLit, token.BoolLit, token.If, token.Else, token.Ret,
		token.Include, token.Extern, token.OperatorDef, token.TypeDef,
	}
	if len(got) != len(wantKinds) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(wantKinds))
	}
	for i, k := range wantKinds {
		if got[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	s := New("a b")
	first := s.Peek()
	second := s.Peek()
	if first != second {
		t.Fatalf("Peek is not idempotent: %v != %v", first, second)
	}
	if first.Lexeme != "a" {
		t.Fatalf("Peek lexeme = %q, want %q", first.Lexeme, "a")
	}

	tok, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if tok.Lexeme != "a" {
		t.Fatalf("Advance lexeme = %q, want %q", tok.Lexeme, "a")
	}

	if next := s.Peek(); next.Lexeme != "b" {
		t.Fatalf("Peek after Advance = %q, want %q", next.Lexeme, "b")
	}
}

func TestAdvancePastEndReturnsErrEndOfInput(t *testing.T) {
	s := New("x")
	if _, err := s.Advance(); err != nil {
		t.Fatalf("first Advance returned error: %v", err)
	}
	if _, err := s.Advance(); err != ErrEndOfInput {
		t.Fatalf("second Advance error = %v, want ErrEndOfInput", err)
	}
}

func TestEmptyInputEndsImmediately(t *testing.T) {
	s := New("")
	if _, err := s.Advance(); err != ErrEndOfInput {
		t.Fatalf("Advance on empty input error = %v, want ErrEndOfInput", err)
	}
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	s := New("fnc\nmain")
	tok, _ := s.Advance()
	if tok.Lexeme != "fnc" {
		t.Fatalf("lexeme = %q, want fnc", tok.Lexeme)
	}
	if got := s.Pos(); got != (token.Pos{Line: 1, Column: 1}) {
		t.Fatalf("Pos() = %v, want 1:1", got)
	}

	tok, _ = s.Advance()
	if tok.Lexeme != "main" {
		t.Fatalf("lexeme = %q, want main", tok.Lexeme)
	}
	if got := s.Pos(); got != (token.Pos{Line: 2, Column: 1}) {
		t.Fatalf("Pos() = %v, want 2:1", got)
	}
}

func TestPeekPosMatchesSubsequentPos(t *testing.T) {
	s := New("a b")
	peeked := s.PeekPos()
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if got := s.Pos(); got != peeked {
		t.Fatalf("Pos() after Advance = %v, want PeekPos() before = %v", got, peeked)
	}
}
