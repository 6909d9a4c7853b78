package lexer

import (
	"errors"

	"github.com/fflang/ffc/pkg/token"
)

// ErrEndOfInput is returned by Advance once the cursor has consumed the
// last token in the stream. It is the only non-error termination condition
// in the front-end: pkg/parser's top-level loop treats it as a normal end
// of parsing, not a failure.
var ErrEndOfInput = errors.New("lexer: end of input")

// Stream is an eagerly materialized, positionally indexed token sequence.
// It owns no reference back to the source string once New returns.
type Stream struct {
	tokens    []token.Token
	positions []token.Pos
	cursor    int // index of the current token; -1 before the first Advance
}

// New scans src in full and returns a Stream ready for parsing. Scanning
// never fails: any byte that matches none of the recognized classes is
// emitted verbatim as a single-character Ident token rather than aborting
// tokenization, so that malformed input surfaces as a parser-level
// diagnostic (with position context) instead of a silent lexer panic.
func New(src string) *Stream {
	s := &scanner{src: src, line: 1, column: 0}
	var tokens []token.Token
	var positions []token.Pos
	for {
		tok, pos, ok := s.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		positions = append(positions, pos)
	}

	return &Stream{tokens: tokens, positions: positions, cursor: -1}
}

// Peek returns the token at cursor+1 without advancing. Past the end of
// the stream it returns an empty Token with Kind token.EOF.
func (s *Stream) Peek() token.Token {
	i := s.cursor + 1
	if i < 0 || i >= len(s.tokens) {
		return token.Token{Kind: token.EOF}
	}

	return s.tokens[i]
}

// PeekPos returns the source position of the token Peek would return. Past
// the end of the stream it returns the start position of the last token
// (1:1 for empty input).
func (s *Stream) PeekPos() token.Pos {
	i := s.cursor + 1
	if i < 0 || i >= len(s.positions) {
		return s.endPos()
	}

	return s.positions[i]
}

// Pos returns the source position of the token last returned by Advance.
// Before the first Advance call it returns the position of the first
// token (or the empty-input end position).
func (s *Stream) Pos() token.Pos {
	i := s.cursor
	if i < 0 {
		i = 0
	}
	if i >= len(s.positions) {
		return s.endPos()
	}

	return s.positions[i]
}

func (s *Stream) endPos() token.Pos {
	if len(s.positions) == 0 {
		return token.Pos{Line: 1, Column: 1}
	}

	return s.positions[len(s.positions)-1]
}

// Advance returns the token at cursor+1 and moves the cursor forward. Once
// there is no such token it returns ErrEndOfInput.
func (s *Stream) Advance() (token.Token, error) {
	if s.cursor+1 >= len(s.tokens) {
		s.cursor = len(s.tokens)

		return token.Token{Kind: token.EOF}, ErrEndOfInput
	}
	s.cursor++

	return s.tokens[s.cursor], nil
}

// scanner is the single-pass byte scanner behind New. It is not exported:
// callers only ever see the materialized Stream.
type scanner struct {
	src          string
	position     int
	readPosition int
	ch           byte
	primed       bool
	line         int
	column       int
}

func (sc *scanner) readChar() {
	if sc.ch == '\n' {
		sc.line++
		sc.column = 0
	}
	if sc.readPosition >= len(sc.src) {
		sc.ch = 0
	} else {
		sc.ch = sc.src[sc.readPosition]
	}
	sc.position = sc.readPosition
	sc.readPosition++
	sc.column++
}

func (sc *scanner) peekChar() byte {
	if sc.readPosition >= len(sc.src) {
		return 0
	}

	return sc.src[sc.readPosition]
}

func (sc *scanner) skipWhitespace() {
	for sc.ch == ' ' || sc.ch == '\t' || sc.ch == '\n' || sc.ch == '\r' {
		sc.readChar()
	}
}

// next returns the next token, its starting source position, and true, or
// the zero values and false once the source is exhausted.
func (sc *scanner) next() (token.Token, token.Pos, bool) {
	if !sc.primed {
		sc.primed = true
		sc.readChar()
	}

	sc.skipWhitespace()

	if sc.ch == 0 {
		return token.Token{}, token.Pos{}, false
	}

	pos := token.Pos{Line: sc.line, Column: sc.column}

	switch {
	case sc.ch == '"':
		return sc.readString(), pos, true
	case isOperatorStart(sc.ch):
		return sc.readOperator(), pos, true
	case isLetter(sc.ch):
		return sc.readIdentifier(), pos, true
	case isDigit(sc.ch):
		return sc.readNumber(), pos, true
	case sc.ch == '=':
		return sc.readEq(), pos, true
	default:
		return sc.readPunctuation(), pos, true
	}
}

// readString consumes a '"'-delimited literal with no escape processing;
// inner bytes are taken verbatim until the closing quote (or EOF, at which
// point the literal is simply whatever was seen — truncated input is a
// parser-level concern, not a lexer one).
func (sc *scanner) readString() token.Token {
	sc.readChar() // consume opening quote
	start := sc.position
	for sc.ch != '"' && sc.ch != 0 {
		sc.readChar()
	}
	lit := sc.src[start:sc.position]
	sc.readChar() // consume closing quote (or no-op at EOF)

	return token.Token{Kind: token.StrLit, Lexeme: lit}
}

// isOperatorStart reports whether ch can begin an operator run. The bare
// '=' is excluded: on its own it is handled by readEq, not here. A run
// already in progress may still absorb a '=' (see readOperator).
func isOperatorStart(ch byte) bool {
	return ch != '=' && token.IsOperatorChar(ch)
}

func (sc *scanner) readOperator() token.Token {
	start := sc.position
	for token.IsOperatorChar(sc.ch) {
		sc.readChar()
	}

	return token.Token{Kind: token.Operator, Lexeme: sc.src[start:sc.position]}
}

func (sc *scanner) readIdentifier() token.Token {
	start := sc.position
	for isLetter(sc.ch) || isDigit(sc.ch) {
		sc.readChar()
	}
	lit := sc.src[start:sc.position]

	return token.Token{Kind: token.LookupIdent(lit), Lexeme: lit}
}

func (sc *scanner) readNumber() token.Token {
	start := sc.position
	isFloat := false
	for isDigit(sc.ch) || sc.ch == '.' {
		if sc.ch == '.' {
			isFloat = true
		}
		sc.readChar()
	}
	lit := sc.src[start:sc.position]
	if isFloat {
		return token.Token{Kind: token.FloatLit, Lexeme: lit}
	}

	return token.Token{Kind: token.IntLit, Lexeme: lit}
}

// readEq disambiguates '=' from '==' using a single character of
// lookahead. The original source this lexer is modeled on unconditionally
// consumed one extra character after resolving the plain-'=' case,
// silently eating the first character of the following token; this
// implementation peeks instead, so it never does that.
func (sc *scanner) readEq() token.Token {
	sc.readChar() // consume '='
	if sc.ch == '=' {
		sc.readChar() // consume second '='

		return token.Token{Kind: token.Operator, Lexeme: "=="}
	}

	return token.Token{Kind: token.Eq, Lexeme: "="}
}

var punctuation = map[byte]token.Kind{
	'(': token.OpP,
	')': token.ClP,
	'{': token.OpCB,
	'}': token.ClCB,
	';': token.Semicolon,
	'.': token.Dot,
}

func (sc *scanner) readPunctuation() token.Token {
	ch := sc.ch
	kind, ok := punctuation[ch]
	sc.readChar()
	if !ok {
		return token.Token{Kind: token.Ident, Lexeme: string(ch)}
	}

	return token.Token{Kind: kind, Lexeme: string(ch)}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
