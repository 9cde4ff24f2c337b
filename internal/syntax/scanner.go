package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on Mini source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, digits, string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	// Record token start position
	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// scanOperator returned true, meaning it consumed a comment
			// or an unusable character
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, carriage return, and newline.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal integer literal. Mini has no other numeric
// forms. Literals that overflow a 64-bit integer are reported but still
// produce a token so parsing can continue.
func (s *Scanner) scanNumber() {
	s.startLit()
	s.nextch()

	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = _Literal
	s.kind = IntLit

	if _, err := strconv.ParseInt(s.lit, 10, 64); err != nil {
		s.error("integer literal too large: " + s.lit)
	}
}

// scanString scans a string literal.
// The resulting literal is the decoded string content (escape sequences
// are interpreted).
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	var b strings.Builder

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		case s.ch == '\\':
			if r, ok := s.scanEscape(); ok {
				b.WriteRune(r)
			}

		case s.ch == '\n' || s.ch < 0:
			s.error("string not terminated")
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		default:
			b.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	switch s.ch {
	case 'n':
		s.nextch()
		return '\n', true
	case 't':
		s.nextch()
		return '\t', true
	case 'r':
		s.nextch()
		return '\r', true
	case '\\':
		s.nextch()
		return '\\', true
	case '"':
		s.nextch()
		return '"', true
	default:
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
		return 0, false
	}
}

// scanOperator scans an operator or delimiter.
// Returns true if the caller should rescan (a comment or an unusable
// character was consumed).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		if s.ch == '+' {
			s.nextch()
			s.tok = _Inc
			s.lit = "++"
		} else {
			s.tok = _Add
			s.lit = "+"
		}
	case '-':
		if s.ch == '-' {
			s.nextch()
			s.tok = _Dec
			s.lit = "--"
		} else {
			s.tok = _Sub
			s.lit = "-"
		}
	case '*':
		s.tok = _Mul
		s.lit = "*"
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		s.tok = _Div
		s.lit = "/"
	case '&':
		if s.ch == '&' {
			s.nextch()
			s.tok = _AndAnd
			s.lit = "&&"
		} else {
			s.error("unexpected character '&'")
			return true
		}
	case '|':
		if s.ch == '|' {
			s.nextch()
			s.tok = _OrOr
			s.lit = "||"
		} else {
			s.error("unexpected character '|'")
			return true
		}
	case '<':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		case '<':
			s.nextch()
			s.tok = _Write
			s.lit = "<<"
		default:
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		case '>':
			s.nextch()
			s.tok = _Read
			s.lit = ">>"
		default:
			s.tok = _Gtr
			s.lit = ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			s.tok = _Not
			s.lit = "!"
		}
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	case '.':
		s.tok = _Dot
		s.lit = "."
	}

	return false
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	// Already consumed the second /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
