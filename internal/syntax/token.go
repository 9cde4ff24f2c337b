// Package syntax implements lexical and syntactic analysis for the Mini
// programming language, together with an unparser that renders a parsed
// program back to Mini source text.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name    // identifier: x, point, f
	_Literal // literal value (used with LitKind)

	// Operators (binary operators ordered by precedence, low to high)
	_Assign // =

	_OrOr   // ||
	_AndAnd // &&

	_Eql // ==
	_Neq // !=

	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	_Add // +
	_Sub // -

	_Mul // *
	_Div // /

	_Not // !

	_Inc // ++
	_Dec // --

	_Read  // >>  (cin >> loc)
	_Write // <<  (cout << exp)

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Dot    // .

	// Keywords
	_Bool
	_Cin
	_Cout
	_Else
	_False
	_If
	_Int
	_Repeat
	_Return
	_Struct
	_True
	_Void
	_While

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",

	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",

	_Not: "!",

	_Inc: "++",
	_Dec: "--",

	_Read:  ">>",
	_Write: "<<",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Dot:    ".",

	_Bool:   "bool",
	_Cin:    "cin",
	_Cout:   "cout",
	_Else:   "else",
	_False:  "false",
	_If:     "if",
	_Int:    "int",
	_Repeat: "repeat",
	_Return: "return",
	_Struct: "struct",
	_True:   "true",
	_Void:   "void",
	_While:  "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators. All binary operators are left-associative.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == !=
//	4: < <= > >=
//	5: + -
//	6: * /
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Eql, _Neq:
		return 3
	case _Lss, _Leq, _Gtr, _Geq:
		return 4
	case _Add, _Sub:
		return 5
	case _Mul, _Div:
		return 6
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Bool && t <= _While
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Write
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// LitKind represents the kind of a literal token or literal node.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	StringLit                // "hello", "line\n"
	BoolLit                  // true, false (built by the parser, never scanned)
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	StringLit: "string",
	BoolLit:   "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"bool":   _Bool,
	"cin":    _Cin,
	"cout":   _Cout,
	"else":   _Else,
	"false":  _False,
	"if":     _If,
	"int":    _Int,
	"repeat": _Repeat,
	"return": _Return,
	"struct": _Struct,
	"true":   _True,
	"void":   _Void,
	"while":  _While,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
