/*
File    : lci/lexer/token.go
*/
package lexer

import "fmt"

// TokenType classifies a lexical token produced by the Lexer. Each value
// corresponds to exactly one syntactic element of the expression language
// described in the language reference: operators, delimiters, literals and
// identifiers.
type TokenType int

// Token type constants. Grouped by role to keep the grammar legible; the
// iota enumeration only needs to guarantee distinct values.
const (
	EOF     TokenType = iota // end of input
	ILLEGAL                  // unrecognized character

	VARIABLE // lowercase identifier
	CONSTANT // reserved identifier (no reserved words populate it yet)
	INT      // decimal integer literal

	DOT    // '.'  lambda body separator
	LAMBDA // '\'  lambda introducer
	COMMA  // ','  list element separator
	ARROW  // '<-' top-level binding
	COLON  // ':'  reserved (list-cons; unimplemented at reducer)

	PLUS  // '+'
	MINUS // '-'
	STAR  // '*'
	SLASH // '/'

	LPAREN  // '('
	RPAREN  // ')'
	LSQUARE // '['
	RSQUARE // ']'
)

var tokenNames = map[TokenType]string{
	EOF:      "EOF",
	ILLEGAL:  "ILLEGAL",
	VARIABLE: "VARIABLE",
	CONSTANT: "CONSTANT",
	INT:      "INT",
	DOT:      "DOT",
	LAMBDA:   "LAMBDA",
	COMMA:    "COMMA",
	ARROW:    "ARROW",
	COLON:    "COLON",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	LSQUARE:  "LSQUARE",
	RSQUARE:  "RSQUARE",
}

// String returns the human-readable name of a token type, used in error
// messages and tests.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// reservedWords maps source lexemes that lex as CONSTANT instead of
// VARIABLE. Empty today: the language reserves the token but has no
// reserved identifiers. Adding one here is the only change needed to make
// it produce a Constant expression (see expr.Constant).
var reservedWords = map[string]bool{}

// constantSymbols lists the multi-character (and single-character)
// punctuation tokens, ordered so that longer lexemes are tried first. Order
// matters: "<-" must be matched before a lone "-" is considered.
var constantSymbols = []struct {
	lexeme string
	typ    TokenType
}{
	{"<-", ARROW},
	{".", DOT},
	{"\\", LAMBDA},
	{",", COMMA},
	{":", COLON},
	{"+", PLUS},
	{"-", MINUS},
	{"*", STAR},
	{"/", SLASH},
	{"(", LPAREN},
	{")", RPAREN},
	{"[", LSQUARE},
	{"]", RSQUARE},
}

// Token is an immutable lexical unit: the lexeme as it appeared in source,
// its classification, and its origin for diagnostics.
type Token struct {
	Source string
	Type   TokenType
	Line   int
	Col    int
}

// Location renders the token's origin as "line:col", the form used
// throughout parse and evaluation error messages.
func (t Token) Location() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Col)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Source)
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
