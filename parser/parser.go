/*
File    : lci/parser/parser.go
*/

// Package parser consumes one statement's token list and produces either an
// Expression or a top-level binding side effect. It distinguishes free
// variables from lambda-bound occurrences with a lexical argument-name
// stack, desugars multi-parameter lambdas, and handles left-associative
// application by juxtaposition.
package parser

import (
	"fmt"

	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
)

// ParseContext is the cursor and scratch state for parsing a single
// statement's token list.
type ParseContext struct {
	Tokens    []lexer.Token
	Pos       int
	Args      []string // names currently bound by enclosing lambdas
	MultiArgs bool     // allow `\a b c. body` sugar
}

// New creates an empty ParseContext ready for Reset.
func New() *ParseContext {
	return &ParseContext{}
}

// Reset points the context at a new statement's tokens and rewinds the
// cursor, without disturbing MultiArgs. A single ParseContext may be reused
// across statements this way.
func (p *ParseContext) Reset(tokens []lexer.Token) {
	p.Tokens = tokens
	p.Pos = 0
}

func (p *ParseContext) at(offset int) (lexer.Token, bool) {
	i := p.Pos + offset
	if i < 0 || i >= len(p.Tokens) {
		return lexer.Token{}, false
	}
	return p.Tokens[i], true
}

// prev returns the token just consumed; callers only invoke this after a
// successful accept/expect.
func (p *ParseContext) prev() lexer.Token {
	return p.Tokens[p.Pos-1]
}

func (p *ParseContext) eof() bool {
	return p.Pos >= len(p.Tokens)
}

func (p *ParseContext) check(types ...lexer.TokenType) bool {
	t, ok := p.at(0)
	if !ok {
		return false
	}
	for _, ty := range types {
		if t.Type == ty {
			return true
		}
	}
	return false
}

func (p *ParseContext) accept(types ...lexer.TokenType) bool {
	if p.check(types...) {
		p.Pos++
		return true
	}
	return false
}

// expect consumes the next token if its type is in types, otherwise returns
// a SyntaxError describing what was expected.
func (p *ParseContext) expect(expected string, types ...lexer.TokenType) error {
	if p.accept(types...) {
		return nil
	}
	if t, ok := p.at(0); ok {
		return &SyntaxError{Line: t.Line, Col: t.Col, Expected: expected, Actual: fmt.Sprintf("%q", t.Source)}
	}
	line, col := 0, 0
	if p.Pos > 0 {
		last := p.Tokens[p.Pos-1]
		line, col = last.Line, last.Col
	}
	return &SyntaxError{Line: line, Col: col, Expected: expected, Actual: "end of statement"}
}

func (p *ParseContext) isArg(name string) bool {
	for _, a := range p.Args {
		if a == name {
			return true
		}
	}
	return false
}

func (p *ParseContext) pushArg(name string) {
	p.Args = append(p.Args, name)
}

func (p *ParseContext) popArg() {
	p.Args = p.Args[:len(p.Args)-1]
}

// Parse consumes one statement's tokens with a fresh, default-configured
// ParseContext. Callers that need MultiArgs control or that want to reuse
// one ParseContext across many statements (the REPL, the file runner)
// should call (*ParseContext).Parse instead.
func Parse(tokens []lexer.Token, evalCtx *ctx.EvalContext) (expr.Expression, error) {
	return New().Parse(tokens, evalCtx)
}

// Parse consumes one statement's tokens. If the statement is a top-level
// binding (`name <- expr`), it inserts into evalCtx.Bound and returns
// (nil, nil). Otherwise it returns the parsed Expression. Trailing tokens
// after a complete expression are a SyntaxError.
func (p *ParseContext) Parse(tokens []lexer.Token, evalCtx *ctx.EvalContext) (expr.Expression, error) {
	p.Reset(tokens)

	if symbol, ok := p.bindingHead(); ok {
		body, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		if !p.eof() {
			return nil, p.trailingTokensError()
		}
		if err := evalCtx.Bind(symbol.Source, body); err != nil {
			return nil, &NameError{Line: symbol.Line, Col: symbol.Col, Name: symbol.Source}
		}
		return nil, nil
	}

	e, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.trailingTokensError()
	}
	return e, nil
}

// bindingHead recognizes "VARIABLE ARROW" at the start of the statement and,
// if present, advances past both tokens and returns the bound name's token.
func (p *ParseContext) bindingHead() (lexer.Token, bool) {
	t0, ok0 := p.at(0)
	t1, ok1 := p.at(1)
	if ok0 && ok1 && t0.Type == lexer.VARIABLE && t1.Type == lexer.ARROW {
		p.Pos += 2
		return t0, true
	}
	return lexer.Token{}, false
}

func (p *ParseContext) trailingTokensError() error {
	t, _ := p.at(0)
	return &SyntaxError{Line: t.Line, Col: t.Col, Expected: "end of statement", Actual: fmt.Sprintf("%q", t.Source)}
}
