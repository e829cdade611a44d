/*
File    : lci/parser/expressions.go
*/
package parser

import (
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
)

// unitStarters are the token types that can begin a parse unit; juxtaposed
// application keeps consuming arguments as long as one of these is next.
var unitStarters = []lexer.TokenType{
	lexer.LAMBDA, lexer.VARIABLE, lexer.CONSTANT,
	lexer.INT, lexer.LPAREN, lexer.LSQUARE,
}

// parseExpression parses a single right-associative tier of binary
// operators over units-with-application: `unit (op expression)?`.
func parseExpression(p *ParseContext) (expr.Expression, error) {
	lhs, err := parseUnit(p, true)
	if err != nil {
		return nil, err
	}
	if p.eof() || p.check(lexer.RPAREN, lexer.COMMA, lexer.RSQUARE) {
		return lhs, nil
	}
	opTok, opStr, err := parseBinaryOperator(p)
	if err != nil {
		return nil, err
	}
	rhs, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	return &expr.BinaryOp{Token: opTok, Op: opStr, LHS: lhs, RHS: rhs}, nil
}

// parseBinaryOperator consumes one of the arithmetic/cons operators.
func parseBinaryOperator(p *ParseContext) (lexer.Token, string, error) {
	if err := p.expect("an operator", lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.COLON); err != nil {
		return lexer.Token{}, "", err
	}
	op := p.prev()
	return op, op.Source, nil
}

// parseUnit parses a single atom (variable, argument, constant, integer,
// grouped expression, list, or lambda) and, when allowApplication is true,
// keeps folding juxtaposed units into a left-associative Application chain.
func parseUnit(p *ParseContext, allowApplication bool) (expr.Expression, error) {
	e, err := parseAtom(p)
	if err != nil {
		return nil, err
	}
	if !allowApplication {
		return e, nil
	}
	for p.check(unitStarters...) {
		arg, err := parseUnit(p, false)
		if err != nil {
			return nil, err
		}
		e = expr.ApplyArgument(e, arg)
	}
	return e, nil
}

func parseAtom(p *ParseContext) (expr.Expression, error) {
	switch {
	case p.check(lexer.LAMBDA):
		return parseFunction(p)

	case p.accept(lexer.VARIABLE):
		tok := p.prev()
		if p.isArg(tok.Source) {
			return &expr.Argument{Token: tok, Name: tok.Source}, nil
		}
		return &expr.Variable{Token: tok, Name: tok.Source}, nil

	case p.accept(lexer.CONSTANT):
		tok := p.prev()
		return &expr.Constant{Token: tok, Name: tok.Source}, nil

	case p.accept(lexer.MINUS):
		minusTok := p.prev()
		if p.accept(lexer.INT) {
			intTok := p.prev()
			return &expr.Integer{Token: intTok, Value: -parseIntLiteral(intTok.Source)}, nil
		}
		arg, err := parseUnit(p, true)
		if err != nil {
			return nil, err
		}
		return &expr.UnaryOp{Token: minusTok, Op: minusTok.Source, Arg: arg}, nil

	case p.accept(lexer.INT):
		tok := p.prev()
		return &expr.Integer{Token: tok, Value: parseIntLiteral(tok.Source)}, nil

	case p.check(lexer.LPAREN):
		return parseGroup(p)

	case p.check(lexer.LSQUARE):
		return parseList(p)

	default:
		return nil, p.expect("'\\', a variable, a constant, an integer, '(' or '['", lexer.ILLEGAL)
	}
}

func parseIntLiteral(src string) int64 {
	var v int64
	for i := 0; i < len(src); i++ {
		v = v*10 + int64(src[i]-'0')
	}
	return v
}
