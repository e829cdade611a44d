/*
File    : lci/parser/collections.go
*/
package parser

import (
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
)

// parseGroup parses a parenthesized expression: `( expr )`.
func parseGroup(p *ParseContext) (expr.Expression, error) {
	if err := p.expect("'('", lexer.LPAREN); err != nil {
		return nil, err
	}
	e, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if err := p.expect("')'", lexer.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

// parseList parses a bracketed, comma-separated list: `[ ]` or
// `[ expr (, expr)* ]`.
func parseList(p *ParseContext) (expr.Expression, error) {
	if err := p.expect("'['", lexer.LSQUARE); err != nil {
		return nil, err
	}
	tok := p.prev()

	if p.accept(lexer.RSQUARE) {
		return &expr.List{Token: tok, Items: nil}, nil
	}

	var items []expr.Expression
	for {
		item, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	if err := p.expect("']' or ','", lexer.RSQUARE); err != nil {
		return nil, err
	}
	return &expr.List{Token: tok, Items: items}, nil
}
