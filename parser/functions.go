/*
File    : lci/parser/functions.go
*/
package parser

import (
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
)

// parseFunction parses a lambda: `\x. body`, or, when MultiArgs is set,
// `\x y z. body`, desugared into nested single-parameter Functions all
// sharing the introducing lambda's token.
func parseFunction(p *ParseContext) (expr.Expression, error) {
	if err := p.expect("'\\'", lexer.LAMBDA); err != nil {
		return nil, err
	}
	lambdaTok := p.prev()

	if !p.MultiArgs {
		if err := p.expect("an argument name", lexer.VARIABLE); err != nil {
			return nil, err
		}
		argTok := p.prev()
		arg := &expr.Argument{Token: argTok, Name: argTok.Source}

		if err := p.expect("'.'", lexer.DOT); err != nil {
			return nil, err
		}
		p.pushArg(arg.Name)
		body, err := parseExpression(p)
		p.popArg()
		if err != nil {
			return nil, err
		}
		return &expr.Function{Token: lambdaTok, Arg: arg, Body: body}, nil
	}

	if err := p.expect("an argument name", lexer.VARIABLE); err != nil {
		return nil, err
	}
	firstTok := p.prev()
	args := []*expr.Argument{{Token: firstTok, Name: firstTok.Source}}
	for p.accept(lexer.VARIABLE) {
		tok := p.prev()
		args = append(args, &expr.Argument{Token: tok, Name: tok.Source})
	}
	if err := p.expect("'.'", lexer.DOT); err != nil {
		return nil, err
	}

	for _, a := range args {
		p.pushArg(a.Name)
	}
	body, err := parseExpression(p)
	for range args {
		p.popArg()
	}
	if err != nil {
		return nil, err
	}

	fn := &expr.Function{Token: lambdaTok, Arg: args[len(args)-1], Body: body}
	for i := len(args) - 2; i >= 0; i-- {
		fn = &expr.Function{Token: lambdaTok, Arg: args[i], Body: fn}
	}
	return fn, nil
}
