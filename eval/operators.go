/*
File    : lci/eval/operators.go
*/
package eval

import (
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
)

type unaryFunc func(tok lexer.Token, arg *expr.Integer) expr.Expression

type binaryFunc func(tok lexer.Token, lhs, rhs *expr.Integer) expr.Expression

// unaryTable holds the sole unary operator: arithmetic negation over
// Integer. A new unary operator gains an entry here and nowhere else.
var unaryTable = map[string]unaryFunc{
	"-": func(tok lexer.Token, arg *expr.Integer) expr.Expression {
		return &expr.Integer{Token: tok, Value: -arg.Value}
	},
}

// binaryTable holds the four arithmetic operators over Integer x Integer.
// ':' is deliberately absent: it lexes and parses but never reduces,
// per the language's reserved-for-future-list-cons status.
var binaryTable = map[string]binaryFunc{
	"+": func(tok lexer.Token, lhs, rhs *expr.Integer) expr.Expression {
		return &expr.Integer{Token: tok, Value: lhs.Value + rhs.Value}
	},
	"-": func(tok lexer.Token, lhs, rhs *expr.Integer) expr.Expression {
		return &expr.Integer{Token: tok, Value: lhs.Value - rhs.Value}
	},
	"*": func(tok lexer.Token, lhs, rhs *expr.Integer) expr.Expression {
		return &expr.Integer{Token: tok, Value: lhs.Value * rhs.Value}
	},
	"/": func(tok lexer.Token, lhs, rhs *expr.Integer) expr.Expression {
		return &expr.Integer{Token: tok, Value: floorDiv(lhs.Value, rhs.Value)}
	},
}

// floorDiv divides rounding toward negative infinity, unlike Go's native
// '/' which truncates toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

func lookupUnary(op string, arg expr.Expression) (unaryFunc, bool) {
	f, ok := unaryTable[op]
	if !ok {
		return nil, false
	}
	if _, isInt := arg.(*expr.Integer); !isInt {
		return nil, false
	}
	return f, true
}

func lookupBinary(op string, lhs, rhs expr.Expression) (binaryFunc, bool) {
	f, ok := binaryTable[op]
	if !ok {
		return nil, false
	}
	_, lhsInt := lhs.(*expr.Integer)
	_, rhsInt := rhs.(*expr.Integer)
	if !lhsInt || !rhsInt {
		return nil, false
	}
	return f, true
}
