/*
File    : lci/eval/substitute.go
*/
package eval

import "github.com/lci-lang/lci/expr"

// Substitute replaces every free occurrence of old (an Argument name) with
// new throughout e. A Function whose own parameter shadows old stops the
// substitution at its boundary rather than renaming anything — this
// reducer is capture-permissive, matching the language's lexical-shadowing
// semantics rather than alpha-converting bound names out of the way.
func Substitute(e expr.Expression, old string, new expr.Expression) expr.Expression {
	switch v := e.(type) {
	case *expr.Argument:
		if v.Name == old {
			return new
		}
		return v

	case *expr.UnaryOp:
		return &expr.UnaryOp{Token: v.Token, Op: v.Op, Arg: Substitute(v.Arg, old, new)}

	case *expr.BinaryOp:
		return &expr.BinaryOp{
			Token: v.Token,
			Op:    v.Op,
			LHS:   Substitute(v.LHS, old, new),
			RHS:   Substitute(v.RHS, old, new),
		}

	case *expr.Function:
		if v.Arg.Name == old {
			return v
		}
		return &expr.Function{Token: v.Token, Arg: v.Arg, Body: Substitute(v.Body, old, new)}

	case *expr.Application:
		return &expr.Application{
			Token:  v.Token,
			Target: Substitute(v.Target, old, new),
			Value:  Substitute(v.Value, old, new),
		}

	case *expr.List:
		items := make([]expr.Expression, len(v.Items))
		for i, item := range v.Items {
			items[i] = Substitute(item, old, new)
		}
		return &expr.List{Token: v.Token, Items: items}

	default:
		// Integer, Variable, Constant carry no Argument occurrences.
		return e
	}
}
