/*
File    : lci/eval/evaluator.go
*/

// Package eval implements IsAtomic/Evaluate, the reducer's two-operation
// contract over every expr.Expression variant. Reduction is applicative
// order with capture-permissive substitution: a Function is never entered
// until it is applied, and applying it substitutes the argument directly
// into the body without renaming any shadowing parameter out of the way.
package eval

import (
	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/expr"
)

// IsAtomic reports whether e has no further reduction available under c.
// A bound Variable is never atomic, since it can always expand; a Function
// and a literal are always atomic, since the reducer never looks inside a
// lambda body on its own.
func IsAtomic(e expr.Expression, c *ctx.EvalContext) bool {
	switch v := e.(type) {
	case *expr.Integer, *expr.Argument, *expr.Function, *expr.Constant:
		return true

	case *expr.Variable:
		_, bound := c.Lookup(v.Name)
		return !bound

	case *expr.List:
		for _, item := range v.Items {
			if !IsAtomic(item, c) {
				return false
			}
		}
		return true

	case *expr.UnaryOp:
		if !IsAtomic(v.Arg, c) {
			return false
		}
		_, ok := lookupUnary(v.Op, v.Arg)
		return !ok

	case *expr.BinaryOp:
		if !IsAtomic(v.LHS, c) || !IsAtomic(v.RHS, c) {
			return false
		}
		_, ok := lookupBinary(v.Op, v.LHS, v.RHS)
		return !ok

	case *expr.Application:
		if !IsAtomic(v.Target, c) || !IsAtomic(v.Value, c) {
			return false
		}
		_, isFunction := v.Target.(*expr.Function)
		return !isFunction
	}

	return true
}

// reduceChild evaluates e unless it is atomic and not a Variable: a bound
// Variable is atomic==false already, but a *free* Variable is atomic==true
// and still must be routed through Evaluate so ForceEval's free-variable
// check fires. Used by UnaryOp and BinaryOp; evaluateList applies the same
// rule inline.
//
// The second return reports whether Evaluate was actually invoked, which
// EvalStep needs to decide whether this child's reduction consumed the
// single step — independent of whether the result differs from e.
func reduceChild(e expr.Expression, c *ctx.EvalContext) (expr.Expression, bool, error) {
	if _, isVar := e.(*expr.Variable); !isVar && IsAtomic(e, c) {
		return e, false, nil
	}
	reduced, err := Evaluate(e, c)
	return reduced, true, err
}

// Evaluate reduces e by one step (EvalStep true) or to a fixed point
// (EvalStep false), per variant.
func Evaluate(e expr.Expression, c *ctx.EvalContext) (expr.Expression, error) {
	switch v := e.(type) {
	case *expr.Integer, *expr.Argument, *expr.Function, *expr.Constant:
		return e, nil

	case *expr.Variable:
		return evaluateVariable(v, c)

	case *expr.List:
		return evaluateList(v, c)

	case *expr.UnaryOp:
		return evaluateUnaryOp(v, c)

	case *expr.BinaryOp:
		return evaluateBinaryOp(v, c)

	case *expr.Application:
		return evaluateApplication(v, c)
	}

	return e, nil
}

func evaluateVariable(v *expr.Variable, c *ctx.EvalContext) (expr.Expression, error) {
	if value, bound := c.Lookup(v.Name); bound {
		if c.EvalStep {
			return value, nil
		}
		return Evaluate(value, c)
	}

	if c.ForceEval {
		return nil, &NameError{Line: v.Token.Line, Col: v.Token.Col, Symbol: v.Name}
	}
	return v, nil
}

func evaluateList(v *expr.List, c *ctx.EvalContext) (expr.Expression, error) {
	evaluated := make([]expr.Expression, len(v.Items))
	copy(evaluated, v.Items)

	for i, item := range v.Items {
		if _, isVar := item.(*expr.Variable); !isVar && IsAtomic(item, c) {
			continue
		}
		reduced, err := Evaluate(item, c)
		if err != nil {
			return nil, err
		}
		evaluated[i] = reduced

		if c.EvalStep {
			break
		}
	}

	return &expr.List{Token: v.Token, Items: evaluated}, nil
}

func evaluateUnaryOp(v *expr.UnaryOp, c *ctx.EvalContext) (expr.Expression, error) {
	newArg, reduced, err := reduceChild(v.Arg, c)
	if err != nil {
		return nil, err
	}
	if reduced && c.EvalStep {
		return &expr.UnaryOp{Token: v.Token, Op: v.Op, Arg: newArg}, nil
	}

	if !c.EvalOps {
		return &expr.UnaryOp{Token: v.Token, Op: v.Op, Arg: newArg}, nil
	}

	if fn, ok := lookupUnary(v.Op, newArg); ok {
		return fn(v.Token, newArg.(*expr.Integer)), nil
	}

	if c.ForceEval {
		return nil, &TypeError{
			Line: v.Token.Line, Col: v.Token.Col,
			Message: "unsupported argument for operator " + quote(v.Op) + ": " + newArg.String(),
		}
	}
	return &expr.UnaryOp{Token: v.Token, Op: v.Op, Arg: newArg}, nil
}

func evaluateBinaryOp(v *expr.BinaryOp, c *ctx.EvalContext) (expr.Expression, error) {
	newLHS, reducedLHS, err := reduceChild(v.LHS, c)
	if err != nil {
		return nil, err
	}
	if reducedLHS && c.EvalStep {
		return &expr.BinaryOp{Token: v.Token, Op: v.Op, LHS: newLHS, RHS: v.RHS}, nil
	}

	newRHS, reducedRHS, err := reduceChild(v.RHS, c)
	if err != nil {
		return nil, err
	}
	if reducedRHS && c.EvalStep {
		return &expr.BinaryOp{Token: v.Token, Op: v.Op, LHS: newLHS, RHS: newRHS}, nil
	}

	if !c.EvalOps {
		return &expr.BinaryOp{Token: v.Token, Op: v.Op, LHS: newLHS, RHS: newRHS}, nil
	}

	if fn, ok := lookupBinary(v.Op, newLHS, newRHS); ok {
		return fn(v.Token, newLHS.(*expr.Integer), newRHS.(*expr.Integer)), nil
	}

	if c.ForceEval {
		return nil, &TypeError{
			Line: v.Token.Line, Col: v.Token.Col,
			Message: "unsupported arguments for operator " + quote(v.Op) + ": " +
				newLHS.String() + " " + v.Op + " " + newRHS.String(),
		}
	}
	return &expr.BinaryOp{Token: v.Token, Op: v.Op, LHS: newLHS, RHS: newRHS}, nil
}

func evaluateApplication(v *expr.Application, c *ctx.EvalContext) (expr.Expression, error) {
	var newTarget expr.Expression
	if IsAtomic(v.Target, c) {
		newTarget = v.Target
	} else {
		reduced, err := Evaluate(v.Target, c)
		if err != nil {
			return nil, err
		}
		newTarget = reduced
		if c.EvalStep {
			return &expr.Application{Token: v.Token, Target: newTarget, Value: v.Value}, nil
		}
	}

	var newValue expr.Expression
	if IsAtomic(v.Value, c) {
		newValue = v.Value
	} else {
		reduced, err := Evaluate(v.Value, c)
		if err != nil {
			return nil, err
		}
		newValue = reduced
		if c.EvalStep {
			return &expr.Application{Token: v.Token, Target: newTarget, Value: newValue}, nil
		}
	}

	if fn, ok := newTarget.(*expr.Function); ok {
		result := Substitute(fn.Body, fn.Arg.Name, newValue)
		if c.EvalStep {
			return result, nil
		}
		return Evaluate(result, c)
	}

	if c.ForceEval {
		return nil, &ValueError{
			Line: v.Token.Line, Col: v.Token.Col,
			Message: newTarget.String() + " is not applicable (attempted to apply " + newValue.String() + ")",
		}
	}
	return &expr.Application{Token: v.Token, Target: newTarget, Value: newValue}, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
