/*
File    : lci/ctx/context.go
*/

// Package ctx holds the mutable state threaded through parsing and
// evaluation: the top-level binding environment and the three reduction
// flags. It is the only mutable cell in the language — there is no nested
// lexical scope chain, since lambda parameters are resolved by substitution
// rather than environment lookup.
package ctx

import (
	"fmt"

	"github.com/lci-lang/lci/expr"
)

// EvalContext carries the top-level binding environment plus the flags that
// govern how a reducer call behaves.
type EvalContext struct {
	// Bound maps a top-level name to the expression it was bound to.
	// Mutated only by processing a `name <- expr` statement.
	Bound map[string]expr.Expression

	// EvalOps enables arithmetic/operator reduction. Default true.
	EvalOps bool

	// EvalStep, when true, makes each Evaluate call perform exactly one
	// reduction step. Default false (fully reduce).
	EvalStep bool

	// ForceEval, when true, makes unreducible nodes (free variable,
	// unsupported operator, non-function application) raise an error
	// instead of being returned unchanged. Default true.
	ForceEval bool
}

// New creates an EvalContext with the language's default flags:
// eval_ops=true, eval_step=false, force_eval=true.
func New() *EvalContext {
	return &EvalContext{
		Bound:     make(map[string]expr.Expression),
		EvalOps:   true,
		EvalStep:  false,
		ForceEval: true,
	}
}

// BindError reports an attempt to rebind an already-bound top-level name.
type BindError struct {
	Name string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("attempted assignment to bound name %q", e.Name)
}

// Bind inserts name -> value into the environment. Rebinding an existing
// name is forbidden: bindings are one-shot.
func (c *EvalContext) Bind(name string, value expr.Expression) error {
	if _, exists := c.Bound[name]; exists {
		return &BindError{Name: name}
	}
	c.Bound[name] = value
	return nil
}

// Lookup returns the expression bound to name, if any.
func (c *EvalContext) Lookup(name string) (expr.Expression, bool) {
	v, ok := c.Bound[name]
	return v, ok
}
