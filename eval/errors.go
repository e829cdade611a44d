/*
File    : lci/eval/errors.go
*/
package eval

import "fmt"

// NameError reports a free variable encountered during reduction with
// ForceEval set.
type NameError struct {
	Line, Col int
	Symbol    string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%d:%d: free variable %q encountered", e.Line, e.Col, e.Symbol)
}

// TypeError reports an operator applied to operands with no matching table
// entry, under ForceEval.
type TypeError struct {
	Line, Col int
	Message   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// ValueError reports an Application whose reduced target is not a Function,
// under ForceEval.
type ValueError struct {
	Line, Col int
	Message   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}
