/*
File    : lci/expr/print.go
*/
package expr

import (
	"strconv"
	"strings"
)

// bracketed renders e, wrapping it in parentheses unless it is already an
// atom (Variable, Argument, non-negative Integer, List) or a Function or
// Application, whose own rendering is already parenthesized. The test is
// always against e.Kind() (and, for Integer, its sign) — never against the
// first byte of the rendered string, per the reducer's printing contract.
func bracketed(e Expression) string {
	s := e.String()

	switch e.Kind() {
	case KindVariable, KindArgument, KindList, KindConstant:
		return s
	case KindFunction, KindApplication:
		return s
	case KindInteger:
		if e.(*Integer).Value >= 0 {
			return s
		}
	}

	return "(" + s + ")"
}

func (i *Integer) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (v *Variable) String() string {
	return v.Name
}

func (a *Argument) String() string {
	return a.Name
}

func (f *Function) String() string {
	return "(\\" + f.Arg.String() + ". " + f.Body.String() + ")"
}

func (a *Application) String() string {
	return "(" + bracketed(a.Target) + " " + bracketed(a.Value) + ")"
}

func (u *UnaryOp) String() string {
	return u.Op + bracketed(u.Arg)
}

func (b *BinaryOp) String() string {
	return bracketed(b.LHS) + " " + b.Op + " " + bracketed(b.RHS)
}

func (l *List) String() string {
	var parts []string
	for _, item := range l.Items {
		parts = append(parts, item.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (c *Constant) String() string {
	return c.Name
}
