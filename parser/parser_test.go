package parser

import (
	"testing"

	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, src string) []lexer.Token {
	t.Helper()
	statements, err := lexer.Lex(src)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	return statements[0]
}

func TestParse_Application(t *testing.T) {
	e, err := Parse(lex(t, "(\\x. x) 4"), ctx.New())
	require.NoError(t, err)
	assert.Equal(t, "((\\x. x) 4)", e.String())
}

func TestParse_ArgumentVsVariable(t *testing.T) {
	e, err := Parse(lex(t, "\\x. x y"), ctx.New())
	require.NoError(t, err)
	fn, ok := e.(*expr.Function)
	require.True(t, ok)
	app, ok := fn.Body.(*expr.Application)
	require.True(t, ok)
	assert.Equal(t, expr.KindArgument, app.Target.Kind())
	assert.Equal(t, expr.KindVariable, app.Value.Kind())
}

func TestParse_Shadowing(t *testing.T) {
	// inner x shadows outer x: both occurrences of x in the body are bound
	e, err := Parse(lex(t, "\\x. \\x. x"), ctx.New())
	require.NoError(t, err)
	outer := e.(*expr.Function)
	inner := outer.Body.(*expr.Function)
	assert.Equal(t, expr.KindArgument, inner.Body.Kind())
}

func TestParse_BinaryOperatorRightAssociative(t *testing.T) {
	e, err := Parse(lex(t, "1 + 2 + 3"), ctx.New())
	require.NoError(t, err)
	top := e.(*expr.BinaryOp)
	assert.Equal(t, "+", top.Op)
	assert.Equal(t, int64(1), top.LHS.(*expr.Integer).Value)
	rhs := top.RHS.(*expr.BinaryOp)
	assert.Equal(t, int64(2), rhs.LHS.(*expr.Integer).Value)
	assert.Equal(t, int64(3), rhs.RHS.(*expr.Integer).Value)
}

func TestParse_NegativeLiteralFoldedIntoInteger(t *testing.T) {
	e, err := Parse(lex(t, "-5"), ctx.New())
	require.NoError(t, err)
	i := e.(*expr.Integer)
	assert.Equal(t, int64(-5), i.Value)
}

func TestParse_UnaryMinusOnNonLiteral(t *testing.T) {
	e, err := Parse(lex(t, "-x"), ctx.New())
	require.NoError(t, err)
	u := e.(*expr.UnaryOp)
	assert.Equal(t, "-", u.Op)
	assert.Equal(t, expr.KindVariable, u.Arg.Kind())
}

func TestParse_MinusDoesNotStartAnApplicationArgument(t *testing.T) {
	// "f - 5" is subtraction, not f applied to -5.
	e, err := Parse(lex(t, "f - 5"), ctx.New())
	require.NoError(t, err)
	b := e.(*expr.BinaryOp)
	assert.Equal(t, "-", b.Op)
	assert.Equal(t, expr.KindVariable, b.LHS.Kind())
	assert.Equal(t, int64(5), b.RHS.(*expr.Integer).Value)
}

func TestParse_UnaryMinusOperandAllowsApplication(t *testing.T) {
	// "-f x" is -(f x), not (-f) x.
	e, err := Parse(lex(t, "-f x"), ctx.New())
	require.NoError(t, err)
	u := e.(*expr.UnaryOp)
	assert.Equal(t, "-", u.Op)
	app, ok := u.Arg.(*expr.Application)
	require.True(t, ok)
	assert.Equal(t, expr.KindVariable, app.Target.Kind())
	assert.Equal(t, expr.KindVariable, app.Value.Kind())
}

func TestParse_List(t *testing.T) {
	e, err := Parse(lex(t, "[1, 2, 3]"), ctx.New())
	require.NoError(t, err)
	l := e.(*expr.List)
	require.Len(t, l.Items, 3)
	assert.Equal(t, int64(2), l.Items[1].(*expr.Integer).Value)
}

func TestParse_EmptyList(t *testing.T) {
	e, err := Parse(lex(t, "[]"), ctx.New())
	require.NoError(t, err)
	l := e.(*expr.List)
	assert.Empty(t, l.Items)
}

func TestParse_Group(t *testing.T) {
	e, err := Parse(lex(t, "(1 + 2) 3"), ctx.New())
	require.NoError(t, err)
	app := e.(*expr.Application)
	assert.Equal(t, expr.KindBinaryOp, app.Target.Kind())
}

func TestParse_Binding(t *testing.T) {
	c := ctx.New()
	e, err := Parse(lex(t, "sq <- \\x. x * x"), c)
	require.NoError(t, err)
	assert.Nil(t, e)
	bound, ok := c.Lookup("sq")
	require.True(t, ok)
	assert.Equal(t, "(\\x. x * x)", bound.String())
}

func TestParse_RebindingIsNameError(t *testing.T) {
	c := ctx.New()
	_, err := Parse(lex(t, "a <- 1"), c)
	require.NoError(t, err)
	_, err = Parse(lex(t, "a <- 2"), c)
	require.Error(t, err)
	var nameErr *NameError
	assert.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "a", nameErr.Name)
}

func TestParse_MultiArgSugarDisabledByDefault(t *testing.T) {
	_, err := Parse(lex(t, "\\x y. x"), ctx.New())
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParse_MultiArgSugarDesugarsToNestedFunctions(t *testing.T) {
	tokens := lex(t, "\\x y. x y")
	p := New()
	p.MultiArgs = true
	p.Reset(tokens)
	e, err := parseExpression(p)
	require.NoError(t, err)
	outer := e.(*expr.Function)
	assert.Equal(t, "x", outer.Arg.Name)
	inner := outer.Body.(*expr.Function)
	assert.Equal(t, "y", inner.Arg.Name)
	assert.Equal(t, expr.KindApplication, inner.Body.Kind())
}

func TestParse_TrailingTokensIsSyntaxError(t *testing.T) {
	_, err := Parse(lex(t, "1 2, 3"), ctx.New())
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParse_UnmatchedParenIsSyntaxError(t *testing.T) {
	statements, lexErr := lexer.Lex("(1 + 2")
	require.Error(t, lexErr)
	var synErr *lexer.SyntaxError
	assert.ErrorAs(t, lexErr, &synErr)
	_ = statements
}

func TestParse_MissingOperandIsSyntaxError(t *testing.T) {
	_, err := Parse(lex(t, "1 +"), ctx.New())
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParse_ColonLexesButNeverMatchesAnOperatorTable(t *testing.T) {
	e, err := Parse(lex(t, "1 : 2"), ctx.New())
	require.NoError(t, err)
	b := e.(*expr.BinaryOp)
	assert.Equal(t, ":", b.Op)
}
