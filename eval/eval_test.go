package eval

import (
	"testing"

	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/lexer"
	"github.com/lci-lang/lci/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string, c *ctx.EvalContext) expr.Expression {
	t.Helper()
	statements, err := lexer.Lex(src)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	e, err := parser.Parse(statements[0], c)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e
}

// bindOne parses a single `name <- expr` statement into c.
func bindOne(t *testing.T, src string, c *ctx.EvalContext) {
	t.Helper()
	statements, err := lexer.Lex(src)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	e, err := parser.Parse(statements[0], c)
	require.NoError(t, err)
	require.Nil(t, e)
}

func fullyEvaluate(t *testing.T, src string, c *ctx.EvalContext) expr.Expression {
	t.Helper()
	e := parseOne(t, src, c)
	result, err := Evaluate(e, c)
	require.NoError(t, err)
	return result
}

func TestEvaluate_BetaReduction(t *testing.T) {
	c := ctx.New()
	result := fullyEvaluate(t, "(\\x. x + 1) 4", c)
	assert.Equal(t, "5", result.String())
}

func TestEvaluate_FloorDivision(t *testing.T) {
	c := ctx.New()
	result := fullyEvaluate(t, "-7 / 2", c)
	assert.Equal(t, int64(-4), result.(*expr.Integer).Value)

	result = fullyEvaluate(t, "7 / 2", c)
	assert.Equal(t, int64(3), result.(*expr.Integer).Value)

	result = fullyEvaluate(t, "-7 / -2", c)
	assert.Equal(t, int64(3), result.(*expr.Integer).Value)
}

func TestEvaluate_Shadowing(t *testing.T) {
	c := ctx.New()
	// the inner \x shadows the outer one: applying the whole thing to 9
	// must still produce 9, the inner identity, not the outer substitution.
	result := fullyEvaluate(t, "(\\x. \\x. x) 1 9", c)
	assert.Equal(t, "9", result.String())
}

func TestEvaluate_TopLevelBindingExpansion(t *testing.T) {
	c := ctx.New()
	bindOne(t, "sq <- \\x. x * x", c)
	result := fullyEvaluate(t, "sq 6", c)
	assert.Equal(t, "36", result.String())
}

func TestEvaluate_FreeVariableRaisesUnderForceEval(t *testing.T) {
	c := ctx.New()
	e := parseOne(t, "y", c)
	_, err := Evaluate(e, c)
	require.Error(t, err)
	var nameErr *NameError
	assert.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "y", nameErr.Symbol)
}

func TestEvaluate_FreeVariableIdentityWithoutForceEval(t *testing.T) {
	c := ctx.New()
	c.ForceEval = false
	e := parseOne(t, "y", c)
	result, err := Evaluate(e, c)
	require.NoError(t, err)
	assert.Equal(t, "y", result.String())
}

func TestEvaluate_UnsupportedOperatorIsTypeError(t *testing.T) {
	c := ctx.New()
	e := parseOne(t, "(\\x. x) + 1", c)
	_, err := Evaluate(e, c)
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestEvaluate_ApplyingNonFunctionIsValueError(t *testing.T) {
	c := ctx.New()
	e := parseOne(t, "1 2", c)
	_, err := Evaluate(e, c)
	require.Error(t, err)
	var valErr *ValueError
	assert.ErrorAs(t, err, &valErr)
}

func TestEvaluate_EvalOpsFalseSkipsOperatorDispatch(t *testing.T) {
	c := ctx.New()
	c.EvalOps = false
	result := fullyEvaluate(t, "1 + 2", c)
	assert.Equal(t, "1 + 2", result.String())
}

func TestEvaluate_SingleStepMonotonicity(t *testing.T) {
	c := ctx.New()
	c.EvalStep = true
	e := parseOne(t, "(\\x. x + 1) (2 + 2)", c)

	step1, err := Evaluate(e, c)
	require.NoError(t, err)
	assert.NotEqual(t, e.String(), step1.String())

	step2, err := Evaluate(step1, c)
	require.NoError(t, err)

	c.EvalStep = false
	final, err := Evaluate(step2, c)
	require.NoError(t, err)
	assert.Equal(t, "5", final.String())
}

func TestIsAtomic_Fixpoint(t *testing.T) {
	c := ctx.New()
	result := fullyEvaluate(t, "(\\x. x) 4", c)
	assert.True(t, IsAtomic(result, c))
}

func TestIsAtomic_BoundVariableIsNotAtomic(t *testing.T) {
	c := ctx.New()
	bindOne(t, "a <- 1", c)
	e := parseOne(t, "a", c)
	assert.False(t, IsAtomic(e, c))
}

func TestEvaluate_ListEachElementReduced(t *testing.T) {
	c := ctx.New()
	result := fullyEvaluate(t, "[1 + 1, 2 + 2]", c)
	assert.Equal(t, "[2,4]", result.String())
}

func TestEvaluate_OperatorClosureOverIntegers(t *testing.T) {
	c := ctx.New()
	result := fullyEvaluate(t, "(1 + 2) * (3 - 1)", c)
	assert.Equal(t, int64(6), result.(*expr.Integer).Value)
}

func TestEvaluate_BindingIsolationAcrossContexts(t *testing.T) {
	c1 := ctx.New()
	c2 := ctx.New()
	bindOne(t, "a <- 1", c1)
	_, ok := c2.Lookup("a")
	assert.False(t, ok)
}

func TestEvaluate_UnaryNegationOnVariableTarget(t *testing.T) {
	c := ctx.New()
	bindOne(t, "a <- 3", c)
	result := fullyEvaluate(t, "-a", c)
	assert.Equal(t, int64(-3), result.(*expr.Integer).Value)
}
