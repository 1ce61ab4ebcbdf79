package crisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundVariable(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("y")
	require.Error(t, err)

	var unbound *UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "y", unbound.Name)

	// a failed lookup must not touch the environment
	assert.Empty(t, ctx.environment)
}

func TestNoBranchTaken(t *testing.T) {
	err := evalErr(t, "(if (> 1 2) 1)")

	var noBranch *NoBranchError
	require.ErrorAs(t, err, &noBranch)
}

func TestIfWithElseTakesElse(t *testing.T) {
	v := evalLast(t, NewContext(), "(if (> 1 2) 1 2)")
	assert.Equal(t, Number(2), v)
}

func TestLetRequiresSymbolNames(t *testing.T) {
	err := evalErr(t, "(let (5 2))")

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "a symbol", typeErr.Want)

	// same failure for a hand-built tree with an operator as the name
	_, err = NewContext().Eval(Let{{Name: Plus, Value: Number(1)}})
	require.ErrorAs(t, err, &typeErr)
}

func TestLetYieldsNil(t *testing.T) {
	results, err := NewContext().EvalString("(let (x 1) (y 2))")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0])
}

func TestLetBindingsEvaluateInOrder(t *testing.T) {
	// y's right-hand side sees the x bound one pair earlier
	v := evalLast(t, NewContext(), "(let (x 2) (y (* x x))) y")
	assert.Equal(t, Number(4), v)
}

func TestEnvironmentPersistsAcrossEvals(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("(let (double (fn (n) (* n 2))))")
	require.NoError(t, err)

	v := evalLast(t, ctx, "(double 21)")
	assert.Equal(t, Number(42), v)
}

func TestFailureKeepsCommittedBindings(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("(let (x 1)) (boom) (let (x 99))")
	require.Error(t, err)

	// the form after the failure never ran; the one before it committed
	v := evalLast(t, ctx, "x")
	assert.Equal(t, Number(1), v)
}

func TestFunctionValueIsIrreducible(t *testing.T) {
	v := evalLast(t, NewContext(), "(fn (x) x)")
	require.IsType(t, &Function{}, v)
}

func TestResidualFunctionSaturates(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("(let (add3 (fn (a b c) (+ a b c))))")
	require.NoError(t, err)

	v := evalLast(t, ctx, "(add3 1)")
	require.IsType(t, &Function{}, v)
	assert.Equal(t, "(fn (b c) (+ 1 b c))", EncodeToString(v))

	v = evalLast(t, ctx, "((add3 1) 2 3)")
	assert.Equal(t, Number(6), v)
}

func TestUnusedParameterSurvivesEveryCall(t *testing.T) {
	// y never occurs in the body, so it is never consumed and the call can
	// never saturate: each application returns another unary function.
	ctx := NewContext()
	v := evalLast(t, ctx, "(((fn (x y) (+ x x)) 1 2) 9)")
	require.IsType(t, &Function{}, v)
	assert.Equal(t, "(fn (y) (+ 1 1))", EncodeToString(v))
}

func TestApplicationDoesNotMutateFunction(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("(let (add (fn (x y) (+ x y))))")
	require.NoError(t, err)

	first := evalLast(t, ctx, "(add 1)")
	second := evalLast(t, ctx, "(add 2)")
	assert.Equal(t, "(fn (y) (+ 1 y))", EncodeToString(first))
	assert.Equal(t, "(fn (y) (+ 2 y))", EncodeToString(second))

	// the stored function still has both formals
	assert.Equal(t, "(fn (x y) (+ x y))", EncodeToString(evalLast(t, ctx, "add")))
}

func TestSaturatedChainRunsInConstantStack(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.EvalString("(let (loop (fn (n) (if (< 0 n) (loop (- n 1)) n))))")
	require.NoError(t, err)

	// a hundred thousand saturated tail calls: the trampoline must not
	// grow the native stack with the chain
	v := evalLast(t, ctx, "(loop 100000)")
	assert.Equal(t, Number(0), v)
}

func TestSubstitutionSkipsNestedFunctions(t *testing.T) {
	// the inner fn shadows x textually; substitution leaves the whole
	// nested function alone, so the outer x is never consumed
	v := evalLast(t, NewContext(), "((fn (x) (fn (x) x)) 5)")
	assert.Equal(t, "(fn (x) (fn (x) x))", EncodeToString(v))
}

func TestSubstitutionSkipsQuotes(t *testing.T) {
	// x inside the quote is literal text, so it is not consumed and the
	// call stays partial
	v := evalLast(t, NewContext(), "((fn (x) '(x)) 5)")
	assert.Equal(t, "(fn (x) '(x))", EncodeToString(v))
}
