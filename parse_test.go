package crisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) Expr {
	exprs, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	return exprs[0]
}

func TestParseAtoms(t *testing.T) {
	cases := []struct {
		src      string
		expected Expr
	}{
		{"42", Number(42)},
		{"-42", Number(-42)},
		{"hello", Symbol("hello")},
		{"T", Symbol("T")},
		{"+", Plus},
		{"-", Minus},
		{"!=", NotEqual},
		{"<=", LessEqual},
		{"and", And},
		{"()", nil},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			assert.True(t, equal(c.expected, parseOne(t, c.src)))
		})
	}
}

func TestParseForms(t *testing.T) {
	cases := []struct {
		name, src string
		expected  Expr
	}{
		{
			"call",
			"(+ 1 2)",
			&Call{Head: Plus, Args: []Expr{Number(1), Number(2)}},
		},
		{
			"nested-call",
			"(f (g 1))",
			&Call{Head: Symbol("f"), Args: []Expr{&Call{Head: Symbol("g"), Args: []Expr{Number(1)}}}},
		},
		{
			"if",
			"(if 1 2)",
			&If{Pred: Number(1), Then: Number(2)},
		},
		{
			"if-else",
			"(if 1 2 3)",
			&If{Pred: Number(1), Then: Number(2), Otherwise: Number(3)},
		},
		{
			"let",
			"(let (x 1) (y 2))",
			Let{{Name: Symbol("x"), Value: Number(1)}, {Name: Symbol("y"), Value: Number(2)}},
		},
		{
			"let-empty",
			"(let)",
			Let(nil),
		},
		{
			"fn",
			"(fn (x y) (+ x y))",
			&Function{
				Params: []Expr{Symbol("x"), Symbol("y")},
				Body:   &Call{Head: Plus, Args: []Expr{Symbol("x"), Symbol("y")}},
			},
		},
		{
			"quote",
			"'(1 two (+ 3))",
			Quote{Number(1), Symbol("two"), &Call{Head: Plus, Args: []Expr{Number(3)}}},
		},
		{
			"quote-empty",
			"'()",
			Quote{},
		},
		{
			"empty-call-head",
			"(())",
			&Call{Head: nil},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, equal(c.expected, parseOne(t, c.src)), EncodeToString(parseOne(t, c.src)))
		})
	}
}

func TestParseTopLevelSequence(t *testing.T) {
	exprs, err := ParseString("(let (x 1)) x ; trailing comment\n42")
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.True(t, equal(Symbol("x"), exprs[1]))
	assert.True(t, equal(Number(42), exprs[2]))
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		")",
		"(if 1)",
		"(fn (5) 1)",
		"(fn x 1)",
		"(let x)",
		"'5",
		"99999999999",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := ParseString(src)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("\n  )")

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.Line)
	assert.Equal(t, 3, syntaxErr.Col)
}

func TestRoundTripPrinting(t *testing.T) {
	for _, src := range []string{
		"(+ 1 2)",
		"(if (< 1 2) 1 2)",
		"(let (x 1))",
		"(fn (x y) (+ x y))",
		"'(1 2 3)",
		"()",
	} {
		t.Run(src, func(t *testing.T) {
			assert.Equal(t, src, EncodeToString(parseOne(t, src)))
		})
	}
}
