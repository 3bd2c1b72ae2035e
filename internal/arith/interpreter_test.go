package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltungv/calc/internal/token"
)

func TestInterpretLiteralExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval float64
	}{
		{NewLiteralExpr(tok(token.INTEGER, "0", 0)), 0},
		{NewLiteralExpr(tok(token.INTEGER, "12345", 0)), 12345},
		{NewLiteralExpr(tok(token.INTEGER, "007", 0)), 7},
		{NewLiteralExpr(tok(token.INTEGER, "9007199254740993", 0)), 9007199254740992},
		{NewLiteralExpr(tok(token.INTEGER, "100000000000000000000", 0)), 1e20},
		{NewLiteralExpr(tok(token.FLOAT, "12.345", 0)), 12.345},
		{NewLiteralExpr(tok(token.FLOAT, "12.", 0)), 12},
		{NewLiteralExpr(tok(token.FLOAT, "0.5", 0)), 0.5},
		{NewLiteralExpr(tok(token.INFINITY, "Infinity", 0)), math.Inf(1)},
		{NewLiteralExpr(tok(token.PI, "PI", 0)), math.Pi},
		{NewLiteralExpr(tok(token.E, "E", 0)), math.E},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		v, err := NewInterpreter().Evaluate(tc.expr)
		assert.NoError(err)
		assert.Equal(tc.eval, v, tc.expr.String())
	}
}

func TestInterpretHugeLiterals(t *testing.T) {
	assert := assert.New(t)

	huge := make([]byte, 400)
	for i := range huge {
		huge[i] = '9'
	}
	v, err := NewInterpreter().Evaluate(NewLiteralExpr(tok(token.INTEGER, string(huge), 0)))
	assert.NoError(err)
	assert.True(math.IsInf(v, 1))

	v, err = NewInterpreter().Evaluate(NewLiteralExpr(tok(token.FLOAT, string(huge)+".5", 0)))
	assert.NoError(err)
	assert.True(math.IsInf(v, 1))
}

func TestInterpretNaN(t *testing.T) {
	v, err := NewInterpreter().Evaluate(NewLiteralExpr(tok(token.NAN, "NaN", 0)))
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestInterpretUnaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval float64
	}{
		{
			NewUnaryExpr(
				tok(token.SUB, "-", 0),
				NewLiteralExpr(tok(token.FLOAT, "3.14", 1))),
			-3.14,
		},
		{
			NewUnaryExpr(
				tok(token.ADD, "+", 0),
				NewLiteralExpr(tok(token.FLOAT, "3.14", 1))),
			3.14,
		},
		{
			NewUnaryExpr(
				tok(token.SUB, "-", 0),
				NewUnaryExpr(
					tok(token.SUB, "-", 1),
					NewLiteralExpr(tok(token.FLOAT, "3.14", 2)))),
			3.14,
		},
		{
			NewUnaryExpr(
				tok(token.SUB, "-", 0),
				NewLiteralExpr(tok(token.INFINITY, "Infinity", 1))),
			math.Inf(-1),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		v, err := NewInterpreter().Evaluate(tc.expr)
		assert.NoError(err)
		assert.Equal(tc.eval, v, tc.expr.String())
	}
}

func TestInterpretBinaryExpr(t *testing.T) {
	lit := func(lexeme string) Expr {
		return NewLiteralExpr(tok(token.INTEGER, lexeme, 0))
	}
	bin := func(typ token.Type, lhs, rhs Expr) Expr {
		return NewBinaryExpr(tok(typ, typ.String(), 0), lhs, rhs)
	}

	testCases := []struct {
		expr Expr
		eval float64
	}{
		{bin(token.ADD, lit("1"), lit("2")), 3},
		{bin(token.SUB, lit("1"), lit("2")), -1},
		{bin(token.MUL, lit("2"), lit("3")), 6},
		{bin(token.DIV, lit("6"), lit("4")), 1.5},
		{bin(token.DIV, lit("1"), lit("0")), math.Inf(1)},
		{bin(token.DIV, bin(token.SUB, lit("0"), lit("1")), lit("0")), math.Inf(-1)},
		{bin(token.MOD, lit("5"), lit("3")), 2},
		{bin(token.MOD, bin(token.SUB, lit("0"), lit("5")), lit("3")), -2},
		{bin(token.MOD, lit("5"), bin(token.SUB, lit("0"), lit("3"))), 2},
		{bin(token.POW, lit("2"), lit("10")), 1024},
		{bin(token.POW, lit("2"), bin(token.SUB, lit("0"), lit("1"))), 0.5},
		{bin(token.POW, lit("4"), NewLiteralExpr(tok(token.FLOAT, "0.5", 0))), 2},
		// (2 ** 3) ** 2
		{bin(token.POW, bin(token.POW, lit("2"), lit("3")), lit("2")), 64},
		// (1 - 2) - 3
		{bin(token.SUB, bin(token.SUB, lit("1"), lit("2")), lit("3")), -4},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		v, err := NewInterpreter().Evaluate(tc.expr)
		assert.NoError(err)
		assert.Equal(tc.eval, v, tc.expr.String())
	}
}

func TestInterpretNaNResults(t *testing.T) {
	lit := func(lexeme string) Expr {
		return NewLiteralExpr(tok(token.INTEGER, lexeme, 0))
	}
	testCases := []Expr{
		NewBinaryExpr(tok(token.DIV, "/", 0), lit("0"), lit("0")),
		NewBinaryExpr(tok(token.MOD, "%", 0), lit("1"), lit("0")),
		NewBinaryExpr(tok(token.ADD, "+", 0), lit("3"), NewLiteralExpr(tok(token.NAN, "NaN", 0))),
	}
	for _, expr := range testCases {
		v, err := NewInterpreter().Evaluate(expr)
		assert.NoError(t, err)
		assert.True(t, math.IsNaN(v), expr.String())
	}
}

func TestInterpretWithErrors(t *testing.T) {
	one := NewLiteralExpr(tok(token.INTEGER, "1", 0))
	testCases := []struct {
		expr Expr
		err  error
	}{
		{nil, newEvalError(nil, "Unknown AST node.")},
		{(*BinaryExpr)(nil), newEvalError(nil, "Unknown AST node.")},
		{NewUnaryExpr(tok(token.SUB, "-", 0), nil), newEvalError(nil, "Unknown AST node.")},
		{NewBinaryExpr(tok(token.ADD, "+", 2), one, nil), newEvalError(nil, "Unknown AST node.")},
		{NewBinaryExpr(tok(token.LEFT_PAREN, "(", 2), one, one), newEvalError(tok(token.LEFT_PAREN, "(", 2), "Unknown binary operator.")},
		{NewBinaryExpr(nil, one, one), newEvalError(nil, "Unknown binary operator.")},
		{NewUnaryExpr(tok(token.MUL, "*", 0), one), newEvalError(tok(token.MUL, "*", 0), "Unknown unary operator.")},
		{NewUnaryExpr(nil, one), newEvalError(nil, "Unknown unary operator.")},
		{NewLiteralExpr(tok(token.ADD, "+", 0)), newEvalError(tok(token.ADD, "+", 0), "Unknown literal.")},
		{NewLiteralExpr(tok(token.BUILTIN, "sin", 0)), newEvalError(tok(token.BUILTIN, "sin", 0), "Unknown literal.")},
		{NewLiteralExpr(nil), newEvalError(nil, "Unknown literal.")},
		{NewLiteralExpr(tok(token.INTEGER, "1x", 0)), newEvalError(tok(token.INTEGER, "1x", 0), "Invalid integer literal.")},
		{NewLiteralExpr(tok(token.FLOAT, "1.x", 0)), newEvalError(tok(token.FLOAT, "1.x", 0), "Invalid float literal.")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		v, err := NewInterpreter().Evaluate(tc.expr)
		assert.Equal(tc.err, err)
		assert.Zero(v)
	}
}

func TestInterpretLeftBeforeRight(t *testing.T) {
	bad := NewLiteralExpr(tok(token.ADD, "+", 0))
	worse := NewLiteralExpr(tok(token.MUL, "*", 1))
	_, err := NewInterpreter().Evaluate(NewBinaryExpr(tok(token.ADD, "+", 2), bad, worse))
	assert.Equal(t, newEvalError(tok(token.ADD, "+", 0), "Unknown literal."), err)
}

func TestInterpretAll(t *testing.T) {
	assert := assert.New(t)
	in := NewInterpreter()

	values, err := in.EvaluateAll([]Expr{
		NewLiteralExpr(tok(token.INTEGER, "1", 0)),
		NewLiteralExpr(tok(token.INTEGER, "2", 2)),
	})
	assert.NoError(err)
	assert.Equal([]float64{1, 2}, values)

	values, err = in.EvaluateAll(nil)
	assert.NoError(err)
	assert.Empty(values)

	values, err = in.EvaluateAll([]Expr{NewLiteralExpr(tok(token.INTEGER, "1", 0)), nil})
	assert.Error(err)
	assert.Nil(values)
}
