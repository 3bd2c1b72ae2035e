package arith

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ltungv/calc/internal/token"
)

// Interpreter exposes methods for evaluating syntax trees with IEEE-754
// double precision arithmetic. This struct implements ExprVisitor. It holds no
// state, so a single interpreter can evaluate any number of trees.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Evaluate computes the value of the given tree. Trees built by the parser
// always evaluate, errors come from hand-built trees holding an unknown node,
// operator, or literal.
func (in *Interpreter) Evaluate(expr Expr) (float64, error) {
	return in.eval(expr)
}

// EvaluateAll evaluates every statement in order and stops at the first
// error.
func (in *Interpreter) EvaluateAll(statements []Expr) ([]float64, error) {
	values := make([]float64, 0, len(statements))
	for _, stmt := range statements {
		v, err := in.eval(stmt)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	if expr.Op == nil {
		return nil, newEvalError(nil, "Unknown binary operator.")
	}
	switch expr.Op.Typ {
	case token.ADD:
		return lhs + rhs, nil
	case token.SUB:
		return lhs - rhs, nil
	case token.MUL:
		return lhs * rhs, nil
	case token.DIV:
		return lhs / rhs, nil
	case token.MOD:
		return math.Mod(lhs, rhs), nil
	case token.POW:
		return math.Pow(lhs, rhs), nil
	}
	return nil, newEvalError(expr.Op, "Unknown binary operator.")
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	operand, err := in.eval(expr.Operand)
	if err != nil {
		return nil, err
	}

	if expr.Op == nil {
		return nil, newEvalError(nil, "Unknown unary operator.")
	}
	switch expr.Op.Typ {
	case token.ADD:
		return operand, nil
	case token.SUB:
		return -operand, nil
	}
	return nil, newEvalError(expr.Op, "Unknown unary operator.")
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	tok := expr.Value
	if tok == nil {
		return nil, newEvalError(nil, "Unknown literal.")
	}
	switch tok.Typ {
	case token.INTEGER:
		return parseInteger(tok)
	case token.FLOAT:
		return parseFloat(tok)
	case token.NAN:
		return math.NaN(), nil
	case token.INFINITY:
		return math.Inf(1), nil
	case token.PI:
		return math.Pi, nil
	case token.E:
		return math.E, nil
	}
	return nil, newEvalError(tok, "Unknown literal.")
}

func (in *Interpreter) eval(expr Expr) (float64, error) {
	if isNilExpr(expr) {
		return 0, newEvalError(nil, "Unknown AST node.")
	}
	v, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// parseInteger reads a base-10 integer of any length and rounds it to the
// nearest float64.
func parseInteger(tok *token.Token) (float64, error) {
	i, ok := new(big.Int).SetString(tok.Lexeme, 10)
	if !ok {
		return 0, newEvalError(tok, "Invalid integer literal.")
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f, nil
}

// parseFloat reads a float literal. The scanner accepts a trailing dot, as in
// "12.", which reads as the integer before it.
func parseFloat(tok *token.Token) (float64, error) {
	lexeme := strings.TrimSuffix(tok.Lexeme, ".")
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// ParseFloat still returns ±Inf for values out of range
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, newEvalError(tok, "Invalid float literal.")
	}
	return f, nil
}
