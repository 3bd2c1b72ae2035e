// Package calc evaluates arithmetic expressions over IEEE-754 doubles.
//
// A source is compiled once, which scans and parses all of it, and can then be
// evaluated any number of times:
//
//	e, err := calc.Compile("(4 - 2)**(1 * 2)")
//	if err != nil {
//		// *calc.LexError or *calc.ParseError
//	}
//	v, ok, err := e.Run()
//
// See the arith package documentation for the grammar.
package calc

import "github.com/ltungv/calc/internal/arith"

type (
	Evaluator   = arith.Evaluator
	Expr        = arith.Expr
	InputError  = arith.InputError
	LexError    = arith.LexError
	ParseError  = arith.ParseError
	EvalError   = arith.EvalError
	ExprVisitor = arith.ExprVisitor
	AstPrinter  = arith.AstPrinter
)

// Compile scans and parses source.
func Compile(source string) (*Evaluator, error) {
	return arith.Compile(source)
}

// Eval compiles source and evaluates its first statement. ok is false if the
// source holds no statement.
func Eval(source string) (v float64, ok bool, err error) {
	e, err := arith.Compile(source)
	if err != nil {
		return 0, false, err
	}
	return e.Run()
}

// Stringify formats a result, see arith.Stringify.
func Stringify(v float64) string {
	return arith.Stringify(v)
}
