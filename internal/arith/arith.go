package arith

import (
	"math"
	"strconv"
)

// Evaluator holds a compiled source: its tokens and its parsed statements.
// Only evaluation is left to do once an Evaluator exists.
type Evaluator struct {
	scanner     *Scanner
	parser      *Parser
	interpreter *Interpreter
}

// Compile scans and parses the whole source. The error is a *LexError or a
// *ParseError, in which case no Evaluator is returned.
func Compile(source string) (*Evaluator, error) {
	scanner, err := NewScanner(source)
	if err != nil {
		return nil, err
	}
	parser, err := NewParser(scanner.Tokens())
	if err != nil {
		return nil, err
	}
	return &Evaluator{scanner, parser, NewInterpreter()}, nil
}

// Run evaluates the first statement of the source. It returns false, and no
// error, if the source holds no statement.
func (e *Evaluator) Run() (float64, bool, error) {
	statements := e.parser.statements
	if len(statements) == 0 {
		return 0, false, nil
	}
	v, err := e.interpreter.Evaluate(statements[0])
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// RunAll evaluates every statement of the source in order.
func (e *Evaluator) RunAll() ([]float64, error) {
	return e.interpreter.EvaluateAll(e.parser.statements)
}

// Next returns the next statement from the parser's cursor, see Parser.Next.
func (e *Evaluator) Next() (Expr, bool) {
	return e.parser.Next()
}

// Statements returns all the parsed statements.
func (e *Evaluator) Statements() []Expr {
	return e.parser.Statements()
}

// Scanner returns the scanner holding the source's tokens.
func (e *Evaluator) Scanner() *Scanner {
	return e.scanner
}

// Stringify formats a value so that the scanner reads it back: NaN,
// Infinity, and the shortest decimal representation otherwise.
func Stringify(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
