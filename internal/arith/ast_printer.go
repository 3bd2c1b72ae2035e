package arith

import (
	"strings"

	"github.com/ltungv/calc/internal/token"
)

// AstPrinter renders a syntax tree in its canonical S-expression form: a
// literal is its lexeme, an operator node is "(op child...)".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	if isNilExpr(expr) {
		return ""
	}
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(lexeme(expr.Op), expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return lexeme(expr.Value), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(lexeme(expr.Op), expr.Operand), nil
}

// lexeme renders a missing token as nothing.
func lexeme(tok *token.Token) string {
	if tok == nil {
		return ""
	}
	return tok.Lexeme
}

// parenthesize skips missing children, which only hand-built trees have.
func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, expr := range exprs {
		if isNilExpr(expr) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(printer.Print(expr))
	}
	b.WriteByte(')')
	return b.String()
}

func (expr *BinaryExpr) String() string {
	return new(AstPrinter).Print(expr)
}

func (expr *LiteralExpr) String() string {
	return new(AstPrinter).Print(expr)
}

func (expr *UnaryExpr) String() string {
	return new(AstPrinter).Print(expr)
}

// isNilExpr reports whether expr is a nil interface or a typed nil node.
func isNilExpr(expr Expr) bool {
	return expr == nil || expr.isNil()
}
