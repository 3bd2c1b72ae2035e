package main

import (
	"fmt"
	"os"

	"github.com/ltungv/calc/internal/arith"
	"github.com/ltungv/calc/internal/token"
)

// demo is "-123 * (45.67)" built by hand.
func demo() arith.Expr {
	return arith.NewBinaryExpr(
		token.NewToken(token.MUL, "*", 5),
		arith.NewUnaryExpr(
			token.NewToken(token.SUB, "-", 0),
			arith.NewLiteralExpr(token.NewToken(token.INTEGER, "123", 1)),
		),
		arith.NewLiteralExpr(token.NewToken(token.FLOAT, "45.67", 8)),
	)
}

func main() {
	printer := arith.AstPrinter{}
	if len(os.Args) < 2 {
		fmt.Println(printer.Print(demo()))
		return
	}

	for _, src := range os.Args[1:] {
		e, err := arith.Compile(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(65)
		}
		for _, stmt := range e.Statements() {
			fmt.Println(printer.Print(stmt))
		}
	}
}
