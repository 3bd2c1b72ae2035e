package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/arith"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR...",
		Short: "Print the tokens of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, src := range args {
				scanner, err := arith.NewScanner(src)
				if err != nil {
					a.reporter.Report(err)
					continue
				}
				for tok, ok := scanner.Next(); ok; tok, ok = scanner.Next() {
					fmt.Fprintln(a.stdout, tok)
				}
			}
			return a.exitStatus()
		},
	}
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree EXPR...",
		Short: "Print the syntax tree of every statement of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := arith.AstPrinter{}
			for _, src := range args {
				e, err := arith.Compile(src)
				if err != nil {
					a.reporter.Report(err)
					continue
				}
				for stmt, ok := e.Next(); ok; stmt, ok = e.Next() {
					fmt.Fprintln(a.stdout, printer.Print(stmt))
				}
			}
			return a.exitStatus()
		},
	}
}
