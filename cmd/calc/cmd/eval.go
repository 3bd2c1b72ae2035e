package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/arith"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate each argument and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evalAll(args)
		},
	}
}

// evalAll evaluates every source, reporting errors as it goes.
func (a *app) evalAll(sources []string) error {
	a.log.Info(fmt.Sprintf("evaluating %d source(s)", len(sources)))
	for _, src := range sources {
		if err := a.run(src); err != nil {
			a.reporter.Report(err)
		}
	}
	return a.exitStatus()
}

// run compiles and evaluates a source, then prints its results.
func (a *app) run(src string) error {
	a.log.Debug(fmt.Sprintf("compiling %q", src))
	e, err := arith.Compile(src)
	if err != nil {
		return err
	}
	if a.cfg.Echo {
		fmt.Fprintln(a.stdout, src)
	}

	if a.cfg.All {
		values, err := e.RunAll()
		if err != nil {
			return err
		}
		for _, v := range values {
			a.print(v)
		}
		return nil
	}

	v, ok, err := e.Run()
	if err != nil {
		return err
	}
	if ok {
		a.print(v)
	}
	return nil
}

func (a *app) print(v float64) {
	fmt.Fprintln(a.stdout, a.cfg.Sprint(v, arith.Stringify))
}
