package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

// repl evaluates stdin line by line. Errors are reported and forgotten, so a
// bad line never ends the session.
func (a *app) repl() error {
	s := bufio.NewScanner(a.stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(a.stdout, a.cfg.Prompt)
		if !s.Scan() {
			break
		}
		if err := a.run(s.Text()); err != nil {
			a.reporter.Report(err)
		}
		a.reporter.Reset()
	}
	fmt.Fprintln(a.stdout)
	if err := s.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
