package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newFileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH",
		Short: "Evaluate a file, one source per line",
		Long: `Evaluate a file, one source per line. Blank lines are skipped.

The first error stops the evaluation. The exit code is 65 for a lexical or
syntax error and 70 for an evaluation error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFile(args[0])
		},
	}
}

func (a *app) runFile(fpath string) error {
	f, err := os.Open(fpath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	a.log.Info(fmt.Sprintf("evaluating %s", fpath))

	s := bufio.NewScanner(f)
	s.Split(bufio.ScanLines)
	for line := 1; s.Scan(); line++ {
		src := strings.TrimSuffix(s.Text(), "\r")
		if strings.TrimSpace(src) == "" {
			continue
		}
		if err := a.run(src); err != nil {
			a.reporter.Report(fmt.Errorf("%s:%d: %w", fpath, line, err))
			return a.exitStatus()
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return nil
}
