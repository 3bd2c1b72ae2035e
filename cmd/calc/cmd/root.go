package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/arith"
	"github.com/ltungv/calc/internal/config"
)

// Exit codes, following sysexits.h.
const (
	exitOK       = 0
	exitFailure  = 1
	exitDataErr  = 65
	exitSoftware = 70
)

// exitError carries the exit code of a command whose errors were already
// reported.
type exitError struct {
	code int
}

func (err *exitError) Error() string {
	return fmt.Sprintf("exit status %d", err.code)
}

// app is the state shared by all commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	verbose bool
	echo    bool
	all     bool
	format  string

	cfg      *config.Config
	log      slog.Logger
	reporter arith.Reporter
}

// Execute runs the command line with the process arguments and returns the
// exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions over IEEE-754 doubles.

Expressions use + - * / % and ** (which folds to the left like every other
operator), parentheses, decimal numbers, and the constants NaN, Infinity,
PI and E. Without arguments calc reads expressions from stdin, one per line.`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.repl()
			}
			return a.evalAll(args)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")
	flags.BoolVar(&a.echo, "echo", false, "print each expression before its result")
	flags.BoolVar(&a.all, "all", false, "evaluate every statement instead of only the first")
	flags.StringVar(&a.format, "format", "", "fmt format of results, e.g. %.3f")

	rootCmd.AddCommand(
		newEvalCmd(a),
		newReplCmd(a),
		newFileCmd(a),
		newTokensCmd(a),
		newTreeCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup merges the flags over the config file over the defaults.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.log = newLogger(a.stderr, a.verbose)

	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
		a.log.Info(fmt.Sprintf("loaded config from %s", a.cfgFile))
	}
	flags := cmd.Flags()
	if flags.Changed("echo") {
		cfg.Echo = a.echo
	}
	if flags.Changed("all") {
		cfg.All = a.all
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Color {
		a.reporter = arith.NewSimpleReporter(a.stderr)
	} else {
		a.reporter = arith.NewPlainReporter(a.stderr)
	}
	return nil
}

// syncWriter lets any writer back a logger.
type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error {
	return nil
}

func newLogger(w io.Writer, verbose bool) slog.Logger {
	if !verbose {
		return logger.NewNopLogger()
	}
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = syncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: true,
	})
}

// exitStatus turns the errors reported so far into an exit code.
func (a *app) exitStatus() error {
	switch {
	case a.reporter.HadError():
		return &exitError{exitDataErr}
	case a.reporter.HadRuntimeError():
		return &exitError{exitSoftware}
	}
	return nil
}
