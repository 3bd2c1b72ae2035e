package arith

import (
	"errors"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separate errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	// HadError reports whether a lexical or syntax error was reported.
	HadError() bool
	// HadRuntimeError reports whether an evaluation error was reported.
	HadRuntimeError() bool
}

// SimpleReporter writes each error on its own line to the inner writer,
// compile errors in red and evaluation errors in yellow when colors are
// enabled.
type SimpleReporter struct {
	writer        io.Writer
	compileColor  *color.Color
	runtimeColor  *color.Color
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter that colors its output unless
// color.NoColor is set, which is the case when stdout is not a terminal.
func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{
		writer:       writer,
		compileColor: color.New(color.FgRed),
		runtimeColor: color.New(color.FgYellow),
	}
}

// NewPlainReporter creates a reporter that never colors its output.
func NewPlainReporter(writer io.Writer) Reporter {
	reporter := NewSimpleReporter(writer).(*SimpleReporter)
	reporter.compileColor.DisableColor()
	reporter.runtimeColor.DisableColor()
	return reporter
}

func (reporter *SimpleReporter) Report(err error) {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		reporter.hadRuntimeErr = true
		reporter.runtimeColor.Fprintln(reporter.writer, err)
		return
	}
	reporter.hadErr = true
	reporter.compileColor.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
