package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/conn-castle/depgraph/internal/graph"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
)

// Options configures an Interpreter.
type Options struct {
	// Echo writes each executed line before its output.
	Echo bool
	// Logger receives debug traces of dispatched lines. Nil disables tracing.
	Logger graph.Logger
}

// Interpreter executes script lines against one Resolver and writes the transcript
// through a Printer. It is not safe for concurrent use.
type Interpreter struct {
	resolver *graph.Resolver
	printer  *report.Printer
	echo     bool
	logger   graph.Logger
	line     int
	ended    bool
}

// New returns an Interpreter that owns the resolver's event reporting.
func New(resolver *graph.Resolver, printer *report.Printer, opts Options) (*Interpreter, error) {
	if resolver == nil {
		return nil, errors.New(messages.ScriptResolverRequired)
	}
	if printer == nil {
		printer = report.NewPrinter(io.Discard, report.Options{})
	}
	resolver.SetReporter(printer)
	return &Interpreter{
		resolver: resolver,
		printer:  printer,
		echo:     opts.Echo,
		logger:   opts.Logger,
	}, nil
}

// Line returns the number of lines consumed so far.
func (in *Interpreter) Line() int {
	return in.line
}

// Ended reports whether an END command has been executed.
func (in *Interpreter) Ended() bool {
	return in.ended
}

// initialLineBuffer is the scanner's starting buffer; lines longer than it grow the buffer.
const initialLineBuffer = 64 * 1024

// NewLineScanner returns a line scanner without a maximum line length.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	return scanner
}

// Exec parses and executes one line. A trailing carriage return is ignored.
// Every non-blank, non-comment line is echoed, including one that fails to parse.
// Errors are prefixed with the line number.
func (in *Interpreter) Exec(line string) error {
	in.line++
	line = strings.TrimSuffix(line, "\r")
	cmd, ok, err := Parse(line)
	if err == nil && !ok {
		in.debug(messages.ScriptDebugSkip, "line", in.line)
		return nil
	}
	if in.echo {
		in.printer.Command(line)
	}
	if err != nil {
		return fmt.Errorf(messages.ScriptLineErrorFmt, in.line, err)
	}
	in.debug(messages.ScriptDebugExecute, "line", in.line, "command", cmd.Name, "args", cmd.Args)
	if err := in.dispatch(cmd); err != nil {
		return fmt.Errorf(messages.ScriptLineErrorFmt, in.line, err)
	}
	return nil
}

// Run executes every line from r and stops at the first error.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := NewLineScanner(r)
	for scanner.Scan() {
		if err := in.Exec(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf(messages.ScriptReadFailedFmt, err)
	}
	return nil
}

func (in *Interpreter) dispatch(cmd Command) error {
	switch cmd.Name {
	case CmdDepend:
		in.resolver.Depend(cmd.Args[0], cmd.Args[1:]...)
		return nil
	case CmdInstall:
		return in.resolver.Install(cmd.Args[0], graph.Direct)
	case CmdRemove:
		return in.resolver.Remove(cmd.Args[0], graph.Direct)
	case CmdList:
		in.printer.List(in.resolver)
		return nil
	case CmdEnd:
		in.ended = true
		in.debug(messages.ScriptDebugEnd, "line", in.line)
		return nil
	default:
		return fmt.Errorf(messages.ScriptUnknownCommandFmt, ErrUnknownCommand, cmd.Name)
	}
}

func (in *Interpreter) debug(msg string, keyvals ...interface{}) {
	if in.logger == nil {
		return
	}
	in.logger.Debug(msg, keyvals...)
}
