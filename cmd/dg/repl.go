package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/depgraph/internal/logging"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
	"github.com/conn-castle/depgraph/internal/script"
	"github.com/conn-castle/depgraph/internal/terminal"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ReplUse,
		Short: messages.ReplShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// repl reads commands until END or end of input. Failed lines are reported and skipped.
func (a *app) repl(stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	useColor := report.ResolveColor(a.cfg.ColorMode())
	in, err := a.newInterpreter(stdout, useColor)
	if err != nil {
		return err
	}
	errColor := color.New(color.FgRed)
	if useColor {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}

	prompt := isTerminalPair(stdin, stdout)
	if !prompt {
		logging.Debugf(messages.TerminalNotInteractiveNote)
	}
	scanner := script.NewLineScanner(stdin)
	for {
		if prompt {
			_, _ = fmt.Fprint(stdout, messages.ScriptPrompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := in.Exec(scanner.Text()); err != nil {
			_, _ = errColor.Fprintln(stderr, fmt.Sprintf(messages.ReplErrorFmt, err))
			continue
		}
		if in.Ended() {
			return nil
		}
	}
	if prompt {
		_, _ = fmt.Fprintln(stdout)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf(messages.ScriptReadFailedFmt, err)
	}
	return nil
}

// isTerminalPair reports whether both streams are files attached to a terminal.
func isTerminalPair(stdin io.Reader, stdout io.Writer) bool {
	inFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return terminal.IsTerminal(inFile) && terminal.IsTerminal(outFile)
}
