package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/depgraph/internal/logging"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
)

// exitInvalidInput is the exit code for a script path that is missing or not a regular file.
const exitInvalidInput = 2

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openScript(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			in, err := a.newInterpreter(cmd.OutOrStdout(), report.ResolveColor(a.cfg.ColorMode()))
			if err != nil {
				return err
			}
			return in.Run(input)
		},
	}
}

// openScript opens path for reading, or returns stdin when path is "-".
// A path that does not name a readable regular file yields an ExitError with code 2.
func openScript(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == messages.RunStdinArg {
		logging.Debugf(messages.RunDebugInputFmt, messages.RunStdinName)
		return stdin, func() {}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil, nil, invalidInput(abs)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, nil, &ExitError{Code: exitInvalidInput, Err: fmt.Errorf(messages.RunOpenInputFmt, abs, err)}
	}
	logging.Debugf(messages.RunDebugInputFmt, abs)
	return f, func() { _ = f.Close() }, nil
}

func invalidInput(abs string) error {
	return &ExitError{Code: exitInvalidInput, Err: fmt.Errorf(messages.RunInvalidInputFmt, abs)}
}
