package main

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/depgraph/internal/logging"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
	"github.com/conn-castle/depgraph/internal/transcript"
)

func newVerifyCmd(a *app) *cobra.Command {
	var diffLines int
	cmd := &cobra.Command{
		Use:   messages.VerifyUse,
		Short: messages.VerifyShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openScript(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			var produced bytes.Buffer
			in, err := a.newInterpreter(&produced, false)
			if err != nil {
				return err
			}
			if err := in.Run(input); err != nil {
				return err
			}

			logging.Debugf(messages.VerifyDebugCompareFmt, args[1], in.Line())
			result, err := transcript.CompareFile(args[1], produced.String(), diffLines)
			if err != nil {
				if result.UnifiedDiff != "" {
					_, _ = fmt.Fprint(cmd.OutOrStdout(), result.UnifiedDiff)
				}
				return err
			}

			ok := color.New(color.FgGreen)
			if report.ResolveColor(a.cfg.ColorMode()) {
				ok.EnableColor()
			} else {
				ok.DisableColor()
			}
			_, _ = ok.Fprintln(cmd.OutOrStdout(), fmt.Sprintf(messages.VerifyMatchFmt, args[1]))
			return nil
		},
	}
	cmd.Flags().IntVar(&diffLines, flagDiffLines, transcript.DefaultDiffMaxLines, messages.FlagDiffLines)
	return cmd
}
