package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/depgraph/internal/config"
	"github.com/conn-castle/depgraph/internal/graph"
	"github.com/conn-castle/depgraph/internal/logging"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
	"github.com/conn-castle/depgraph/internal/script"
)

var getwd = os.Getwd

const (
	flagConfig     = "config"
	flagCycleGuard = "cycle-guard"
	flagNoEcho     = "no-echo"
	flagColor      = "color"
	flagCounts     = "counts"
	flagLogLevel   = "log-level"
	flagDiffLines  = "diff-lines"
)

// app holds the settings shared by every subcommand once flags and config are resolved.
type app struct {
	configPath string
	cycleGuard bool
	noEcho     bool
	color      string
	counts     bool
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:               messages.RootUse,
		Short:             messages.RootShort,
		Long:              messages.RootLong,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", messages.FlagConfig)
	pf.BoolVar(&a.cycleGuard, flagCycleGuard, false, messages.FlagCycleGuard)
	pf.BoolVar(&a.noEcho, flagNoEcho, false, messages.FlagNoEcho)
	pf.StringVar(&a.color, flagColor, report.ColorAuto, messages.FlagColor)
	pf.BoolVar(&a.counts, flagCounts, false, messages.FlagCounts)
	pf.StringVar(&a.logLevel, flagLogLevel, logging.DefaultLevel, messages.FlagLogLevel)

	cmd.AddCommand(
		newRunCmd(a),
		newReplCmd(a),
		newVerifyCmd(a),
		newMcpCmd(a),
	)
	return cmd
}

// load resolves dg.toml and applies explicitly set flags on top of it.
func (a *app) load(cmd *cobra.Command, args []string) error {
	cwd, err := getwd()
	if err != nil {
		return err
	}
	cfg, loaded, err := config.Resolve(a.configPath, cwd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagCycleGuard) {
		cfg.Engine.CycleGuard = a.cycleGuard
	}
	if flags.Changed(flagNoEcho) {
		echo := !a.noEcho
		cfg.Output.Echo = &echo
	}
	if flags.Changed(flagColor) {
		cfg.Output.Color = a.color
	}
	if flags.Changed(flagCounts) {
		cfg.Output.Counts = a.counts
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(messages.FlagsSource); err != nil {
		return err
	}
	if err := logging.Configure(cmd.ErrOrStderr(), cfg.Log.Level); err != nil {
		return err
	}
	a.cfg = cfg
	if loaded != "" {
		logging.Infof(messages.ConfigLoadedFmt, loaded)
	}
	logging.Debugf(messages.ConfigDebugResolvedFmt, cfg.Engine.CycleGuard, cfg.EchoEnabled(), cfg.ColorMode())
	return nil
}

// graphOptions returns resolver options for the resolved config.
func (a *app) graphOptions() graph.Options {
	return graph.Options{
		CycleGuard: a.cfg.Engine.CycleGuard,
		Logger:     logging.L,
	}
}

// newInterpreter builds a fresh resolver and interpreter writing the transcript to out.
func (a *app) newInterpreter(out io.Writer, color bool) (*script.Interpreter, error) {
	printer := report.NewPrinter(out, report.Options{
		Color:  color,
		Counts: a.cfg.Output.Counts,
	})
	return script.New(graph.New(a.graphOptions()), printer, script.Options{
		Echo:   a.cfg.EchoEnabled(),
		Logger: logging.L,
	})
}
