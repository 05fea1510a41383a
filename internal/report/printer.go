// Package report renders engine events and listings as transcript lines.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/depgraph/internal/graph"
	"github.com/conn-castle/depgraph/internal/messages"
)

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColor reports whether output should be colored for mode.
// Auto follows fatih/color's terminal and NO_COLOR detection.
func ResolveColor(mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Options configures a Printer.
type Options struct {
	Color bool
	// Counts appends reference counts to list entries.
	Counts bool
}

// Printer writes transcript lines to an io.Writer. It implements graph.Reporter.
type Printer struct {
	out     io.Writer
	counts  bool
	install *color.Color
	remove  *color.Color
	info    *color.Color
	command *color.Color
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, opts Options) *Printer {
	p := &Printer{
		out:     out,
		counts:  opts.Counts,
		install: color.New(color.FgGreen),
		remove:  color.New(color.FgYellow),
		info:    color.New(color.FgCyan),
		command: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.install, p.remove, p.info, p.command} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Report writes the line for e.
func (p *Printer) Report(e graph.Event) {
	line := Line(e)
	switch e.Kind {
	case graph.EventInstalled:
		line = p.install.Sprint(line)
	case graph.EventRemoved:
		line = p.remove.Sprint(line)
	default:
		line = p.info.Sprint(line)
	}
	_, _ = fmt.Fprintln(p.out, line)
}

// Command echoes a script line as it appeared in the input.
func (p *Printer) Command(line string) {
	_, _ = fmt.Fprintln(p.out, p.command.Sprint(line))
}

// List writes one line per installed component.
func (p *Printer) List(r *graph.Resolver) {
	for _, component := range r.List() {
		if !p.counts {
			_, _ = fmt.Fprintln(p.out, component)
			continue
		}
		count, _ := r.RefCount(component)
		_, _ = fmt.Fprintf(p.out, messages.ReportListEntryCountFmt+"\n", component, count)
	}
}

// Line returns the uncolored transcript line for e.
func Line(e graph.Event) string {
	switch e.Kind {
	case graph.EventInstalled:
		return fmt.Sprintf(messages.ReportInstalledFmt, e.Component)
	case graph.EventAlreadyInstalled:
		return fmt.Sprintf(messages.ReportAlreadyInstalledFmt, e.Component)
	case graph.EventNotInstalled:
		return fmt.Sprintf(messages.ReportNotInstalledFmt, e.Component)
	case graph.EventStillNeeded:
		return fmt.Sprintf(messages.ReportStillNeededFmt, e.Component)
	case graph.EventRemoved:
		return fmt.Sprintf(messages.ReportRemovedFmt, e.Component)
	default:
		return e.Component
	}
}

// Lines returns the uncolored transcript lines for events.
func Lines(events []graph.Event) []string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, Line(e))
	}
	return lines
}
