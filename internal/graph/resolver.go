// Package graph implements the component dependency engine: a declaration store and an
// installation tracker that installs components with their transitive dependencies and
// removes them when nothing installed still needs them.
//
// A Resolver is not safe for concurrent use. Callers sharing one across goroutines must
// serialize every call.
package graph

import (
	"maps"
	"slices"

	"github.com/conn-castle/depgraph/internal/messages"
)

// Mode tells install and remove whether a call is a user request or a cascade from
// another component's dependencies.
type Mode int

const (
	// Direct is a request issued by the user.
	Direct Mode = iota
	// Cascade is a call made while processing another component's dependencies.
	Cascade
)

func (m Mode) String() string {
	if m == Cascade {
		return "cascade"
	}
	return "direct"
}

// Logger receives debug traces of cascade decisions.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

// Options configures a Resolver. The zero value is valid.
type Options struct {
	// Reporter receives outcome events. Nil discards them.
	Reporter Reporter
	// Logger receives debug traces. Nil disables tracing.
	Logger Logger
	// CycleGuard rejects Install and Remove calls whose declared closure contains a cycle
	// before any state changes.
	CycleGuard bool
}

// Resolver owns one declaration store and the installed set with reference counts.
type Resolver struct {
	decls      *Declarations
	counts     map[string]int
	reporter   Reporter
	logger     Logger
	cycleGuard bool
}

// New returns an empty Resolver.
func New(opts Options) *Resolver {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Resolver{
		decls:      NewDeclarations(),
		counts:     make(map[string]int),
		reporter:   reporter,
		logger:     opts.Logger,
		cycleGuard: opts.CycleGuard,
	}
}

// SetReporter replaces the event reporter. Nil discards events.
func (r *Resolver) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = discardReporter{}
	}
	r.reporter = reporter
}

// Declarations exposes the declaration store. The tracker never mutates it.
func (r *Resolver) Declarations() *Declarations {
	return r.decls
}

// Depend declares that component depends on dependencies.
func (r *Resolver) Depend(component string, dependencies ...string) {
	r.decls.Declare(component, dependencies...)
}

// Install installs component and every declared dependency that is not yet installed.
//
// A Direct install of an installed component reports EventAlreadyInstalled and changes
// nothing. Dependencies that are already installed gain one reference. The only error is
// ErrDependencyCycle, and only with the cycle guard enabled.
func (r *Resolver) Install(component string, mode Mode) error {
	if err := r.checkCycle(component); err != nil {
		return err
	}
	r.install(component, mode)
	return nil
}

// Remove removes component unless it is still needed, then cascades to its declared
// dependencies. A Direct request is still needed while its count is above zero; a Cascade
// request while its count is above one. Still-needed components are decremented.
func (r *Resolver) Remove(component string, mode Mode) error {
	if err := r.checkCycle(component); err != nil {
		return err
	}
	r.remove(component, mode)
	return nil
}

// List returns the installed components, sorted.
func (r *Resolver) List() []string {
	return slices.Sorted(maps.Keys(r.counts))
}

// RefCount returns the reference count of component and whether it is installed.
func (r *Resolver) RefCount(component string) (int, bool) {
	count, ok := r.counts[component]
	return count, ok
}

// Installed reports whether component is installed.
func (r *Resolver) Installed(component string) bool {
	_, ok := r.counts[component]
	return ok
}

func (r *Resolver) install(component string, mode Mode) {
	if count, ok := r.counts[component]; ok {
		if mode == Direct {
			r.report(EventAlreadyInstalled, component, mode, count)
		}
		return
	}

	r.counts[component] = 0
	r.report(EventInstalled, component, mode, 0)

	for _, dep := range r.decls.DependenciesOf(component) {
		if _, ok := r.counts[dep]; !ok {
			r.install(dep, Cascade)
		}
		// The edge from component counts whether dep was just installed or already present.
		r.counts[dep]++
		r.debug(messages.GraphDebugIncrement, "component", dep, "dependent", component, "refs", r.counts[dep])
	}
}

func (r *Resolver) remove(component string, mode Mode) {
	count, ok := r.counts[component]
	if !ok {
		r.report(EventNotInstalled, component, mode, 0)
		return
	}
	if (mode == Cascade && count > 1) || (mode == Direct && count > 0) {
		r.counts[component] = count - 1
		r.report(EventStillNeeded, component, mode, count-1)
		return
	}

	delete(r.counts, component)
	r.report(EventRemoved, component, mode, 0)

	for _, dep := range r.decls.DependenciesOf(component) {
		r.remove(dep, Cascade)
	}
}

func (r *Resolver) report(kind EventKind, component string, mode Mode, refs int) {
	r.debug(kind.String(), "component", component, "mode", mode, "refs", refs)
	r.reporter.Report(Event{Kind: kind, Component: component, Mode: mode, RefCount: refs})
}

func (r *Resolver) debug(msg string, keyvals ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, keyvals...)
}
