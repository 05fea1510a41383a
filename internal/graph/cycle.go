package graph

import (
	"fmt"
	"strings"

	"github.com/conn-castle/depgraph/internal/messages"
)

// checkCycle returns ErrDependencyCycle when the guard is on and a cycle is reachable
// from component through declared dependencies.
func (r *Resolver) checkCycle(component string) error {
	if !r.cycleGuard {
		return nil
	}
	path := r.decls.FindCycle(component)
	if path == nil {
		return nil
	}
	return fmt.Errorf(messages.GraphCycleFmt, ErrDependencyCycle, strings.Join(path, messages.GraphCyclePathSep))
}

// FindCycle returns a cycle reachable from component as a path whose first and last
// elements are equal, or nil when the declared closure of component is acyclic.
// Each component is expanded at most once per call.
func (d *Declarations) FindCycle(component string) []string {
	w := cycleWalk{
		decls:  d,
		onPath: make(map[string]int),
		done:   make(map[string]bool),
	}
	return w.visit(component)
}

type cycleWalk struct {
	decls  *Declarations
	path   []string
	onPath map[string]int
	done   map[string]bool
}

func (w *cycleWalk) visit(component string) []string {
	if idx, ok := w.onPath[component]; ok {
		cycle := append([]string{}, w.path[idx:]...)
		return append(cycle, component)
	}
	if w.done[component] {
		return nil
	}

	w.onPath[component] = len(w.path)
	w.path = append(w.path, component)
	for _, dep := range w.decls.DependenciesOf(component) {
		if cycle := w.visit(dep); cycle != nil {
			return cycle
		}
	}
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, component)
	w.done[component] = true
	return nil
}
