package graph

import (
	"maps"
	"slices"
)

// Declarations records, for every component that declared dependencies, the set of
// components it depends on. Entries are created on first declaration and never removed.
type Declarations struct {
	deps map[string]map[string]struct{}
}

// NewDeclarations returns an empty declaration store.
func NewDeclarations() *Declarations {
	return &Declarations{deps: make(map[string]map[string]struct{})}
}

// Declare adds dependencies to component's dependency set.
// Repeated declarations accumulate; duplicates are ignored. Self-dependencies are accepted.
func (d *Declarations) Declare(component string, dependencies ...string) {
	set, ok := d.deps[component]
	if !ok {
		set = make(map[string]struct{}, len(dependencies))
		d.deps[component] = set
	}
	for _, dep := range dependencies {
		set[dep] = struct{}{}
	}
}

// DependenciesOf returns the declared direct dependencies of component in sorted order.
// It returns an empty slice when nothing was declared.
func (d *Declarations) DependenciesOf(component string) []string {
	set := d.deps[component]
	if len(set) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Components returns every component that has a declaration, sorted.
func (d *Declarations) Components() []string {
	return slices.Sorted(maps.Keys(d.deps))
}
