package graph

import (
	"errors"

	"github.com/conn-castle/depgraph/internal/messages"
)

var (
	// ErrDependencyCycle is returned by Install and Remove when the cycle guard is enabled
	// and the declared closure of the requested component contains a cycle.
	ErrDependencyCycle = errors.New(messages.GraphErrCycle)
)
