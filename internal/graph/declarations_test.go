package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclarationsAccumulate(t *testing.T) {
	d := NewDeclarations()
	d.Declare("A", "C", "B")
	d.Declare("A", "D", "B")

	assert.Equal(t, []string{"B", "C", "D"}, d.DependenciesOf("A"))
}

func TestDeclarationsUndeclaredIsEmpty(t *testing.T) {
	d := NewDeclarations()

	deps := d.DependenciesOf("nobody")
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
	assert.Empty(t, d.Components())
}

func TestDeclareWithoutDependenciesCreatesEntry(t *testing.T) {
	d := NewDeclarations()
	d.Declare("A")

	assert.Equal(t, []string{"A"}, d.Components())
	assert.Empty(t, d.DependenciesOf("A"))
}

func TestDeclarationsAreCaseSensitive(t *testing.T) {
	d := NewDeclarations()
	d.Declare("net", "TLS")
	d.Declare("NET", "tls")

	assert.Equal(t, []string{"NET", "net"}, d.Components())
	assert.Equal(t, []string{"TLS"}, d.DependenciesOf("net"))
	assert.Equal(t, []string{"tls"}, d.DependenciesOf("NET"))
}

func TestDependenciesOfReturnsCopy(t *testing.T) {
	d := NewDeclarations()
	d.Declare("A", "B")

	deps := d.DependenciesOf("A")
	deps[0] = "mutated"

	assert.Equal(t, []string{"B"}, d.DependenciesOf("A"))
}
