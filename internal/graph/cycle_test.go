package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name    string
		declare map[string][]string
		start   string
		want    []string
	}{
		{
			name:    "acyclic diamond",
			declare: map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}},
			start:   "A",
			want:    nil,
		},
		{
			name:    "self dependency",
			declare: map[string][]string{"A": {"A"}},
			start:   "A",
			want:    []string{"A", "A"},
		},
		{
			name:    "two node cycle",
			declare: map[string][]string{"A": {"B"}, "B": {"A"}},
			start:   "A",
			want:    []string{"A", "B", "A"},
		},
		{
			name:    "cycle below start",
			declare: map[string][]string{"app": {"lib"}, "lib": {"core"}, "core": {"lib"}},
			start:   "app",
			want:    []string{"lib", "core", "lib"},
		},
		{
			name:    "cycle not reachable",
			declare: map[string][]string{"A": {"B"}, "X": {"Y"}, "Y": {"X"}},
			start:   "A",
			want:    nil,
		},
		{
			name:    "undeclared start",
			declare: map[string][]string{},
			start:   "A",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeclarations()
			for component, deps := range tt.declare {
				d.Declare(component, deps...)
			}
			assert.Equal(t, tt.want, d.FindCycle(tt.start))
		})
	}
}

func TestCycleGuardRejectsWithoutMutation(t *testing.T) {
	rec := &Recorder{}
	r := New(Options{Reporter: rec, CycleGuard: true})
	r.Depend("A", "B")
	r.Depend("B", "A")

	err := r.Install("A", Direct)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDependencyCycle))
	assert.Contains(t, err.Error(), "A -> B -> A")
	assert.Empty(t, r.List())
	assert.Empty(t, rec.Events)

	err = r.Remove("B", Direct)
	assert.ErrorIs(t, err, ErrDependencyCycle)
	assert.Empty(t, rec.Events)
}

func TestCycleGuardAllowsAcyclicInstall(t *testing.T) {
	r := New(Options{CycleGuard: true})
	r.Depend("A", "B", "C")
	r.Depend("B", "C")

	require.NoError(t, r.Install("A", Direct))
	assert.Equal(t, []string{"A", "B", "C"}, r.List())
	require.NoError(t, r.Remove("A", Direct))
	assert.Empty(t, r.List())
}
