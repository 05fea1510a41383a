package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordingResolver(t *testing.T) (*Resolver, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	return New(Options{Reporter: rec}), rec
}

func refCount(t *testing.T, r *Resolver, component string) int {
	t.Helper()
	count, ok := r.RefCount(component)
	require.Truef(t, ok, "expected %s to be installed", component)
	return count
}

func kinds(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind.String()+":"+e.Component)
	}
	return out
}

func TestListNeverContainsUnknownComponent(t *testing.T) {
	r, _ := newRecordingResolver(t)
	r.Depend("A", "B")
	require.NoError(t, r.Install("A", Direct))

	assert.NotContains(t, r.List(), "ghost")
	assert.False(t, r.Installed("ghost"))
	_, ok := r.RefCount("ghost")
	assert.False(t, ok)
}

func TestInstallWithoutDependencies(t *testing.T) {
	r, rec := newRecordingResolver(t)
	require.NoError(t, r.Install("A", Direct))

	assert.Equal(t, []string{"A"}, r.List())
	assert.Equal(t, 0, refCount(t, r, "A"))
	assert.Equal(t, []string{"installed:A"}, kinds(rec.Events))
}

func TestDirectInstallIsIdempotent(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	require.NoError(t, r.Install("A", Direct))
	before := map[string]int{"A": refCount(t, r, "A"), "B": refCount(t, r, "B")}
	rec.Reset()

	require.NoError(t, r.Install("A", Direct))

	assert.Equal(t, []string{"already_installed:A"}, kinds(rec.Events))
	assert.Equal(t, []string{"A", "B"}, r.List())
	assert.Equal(t, before["A"], refCount(t, r, "A"))
	assert.Equal(t, before["B"], refCount(t, r, "B"))
}

func TestSharedDependencyReferenceCounting(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	r.Depend("C", "B")

	require.NoError(t, r.Install("A", Direct))
	require.NoError(t, r.Install("C", Direct))
	assert.Equal(t, 2, refCount(t, r, "B"))

	rec.Reset()
	require.NoError(t, r.Remove("A", Direct))
	assert.Equal(t, []string{"removed:A", "still_needed:B"}, kinds(rec.Events))
	assert.True(t, r.Installed("B"))
	assert.Equal(t, 1, refCount(t, r, "B"))

	rec.Reset()
	require.NoError(t, r.Remove("C", Direct))
	assert.Equal(t, []string{"removed:C", "removed:B"}, kinds(rec.Events))
	assert.False(t, r.Installed("B"))
	assert.Empty(t, r.List())
}

func TestCascadeRemoval(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B", "C")

	require.NoError(t, r.Install("A", Direct))
	assert.Equal(t, []string{"installed:A", "installed:B", "installed:C"}, kinds(rec.Events))
	assert.Equal(t, 0, refCount(t, r, "A"))
	assert.Equal(t, 1, refCount(t, r, "B"))
	assert.Equal(t, 1, refCount(t, r, "C"))

	rec.Reset()
	require.NoError(t, r.Remove("A", Direct))
	assert.Equal(t, []string{"removed:A", "removed:B", "removed:C"}, kinds(rec.Events))
	assert.Empty(t, r.List())
}

func TestCascadeRemoveDecrementsWhileStillNeeded(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	r.Depend("C", "B")
	require.NoError(t, r.Install("A", Direct))
	require.NoError(t, r.Install("C", Direct))
	rec.Reset()

	require.NoError(t, r.Remove("B", Cascade))

	assert.Equal(t, []string{"still_needed:B"}, kinds(rec.Events))
	assert.True(t, r.Installed("B"))
	assert.Equal(t, 1, refCount(t, r, "B"))
	assert.Equal(t, 1, rec.Events[0].RefCount)
}

func TestDirectRemoveOfNeededComponentDecrements(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	require.NoError(t, r.Install("A", Direct))
	rec.Reset()

	require.NoError(t, r.Remove("B", Direct))
	assert.Equal(t, []string{"still_needed:B"}, kinds(rec.Events))
	assert.Equal(t, 0, refCount(t, r, "B"))

	// The decrement is not undone: a second direct request now removes B.
	rec.Reset()
	require.NoError(t, r.Remove("B", Direct))
	assert.Equal(t, []string{"removed:B"}, kinds(rec.Events))
	assert.Equal(t, []string{"A"}, r.List())
}

func TestRemoveNotInstalled(t *testing.T) {
	r, rec := newRecordingResolver(t)
	require.NoError(t, r.Remove("A", Direct))

	require.Len(t, rec.Events, 1)
	assert.Equal(t, EventNotInstalled, rec.Events[0].Kind)
	assert.Equal(t, Direct, rec.Events[0].Mode)
	assert.Empty(t, r.List())
}

func TestInstallAlreadyInstalledDependencyAddsReference(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	require.NoError(t, r.Install("B", Direct))
	assert.Equal(t, 0, refCount(t, r, "B"))
	rec.Reset()

	require.NoError(t, r.Install("A", Direct))

	assert.Equal(t, []string{"installed:A"}, kinds(rec.Events))
	assert.Equal(t, 1, refCount(t, r, "B"))
}

func TestTransitiveClosureInstalled(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("app", "lib", "net")
	r.Depend("lib", "core")
	r.Depend("net", "core", "tls")
	r.Depend("tls", "core")

	require.NoError(t, r.Install("app", Direct))

	assert.Equal(t, []string{"app", "core", "lib", "net", "tls"}, r.List())
	assert.Equal(t, []string{
		"installed:app",
		"installed:lib",
		"installed:core",
		"installed:net",
		"installed:tls",
	}, kinds(rec.Events))
	assert.Equal(t, 3, refCount(t, r, "core"))
	assert.Equal(t, 1, refCount(t, r, "tls"))
	for _, e := range rec.Events[1:] {
		assert.Equal(t, Cascade, e.Mode)
	}
}

func TestRoundTripLeavesNothingInstalled(t *testing.T) {
	r, _ := newRecordingResolver(t)
	r.Depend("app", "lib", "net")
	r.Depend("lib", "core")
	r.Depend("net", "core", "tls")
	r.Depend("tls", "core")
	r.Depend("tool", "core", "lib")

	require.NoError(t, r.Install("app", Direct))
	require.NoError(t, r.Install("tool", Direct))
	require.NoError(t, r.Install("extra", Direct))
	require.NoError(t, r.Remove("extra", Direct))
	require.NoError(t, r.Remove("app", Direct))
	assert.Equal(t, []string{"core", "lib", "tool"}, r.List())
	require.NoError(t, r.Remove("tool", Direct))

	assert.Empty(t, r.List())
}

func TestComponentCanBeReinstalledAfterRemoval(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	require.NoError(t, r.Install("A", Direct))
	require.NoError(t, r.Remove("A", Direct))
	rec.Reset()

	require.NoError(t, r.Install("A", Direct))

	assert.Equal(t, []string{"installed:A", "installed:B"}, kinds(rec.Events))
	assert.Equal(t, 1, refCount(t, r, "B"))
}

func TestCyclesTerminateWithoutGuard(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "B")
	r.Depend("B", "A")

	require.NoError(t, r.Install("A", Direct))
	assert.Equal(t, []string{"A", "B"}, r.List())
	assert.Equal(t, 1, refCount(t, r, "A"))
	assert.Equal(t, 1, refCount(t, r, "B"))

	rec.Reset()
	require.NoError(t, r.Remove("A", Direct))
	assert.Equal(t, []string{"still_needed:A"}, kinds(rec.Events))

	rec.Reset()
	require.NoError(t, r.Remove("A", Direct))
	assert.Equal(t, []string{"removed:A", "removed:B", "not_installed:A"}, kinds(rec.Events))
	assert.Empty(t, r.List())
}

func TestSelfDependencyAccepted(t *testing.T) {
	r, rec := newRecordingResolver(t)
	r.Depend("A", "A")

	require.NoError(t, r.Install("A", Direct))
	assert.Equal(t, 1, refCount(t, r, "A"))
	assert.Equal(t, []string{"installed:A"}, kinds(rec.Events))
}

func TestResolversAreIndependent(t *testing.T) {
	first := New(Options{})
	second := New(Options{})
	first.Depend("A", "B")
	require.NoError(t, first.Install("A", Direct))

	assert.Empty(t, second.List())
	assert.Empty(t, second.Declarations().DependenciesOf("A"))
}

func TestNilReporterDiscardsEvents(t *testing.T) {
	r := New(Options{})
	r.SetReporter(nil)
	require.NoError(t, r.Install("A", Direct))
	assert.True(t, r.Installed("A"))
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.messages = append(l.messages, msg.(string))
}

func TestLoggerReceivesDecisions(t *testing.T) {
	logger := &recordingLogger{}
	r := New(Options{Logger: logger})
	r.Depend("A", "B")
	require.NoError(t, r.Install("A", Direct))

	assert.Contains(t, logger.messages, "installed")
	assert.Contains(t, logger.messages, "dependency gained a dependent")
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "unknown", EventKind(0).String())
	assert.Equal(t, "removed", EventRemoved.String())
	assert.Equal(t, "cascade", Cascade.String())
	assert.Equal(t, "direct", Direct.String())
}
