package graph

// EventKind names the outcome of one step of an install or remove.
type EventKind int

const (
	// EventInstalled reports a component that was added to the installed set.
	EventInstalled EventKind = iota + 1
	// EventAlreadyInstalled reports a direct install of a component that is already installed.
	EventAlreadyInstalled
	// EventNotInstalled reports a removal of a component that is not installed.
	EventNotInstalled
	// EventStillNeeded reports a removal that only decremented the reference count.
	EventStillNeeded
	// EventRemoved reports a component that was removed from the installed set.
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventInstalled:
		return "installed"
	case EventAlreadyInstalled:
		return "already_installed"
	case EventNotInstalled:
		return "not_installed"
	case EventStillNeeded:
		return "still_needed"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is a single informational outcome. Events are never failures.
type Event struct {
	Kind      EventKind
	Component string
	Mode      Mode
	// RefCount is the reference count after the step; zero for removed or absent components.
	RefCount int
}

// Reporter receives events in the order the engine produces them.
type Reporter interface {
	Report(Event)
}

// Recorder is a Reporter that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Report appends e.
func (r *Recorder) Report(e Event) {
	r.Events = append(r.Events, e)
}

// Reset drops recorded events and returns what was recorded.
func (r *Recorder) Reset() []Event {
	events := r.Events
	r.Events = nil
	return events
}

type discardReporter struct{}

func (discardReporter) Report(Event) {}
