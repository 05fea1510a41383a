package messages

// Engine messages for transcript lines and dependency graph errors.
const (
	// ReportInstalledFmt formats a component that was installed.
	ReportInstalledFmt        = "Installing %s"
	ReportAlreadyInstalledFmt = "%s is already installed"
	ReportNotInstalledFmt     = "%s is not installed"
	ReportStillNeededFmt      = "%s is still needed"
	ReportRemovedFmt          = "Removing %s"
	ReportListEntryCountFmt   = "%s (%d)"

	// GraphCycleFmt wraps ErrDependencyCycle with the offending path.
	GraphCycleFmt       = "%w: %s"
	GraphCyclePathSep   = " -> "
	GraphErrCycle       = "dependency cycle"
	GraphDebugIncrement = "dependency gained a dependent"
)
