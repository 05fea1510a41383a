package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "dg"
	RootShort = "Install and remove components along their declared dependencies"
	RootLong  = "dg reads DEPEND, INSTALL, REMOVE, and LIST commands and tracks which components are installed,\n" +
		"installing missing dependencies and removing components once nothing installed needs them."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig     = "Path to a dg.toml config file (default: ./dg.toml when present)"
	FlagCycleGuard = "Reject install/remove requests whose declared dependencies contain a cycle"
	FlagNoEcho     = "Do not echo script lines before their output"
	FlagColor      = "Color transcript output: auto, always, or never"
	FlagCounts     = "Show reference counts in LIST output"
	FlagLogLevel   = "Diagnostic log level: debug, info, warn, error"
	FlagDiffLines  = "Maximum number of diff lines to show"

	// RunUse is the run command usage.
	RunUse             = "run <script|->"
	RunShort           = "Execute a command script (use - for stdin)"
	RunStdinArg        = "-"
	RunInvalidInputFmt = "invalid input file: %s"
	RunOpenInputFmt    = "open input file %s: %w"

	ReplUse   = "repl"
	ReplShort = "Read commands interactively until END or end of input"

	VerifyUse      = "verify <script> <expected>"
	VerifyShort    = "Run a script and compare its transcript with an expected transcript"
	VerifyMatchFmt = "transcript matches %s"

	McpUse   = "mcp"
	McpShort = "Serve declare, install, remove, and list as MCP tools over stdio"

	ExitErrorFmt = "exit %d"

	// FlagsSource names command-line flags in validation errors.
	FlagsSource            = "command-line flags"
	ConfigDebugResolvedFmt = "config resolved: cycle_guard=%t echo=%t color=%s"
	ConfigLoadedFmt        = "loaded config %s"
	ReplErrorFmt           = "error: %v"
	VerifyDebugCompareFmt  = "comparing transcript with %s after %d lines"
	RunDebugInputFmt       = "reading script %s"
	RunStdinName           = "stdin"
)
