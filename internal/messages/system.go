package messages

// System messages for the script interpreter, transcript verification, and MCP server.
const (
	// ScriptErrUnknownCommand is the sentinel text for unrecognized commands.
	ScriptErrUnknownCommand   = "unrecognized command"
	ScriptErrMissingArgument  = "missing argument"
	ScriptUnknownCommandFmt   = "%w: %s"
	ScriptMissingArgumentFmt  = "%w: %s requires %s"
	ScriptLineErrorFmt        = "line %d: %w"
	ScriptReadFailedFmt       = "read script: %w"
	ScriptArgComponent        = "a component"
	ScriptCommentPrefix       = "#"
	ScriptResolverRequired    = "script interpreter requires a resolver"
	ScriptPrompt              = "dg> "
	ScriptDebugExecute        = "execute"
	ScriptDebugSkip           = "skip line"
	ScriptDebugEnd            = "end of script marker"
	TranscriptErrMismatch     = "transcript mismatch"
	TranscriptMismatchFmt     = "%w: %s differs from expected output"
	TranscriptTruncatedFmt    = "... (truncated to %d lines; rerun with %s <n> to see more)"
	TranscriptExpectedLabel   = "%s (expected)"
	TranscriptActualLabel     = "%s (actual)"
	TranscriptReadExpectedFmt = "read expected transcript %s: %w"

	// McpServerName is the implementation name announced to MCP clients.
	McpServerName              = "dg"
	McpRunServerFailedFmt      = "run MCP tool server: %w"
	McpRunnerRequired          = "tool server runner is nil"
	McpToolDeclare             = "declare"
	McpToolDeclareDescription  = "Declare that a component depends on the given components. Declarations accumulate."
	McpToolInstall             = "install"
	McpToolInstallDescription  = "Install a component and every not-yet-installed transitive dependency."
	McpToolRemove              = "remove"
	McpToolRemoveDescription   = "Remove a component unless other installed components still need it, cascading to unneeded dependencies."
	McpToolList                = "list"
	McpToolListDescription     = "List installed components with their reference counts, and optionally every declaration."
	McpDeclaredEntryFmt        = "DEPEND %s"
	McpComponentRequired       = "component is required"
	McpDebugToolCall           = "tool call"
	LoggingInvalidLevelFmt     = "invalid log level %q: %w"
	LoggingPrefix              = "dg"
	TerminalNotInteractiveNote = "stdin is not a terminal; reading commands without a prompt"
)
