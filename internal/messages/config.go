package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance  = "(see dg.toml keys: engine.cycle_guard, output.echo, output.color, output.counts, log.level)"
	ConfigColorInvalidFmt     = "%s: output.color must be one of auto, always, never (got %q)"
	ConfigLogLevelInvalidFmt  = "%s: log.level %w"
	ConfigExpandPathFmt       = "expand path %s: %w"
	ConfigStatFileFmt         = "check config file %s: %w"
	ConfigErrValidation       = "config validation failed"
)
