package config

import "github.com/conn-castle/depgraph/internal/report"

// Config is the contents of dg.toml.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig tunes the dependency engine.
type EngineConfig struct {
	// CycleGuard rejects install/remove requests whose declared closure has a cycle.
	CycleGuard bool `toml:"cycle_guard"`
}

// OutputConfig controls transcript rendering.
type OutputConfig struct {
	// Echo prints each script line before its output. Nil means true.
	Echo   *bool  `toml:"echo"`
	Color  string `toml:"color"`
	Counts bool   `toml:"counts"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no dg.toml exists.
func Default() *Config {
	echo := true
	return &Config{
		Output: OutputConfig{Echo: &echo, Color: report.ColorAuto},
	}
}

// EchoEnabled reports whether script lines are echoed.
func (c *Config) EchoEnabled() bool {
	return c.Output.Echo == nil || *c.Output.Echo
}

// ColorMode returns the configured color mode, defaulting to auto.
func (c *Config) ColorMode() string {
	if c.Output.Color == "" {
		return report.ColorAuto
	}
	return c.Output.Color
}
