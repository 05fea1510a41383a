package config

import (
	"fmt"

	"github.com/conn-castle/depgraph/internal/logging"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
)

var validColorModes = map[string]struct{}{
	"":                 {},
	report.ColorAuto:   {},
	report.ColorAlways: {},
	report.ColorNever:  {},
}

// Validate ensures the config values are usable.
func (c *Config) Validate(path string) error {
	if _, ok := validColorModes[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorInvalidFmt, path, c.Output.Color)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, err)
	}
	return nil
}
