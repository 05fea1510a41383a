// Package logging holds the process-wide leveled logger.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"

	"github.com/conn-castle/depgraph/internal/messages"
)

// DefaultLevel is the level used when neither config nor flags set one.
const DefaultLevel = "warn"

// L is the package-level logger. Tests may swap it for a buffer-backed logger.
var L = New(os.Stderr, clog.WarnLevel)

// New returns a logger writing to w at level.
func New(w io.Writer, level clog.Level) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Level:  level,
		Prefix: messages.LoggingPrefix,
	})
}

// Configure replaces L with a logger writing to w at the named level.
func Configure(w io.Writer, level string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}
	L = New(w, parsed)
	return nil
}

// ParseLevel parses a level name; the empty string maps to DefaultLevel.
func ParseLevel(level string) (clog.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	parsed, err := clog.ParseLevel(level)
	if err != nil {
		return parsed, fmt.Errorf(messages.LoggingInvalidLevelFmt, level, err)
	}
	return parsed, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}
