// Package script interprets line-oriented DEPEND/INSTALL/REMOVE/LIST scripts against a
// graph.Resolver.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/depgraph/internal/messages"
)

// Command names recognized by the interpreter.
const (
	CmdDepend  = "DEPEND"
	CmdInstall = "INSTALL"
	CmdRemove  = "REMOVE"
	CmdList    = "LIST"
	CmdEnd     = "END"
)

var (
	// ErrUnknownCommand reports a line whose first token is not a command.
	ErrUnknownCommand = errors.New(messages.ScriptErrUnknownCommand)
	// ErrMissingArgument reports a command without its required component.
	ErrMissingArgument = errors.New(messages.ScriptErrMissingArgument)
)

// Command is one parsed script line.
type Command struct {
	Name string
	Args []string
}

// Parse tokenizes line on whitespace. ok is false for blank lines and comments.
// Command names are matched exactly; component names are never normalized.
func Parse(line string) (cmd Command, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], messages.ScriptCommentPrefix) {
		return Command{}, false, nil
	}
	cmd = Command{Name: fields[0], Args: fields[1:]}

	switch cmd.Name {
	case CmdDepend, CmdInstall, CmdRemove:
		if len(cmd.Args) == 0 {
			return Command{}, false, fmt.Errorf(messages.ScriptMissingArgumentFmt, ErrMissingArgument, cmd.Name, messages.ScriptArgComponent)
		}
	case CmdList, CmdEnd:
	default:
		return Command{}, false, fmt.Errorf(messages.ScriptUnknownCommandFmt, ErrUnknownCommand, cmd.Name)
	}
	return cmd, true, nil
}
