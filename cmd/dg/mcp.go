package main

import (
	"github.com/spf13/cobra"

	dgmcp "github.com/conn-castle/depgraph/internal/mcp"
	"github.com/conn-castle/depgraph/internal/messages"
)

var runToolServer = dgmcp.RunToolServer

func newMcpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.McpUse,
		Short: messages.McpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolServer(cmd.Context(), versionString(), a.graphOptions())
		},
	}
}
