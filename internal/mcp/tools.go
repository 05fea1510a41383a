package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conn-castle/depgraph/internal/graph"
	"github.com/conn-castle/depgraph/internal/messages"
	"github.com/conn-castle/depgraph/internal/report"
)

type toolServerRunner func(ctx context.Context, server *mcp.Server) error

// DeclareInput is the argument of the declare tool.
type DeclareInput struct {
	Component    string   `json:"component" jsonschema:"component that has dependencies"`
	Dependencies []string `json:"dependencies,omitempty" jsonschema:"components it depends on"`
}

// ComponentInput is the argument of the install and remove tools.
type ComponentInput struct {
	Component string `json:"component" jsonschema:"component name"`
}

// ListInput is the argument of the list tool.
type ListInput struct {
	Declarations bool `json:"declarations,omitempty" jsonschema:"also return every declared component with its dependencies"`
}

// TranscriptOutput holds the transcript lines a call produced.
type TranscriptOutput struct {
	Lines []string `json:"lines"`
}

// InstalledComponent is one entry of the list tool.
type InstalledComponent struct {
	Name     string `json:"name"`
	RefCount int    `json:"ref_count"`
}

// DeclaredComponent is one declaration returned by the list tool.
type DeclaredComponent struct {
	Name         string   `json:"name"`
	Dependencies []string `json:"dependencies"`
}

// ListOutput is the result of the list tool. Declared is set only when requested.
type ListOutput struct {
	Components []InstalledComponent `json:"components"`
	Declared   []DeclaredComponent  `json:"declared,omitempty"`
}

// Session owns one Resolver and serializes every tool call against it.
type Session struct {
	mu       sync.Mutex
	resolver *graph.Resolver
	recorder *graph.Recorder
	logger   graph.Logger
}

// NewSession returns a Session with an empty Resolver. opts.Reporter is replaced by the
// session's own recorder.
func NewSession(opts graph.Options) *Session {
	recorder := &graph.Recorder{}
	opts.Reporter = recorder
	return &Session{
		resolver: graph.New(opts),
		recorder: recorder,
		logger:   opts.Logger,
	}
}

// RunToolServer starts an MCP tool server over stdio backed by a fresh Session.
func RunToolServer(ctx context.Context, version string, opts graph.Options) error {
	return runToolServer(ctx, version, NewSession(opts), defaultToolServerRunner)
}

// runToolServer builds the MCP tool server and runs it using the provided runner.
func runToolServer(ctx context.Context, version string, session *Session, runner toolServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, errors.New(messages.McpRunnerRequired))
	}
	if err := runner(ctx, NewServer(version, session)); err != nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, err)
	}
	return nil
}

// defaultToolServerRunner runs the MCP tool server over stdio.
func defaultToolServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewServer returns an MCP server exposing the declare, install, remove, and list tools.
func NewServer(version string, session *Session) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    messages.McpServerName,
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolDeclare, Description: messages.McpToolDeclareDescription}, session.declare)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolInstall, Description: messages.McpToolInstallDescription}, session.install)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolRemove, Description: messages.McpToolRemoveDescription}, session.remove)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolList, Description: messages.McpToolListDescription}, session.list)
	return server
}

func (s *Session) declare(ctx context.Context, req *mcp.CallToolRequest, in DeclareInput) (*mcp.CallToolResult, TranscriptOutput, error) {
	if in.Component == "" {
		return nil, TranscriptOutput{}, errors.New(messages.McpComponentRequired)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debug(messages.McpToolDeclare, "component", in.Component, "dependencies", in.Dependencies)
	s.resolver.Depend(in.Component, in.Dependencies...)
	return transcriptResult(nil)
}

func (s *Session) install(ctx context.Context, req *mcp.CallToolRequest, in ComponentInput) (*mcp.CallToolResult, TranscriptOutput, error) {
	return s.apply(messages.McpToolInstall, in, s.resolver.Install)
}

func (s *Session) remove(ctx context.Context, req *mcp.CallToolRequest, in ComponentInput) (*mcp.CallToolResult, TranscriptOutput, error) {
	return s.apply(messages.McpToolRemove, in, s.resolver.Remove)
}

func (s *Session) apply(tool string, in ComponentInput, op func(string, graph.Mode) error) (*mcp.CallToolResult, TranscriptOutput, error) {
	if in.Component == "" {
		return nil, TranscriptOutput{}, errors.New(messages.McpComponentRequired)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debug(tool, "component", in.Component)
	s.recorder.Reset()
	if err := op(in.Component, graph.Direct); err != nil {
		return nil, TranscriptOutput{}, err
	}
	return transcriptResult(report.Lines(s.recorder.Reset()))
}

func (s *Session) list(ctx context.Context, req *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, ListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debug(messages.McpToolList, "declarations", in.Declarations)
	out := ListOutput{Components: []InstalledComponent{}}
	lines := make([]string, 0)
	for _, name := range s.resolver.List() {
		count, _ := s.resolver.RefCount(name)
		out.Components = append(out.Components, InstalledComponent{Name: name, RefCount: count})
		lines = append(lines, fmt.Sprintf(messages.ReportListEntryCountFmt, name, count))
	}
	if !in.Declarations {
		return textResult(lines), out, nil
	}

	decls := s.resolver.Declarations()
	out.Declared = []DeclaredComponent{}
	for _, name := range decls.Components() {
		deps := decls.DependenciesOf(name)
		out.Declared = append(out.Declared, DeclaredComponent{Name: name, Dependencies: deps})
		lines = append(lines, fmt.Sprintf(messages.McpDeclaredEntryFmt, strings.Join(append([]string{name}, deps...), " ")))
	}
	return textResult(lines), out, nil
}

func (s *Session) debug(tool string, keyvals ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(messages.McpDebugToolCall, append([]interface{}{"tool", tool}, keyvals...)...)
}

func transcriptResult(lines []string) (*mcp.CallToolResult, TranscriptOutput, error) {
	if lines == nil {
		lines = []string{}
	}
	return textResult(lines), TranscriptOutput{Lines: lines}, nil
}

func textResult(lines []string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: strings.Join(lines, "\n")}},
	}
}
