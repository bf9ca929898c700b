package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	Expose   string
	Version  string
	MaxNodes int
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := newServer(cfg, nil)
	if err != nil {
		return err
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

func newServer(cfg Config, hooks *mcpserver.Hooks) (*mcpserver.MCPServer, error) {
	toolsToEnable, err := ParseExposeList(cfg.Expose)
	if err != nil {
		return nil, err
	}

	builder := NewToolBuilder(cfg.MaxNodes)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	options := []mcpserver.ServerOption{
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	}
	if hooks != nil {
		options = append(options, mcpserver.WithHooks(hooks))
	}
	server := mcpserver.NewMCPServer("postorder", cfg.Version, options...)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}
	return server, nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// "all" selects every tool. Individual tools can be referenced either by their
// short name (e.g., "traverse") or full MCP name (e.g., "postorder_traverse").
func ParseExposeList(raw string) ([]string, error) {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"all"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if group, ok := groupMap[token]; ok {
			addSet(group)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool or group in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolTraverse,
		ToolShape,
		ToolExamples,
	}

	groupMap = map[string][]string{
		"all": allTools,
	}

	aliasMap = map[string]string{
		"traverse": ToolTraverse,
		"shape":    ToolShape,
		"examples": ToolExamples,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, name := range allTools {
			out[name] = struct{}{}
		}
		return out
	}()
)
