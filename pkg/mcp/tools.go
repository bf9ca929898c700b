package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/postorder/pkg/binarytree"
	"github.com/mholzen/postorder/pkg/markdown"
	"github.com/mholzen/postorder/pkg/reports"
	"github.com/mholzen/postorder/pkg/treeio"
)

const (
	ToolTraverse = "postorder_traverse"
	ToolShape    = "postorder_shape"
	ToolExamples = "postorder_examples"
)

// DefaultMaxNodes bounds the size of trees accepted from MCP clients.
const DefaultMaxNodes = 100000

// ToolBuilder wires tree operations into MCP tool handlers.
type ToolBuilder struct {
	maxNodes int
}

// NewToolBuilder creates a builder. Trees with more than maxNodes nodes are
// rejected; zero selects DefaultMaxNodes and a negative value disables the limit.
func NewToolBuilder(maxNodes int) ToolBuilder {
	if maxNodes == 0 {
		maxNodes = DefaultMaxNodes
	}
	if maxNodes < 0 {
		maxNodes = 0
	}
	return ToolBuilder{maxNodes: maxNodes}
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolTraverse: b.buildTraverseTool,
		ToolShape:    b.buildShapeTool,
		ToolExamples: b.buildExamplesTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

func withTreeArguments() []mcptypes.ToolOption {
	return []mcptypes.ToolOption{
		mcptypes.WithString("tree",
			mcptypes.Description(`Tree as level order ("[1,2,3,null,4]") or nested JSON ({"value":1,"left":{...},"right":{...}})`),
			mcptypes.Required(),
		),
		mcptypes.WithString("input_format",
			mcptypes.Description("Input format: auto, level or json (default auto)"),
			mcptypes.DefaultString(string(treeio.FormatAuto)),
		),
	}
}

func (b ToolBuilder) buildTraverseTool() mcpserver.ServerTool {
	options := []mcptypes.ToolOption{
		mcptypes.WithDescription("Visit every node of a binary tree in post-order (left, right, node) using constant extra memory"),
	}
	options = append(options, withTreeArguments()...)
	options = append(options,
		mcptypes.WithBoolean("verify",
			mcptypes.Description("Check that the tree is unchanged after the traversal"),
			mcptypes.DefaultBool(true),
		),
	)

	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(ToolTraverse, options...),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			report, err := b.traverse(req.GetString("tree", ""), req.GetString("input_format", ""), req.GetBool("verify", true))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot traverse tree", err), nil
			}
			return mcptypes.NewToolResultJSON(report)
		},
	}
}

func (b ToolBuilder) buildShapeTool() mcpserver.ServerTool {
	options := []mcptypes.ToolOption{
		mcptypes.WithDescription("Parse a binary tree and return it in every supported notation"),
	}
	options = append(options, withTreeArguments()...)

	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(ToolShape, options...),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			shape, err := b.shape(req.GetString("tree", ""), req.GetString("input_format", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot parse tree", err), nil
			}
			return mcptypes.NewToolResultJSON(shape)
		},
	}
}

func (b ToolBuilder) buildExamplesTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolExamples,
			mcptypes.WithDescription("List example trees, or traverse one by name"),
			mcptypes.WithString("name",
				mcptypes.Description("Example to traverse: "+strings.Join(treeio.ExampleNames(), ", ")+" (omit to list)"),
			),
			mcptypes.WithNumber("size",
				mcptypes.Description(fmt.Sprintf("Node count for sized examples (default %d)", treeio.DefaultExampleSize)),
				mcptypes.DefaultNumber(treeio.DefaultExampleSize),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			name := strings.TrimSpace(req.GetString("name", ""))
			if name == "" {
				return mcptypes.NewToolResultJSON(map[string]any{"examples": treeio.Examples()})
			}
			report, err := b.example(name, req.GetInt("size", treeio.DefaultExampleSize))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot traverse example", err), nil
			}
			return mcptypes.NewToolResultJSON(report)
		},
	}
}

// ShapeResult lists one tree in every notation the module reads or writes.
type ShapeResult struct {
	Format     treeio.Format    `json:"format"`
	Nodes      int              `json:"nodes"`
	Shape      string           `json:"shape"`
	LevelOrder string           `json:"level_order"`
	JSON       *treeio.JSONNode `json:"json"`
	Markdown   string           `json:"markdown"`
}

// ExampleReport is a traversal of a named example tree.
type ExampleReport struct {
	Name       string `json:"name"`
	LevelOrder string `json:"level_order"`
	*reports.PostorderReport
}

func (b ToolBuilder) parseTree(input, formatName string) (*binarytree.Tree[string], treeio.Format, error) {
	if strings.TrimSpace(input) == "" {
		return nil, "", fmt.Errorf("tree is required")
	}
	format, err := treeio.ParseFormat(formatName)
	if err != nil {
		return nil, "", err
	}
	if format == treeio.FormatAuto {
		format = treeio.DetectFormat(input)
	}
	tree, err := treeio.Parse(input, format)
	if err != nil {
		return nil, "", err
	}
	if b.maxNodes > 0 && tree.Len() > b.maxNodes {
		return nil, "", fmt.Errorf("%w: %d nodes, limit is %d", reports.ErrTooLarge, tree.Len(), b.maxNodes)
	}
	return tree, format, nil
}

func (b ToolBuilder) traverse(input, formatName string, verify bool) (*reports.PostorderReport, error) {
	tree, format, err := b.parseTree(input, formatName)
	if err != nil {
		return nil, err
	}
	slog.Debug("traversing tree", "format", format, "nodes", tree.Len(), "verify", verify)
	return reports.BuildPostorderReport(tree, reports.Options{Verify: verify, MaxNodes: b.maxNodes})
}

func (b ToolBuilder) shape(input, formatName string) (*ShapeResult, error) {
	tree, format, err := b.parseTree(input, formatName)
	if err != nil {
		return nil, err
	}
	return &ShapeResult{
		Format:     format,
		Nodes:      tree.Len(),
		Shape:      tree.String(),
		LevelOrder: treeio.FormatLevelOrder(tree),
		JSON:       treeio.ToJSONNode(tree),
		Markdown:   markdown.GenerateNestedUL(tree),
	}, nil
}

func (b ToolBuilder) example(name string, size int) (*ExampleReport, error) {
	if b.maxNodes > 0 && size > b.maxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit is %d", reports.ErrTooLarge, size, b.maxNodes)
	}
	tree, err := treeio.BuildExample(name, size)
	if err != nil {
		return nil, err
	}
	levelOrder := treeio.FormatLevelOrder(tree)
	report, err := reports.BuildPostorderReport(tree, reports.Options{Verify: true, MaxNodes: b.maxNodes})
	if err != nil {
		return nil, err
	}
	return &ExampleReport{Name: name, LevelOrder: levelOrder, PostorderReport: report}, nil
}
