package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholzen/postorder/pkg/markdown"
	"github.com/mholzen/postorder/pkg/mcp"
	"github.com/mholzen/postorder/pkg/reports"
	"github.com/mholzen/postorder/pkg/treeio"
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getTraverseCommand(),
		getExampleCommand(),
		getShapeCommand(),
		getMcpCommand(),
		getServeCommand(),
		getVersionCommand(),
	}
}

func getTraverseCommand() *cli.Command {
	flags := getInputFlags()
	flags = append(flags, getOutputFlags()...)
	flags = append(flags, getMaxNodesFlag())

	return &cli.Command{
		Name:      "traverse",
		Usage:     "Print the values of a tree in post-order",
		UsageText: "postorder traverse [<tree>] [options]",
		Description: `Traverse a binary tree in post-order (left subtree, right subtree, node)
without recursion or an explicit stack.

The tree is given in LeetCode level order or as nested JSON:
  postorder traverse "[1,2,3,null,4]"
  postorder traverse '{"value": 1, "left": {"value": 2}}'
  echo "[1,2,3]" | postorder traverse --format=inline --stats`,
		Arguments: getTreeArguments(),
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			params, err := getAndValidateOutputParams(cmd)
			if err != nil {
				return err
			}

			tree, err := readTree(cmd)
			if err != nil {
				return err
			}
			slog.Debug("tree parsed", "nodes", tree.Len(), "shape", tree.String())

			report, err := reports.BuildPostorderReport(tree, reports.Options{
				Verify:   params.verify,
				MaxNodes: maxNodes(cmd),
			})
			if err != nil {
				return err
			}
			return printReport(cmd, report, params)
		},
	}
}

func getExampleCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "size",
			Value: treeio.DefaultExampleSize,
			Usage: "Node count for sized examples",
		},
		&cli.BoolFlag{
			Name:  "list",
			Usage: "List the available examples",
		},
		&cli.BoolFlag{
			Name:  "show-tree",
			Usage: "Print the example in level order before its values",
		},
	}
	flags = append(flags, getOutputFlags()...)

	return &cli.Command{
		Name:      "example",
		Usage:     "Traverse a built-in example tree",
		UsageText: "postorder example [<name>] [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "name",
				Value:     "scenario",
				UsageText: "<name> (default: scenario)",
			},
		},
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("list") {
				printExampleTable(stdout(cmd), treeio.Examples())
				return nil
			}

			params, err := getAndValidateOutputParams(cmd)
			if err != nil {
				return err
			}

			name := cmd.StringArg("name")
			tree, err := treeio.BuildExample(name, cmd.Int("size"))
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, treeio.ExampleNames())
			}
			levelOrder := treeio.FormatLevelOrder(tree)

			report, err := reports.BuildPostorderReport(tree, reports.Options{Verify: params.verify})
			if err != nil {
				return err
			}

			if params.format == "json" {
				return printJSONToWriter(stdout(cmd), mcp.ExampleReport{
					Name:            name,
					LevelOrder:      levelOrder,
					PostorderReport: report,
				})
			}
			if cmd.Bool("show-tree") {
				fmt.Fprintln(stdout(cmd), levelOrder)
			}
			return printReport(cmd, report, params)
		},
	}
}

func getShapeCommand() *cli.Command {
	flags := getInputFlags()
	flags = append(flags, &cli.StringFlag{
		Name:  "format",
		Value: "string",
		Usage: "Output format: string, level, json, or markdown",
	})

	return &cli.Command{
		Name:      "shape",
		Usage:     "Convert a tree between notations",
		UsageText: "postorder shape [<tree>] [options]",
		Arguments: getTreeArguments(),
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tree, err := readTree(cmd)
			if err != nil {
				return err
			}

			w := stdout(cmd)
			switch format := cmd.String("format"); format {
			case "string":
				fmt.Fprintln(w, tree.String())
			case "level":
				fmt.Fprintln(w, treeio.FormatLevelOrder(tree))
			case "json":
				text, err := treeio.FormatNestedJSON(tree)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, text)
			case "markdown":
				fmt.Fprintln(w, markdown.GenerateNestedUL(tree))
			default:
				return fmt.Errorf("format must be 'string', 'level', 'json', or 'markdown'")
			}
			return nil
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "postorder mcp [options]",
		Description: `Start the post-order MCP server for integration with AI assistants.

The server communicates via stdio using the Model Context Protocol (MCP).

Tools:
  postorder_traverse  Post-order values and traversal statistics
  postorder_shape     Parse a tree and render it in every encoding
  postorder_examples  List or traverse the built-in example trees

Examples:
  postorder mcp                            # All tools
  postorder mcp --expose=traverse,shape    # Specific tools only`,
		Flags: []cli.Flag{
			getExposeFlag(),
			getMaxNodesFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunServer(ctx, getServerConfig(cmd))
		},
	}
}

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run as hosted MCP server (streamable HTTP transport)",
		UsageText: "postorder serve [options]",
		Description: `Start the post-order MCP server over HTTP.

The MCP endpoint is served at --endpoint-path and a health check at /healthz.

Examples:
  # Start server on port 8080
  postorder serve --addr=:8080

  # HTTPS with CORS for browser clients
  postorder serve --addr=:8443 --tls-cert=cert.pem --tls-key=key.pem \
    --cors --cors-origin=https://app.example.com`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Address to listen on (e.g., :8080 or localhost:8080)",
			},
			getExposeFlag(),
			getMaxNodesFlag(),
			&cli.StringFlag{
				Name:  "tls-cert",
				Usage: "Path to TLS certificate file for HTTPS",
			},
			&cli.StringFlag{
				Name:  "tls-key",
				Usage: "Path to TLS key file for HTTPS",
			},
			&cli.StringFlag{
				Name:  "endpoint-path",
				Value: "/mcp",
				Usage: "Path for the MCP endpoint",
			},
			&cli.BoolFlag{
				Name:  "cors",
				Usage: "Enable CORS for browser-based clients",
			},
			&cli.StringSliceFlag{
				Name:  "cors-origin",
				Usage: "Allowed CORS origins (if empty, allows all when --cors is enabled)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if (cmd.String("tls-cert") == "") != (cmd.String("tls-key") == "") {
				return fmt.Errorf("--tls-cert and --tls-key must be given together")
			}
			httpConfig := mcp.HTTPConfig{
				Config:         getServerConfig(cmd),
				Addr:           cmd.String("addr"),
				TLSCertFile:    cmd.String("tls-cert"),
				TLSKeyFile:     cmd.String("tls-key"),
				EndpointPath:   cmd.String("endpoint-path"),
				EnableCORS:     cmd.Bool("cors"),
				AllowedOrigins: cmd.StringSlice("cors-origin"),
			}
			return mcp.RunHTTPServer(ctx, httpConfig)
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "postorder version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			fmt.Fprintf(w, "postorder version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}

func getServerConfig(cmd *cli.Command) mcp.Config {
	return mcp.Config{
		Expose:   cmd.String("expose"),
		Version:  version,
		MaxNodes: cmd.Int("max-nodes"),
	}
}

// maxNodes maps the flag to a report limit, where zero means unlimited.
func maxNodes(cmd *cli.Command) int {
	n := cmd.Int("max-nodes")
	switch {
	case n < 0:
		return 0
	case n == 0:
		return mcp.DefaultMaxNodes
	default:
		return n
	}
}
