package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mholzen/postorder/pkg/binarytree"
	"github.com/mholzen/postorder/pkg/mcp"
	"github.com/mholzen/postorder/pkg/treeio"
	"github.com/urfave/cli/v3"
)

type OutputParameters struct {
	format string
	stats  bool
	verify bool
	lang   string
}

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level: debug, info, warn, error",
			Sources: cli.EnvVars("POSTORDER_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Append logs to this file instead of stderr",
			Sources: cli.EnvVars("POSTORDER_LOG_FILE"),
		},
	}
}

func getTreeArguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "tree",
			UsageText: "<tree> (level order or JSON; default: --file or stdin)",
		},
	}
}

func getInputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read the tree from a file ('-' for stdin)",
		},
		&cli.StringFlag{
			Name:  "input-format",
			Value: string(treeio.FormatAuto),
			Usage: "Tree encoding: auto, level, or json",
		},
	}
}

func getOutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: "list",
			Usage: "Output format: list, inline, markdown, or json",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "Print traversal statistics",
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "Check that the tree is unchanged after the traversal",
		},
		&cli.StringFlag{
			Name:    "lang",
			Value:   "en",
			Usage:   "Language used to format statistics (BCP 47 tag)",
			Sources: cli.EnvVars("POSTORDER_LANG"),
		},
	}
}

func getMaxNodesFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "max-nodes",
		Value: mcp.DefaultMaxNodes,
		Usage: "Reject trees with more nodes (negative for no limit)",
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: "all",
		Usage: "Tools to expose: all, or comma-separated tool names",
	}
}

func getAndValidateOutputParams(cmd *cli.Command) (OutputParameters, error) {
	format := cmd.String("format")
	if err := validateFormat(format); err != nil {
		return OutputParameters{}, err
	}
	return OutputParameters{
		format: format,
		stats:  cmd.Bool("stats"),
		verify: cmd.Bool("verify"),
		lang:   cmd.String("lang"),
	}, nil
}

func validateFormat(format string) error {
	switch format {
	case "list", "inline", "markdown", "json":
		return nil
	}
	return fmt.Errorf("format must be 'list', 'inline', 'markdown', or 'json'")
}

// readTree resolves the tree from exactly one of: the argument, --file, or
// stdin when neither is given.
func readTree(cmd *cli.Command) (*binarytree.Tree[string], error) {
	format, err := treeio.ParseFormat(cmd.String("input-format"))
	if err != nil {
		return nil, err
	}

	arg := cmd.StringArg("tree")
	file := cmd.String("file")
	if arg != "" && file != "" {
		return nil, fmt.Errorf("cannot use both a tree argument and --file")
	}

	input := arg
	if arg == "" {
		input, err = readInput(cmd, file)
		if err != nil {
			return nil, err
		}
	}
	return treeio.Parse(input, format)
}

func readInput(cmd *cli.Command, file string) (string, error) {
	var reader io.Reader
	switch file {
	case "", "-":
		reader = cmd.Root().Reader
		if reader == nil {
			reader = os.Stdin
		}
	default:
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("cannot open tree file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("cannot read tree: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" && file == "" {
		return "", fmt.Errorf("tree is required: pass it as an argument, with --file, or on stdin")
	}
	return string(data), nil
}
