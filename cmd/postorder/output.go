package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mholzen/postorder/pkg/markdown"
	"github.com/mholzen/postorder/pkg/reports"
	"github.com/mholzen/postorder/pkg/treeio"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func printJSONToWriter(w io.Writer, response any) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	fmt.Fprintf(w, "%s\n", prettyJSON)
	return nil
}

func writeValues(w io.Writer, values []string, format string) {
	switch format {
	case "inline":
		fmt.Fprintln(w, strings.Join(values, " "))
	case "markdown":
		if len(values) > 0 {
			fmt.Fprintln(w, markdown.GenerateOL(values))
		}
	default:
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
	}
}

// printReport writes the values in params.format. JSON output carries the
// whole report; otherwise the statistics summary goes to stderr.
func printReport(cmd *cli.Command, report *reports.PostorderReport, params OutputParameters) error {
	if params.format == "json" {
		return printJSONToWriter(stdout(cmd), report)
	}

	writeValues(stdout(cmd), report.Values, params.format)
	if params.stats || params.verify {
		lang, err := reports.ParseLanguage(params.lang)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr(cmd), report.Summary(lang))
	}
	return nil
}

func printExampleTable(w io.Writer, examples []treeio.Example) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "sized", "description"})
	table.SetAutoWrapText(false)
	for _, example := range examples {
		table.Append([]string{example.Name, strconv.FormatBool(example.Sized), example.Description})
	}
	table.Render()
}
