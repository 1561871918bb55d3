package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalab/confline/internal/cli"
)

var (
	// Render command flags
	renderSubcommand string
	renderTrace      bool
	renderProvenance bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [config-file]",
	Short: "Parse a config document and print its resolved values",
	Long: `Parse a line-oriented config document against the schema and print
the resolved values as YAML.

Each document line is "key<delimiter>value". Blank lines and lines
starting with # are skipped, as are lines without the delimiter.
Declared defaults fill in everything the document leaves unset.

Examples:
  confline render app.conf --schema schema.yaml
  confline render - --schema schema.yaml < app.conf
  confline render app.conf --subcommand server --trace`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolved, err := cli.ResolveSchemaPath(schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cli.RenderRun(cli.RenderOptions{
			SchemaPath: resolved,
			ConfigPath: args[0],
			Subcommand: renderSubcommand,
			Trace:      renderTrace,
			Provenance: renderProvenance,
			Verbose:    verbose,
		})
	},
}

func init() {
	// Render command specific flags
	renderCmd.Flags().StringVar(&renderSubcommand, "subcommand", "", "Activate a subcommand scope before parsing")
	renderCmd.Flags().BoolVar(&renderTrace, "trace", false, "Echo each applied option to stderr as it is set")
	renderCmd.Flags().BoolVar(&renderProvenance, "provenance", false, "Report the config tree's git state before rendering")
}
