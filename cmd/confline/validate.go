package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalab/confline/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schema file",
	Long: `Validate a schema file for common issues.

This command checks for:
- Duplicate option or subcommand names within a node
- Defaults that the declared option type cannot parse
- Choice options without a choices list
- Option names that contain the delimiter

Examples:
  confline validate --schema schema.yaml
  confline validate -s schema.yaml --verbose`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resolved, err := cli.ResolveSchemaPath(schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cli.ValidateRun(cli.ValidateOptions{
			SchemaPath: resolved,
			Verbose:    verbose,
		})
	},
}
