package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose    bool
	schemaPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confline",
	Short: "Parse line-oriented config documents against typed option schemas",
	Long: `Confline resolves simple key/value config documents into typed values.

A schema file declares the options a document may carry: scalars, lists,
and constrained choices, with optional defaults and per-subcommand
scopes. Confline parses documents against that schema, validates schema
files, and serves schemas over an HTTP inspection API.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Path to the schema file (defaults to ~/.confline/config.yaml schemaPath)")

	// Add subcommands to root
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
