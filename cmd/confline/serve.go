package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nauticalab/confline/internal/cli"
)

var (
	// Serve command flags
	servePort int
	serveBind string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the schema inspection HTTP API server",
	Long: `Start the schema inspection HTTP API server.

The server loads one schema and exposes it over HTTP:
  GET  /api/v1/health  - Health check
  GET  /api/v1/version - Version information
  GET  /api/v1/options - List declared options with resolved defaults
  POST /api/v1/render  - Parse a posted config document

Each render request parses independently; nothing is shared between
requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveBind, "bind", "b", "0.0.0.0", "Address to bind to")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	resolved, err := cli.ResolveSchemaPath(schemaPath)
	if err != nil {
		return err
	}

	if err := cli.ServeRun(ctx, cli.ServeOptions{
		SchemaPath: resolved,
		Port:       servePort,
		Bind:       serveBind,
		Verbose:    verbose,
		Version:    version,
		GitCommit:  gitCommit,
		BuildTime:  buildTime,
	}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	fmt.Println("Server shutdown complete")
	return nil
}
