package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/nauticalab/confline/internal/api"
	"github.com/nauticalab/confline/internal/git"
	"github.com/nauticalab/confline/internal/schema"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	SchemaPath string
	Port       int
	Bind       string
	Verbose    bool

	Version   string
	GitCommit string
	BuildTime string
}

// ServeRun loads the schema and runs the inspection API server until
// ctx is canceled.
func ServeRun(ctx context.Context, opts ServeOptions) error {
	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	sch, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	provenance := ""
	if prov, err := git.Describe(filepath.Dir(opts.SchemaPath)); err == nil {
		provenance = prov.Summary()
		logger.Info("schema tree provenance", zap.String("provenance", provenance))
	}

	server, err := api.NewServer(api.ServerConfig{
		Port:       opts.Port,
		Bind:       opts.Bind,
		Schema:     sch,
		Logger:     logger,
		Version:    opts.Version,
		GitCommit:  opts.GitCommit,
		BuildTime:  opts.BuildTime,
		GoVersion:  runtime.Version(),
		Provenance: provenance,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("serving schema",
		zap.String("schema", sch.Name),
		zap.String("path", opts.SchemaPath),
		zap.Int("options", len(sch.Options)),
		zap.Int("subcommands", len(sch.Subcommands)),
	)

	return server.StartWithContext(ctx)
}

// newLogger builds the process logger. Verbose mode switches to the
// human-oriented development encoder at debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
