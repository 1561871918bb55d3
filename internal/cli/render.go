package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/confline/internal/git"
	"github.com/nauticalab/confline/internal/schema"
	"github.com/nauticalab/confline/pkg/parser"
)

// RenderOptions holds configuration for the render command
type RenderOptions struct {
	SchemaPath string
	ConfigPath string
	Subcommand string
	Trace      bool
	Provenance bool
	Verbose    bool
}

// RenderRun parses one config document against a schema and prints the
// resolved values as YAML. ConfigPath "-" reads the document from stdin.
func RenderRun(opts RenderOptions) {
	sch, err := schema.Load(opts.SchemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load schema: %v\n", err)
		os.Exit(1)
	}

	if opts.Verbose {
		fmt.Printf("Schema: %s (%d options", sch.Name, len(sch.Options))
		if len(sch.Subcommands) > 0 {
			fmt.Printf(", %d subcommands", len(sch.Subcommands))
		}
		fmt.Println(")")
	}
	if opts.Provenance || opts.Verbose {
		printProvenance(opts.ConfigPath)
	}

	var pOpts []parser.Opt
	if opts.Trace {
		pOpts = append(pOpts, parser.WithObserver(func(name, value string) {
			fmt.Fprintf(os.Stderr, "   %s = %s\n", name, value)
		}))
	}

	p, doc, err := sch.Build(pOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to build option registry: %v\n", err)
		os.Exit(1)
	}

	if opts.Subcommand != "" {
		if err := p.SelectSubcommand(opts.Subcommand); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	}

	if err := applyDefaults(p); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to apply defaults: %v\n", err)
		os.Exit(1)
	}

	in, err := openConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	if err := p.ParseReader(in); err != nil {
		printParseError(err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(doc.Resolved())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to render values: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// openConfig opens the config document, treating "-" as stdin.
func openConfig(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	return f, nil
}

// applyDefaults resolves defaults on the root node and every
// subcommand node before any document line is applied.
func applyDefaults(p *parser.Parser) error {
	if err := p.ApplyDefaults(); err != nil {
		return err
	}
	for _, child := range p.Subcommands() {
		if err := child.ApplyDefaults(); err != nil {
			return err
		}
	}
	return nil
}

// printParseError reports a rejected document line with its position
// when the failure carries one.
func printParseError(err error) {
	var lineErr *parser.LineError
	if errors.As(err, &lineErr) {
		fmt.Fprintf(os.Stderr, "❌ Line %d rejected: %v\n", lineErr.LineNo, lineErr.Err)
		fmt.Fprintf(os.Stderr, "   %s\n", lineErr.Line)
		return
	}
	fmt.Fprintf(os.Stderr, "❌ Parse failed: %v\n", err)
}

// printProvenance reports the config tree's repository state, if the
// document lives inside one.
func printProvenance(configPath string) {
	if configPath == "" || configPath == "-" {
		return
	}
	prov, err := git.Describe(filepath.Dir(configPath))
	if err != nil {
		return // not in a repository, nothing to report
	}
	fmt.Printf("Config tree: %s\n", prov.Summary())
}
