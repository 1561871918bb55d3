package cli

import (
	"fmt"
	"os"

	"github.com/nauticalab/confline/internal/schema"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	SchemaPath string
	Verbose    bool
}

// ValidateRun checks a schema file and reports every error and warning.
func ValidateRun(opts ValidateOptions) {
	fmt.Printf("🔍 Validating schema: %s\n", opts.SchemaPath)

	sch, result, err := schema.Inspect(opts.SchemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	printValidationResult(sch, result, opts.Verbose)

	if !result.IsValid {
		os.Exit(1)
	}
}

// printValidationResult prints the validation results in a user-friendly format
func printValidationResult(sch *schema.Schema, result *schema.ValidationResult, verbose bool) {
	// Print warnings first
	for _, warning := range result.Warnings {
		fmt.Printf("⚠️  Warning: %s\n", warning.Message)
	}

	// Print errors with context-specific messaging
	for _, err := range result.Errors {
		switch err.Type {
		case "duplicate":
			fmt.Printf("❌ Duplicate Name: %s\n", err.Message)
		case "bad_default":
			fmt.Printf("❌ Bad Default: %s\n", err.Message)
		case "invalid":
			fmt.Printf("❌ Schema Error: %s\n", err.Message)
		default:
			fmt.Printf("❌ Error: %s\n", err.Message)
		}
	}

	// Print summary
	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		fmt.Printf("✅ Schema %q is valid!\n", sch.Name)
	} else if result.IsValid {
		fmt.Printf("✅ Schema %q is valid (%d warnings)\n", sch.Name, len(result.Warnings))
	} else {
		fmt.Printf("❌ Validation failed with %d errors and %d warnings\n", len(result.Errors), len(result.Warnings))

		// Provide helpful suggestions
		hasDuplicates := false
		for _, err := range result.Errors {
			if err.Type == "duplicate" && !hasDuplicates {
				fmt.Println("\n💡 Suggestions:")
				fmt.Println("   • Give each option a unique name within its node")
				fmt.Println("   • Subcommands may reuse names from other nodes")
				hasDuplicates = true
			}
		}
	}

	if verbose && result.IsValid {
		fmt.Printf("\nDeclared options:\n")
		for _, opt := range sch.Options {
			printOptionSummary("", opt)
		}
		for _, sub := range sch.Subcommands {
			for _, opt := range sub.Options {
				printOptionSummary(sub.Name+".", opt)
			}
		}
	}
}

func printOptionSummary(prefix string, opt schema.OptionSpec) {
	line := fmt.Sprintf("  %s%s (%s)", prefix, opt.Name, opt.Type)
	if opt.Default != nil {
		line += fmt.Sprintf(" default=%q", *opt.Default)
	}
	if opt.Expected > 0 {
		line += fmt.Sprintf(" expected=%d", opt.Expected)
	}
	if len(opt.Choices) > 0 {
		line += fmt.Sprintf(" choices=%v", opt.Choices)
	}
	fmt.Println(line)
}
