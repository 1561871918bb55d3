package schema

import (
	"fmt"
	"strings"

	"github.com/nauticalab/confline/pkg/option"
	"github.com/nauticalab/confline/pkg/parser"
)

// ValidationResult contains all validation results for a schema.
type ValidationResult struct {
	// Errors is a list of fatal validation errors
	Errors []ValidationError
	// Warnings is a list of non-fatal validation warnings
	Warnings []ValidationWarning
	// IsValid indicates if the validation passed (no errors)
	IsValid bool
}

// ValidationError represents a validation failure
type ValidationError struct {
	// Type is the category of error (e.g., "duplicate", "bad_default", "invalid")
	Type string
	// Option is the qualified option name involved, if applicable
	Option string
	// Message is a human-readable error description
	Message string
}

// ValidationWarning represents a non-fatal validation issue
type ValidationWarning struct {
	Type    string
	Option  string
	Message string
}

// Check runs the structural rules that struct tags cannot express:
// duplicate names per node, type/constraint agreement, parseable
// defaults, and delimiter-safe option names.
func (s *Schema) Check() *ValidationResult {
	result := &ValidationResult{}

	delimiter := s.Delimiter
	if delimiter == "" {
		delimiter = parser.DefaultDelimiter
	}

	s.checkNode("", s.Options, delimiter, result)

	seenSubs := make(map[string]bool)
	for _, sub := range s.Subcommands {
		if seenSubs[sub.Name] {
			result.addError("duplicate", sub.Name,
				fmt.Sprintf("subcommand %q declared more than once", sub.Name))
			continue
		}
		seenSubs[sub.Name] = true
		s.checkNode(sub.Name+".", sub.Options, delimiter, result)
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// checkNode validates the options of one parser node. prefix qualifies
// names in messages ("" for the root node, "<sub>." for subcommands).
func (s *Schema) checkNode(prefix string, options []OptionSpec, delimiter string, result *ValidationResult) {
	seen := make(map[string]bool)

	for i := range options {
		spec := &options[i]
		qualified := prefix + spec.Name

		if seen[spec.Name] {
			result.addError("duplicate", qualified,
				fmt.Sprintf("option %q declared more than once", qualified))
			continue
		}
		seen[spec.Name] = true

		if strings.Contains(spec.Name, delimiter) {
			result.addError("invalid", qualified,
				fmt.Sprintf("option name %q contains the delimiter %q and could never match", qualified, delimiter))
		}
		if strings.ContainsAny(spec.Name, " \t") {
			result.addWarning("suspicious", qualified,
				fmt.Sprintf("option name %q contains whitespace", qualified))
		}

		if spec.Expected > 0 && !spec.IsList() {
			result.addError("invalid", qualified,
				fmt.Sprintf("option %q: expected count only applies to list types, not %q", qualified, spec.Type))
		}

		switch {
		case spec.Type == TypeChoice && len(spec.Choices) == 0:
			result.addError("invalid", qualified,
				fmt.Sprintf("option %q: choice type requires a non-empty choices list", qualified))
		case spec.Type != TypeChoice && len(spec.Choices) > 0:
			result.addWarning("suspicious", qualified,
				fmt.Sprintf("option %q: choices are ignored for type %q", qualified, spec.Type))
		}

		if spec.Default != nil {
			if err := checkDefault(spec); err != nil {
				result.addError("bad_default", qualified,
					fmt.Sprintf("option %q: default %q: %v", qualified, *spec.Default, err))
			}
		}
	}
}

// checkDefault proves a declared default parseable by binding a
// throwaway option of the declared type and applying it.
func checkDefault(spec *OptionSpec) error {
	var opt option.Option
	switch spec.Type {
	case TypeString:
		var v string
		opt = option.NewScalar(spec.Name, &v).Default(*spec.Default)
	case TypeInt:
		var v int64
		opt = option.NewScalar(spec.Name, &v).Default(*spec.Default)
	case TypeFloat:
		var v float64
		opt = option.NewScalar(spec.Name, &v).Default(*spec.Default)
	case TypeBool:
		var v bool
		opt = option.NewScalar(spec.Name, &v).Default(*spec.Default)
	case TypeStrings:
		var v []string
		opt = option.NewSequence(spec.Name, &v).Default(*spec.Default).Expected(spec.Expected)
	case TypeInts:
		var v []int64
		opt = option.NewSequence(spec.Name, &v).Default(*spec.Default).Expected(spec.Expected)
	case TypeFloats:
		var v []float64
		opt = option.NewSequence(spec.Name, &v).Default(*spec.Default).Expected(spec.Expected)
	case TypeChoice:
		opt = option.NewFunc(spec.Name,
			func(string) error { return nil }, nil).
			Transform(choiceTransform(spec.Choices)).
			Default(*spec.Default)
	default:
		// Unknown types are reported by the option_type validator.
		return nil
	}
	return opt.ApplyDefault()
}

func (r *ValidationResult) addError(errType, optName, message string) {
	r.Errors = append(r.Errors, ValidationError{Type: errType, Option: optName, Message: message})
}

func (r *ValidationResult) addWarning(warnType, optName, message string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Type: warnType, Option: optName, Message: message})
}
