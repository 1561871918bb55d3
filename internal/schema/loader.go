package schema

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Package-level validator used by Load/Validate.
var validate *validator.Validate

var optionTypes = map[string]bool{
	TypeString:  true,
	TypeInt:     true,
	TypeFloat:   true,
	TypeBool:    true,
	TypeStrings: true,
	TypeInts:    true,
	TypeFloats:  true,
	TypeChoice:  true,
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("option_type", validateOptionType); err != nil {
		panic(fmt.Errorf("register validator option_type: %w", err))
	}
}

// validateOptionType implements the "option_type" tag: the field must
// name one of the supported option types.
func validateOptionType(fl validator.FieldLevel) bool {
	return optionTypes[fl.Field().String()]
}

// Load reads and parses a schema document from path. The YAML decode is
// strict: unknown fields are an error, so typos in schema files surface
// immediately instead of silently dropping a constraint.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid schema in %s: %w", path, err)
	}
	return s, nil
}

// Inspect reads a schema document and reports its full check result,
// warnings included. Unlike Load it does not gate on check errors; the
// returned error covers only read, decode, and struct-tag failures.
func Inspect(path string) (*Schema, *ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var s Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate.Struct(&s); err != nil {
		return nil, nil, fmt.Errorf("schema validation failed: %w", err)
	}

	return &s, s.Check(), nil
}

// Parse decodes and validates a schema document from raw YAML bytes.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	// Structural rules validator tags cannot express
	if result := s.Check(); !result.IsValid {
		return nil, fmt.Errorf("schema check failed: %s", result.Errors[0].Message)
	}

	return &s, nil
}
