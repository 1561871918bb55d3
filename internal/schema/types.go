package schema

// Option type names accepted in schema documents.
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeBool    = "bool"
	TypeStrings = "strings"
	TypeInts    = "ints"
	TypeFloats  = "floats"
	TypeChoice  = "choice"
)

// Schema declares the options a config document may carry.
type Schema struct {
	Name        string           `yaml:"name" validate:"required"`
	Description string           `yaml:"description,omitempty"`
	Delimiter   string           `yaml:"delimiter,omitempty"`
	Options     []OptionSpec     `yaml:"options" validate:"required,min=1,dive"`
	Subcommands []SubcommandSpec `yaml:"subcommands,omitempty" validate:"dive"`
}

// OptionSpec declares one option binding.
type OptionSpec struct {
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type" validate:"required,option_type"`
	Description string `yaml:"description,omitempty"`
	// Default is the string form handed to the option builder. A
	// pointer so an explicit empty default can be told apart from an
	// absent one.
	Default *string `yaml:"default,omitempty"`
	// Expected constrains list types to an exact element count. Zero
	// means unconstrained.
	Expected int `yaml:"expected,omitempty" validate:"min=0"`
	// Choices enumerates the accepted values for the choice type.
	Choices []string `yaml:"choices,omitempty"`
}

// SubcommandSpec declares a named child scope with its own options.
type SubcommandSpec struct {
	Name        string       `yaml:"name" validate:"required"`
	Description string       `yaml:"description,omitempty"`
	Options     []OptionSpec `yaml:"options" validate:"required,min=1,dive"`
}

// IsList reports whether the spec declares a sequence-backed type.
func (s *OptionSpec) IsList() bool {
	switch s.Type {
	case TypeStrings, TypeInts, TypeFloats:
		return true
	}
	return false
}
