package option

// Option is the type-erased capability shared by every concrete option
// variant. The parser stores Options in a single registry keyed by name
// and dispatches to them without knowing the underlying bound type.
type Option interface {
	// Name returns the key the option is registered under.
	Name() string

	// Description returns the free-text documentation for the option.
	// It has no behavioral effect.
	Description() string

	// SetValue parses raw into the bound type and writes the result
	// through the binding. The binding keeps its previous value when
	// parsing fails.
	SetValue(raw string) error

	// ApplyDefault behaves exactly like SetValue with the configured
	// default value, and is a no-op when no default was configured.
	ApplyDefault() error
}
