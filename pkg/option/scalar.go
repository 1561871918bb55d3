package option

import "fmt"

// Scalar binds a config key to a single host-owned variable of type T.
type Scalar[T Value] struct {
	name        string
	description string
	ptr         *T
	defaultVal  string
	hasDefault  bool
}

// NewScalar creates a scalar option bound to ptr. The bound type is
// fixed at construction time and every SetValue must parse to it.
func NewScalar[T Value](name string, ptr *T) *Scalar[T] {
	return &Scalar[T]{name: name, ptr: ptr}
}

// Name returns the option name.
func (o *Scalar[T]) Name() string { return o.name }

// Description returns the documentation text for the option.
func (o *Scalar[T]) Description() string { return o.description }

// WithDescription sets the documentation text and returns o for chaining.
func (o *Scalar[T]) WithDescription(d string) *Scalar[T] {
	o.description = d
	return o
}

// Default stores the string representation of v as the default value.
// The text is parsed lazily by ApplyDefault, not here, so an invalid
// default surfaces as a ParseError at apply time.
func (o *Scalar[T]) Default(v any) *Scalar[T] {
	o.defaultVal = fmt.Sprint(v)
	o.hasDefault = true
	return o
}

// SetValue parses raw as T and overwrites the bound variable. The
// variable keeps its previous value when parsing fails.
func (o *Scalar[T]) SetValue(raw string) error {
	v, err := parseValue[T](raw)
	if err != nil {
		return &ParseError{Option: o.name, Raw: raw, Err: err}
	}
	*o.ptr = v
	return nil
}

// ApplyDefault assigns the configured default through SetValue. It is a
// no-op when no default was configured.
func (o *Scalar[T]) ApplyDefault() error {
	if !o.hasDefault {
		return nil
	}
	return o.SetValue(o.defaultVal)
}

// Get returns the currently bound value.
func (o *Scalar[T]) Get() T { return *o.ptr }
