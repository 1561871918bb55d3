package option

import (
	"fmt"
	"strings"
)

// Sequence binds a config key to a host-owned slice of type []T. The
// value text is split on literal commas and every token is parsed as T.
// A successful SetValue fully replaces the slice contents; a later
// assignment to the same key discards an earlier one.
type Sequence[T Value] struct {
	name        string
	description string
	ptr         *[]T
	defaultVal  string
	hasDefault  bool
	expected    int
}

// NewSequence creates a sequence option bound to ptr.
func NewSequence[T Value](name string, ptr *[]T) *Sequence[T] {
	return &Sequence[T]{name: name, ptr: ptr}
}

// Name returns the option name.
func (o *Sequence[T]) Name() string { return o.name }

// Description returns the documentation text for the option.
func (o *Sequence[T]) Description() string { return o.description }

// WithDescription sets the documentation text and returns o for chaining.
func (o *Sequence[T]) WithDescription(d string) *Sequence[T] {
	o.description = d
	return o
}

// Default stores the string representation of v as the default value,
// e.g. "1,2,3" for an integer sequence. Parsed lazily by ApplyDefault.
func (o *Sequence[T]) Default(v any) *Sequence[T] {
	o.defaultVal = fmt.Sprint(v)
	o.hasDefault = true
	return o
}

// Expected requires every assignment to carry exactly n elements. Zero,
// the initial state, leaves the count unconstrained.
func (o *Sequence[T]) Expected(n int) *Sequence[T] {
	o.expected = n
	return o
}

// SetValue splits raw on commas, parses each token as T and replaces
// the bound slice. The slice is left unchanged when any token fails to
// parse or when the element count violates the Expected constraint.
func (o *Sequence[T]) SetValue(raw string) error {
	// Parse into a temporary first so a mid-sequence failure never
	// leaves the binding half written.
	var vals []T
	if raw != "" {
		tokens := strings.Split(raw, ",")
		vals = make([]T, 0, len(tokens))
		for _, tok := range tokens {
			v, err := parseValue[T](tok)
			if err != nil {
				return &ParseError{Option: o.name, Raw: tok, Err: err}
			}
			vals = append(vals, v)
		}
	}

	if o.expected > 0 && len(vals) != o.expected {
		return &CountMismatchError{Option: o.name, Want: o.expected, Got: len(vals)}
	}

	*o.ptr = vals
	return nil
}

// ApplyDefault assigns the configured default through SetValue. It is a
// no-op when no default was configured.
func (o *Sequence[T]) ApplyDefault() error {
	if !o.hasDefault {
		return nil
	}
	return o.SetValue(o.defaultVal)
}

// Get returns the currently bound slice.
func (o *Sequence[T]) Get() []T { return *o.ptr }
