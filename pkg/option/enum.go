package option

import (
	"strconv"
	"strings"
)

// Enumerable covers the integer types, named or not, that enum options
// can bind to.
type Enumerable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum binds a config key to an integer-backed enum variable. Values
// are parsed as the enum's underlying integer representation; symbolic
// names are not resolved here (bind a [Func] with a Transform for that).
type Enum[T Enumerable] struct {
	name        string
	description string
	ptr         *T
	defaultVal  string
	hasDefault  bool
}

// NewEnum creates an enum option bound to ptr.
func NewEnum[T Enumerable](name string, ptr *T) *Enum[T] {
	return &Enum[T]{name: name, ptr: ptr}
}

// Name returns the option name.
func (o *Enum[T]) Name() string { return o.name }

// Description returns the documentation text for the option.
func (o *Enum[T]) Description() string { return o.description }

// WithDescription sets the documentation text and returns o for chaining.
func (o *Enum[T]) WithDescription(d string) *Enum[T] {
	o.description = d
	return o
}

// Default stores v's underlying integer representation as the default.
// Taking T keeps Stringer-implementing enum types from formatting as
// their symbolic name.
func (o *Enum[T]) Default(v T) *Enum[T] {
	o.defaultVal = strconv.FormatInt(int64(v), 10)
	o.hasDefault = true
	return o
}

// SetValue parses raw as the underlying integer and reinterprets it as
// T. The bound variable is unchanged when parsing fails.
func (o *Enum[T]) SetValue(raw string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return &ParseError{Option: o.name, Raw: raw, Err: err}
	}
	*o.ptr = T(n)
	return nil
}

// ApplyDefault assigns the configured default through SetValue. It is a
// no-op when no default was configured.
func (o *Enum[T]) ApplyDefault() error {
	if !o.hasDefault {
		return nil
	}
	return o.SetValue(o.defaultVal)
}

// Get returns the currently bound value.
func (o *Enum[T]) Get() T { return *o.ptr }
