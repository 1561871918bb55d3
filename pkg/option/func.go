package option

import "fmt"

// Func binds a config key to a setter/getter pair supplied by the host
// instead of a storage location. An optional Transform converts the raw
// text; without one the generic scalar parse for T is used. Either way
// the setter is only invoked after a successful conversion.
type Func[T Value] struct {
	name        string
	description string
	defaultVal  string
	hasDefault  bool
	set         func(T) error
	get         func() T
	transform   func(string) (T, error)
}

// NewFunc creates a function-bound option. get may be nil when the host
// never reads the value back through the option.
func NewFunc[T Value](name string, set func(T) error, get func() T) *Func[T] {
	return &Func[T]{name: name, set: set, get: get}
}

// Name returns the option name.
func (o *Func[T]) Name() string { return o.name }

// Description returns the documentation text for the option.
func (o *Func[T]) Description() string { return o.description }

// WithDescription sets the documentation text and returns o for chaining.
func (o *Func[T]) WithDescription(d string) *Func[T] {
	o.description = d
	return o
}

// Default stores the string representation of v as the default value.
// Parsed lazily by ApplyDefault.
func (o *Func[T]) Default(v any) *Func[T] {
	o.defaultVal = fmt.Sprint(v)
	o.hasDefault = true
	return o
}

// Transform registers a custom string-to-T conversion applied before
// the setter. Returns o for chaining.
func (o *Func[T]) Transform(f func(string) (T, error)) *Func[T] {
	o.transform = f
	return o
}

// SetValue converts raw (via the Transform if registered, otherwise the
// generic scalar parse) and forwards the result to the setter. A failed
// conversion returns a ParseError and never reaches the setter.
func (o *Func[T]) SetValue(raw string) error {
	var v T
	var err error
	if o.transform != nil {
		v, err = o.transform(raw)
	} else {
		v, err = parseValue[T](raw)
	}
	if err != nil {
		return &ParseError{Option: o.name, Raw: raw, Err: err}
	}

	if o.set == nil {
		return fmt.Errorf("option %q: no setter configured", o.name)
	}
	if err := o.set(v); err != nil {
		return fmt.Errorf("option %q: %w", o.name, err)
	}
	return nil
}

// ApplyDefault assigns the configured default through SetValue. It is a
// no-op when no default was configured.
func (o *Func[T]) ApplyDefault() error {
	if !o.hasDefault {
		return nil
	}
	return o.SetValue(o.defaultVal)
}

// Get returns the value reported by the getter, or the zero value when
// no getter was configured.
func (o *Func[T]) Get() T {
	if o.get == nil {
		var zero T
		return zero
	}
	return o.get()
}
