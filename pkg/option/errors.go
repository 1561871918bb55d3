package option

import "fmt"

// ParseError reports a raw value that could not be converted to an
// option's bound type.
type ParseError struct {
	// Option is the name of the option the value was destined for.
	Option string
	// Raw is the offending input text.
	Raw string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("option %q: cannot parse %q: %v", e.Option, e.Raw, e.Err)
	}
	return fmt.Sprintf("option %q: cannot parse %q", e.Option, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CountMismatchError reports a sequence whose parsed element count does
// not match the configured expected count.
type CountMismatchError struct {
	// Option is the name of the sequence option.
	Option string
	// Want is the configured expected element count.
	Want int
	// Got is the element count actually parsed.
	Got int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("option %q: expected %d elements, got %d", e.Option, e.Want, e.Got)
}
