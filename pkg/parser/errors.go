package parser

import "fmt"

// DuplicateNameError reports an option or subcommand registration whose
// name already exists at the node. The original registration stays in
// place; nothing is silently overwritten.
type DuplicateNameError struct {
	// Name is the rejected registration name.
	Name string
	// Kind is "option" or "subcommand".
	Kind string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Name)
}

// UnknownSubcommandError reports a SelectSubcommand call naming a child
// that was never registered. This is a programming mistake by the host,
// not a data problem, so it is always a hard error.
type UnknownSubcommandError struct {
	Name string
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("unknown subcommand %q", e.Name)
}

// LineError wraps a value-conversion failure with the input context
// needed to diagnose it.
type LineError struct {
	// Line is the full offending input line.
	Line string
	// LineNo is the 1-based position of the line within the input.
	LineNo int
	// Option is the name the line was addressed to.
	Option string
	// Err is the underlying option error.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.LineNo, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
