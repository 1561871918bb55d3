// Package parser implements the line-oriented key/value config parser
// at the heart of confline. A [Parser] owns a registry of type-erased
// [option.Option] bindings and dispatches each `name<delimiter>value`
// input line to the matching option by name.
//
// # Input format
//
// One assignment per line, split on a configurable delimiter (":" by
// default). Blank lines and lines whose first non-space character is
// '#' are ignored, as are lines without a delimiter occurrence and
// lines whose key matches no registered option — the format is
// deliberately permissive so shared config files can carry keys this
// host does not know about. Sequence values are comma-separated inside
// the value portion:
//
//	# tuning
//	name:foo
//	count:3
//	points:1,2,3
//
// There is no quoting, escaping or nesting; this is not a YAML parser.
//
// # Usage
//
// Hosts register options before parsing. Registration helpers are
// package-level generic functions (Go methods cannot introduce type
// parameters) that store the type-erased interface in the registry and
// hand back the concrete option for chained configuration:
//
//	p := parser.New()
//	var count int
//	opt, err := parser.AddOption(p, "count", &count)
//	if err != nil { ... }
//	opt.Default(8)
//
//	if err := p.Parse(lines); err != nil { ... }
//
// Parsing is fail-fast: the first value that cannot be converted aborts
// Parse and is returned wrapped in a *[LineError] carrying the offending
// line, option name and line number.
//
// A Parser may own named subcommand nodes, each with its own registry,
// one of which can be selected as active; keys unknown at a node are
// offered to its active subcommand before being ignored.
//
// Parsers are not safe for concurrent use: option values are written in
// place without synchronization.
package parser
