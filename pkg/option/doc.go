// Package option implements the typed option bindings consumed by the
// confline parser. A host application binds a config key to one of four
// variants and registers it with a [parser.Parser]:
//
//   - [Scalar] binds a single host-owned variable (string, bool, integer
//     or float types).
//   - [Sequence] binds a host-owned slice; values are comma-separated and
//     every successful assignment fully replaces the slice.
//   - [Enum] binds an integer-backed enum variable; values are parsed as
//     the underlying integer representation.
//   - [Func] binds a setter/getter pair instead of a storage location,
//     with an optional custom string transform.
//
// All variants implement the type-erased [Option] interface, which is
// what the parser registry stores. Constructors return the concrete
// variant so configuration calls can be chained with full type
// information:
//
//	var count int
//	opt := option.NewScalar("count", &count).Default(3).WithDescription("worker count")
//
// Parse failures are reported as *[ParseError]; a sequence whose element
// count violates a configured [Sequence.Expected] constraint is reported
// as *[CountMismatchError]. On any failure the bound variable is left
// unchanged — there are no partial writes.
package option
