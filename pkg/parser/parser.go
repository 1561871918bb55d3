package parser

import (
	"github.com/nauticalab/confline/pkg/option"
)

// DefaultDelimiter separates keys from values when no delimiter is
// configured.
const DefaultDelimiter = ":"

// Observer is invoked once per dispatched key during Parse, before the
// value is applied. It replaces hardwired echo-style diagnostics with
// an injectable hook; a nil observer costs nothing.
type Observer func(name, value string)

// Parser owns a registry of type-erased options and an optional tree of
// named subcommand nodes, and applies line-oriented config input to
// them. Construct with New, register options and subcommands, then call
// Parse. Not safe for concurrent use.
type Parser struct {
	name        string
	description string
	delimiter   string
	options     map[string]option.Option
	subcommands map[string]*Parser
	active      *Parser // non-owning, points into subcommands
	observer    Observer
}

// Opt configures a Parser created by New.
type Opt func(*Parser)

// WithDelimiter overrides the key/value delimiter. The empty string is
// ignored and keeps the default.
func WithDelimiter(d string) Opt {
	return func(p *Parser) {
		if d != "" {
			p.delimiter = d
		}
	}
}

// WithObserver installs a hook invoked for every dispatched key.
func WithObserver(o Observer) Opt {
	return func(p *Parser) {
		p.observer = o
	}
}

// WithName sets the parser's name and description. Mostly useful for
// diagnostics on the root node; subcommand nodes are named at
// registration time.
func WithName(name, description string) Opt {
	return func(p *Parser) {
		p.name = name
		p.description = description
	}
}

// New creates an empty root parser node.
func New(opts ...Opt) *Parser {
	p := &Parser{
		delimiter:   DefaultDelimiter,
		options:     make(map[string]option.Option),
		subcommands: make(map[string]*Parser),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Name returns the node name; empty for an unnamed root.
func (p *Parser) Name() string { return p.name }

// Description returns the node description.
func (p *Parser) Description() string { return p.description }

// Delimiter returns the key/value delimiter in effect.
func (p *Parser) Delimiter() string { return p.delimiter }

// Add registers a pre-built option under its own name. The registry
// stores only the type-erased interface; hosts usually prefer the
// generic AddOption/AddSliceOption/AddEnumOption/AddFuncOption helpers,
// which construct, register and return the concrete option in one call.
func (p *Parser) Add(opt option.Option) error {
	if _, exists := p.options[opt.Name()]; exists {
		return &DuplicateNameError{Name: opt.Name(), Kind: "option"}
	}
	p.options[opt.Name()] = opt
	return nil
}

// Option returns the registered option for name, if any.
func (p *Parser) Option(name string) (option.Option, bool) {
	opt, ok := p.options[name]
	return opt, ok
}

// Options returns a copy of the registry; mutating it does not affect
// the parser. Iteration order is unspecified, callers sort when they
// care.
func (p *Parser) Options() map[string]option.Option {
	out := make(map[string]option.Option, len(p.options))
	for k, v := range p.options {
		out[k] = v
	}
	return out
}

// ApplyDefaults applies every registered option's default at this node.
// Options without a configured default are untouched, as are subcommand
// nodes. Stops at the first failing default.
func (p *Parser) ApplyDefaults() error {
	for _, opt := range p.options {
		if err := opt.ApplyDefault(); err != nil {
			return err
		}
	}
	return nil
}

// AddOption constructs a scalar option bound to ptr, registers it and
// returns the concrete handle for chained configuration. Fails with a
// DuplicateNameError when name is already taken at this node.
func AddOption[T option.Value](p *Parser, name string, ptr *T, description ...string) (*option.Scalar[T], error) {
	opt := option.NewScalar(name, ptr).WithDescription(first(description))
	if err := p.Add(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// AddSliceOption constructs a sequence option bound to ptr, registers
// it and returns the concrete handle.
func AddSliceOption[T option.Value](p *Parser, name string, ptr *[]T, description ...string) (*option.Sequence[T], error) {
	opt := option.NewSequence(name, ptr).WithDescription(first(description))
	if err := p.Add(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// AddEnumOption constructs an enum option bound to ptr, registers it
// and returns the concrete handle.
func AddEnumOption[T option.Enumerable](p *Parser, name string, ptr *T, description ...string) (*option.Enum[T], error) {
	opt := option.NewEnum(name, ptr).WithDescription(first(description))
	if err := p.Add(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// AddFuncOption constructs a function-bound option around a setter and
// getter pair, registers it and returns the concrete handle.
func AddFuncOption[T option.Value](p *Parser, name string, set func(T) error, get func() T, description ...string) (*option.Func[T], error) {
	opt := option.NewFunc(name, set, get).WithDescription(first(description))
	if err := p.Add(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// first collapses an optional trailing description argument.
func first(description []string) string {
	if len(description) > 0 {
		return description[0]
	}
	return ""
}
