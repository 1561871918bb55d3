package schema

import (
	"fmt"
	"strings"

	"github.com/nauticalab/confline/pkg/parser"
)

// Build wires a parser from the schema declaration: one registered
// option per spec, bound into a fresh Document, plus a child node per
// subcommand spec. Extra parser options (an observer, usually) are
// appended after the schema-derived ones.
//
// Every call builds independent storage, so concurrent consumers can
// each Build their own parser instead of sharing one.
func (s *Schema) Build(opts ...parser.Opt) (*parser.Parser, *Document, error) {
	pOpts := []parser.Opt{
		parser.WithDelimiter(s.Delimiter),
		parser.WithName(s.Name, s.Description),
	}
	pOpts = append(pOpts, opts...)
	p := parser.New(pOpts...)
	doc := newDocument()

	if err := buildNode(p, "", s.Options, doc); err != nil {
		return nil, nil, err
	}

	for _, sub := range s.Subcommands {
		child, err := p.AddSubcommand(sub.Name, sub.Description)
		if err != nil {
			return nil, nil, fmt.Errorf("subcommand %q: %w", sub.Name, err)
		}
		if err := buildNode(child, sub.Name+".", sub.Options, doc); err != nil {
			return nil, nil, err
		}
	}

	return p, doc, nil
}

// buildNode registers one node's options, each bound to a document
// entry slot matching its declared type.
func buildNode(p *parser.Parser, prefix string, options []OptionSpec, doc *Document) error {
	for _, spec := range options {
		e := doc.add(prefix+spec.Name, spec)
		if err := register(p, spec, e); err != nil {
			return fmt.Errorf("option %q: %w", prefix+spec.Name, err)
		}
	}
	return nil
}

func register(p *parser.Parser, spec OptionSpec, e *Entry) error {
	switch spec.Type {
	case TypeString:
		opt, err := parser.AddOption(p, spec.Name, &e.str, spec.Description)
		if err != nil {
			return err
		}
		applyDefaultSpec(opt.Default, spec)
	case TypeBool:
		opt, err := parser.AddOption(p, spec.Name, &e.boolean, spec.Description)
		if err != nil {
			return err
		}
		applyDefaultSpec(opt.Default, spec)
	case TypeInt:
		opt, err := parser.AddOption(p, spec.Name, &e.integer, spec.Description)
		if err != nil {
			return err
		}
		applyDefaultSpec(opt.Default, spec)
	case TypeFloat:
		opt, err := parser.AddOption(p, spec.Name, &e.float, spec.Description)
		if err != nil {
			return err
		}
		applyDefaultSpec(opt.Default, spec)
	case TypeStrings:
		opt, err := parser.AddSliceOption(p, spec.Name, &e.strs, spec.Description)
		if err != nil {
			return err
		}
		opt.Expected(spec.Expected)
		applyDefaultSpec(opt.Default, spec)
	case TypeInts:
		opt, err := parser.AddSliceOption(p, spec.Name, &e.ints, spec.Description)
		if err != nil {
			return err
		}
		opt.Expected(spec.Expected)
		applyDefaultSpec(opt.Default, spec)
	case TypeFloats:
		opt, err := parser.AddSliceOption(p, spec.Name, &e.floats, spec.Description)
		if err != nil {
			return err
		}
		opt.Expected(spec.Expected)
		applyDefaultSpec(opt.Default, spec)
	case TypeChoice:
		opt, err := parser.AddFuncOption(p, spec.Name,
			func(v string) error { e.str = v; return nil },
			func() string { return e.str },
			spec.Description)
		if err != nil {
			return err
		}
		opt.Transform(choiceTransform(spec.Choices))
		applyDefaultSpec(opt.Default, spec)
	default:
		return fmt.Errorf("unsupported option type %q", spec.Type)
	}
	return nil
}

// applyDefaultSpec forwards a declared default, if any, to the concrete
// option's Default method. The builder methods all share the
// func(any) shape modulo their return type, hence the tiny adapter.
func applyDefaultSpec[O any](setDefault func(any) O, spec OptionSpec) {
	if spec.Default != nil {
		setDefault(*spec.Default)
	}
}

// choiceTransform converts raw text into one of the declared choices,
// rejecting everything else before it can reach the setter.
func choiceTransform(choices []string) func(string) (string, error) {
	return func(raw string) (string, error) {
		v := strings.TrimSpace(raw)
		for _, c := range choices {
			if v == c {
				return c, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(choices, ", "))
	}
}
