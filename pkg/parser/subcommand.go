package parser

// AddSubcommand creates an owned child parser node under name, with its
// own registry and the parent's delimiter and observer, and returns it.
// Fails with a DuplicateNameError when name already exists at this node.
func (p *Parser) AddSubcommand(name, description string) (*Parser, error) {
	if _, exists := p.subcommands[name]; exists {
		return nil, &DuplicateNameError{Name: name, Kind: "subcommand"}
	}

	child := New(WithDelimiter(p.delimiter), WithObserver(p.observer), WithName(name, description))
	p.subcommands[name] = child
	return child, nil
}

// Subcommand returns the child node registered under name, if any.
func (p *Parser) Subcommand(name string) (*Parser, bool) {
	child, ok := p.subcommands[name]
	return child, ok
}

// Subcommands returns a copy of the subcommand map; mutating it does
// not affect the parser.
func (p *Parser) Subcommands() map[string]*Parser {
	out := make(map[string]*Parser, len(p.subcommands))
	for k, v := range p.subcommands {
		out[k] = v
	}
	return out
}

// SelectSubcommand marks the named child as the active subcommand that
// receives keys unknown at this node during Parse. An unregistered name
// fails with an UnknownSubcommandError and leaves any previously active
// subcommand in place.
func (p *Parser) SelectSubcommand(name string) error {
	child, ok := p.subcommands[name]
	if !ok {
		return &UnknownSubcommandError{Name: name}
	}
	p.active = child
	return nil
}

// ClearSubcommand deselects any active subcommand.
func (p *Parser) ClearSubcommand() {
	p.active = nil
}

// Active returns the currently active subcommand node, or nil when none
// has been selected.
func (p *Parser) Active() *Parser { return p.active }
