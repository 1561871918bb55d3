package schema

// Document owns the typed storage that a built schema's options bind
// to. Entries are keyed by qualified name: "count" for root options,
// "server.port" for subcommand options.
type Document struct {
	entries map[string]*Entry
	order   []string
}

// Entry is the storage slot for one declared option. Exactly one of
// the typed fields is live, selected by Spec.Type.
type Entry struct {
	// Spec is the declaration this entry was built from.
	Spec OptionSpec

	str     string
	boolean bool
	integer int64
	float   float64
	strs    []string
	ints    []int64
	floats  []float64
}

// Value returns the entry's current value as the natural Go type for
// its declared option type.
func (e *Entry) Value() any {
	switch e.Spec.Type {
	case TypeString, TypeChoice:
		return e.str
	case TypeBool:
		return e.boolean
	case TypeInt:
		return e.integer
	case TypeFloat:
		return e.float
	case TypeStrings:
		return e.strs
	case TypeInts:
		return e.ints
	case TypeFloats:
		return e.floats
	}
	return nil
}

func newDocument() *Document {
	return &Document{entries: make(map[string]*Entry)}
}

func (d *Document) add(qualified string, spec OptionSpec) *Entry {
	e := &Entry{Spec: spec}
	d.entries[qualified] = e
	d.order = append(d.order, qualified)
	return e
}

// Entry returns the storage slot for a qualified option name.
func (d *Document) Entry(qualified string) (*Entry, bool) {
	e, ok := d.entries[qualified]
	return e, ok
}

// Value returns the current value for a qualified option name.
func (d *Document) Value(qualified string) (any, bool) {
	e, ok := d.entries[qualified]
	if !ok {
		return nil, false
	}
	return e.Value(), true
}

// Names returns the qualified option names in declaration order.
func (d *Document) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Resolved returns every option's current value keyed by qualified
// name. The map is freshly built; mutating it does not touch the
// document.
func (d *Document) Resolved() map[string]any {
	out := make(map[string]any, len(d.entries))
	for name, e := range d.entries {
		out[name] = e.Value()
	}
	return out
}
