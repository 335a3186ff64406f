// This file defines the two node kinds the undo engine mutates: Producer
// (a clip or composite media unit) and Filter (an effect attached to a
// producer at a row). Filter lists are always contiguous and zero-based;
// every insert, detach, and move below renumbers implicitly because the
// list is a plain slice.

package graph

// Reserved property names.
const (
	// PropService names the service a node was created from.
	PropService = "mlt_service"
	// PropUUID holds a producer's durable identifier once assigned.
	PropUUID = "shotcut:uuid"
	// PropHidden marks an application-internal filter when set non-zero.
	PropHidden = "shotcut:hidden"
	// PropLoader marks an automatically inserted loader filter.
	PropLoader = "_loader"

	// propDisable is the flag a disabled filter carries. Keeping it in the
	// property bag means parameter snapshots capture it for free.
	propDisable = "disable"
)

// Filter is an effect attached to a producer. It belongs to exactly one
// producer at a time and is addressed there by row position.
type Filter struct {
	props Properties
}

// NewFilter creates a filter for the named service.
func NewFilter(service string) *Filter {
	f := &Filter{}
	f.props.Set(PropService, service)
	return f
}

// Properties returns the filter's property bag.
func (f *Filter) Properties() *Properties {
	return &f.props
}

// Service returns the service name the filter was created from.
func (f *Filter) Service() string {
	return f.props.Get(PropService)
}

// Disabled reports whether the filter is switched off.
func (f *Filter) Disabled() bool {
	return f.props.GetInt(propDisable) != 0
}

// SetDisabled switches the filter off or on.
func (f *Filter) SetDisabled(disabled bool) {
	if disabled {
		f.props.SetInt(propDisable, 1)
	} else {
		f.props.Clear(propDisable)
	}
}

// IsSystem reports whether the filter is system-internal: either an
// automatically inserted loader filter or an application-internal one.
// System filters are excluded from user-visible rows and from bulk
// operations such as paste.
func (f *Filter) IsSystem() bool {
	return f.props.GetInt(PropLoader) != 0 || f.props.GetInt(PropHidden) != 0
}

// Producer is a processable media unit. A producer owns an ordered filter
// list and may itself be composite, holding an ordered sequence of child
// producers (the clips of a playlist or the nodes of a nested sub-graph).
type Producer struct {
	props    Properties
	filters  []*Filter
	children []*Producer
}

// NewProducer creates a producer for the named service.
func NewProducer(service string) *Producer {
	p := &Producer{}
	p.props.Set(PropService, service)
	return p
}

// Properties returns the producer's property bag.
func (p *Producer) Properties() *Properties {
	return &p.props
}

// Service returns the service name the producer was created from.
func (p *Producer) Service() string {
	return p.props.Get(PropService)
}

// FilterCount returns the number of attached filters, system ones
// included.
func (p *Producer) FilterCount() int {
	return len(p.filters)
}

// FilterAt returns the filter at index i, or nil when out of range.
func (p *Producer) FilterAt(i int) *Filter {
	if i < 0 || i >= len(p.filters) {
		return nil
	}
	return p.filters[i]
}

// Attach appends a filter to the end of the filter list.
func (p *Producer) Attach(f *Filter) {
	p.filters = append(p.filters, f)
}

// AttachAt inserts a filter at index i. Indexes outside [0, FilterCount]
// are clamped.
func (p *Producer) AttachAt(f *Filter, i int) {
	if i < 0 {
		i = 0
	}
	if i > len(p.filters) {
		i = len(p.filters)
	}
	p.filters = append(p.filters, nil)
	copy(p.filters[i+1:], p.filters[i:])
	p.filters[i] = f
}

// DetachAt removes and returns the filter at index i, or nil when out of
// range.
func (p *Producer) DetachAt(i int) *Filter {
	if i < 0 || i >= len(p.filters) {
		return nil
	}
	f := p.filters[i]
	p.filters = append(p.filters[:i], p.filters[i+1:]...)
	return f
}

// MoveFilter relocates the filter at index from to index to. The target
// index is interpreted against the list after removal, so moving 0 to 2 in
// [a b c] yields [b c a] and moving 2 to 0 yields the inverse.
func (p *Producer) MoveFilter(from, to int) {
	f := p.DetachAt(from)
	if f == nil {
		return
	}
	p.AttachAt(f, to)
}

// AdoptFilters appends every non-system filter of src onto p, in order.
// The filter objects move; src is left holding only its system filters.
func (p *Producer) AdoptFilters(src *Producer) {
	remaining := src.filters[:0]
	for _, f := range src.filters {
		if f.IsSystem() {
			remaining = append(remaining, f)
			continue
		}
		p.filters = append(p.filters, f)
	}
	src.filters = remaining
}

// ChildCount returns the number of child producers.
func (p *Producer) ChildCount() int {
	return len(p.children)
}

// Child returns the child producer at position i, or nil when out of
// range.
func (p *Producer) Child(i int) *Producer {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}

// Children returns the ordered child producer list. The returned slice is
// the producer's own; callers must not reorder it.
func (p *Producer) Children() []*Producer {
	return p.children
}

// AppendChild adds a child producer to the end of the child list, turning
// p into a composite if it was not one already.
func (p *Producer) AppendChild(c *Producer) {
	p.children = append(p.children, c)
}
