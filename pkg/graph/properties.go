// This file implements the ordered string property bag shared by every
// graph element, and the snapshot operations (Inherit, Pass) the undo
// engine uses to capture and restore state without knowing in advance
// which properties an edit will touch.

package graph

import (
	"strconv"

	"github.com/tidwall/btree"
)

// Properties is an open-ended string-to-string property bag.
// Keys iterate in sorted order so that serialized forms and snapshots are
// deterministic. The zero value is an empty bag ready to use.
type Properties struct {
	m btree.Map[string, string]
}

// NewProperties creates an empty property bag.
func NewProperties() *Properties {
	return &Properties{}
}

// Get returns the value for name, or "" when absent.
func (p *Properties) Get(name string) string {
	v, _ := p.m.Get(name)
	return v
}

// GetInt returns the value for name parsed as an integer, or 0 when the
// property is absent or not numeric.
func (p *Properties) GetInt(name string) int {
	v, found := p.m.Get(name)
	if !found {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Set stores a value under name, replacing any previous value.
func (p *Properties) Set(name, value string) {
	p.m.Set(name, value)
}

// SetInt stores an integer value under name.
func (p *Properties) SetInt(name string, value int) {
	p.m.Set(name, strconv.Itoa(value))
}

// Has reports whether name is present.
func (p *Properties) Has(name string) bool {
	_, found := p.m.Get(name)
	return found
}

// Clear removes name from the bag. Clearing an absent name is a no-op.
func (p *Properties) Clear(name string) {
	p.m.Delete(name)
}

// Count returns the number of properties in the bag.
func (p *Properties) Count() int {
	return p.m.Len()
}

// Keys returns all property names in sorted order.
func (p *Properties) Keys() []string {
	return p.m.Keys()
}

// Scan calls iter for each property in sorted key order until iter
// returns false.
func (p *Properties) Scan(iter func(name, value string) bool) {
	p.m.Scan(iter)
}

// Inherit copies every property of src into the receiver, overwriting
// values that already exist. Properties only present in the receiver are
// untouched. It is both the capture-all snapshot (inherit a live bag into
// an empty one) and the restore operation (inherit a snapshot back into a
// live bag).
func (p *Properties) Inherit(src *Properties) {
	if src == nil {
		return
	}
	src.m.Scan(func(name, value string) bool {
		p.m.Set(name, value)
		return true
	})
}

// Pass copies the single property name from src into the receiver.
// When src does not carry name, the receiver's entry is removed so the
// capture reflects a deletion as well as a change.
func (p *Properties) Pass(src *Properties, name string) {
	if src == nil {
		return
	}
	v, found := src.m.Get(name)
	if !found {
		p.m.Delete(name)
		return
	}
	p.m.Set(name, v)
}

// Snapshot returns an independent copy of the bag.
func (p *Properties) Snapshot() *Properties {
	s := NewProperties()
	s.Inherit(p)
	return s
}

// toMap dumps the bag into a plain map for serialization.
func (p *Properties) toMap() map[string]string {
	if p.m.Len() == 0 {
		return nil
	}
	out := make(map[string]string, p.m.Len())
	p.m.Scan(func(name, value string) bool {
		out[name] = value
		return true
	})
	return out
}

// fromMap loads the bag from a plain map, replacing nothing that is not
// present in src.
func (p *Properties) fromMap(src map[string]string) {
	for name, value := range src {
		p.m.Set(name, value)
	}
}
