// This file implements the attached-filters model: the row-indexed view of
// one producer's user-visible filters that the commands mutate through.
// Rows skip system-internal filters (loader and application-internal
// ones), so row r always addresses the r-th filter a user can see. The
// primitives here are not reversible; reversibility is the commands' job.

package undo

import (
	"log/slog"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// AttachedFiltersModel is the mutation surface for one producer's filter
// list. It is bound to the project so commands can re-resolve their target
// producer, and to "the current producer" the presentation layer is
// showing, which is the producer new commands are recorded against.
type AttachedFiltersModel struct {
	project  *graph.Project
	producer *graph.Producer

	// OnFiltersChanged, when set, is called after a bulk change to a
	// producer's filter list so views can rebuild their rows.
	OnFiltersChanged func(*graph.Producer)

	// AdjustFilters, when set, runs the post-insert normalization pass
	// after the last filter of a set is attached. fromIndex is the filter
	// count before the set was inserted.
	AdjustFilters func(p *graph.Producer, fromIndex int)
}

// NewAttachedFiltersModel creates a model bound to project with no
// current producer.
func NewAttachedFiltersModel(project *graph.Project) *AttachedFiltersModel {
	return &AttachedFiltersModel{project: project}
}

// Project returns the project the model is bound to.
func (m *AttachedFiltersModel) Project() *graph.Project {
	return m.project
}

// Producer returns the current producer, the one new commands target.
func (m *AttachedFiltersModel) Producer() *graph.Producer {
	return m.producer
}

// SetProducer changes the current producer.
func (m *AttachedFiltersModel) SetProducer(p *graph.Producer) {
	m.producer = p
}

// RowCount returns the number of user-visible filter rows on p.
func (m *AttachedFiltersModel) RowCount(p *graph.Producer) int {
	n := 0
	for i := 0; i < p.FilterCount(); i++ {
		if !p.FilterAt(i).IsSystem() {
			n++
		}
	}
	return n
}

// indexForRow maps a user-visible row to the producer's filter index,
// or -1 when the row is out of range.
func (m *AttachedFiltersModel) indexForRow(p *graph.Producer, row int) int {
	if row < 0 {
		return -1
	}
	seen := 0
	for i := 0; i < p.FilterCount(); i++ {
		if p.FilterAt(i).IsSystem() {
			continue
		}
		if seen == row {
			return i
		}
		seen++
	}
	return -1
}

// insertIndexForRow maps a user-visible row to the filter index an insert
// at that row should use. row == RowCount appends after the last visible
// filter.
func (m *AttachedFiltersModel) insertIndexForRow(p *graph.Producer, row int) int {
	if i := m.indexForRow(p, row); i >= 0 {
		return i
	}
	// Past the last visible row: insert after the last non-system filter,
	// which for the common layout (loaders first) is the end of the list.
	return p.FilterCount()
}

// ServiceAt returns the filter at a user-visible row, or nil when the row
// is out of range.
func (m *AttachedFiltersModel) ServiceAt(p *graph.Producer, row int) *graph.Filter {
	i := m.indexForRow(p, row)
	if i < 0 {
		return nil
	}
	return p.FilterAt(i)
}

// AddService inserts a filter at a user-visible row, renumbering
// subsequent rows.
func (m *AttachedFiltersModel) AddService(p *graph.Producer, f *graph.Filter, row int) {
	p.AttachAt(f, m.insertIndexForRow(p, row))
}

// RemoveService removes and returns the filter at a user-visible row,
// renumbering subsequent rows. Returns nil when the row is out of range.
func (m *AttachedFiltersModel) RemoveService(p *graph.Producer, row int) *graph.Filter {
	i := m.indexForRow(p, row)
	if i < 0 {
		slog.Error("remove on invalid filter row", "row", row)
		return nil
	}
	return p.DetachAt(i)
}

// MoveService relocates the filter at row from to row to. The target row
// is interpreted after removal, so a move and its inverse are symmetric.
func (m *AttachedFiltersModel) MoveService(p *graph.Producer, from, to int) {
	i := m.indexForRow(p, from)
	if i < 0 {
		slog.Error("move from invalid filter row", "from", from, "to", to)
		return
	}
	f := p.DetachAt(i)
	p.AttachAt(f, m.insertIndexForRow(p, to))
}

// SetDisabled switches the filter at a user-visible row off or on.
func (m *AttachedFiltersModel) SetDisabled(p *graph.Producer, row int, disabled bool) {
	f := m.ServiceAt(p, row)
	if f == nil {
		slog.Error("disable on invalid filter row", "row", row)
		return
	}
	f.SetDisabled(disabled)
}

// notifyFiltersChanged fires the change hook, if any.
func (m *AttachedFiltersModel) notifyFiltersChanged(p *graph.Producer) {
	if m.OnFiltersChanged != nil {
		m.OnFiltersChanged(p)
	}
}

// adjustFilters fires the normalization hook, if any.
func (m *AttachedFiltersModel) adjustFilters(p *graph.Producer, fromIndex int) {
	if m.AdjustFilters != nil {
		m.AdjustFilters(p, fromIndex)
	}
}

// FilterController connects the parameter panel to the model. Parameter
// commands route their snapshot restores through it so an open panel can
// refresh from the filter's new state.
type FilterController struct {
	model *AttachedFiltersModel

	// OnUndoOrRedo, when set, is called with the filter a parameter
	// snapshot was just applied to.
	OnUndoOrRedo func(*graph.Filter)
}

// NewFilterController creates a controller over model.
func NewFilterController(model *AttachedFiltersModel) *FilterController {
	return &FilterController{model: model}
}

// Model returns the attached-filters model.
func (c *FilterController) Model() *AttachedFiltersModel {
	return c.model
}

// undoOrRedo fires the refresh hook, if any.
func (c *FilterController) undoOrRedo(f *graph.Filter) {
	if c.OnUndoOrRedo != nil {
		c.OnUndoOrRedo(f)
	}
}
