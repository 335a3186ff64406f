// This file implements the six command kinds. Every command follows the
// same shape: the constructor captures the target producer's durable
// identifier (assigning one if absent), a direct reference usable only for
// the first redo, and whatever state inverts the operation. After the
// first redo the direct reference is dropped and every later application
// re-locates the producer by identifier.

package undo

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// AddType selects how an AddCommand participates in a filter set.
type AddType int

const (
	// AddSingle adds one standalone filter.
	AddSingle AddType = iota
	// AddSet adds one filter belonging to a set still being assembled.
	AddSet
	// AddSetLast adds the final filter of a set and triggers the
	// post-insert adjustment pass over the whole set.
	AddSetLast
)

// AddCommand inserts one or more filters at given rows. Commands from the
// same in-progress set merge into a single undo step.
type AddCommand struct {
	model        *AttachedFiltersModel
	text         string
	producer     *graph.Producer
	producerUUID uuid.UUID
	typ          AddType
	rows         []int
	services     []*graph.Filter
}

// NewAddCommand records the insertion of service at row on the model's
// current producer.
func NewAddCommand(model *AttachedFiltersModel, name string, service *graph.Filter, row int, typ AddType) *AddCommand {
	c := &AddCommand{
		model:        model,
		producer:     model.Producer(),
		producerUUID: graph.EnsureUUID(model.Producer()),
		typ:          typ,
	}
	if typ == AddSingle {
		c.text = fmt.Sprintf("Add %s filter", name)
	} else {
		c.text = fmt.Sprintf("Add %s filter set", name)
	}
	c.rows = append(c.rows, row)
	c.services = append(c.services, service)
	return c
}

func (c *AddCommand) Apply(d Direction) {
	slog.Debug(c.text, "direction", d, "row", c.rows[0])
	switch d {
	case Redo:
		p := c.producer
		if p == nil {
			p = mustFindProducer(c.model.Project(), c.producerUUID)
		}
		adjustFrom := p.FilterCount()
		for i := range c.rows {
			c.model.AddService(p, c.services[i], c.rows[i])
		}
		if c.typ == AddSetLast {
			c.model.adjustFilters(p, adjustFrom)
		}
		// Only hold the producer reference for the first redo and look up
		// by UUID thereafter.
		c.producer = nil
	case Undo:
		p := mustFindProducer(c.model.Project(), c.producerUUID)
		// Remove the services in reverse order so earlier removals do not
		// renumber the rows of later ones.
		for i := len(c.rows) - 1; i >= 0; i-- {
			c.model.RemoveService(p, c.rows[i])
		}
	}
}

func (c *AddCommand) Text() string { return c.text }

// MergeWith absorbs the next filter of the same in-progress set. A single
// add never merges, and neither do adds targeting different producers.
func (c *AddCommand) MergeWith(other Command) bool {
	that, ok := other.(*AddCommand)
	if !ok {
		slog.Error("invalid merge", "command", other.kind())
		return false
	}
	if c.typ != AddSet || (that.typ != AddSet && that.typ != AddSetLast) {
		// Only merge services from the same filter set.
		return false
	}
	if that.producerUUID != c.producerUUID {
		return false
	}
	c.typ = that.typ
	c.rows = append(c.rows, that.rows[0])
	c.services = append(c.services, that.services[0])
	return true
}

func (c *AddCommand) kind() commandKind { return kindAdd }

// RemoveCommand removes one filter at a row; undo re-inserts the same
// filter object at the same row.
type RemoveCommand struct {
	model        *AttachedFiltersModel
	text         string
	row          int
	producer     *graph.Producer
	producerUUID uuid.UUID
	service      *graph.Filter
}

// NewRemoveCommand records the removal of service at row on the model's
// current producer.
func NewRemoveCommand(model *AttachedFiltersModel, name string, service *graph.Filter, row int) *RemoveCommand {
	return &RemoveCommand{
		model:        model,
		text:         fmt.Sprintf("Remove %s filter", name),
		row:          row,
		producer:     model.Producer(),
		producerUUID: graph.EnsureUUID(model.Producer()),
		service:      service,
	}
}

func (c *RemoveCommand) Apply(d Direction) {
	slog.Debug(c.text, "direction", d, "row", c.row)
	switch d {
	case Redo:
		p := c.producer
		if p == nil {
			p = mustFindProducer(c.model.Project(), c.producerUUID)
		}
		c.model.RemoveService(p, c.row)
		// Only hold the producer reference for the first redo and look up
		// by UUID thereafter.
		c.producer = nil
	case Undo:
		p := mustFindProducer(c.model.Project(), c.producerUUID)
		c.model.AddService(p, c.service, c.row)
	}
}

func (c *RemoveCommand) Text() string { return c.text }

// MergeWith always refuses; removals are individual undo steps.
func (c *RemoveCommand) MergeWith(other Command) bool { return false }

func (c *RemoveCommand) kind() commandKind { return kindRemove }

// MoveCommand relocates a filter from one row to another; undo performs
// the opposite move.
type MoveCommand struct {
	model        *AttachedFiltersModel
	text         string
	fromRow      int
	toRow        int
	producer     *graph.Producer
	producerUUID uuid.UUID
}

// NewMoveCommand records moving the filter at fromRow to toRow on the
// model's current producer.
func NewMoveCommand(model *AttachedFiltersModel, name string, fromRow, toRow int) *MoveCommand {
	return &MoveCommand{
		model:        model,
		text:         fmt.Sprintf("Move %s filter", name),
		fromRow:      fromRow,
		toRow:        toRow,
		producer:     model.Producer(),
		producerUUID: graph.EnsureUUID(model.Producer()),
	}
}

func (c *MoveCommand) Apply(d Direction) {
	switch d {
	case Redo:
		slog.Debug(c.text, "direction", d, "from", c.fromRow, "to", c.toRow)
		p := c.producer
		if p == nil {
			p = mustFindProducer(c.model.Project(), c.producerUUID)
		}
		c.model.MoveService(p, c.fromRow, c.toRow)
		// Only hold the producer reference for the first redo and look up
		// by UUID thereafter.
		c.producer = nil
	case Undo:
		slog.Debug(c.text, "direction", d, "from", c.toRow, "to", c.fromRow)
		p := mustFindProducer(c.model.Project(), c.producerUUID)
		c.model.MoveService(p, c.toRow, c.fromRow)
	}
}

func (c *MoveCommand) Text() string { return c.text }

// MergeWith always refuses; moves are individual undo steps.
func (c *MoveCommand) MergeWith(other Command) bool { return false }

func (c *MoveCommand) kind() commandKind { return kindMove }

// DisableCommand toggles the enabled flag of the filter at a row; undo
// sets the complementary value.
type DisableCommand struct {
	model        *AttachedFiltersModel
	text         string
	row          int
	producer     *graph.Producer
	producerUUID uuid.UUID
	disabled     bool
}

// NewDisableCommand records switching the filter at row off (disabled
// true) or on.
func NewDisableCommand(model *AttachedFiltersModel, name string, row int, disabled bool) *DisableCommand {
	c := &DisableCommand{
		model:        model,
		row:          row,
		producer:     model.Producer(),
		producerUUID: graph.EnsureUUID(model.Producer()),
		disabled:     disabled,
	}
	if disabled {
		c.text = fmt.Sprintf("Disable %s filter", name)
	} else {
		c.text = fmt.Sprintf("Enable %s filter", name)
	}
	return c
}

func (c *DisableCommand) Apply(d Direction) {
	slog.Debug(c.text, "direction", d, "row", c.row)
	switch d {
	case Redo:
		p := c.producer
		if p == nil {
			p = mustFindProducer(c.model.Project(), c.producerUUID)
		}
		c.model.SetDisabled(p, c.row, c.disabled)
		// Only hold the producer reference for the first redo and look up
		// by UUID thereafter.
		c.producer = nil
	case Undo:
		p := mustFindProducer(c.model.Project(), c.producerUUID)
		c.model.SetDisabled(p, c.row, !c.disabled)
	}
}

func (c *DisableCommand) Text() string { return c.text }

// MergeWith always refuses, on purpose. Coalescing two toggles would make
// a single undo restore the opposite of the original state, while three
// toggles coalesced would restore it correctly; rather than a merge rule
// whose outcome depends on parity, disable commands never merge.
func (c *DisableCommand) MergeWith(other Command) bool { return false }

func (c *DisableCommand) kind() commandKind { return kindDisable }

// PasteCommand replaces the entirety of a producer's user-visible filters
// with the filters of an externally supplied fragment. The before-state is
// captured as a fragment at construction so undo can restore it without
// holding filter objects.
type PasteCommand struct {
	model          *AttachedFiltersModel
	text           string
	fragment       string
	beforeFragment string
	producerUUID   uuid.UUID
}

// NewPasteCommand records pasting the filters serialized in fragment onto
// the model's current producer.
func NewPasteCommand(model *AttachedFiltersModel, fragment string) *PasteCommand {
	c := &PasteCommand{
		model:        model,
		text:         "Paste filters",
		fragment:     fragment,
		producerUUID: graph.EnsureUUID(model.Producer()),
	}
	c.beforeFragment, _ = graph.MarshalFragment(model.Producer())
	return c
}

func (c *PasteCommand) Apply(d Direction) {
	slog.Debug(c.text, "direction", d)
	p := mustFindProducer(c.model.Project(), c.producerUUID)
	if d == Undo {
		// Remove all user-visible filters before restoring the captured
		// state. System filters stay where they are.
		for i := 0; i < p.FilterCount(); i++ {
			if !p.FilterAt(i).IsSystem() {
				p.DetachAt(i)
				i--
			}
		}
		c.applyFragment(p, c.beforeFragment)
		c.model.notifyFiltersChanged(p)
		return
	}
	c.applyFragment(p, c.fragment)
	c.model.notifyFiltersChanged(p)
}

// applyFragment parses text and transfers its filters onto p. A fragment
// that fails to parse or parses to zero filters leaves p untouched; the
// operation is a structural no-op either way.
func (c *PasteCommand) applyFragment(p *graph.Producer, text string) {
	src, err := graph.ParseFragment(text)
	if err != nil {
		slog.Debug("paste fragment did not parse", "error", err)
		return
	}
	if src.FilterCount() == 0 {
		return
	}
	p.AdoptFilters(src)
}

func (c *PasteCommand) Text() string { return c.text }

// MergeWith always refuses; each paste is its own undo step.
func (c *PasteCommand) MergeWith(other Command) bool { return false }

func (c *PasteCommand) kind() commandKind { return kindPaste }

// ParameterCommand captures a before/after pair of property snapshots for
// the filter at a row. The after snapshot evolves while the user is live
// editing (see Update); a burst of edits to the same parameter group
// merges into one undo step.
type ParameterCommand struct {
	controller   *FilterController
	text         string
	row          int
	producerUUID uuid.UUID
	before       *graph.Properties
	after        *graph.Properties
	firstRedo    bool
}

// NewParameterCommand records a parameter edit on the filter at row of
// the controller's current producer. before is the caller-captured state
// prior to the edit; desc distinguishes logical parameter groups for
// merge purposes.
func NewParameterCommand(controller *FilterController, name string, row int, before *graph.Properties, desc string) *ParameterCommand {
	model := controller.Model()
	c := &ParameterCommand{
		controller:   controller,
		row:          row,
		producerUUID: graph.EnsureUUID(model.Producer()),
		before:       graph.NewProperties(),
		after:        graph.NewProperties(),
		firstRedo:    true,
	}
	if desc == "" {
		c.text = fmt.Sprintf("Change %s filter", name)
	} else {
		c.text = fmt.Sprintf("Change %s filter: %s", name, desc)
	}
	c.before.Inherit(before)
	if service := model.ServiceAt(model.Producer(), row); service != nil {
		c.after.Inherit(service.Properties())
	}
	return c
}

// Update copies the current value of the named property into the after
// snapshot. It is called repeatedly while the user live-edits a single
// parameter, so the command never needs to know up front which properties
// will change.
func (c *ParameterCommand) Update(propertyName string) {
	model := c.controller.Model()
	service := model.ServiceAt(model.Producer(), c.row)
	if service == nil {
		return
	}
	c.after.Pass(service.Properties(), propertyName)
}

func (c *ParameterCommand) Apply(d Direction) {
	slog.Debug(c.text, "direction", d)
	model := c.controller.Model()
	switch d {
	case Redo:
		if c.firstRedo {
			// The edit is already live in the graph when the command is
			// pushed; only later redos re-apply the after snapshot.
			c.firstRedo = false
			return
		}
		p := mustFindProducer(model.Project(), c.producerUUID)
		if service := model.ServiceAt(p, c.row); service != nil {
			service.Properties().Inherit(c.after)
			c.controller.undoOrRedo(service)
		}
	case Undo:
		p := mustFindProducer(model.Project(), c.producerUUID)
		if service := model.ServiceAt(p, c.row); service != nil {
			service.Properties().Inherit(c.before)
			c.controller.undoOrRedo(service)
		}
	}
}

func (c *ParameterCommand) Text() string { return c.text }

// MergeWith absorbs a subsequent edit to the same logical parameter group
// on the same filter: same producer, same row, identical display text.
// The receiver adopts the other command's after snapshot.
func (c *ParameterCommand) MergeWith(other Command) bool {
	that, ok := other.(*ParameterCommand)
	if !ok {
		return false
	}
	slog.Debug("merge parameter change", "thisRow", c.row, "thatRow", that.row)
	if that.row != c.row || that.producerUUID != c.producerUUID || that.text != c.text {
		return false
	}
	c.after = that.after
	return true
}

func (c *ParameterCommand) kind() commandKind { return kindParameter }
