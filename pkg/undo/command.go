package undo

// Direction selects which way a command is applied.
type Direction int

const (
	// Redo applies the command's forward effect.
	Redo Direction = iota
	// Undo applies the inverse effect.
	Undo
)

// String returns the direction name for logging and metric labels.
func (d Direction) String() string {
	if d == Undo {
		return "undo"
	}
	return "redo"
}

// commandKind tags the closed set of command kinds. The unexported kind
// method on Command keeps the set closed to this package.
type commandKind int

const (
	kindAdd commandKind = iota
	kindRemove
	kindMove
	kindDisable
	kindPaste
	kindParameter
)

// String returns the kind name for logging and metric labels.
func (k commandKind) String() string {
	switch k {
	case kindAdd:
		return "add"
	case kindRemove:
		return "remove"
	case kindMove:
		return "move"
	case kindDisable:
		return "disable"
	case kindPaste:
		return "paste"
	case kindParameter:
		return "parameter"
	}
	return "unknown"
}

// Command is one reversible unit of filter-list work. Construction
// captures the target producer's durable identifier plus a one-shot
// cached reference; the first Apply(Redo) consumes the cache and every
// later application re-locates the target through FindProducer.
type Command interface {
	// Apply performs the command's effect in the given direction.
	// Failure to re-locate the target panics; see mustFindProducer.
	Apply(d Direction)

	// Text returns the human-readable label for the undo stack.
	Text() string

	// MergeWith attempts to absorb other into this command so both are
	// undone as one step. It returns false when the two are not
	// mergeable; that is a defined negative, not an error.
	MergeWith(other Command) bool

	kind() commandKind
}
