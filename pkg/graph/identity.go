package graph

import "github.com/google/uuid"

// Node is any graph element carrying a property bag. Producers, filters,
// and tractors all qualify.
type Node interface {
	Properties() *Properties
}

// EnsureUUID returns the node's durable identifier, assigning a fresh one
// into its property bag on first need. The identifier never changes for
// the node's lifetime and survives serialization, so it can be used to
// re-find the node after its in-memory handle is no longer trusted.
// Idempotent.
func EnsureUUID(n Node) uuid.UUID {
	props := n.Properties()
	if v := props.Get(PropUUID); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return id
		}
	}
	id := uuid.New()
	props.Set(PropUUID, id.String())
	return id
}

// UUID returns the node's durable identifier without assigning one,
// or uuid.Nil when none has been assigned yet.
func UUID(n Node) uuid.UUID {
	v := n.Properties().Get(PropUUID)
	if v == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}
