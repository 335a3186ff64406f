// Package undo implements reversible commands for the filter attachments
// of a media graph. Every command carries the durable identifier of its
// target producer and re-locates it by searching the live graph, so a
// command stays valid even when the graph is torn down and rebuilt between
// the moment it is recorded and the moment it is undone.
package undo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// FindProducer searches the project for the producer carrying the given
// durable identifier and returns the first match, or nil when the
// identifier is absent from the whole graph.
//
// The roots are tried in authority order: the timeline first, then the
// playlist, then the active source (open clip, else last-saved producer).
// The same identifier can transiently be reachable under more than one
// root during certain editing states, and the earlier root is the one an
// edit session considers current. Within a root the search is depth
// first, descending into a composite's children before moving to the next
// sibling.
func FindProducer(project *graph.Project, id uuid.UUID) *graph.Producer {
	if id == uuid.Nil {
		return nil
	}
	if t := project.Timeline; t != nil && t.TrackCount() > 0 {
		for i := 0; i < t.TrackCount(); i++ {
			if p := findInProducer(t.Track(i), id); p != nil {
				return p
			}
		}
	}
	if pl := project.Playlist; pl != nil && pl.ChildCount() > 0 {
		if p := findInProducer(pl, id); p != nil {
			return p
		}
	}
	if src := project.ActiveSource(); src != nil {
		if p := findInProducer(src, id); p != nil {
			return p
		}
	}
	return nil
}

// findInProducer tests p itself, then recurses into its children,
// short-circuiting on the first match.
func findInProducer(p *graph.Producer, id uuid.UUID) *graph.Producer {
	if p == nil {
		return nil
	}
	if graph.UUID(p) == id {
		return p
	}
	for _, c := range p.Children() {
		if m := findInProducer(c, id); m != nil {
			return m
		}
	}
	return nil
}

// mustFindProducer resolves a command's target or panics. A miss means
// the command outlived the producer it was recorded against, which the
// identity contract is supposed to prevent; it is a programming error,
// not a recoverable condition.
func mustFindProducer(project *graph.Project, id uuid.UUID) *graph.Producer {
	p := FindProducer(project, id)
	if p == nil {
		panic(fmt.Sprintf("undo: producer %s is gone from the graph", id))
	}
	return p
}
