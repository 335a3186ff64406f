// Package graph provides the in-memory model of a media project: producers
// (clips and composites) carrying ordered filter attachments and open-ended
// property bags, grouped under the roots an editing session works with
// (timeline, playlist, open source, last-saved producer).
//
// The model is deliberately passive. It knows how to hold and reorder
// filters and how to serialize a producer to the fragment interchange form;
// deciding when to mutate, and how to reverse a mutation, belongs to
// package undo.
package graph

// Project groups the graph roots of one editing session, in the order a
// search must prefer them: an in-progress timeline edit is more
// authoritative than the playlist, which is more authoritative than the
// producer that happens to be open or was last saved.
type Project struct {
	// Timeline is the multitrack container, nil when no timeline is open.
	Timeline *Tractor
	// Playlist is the flat ordered clip list, nil when empty project.
	Playlist *Producer
	// Source is the currently open clip, if any.
	Source *Producer
	// Saved is the most recently loaded or saved standalone producer.
	Saved *Producer
}

// ActiveSource returns the producer that represents "the current clip":
// the open source if there is one, otherwise the last-saved producer.
func (pr *Project) ActiveSource() *Producer {
	if pr.Source != nil {
		return pr.Source
	}
	return pr.Saved
}

// Tractor is the multitrack container: an ordered sequence of tracks, each
// of which is a producer whose children are the clips on that track.
type Tractor struct {
	props  Properties
	tracks []*Producer
}

// NewTractor creates an empty multitrack container.
func NewTractor() *Tractor {
	t := &Tractor{}
	t.props.Set(PropService, "tractor")
	return t
}

// Properties returns the tractor's property bag.
func (t *Tractor) Properties() *Properties {
	return &t.props
}

// TrackCount returns the number of tracks.
func (t *Tractor) TrackCount() int {
	return len(t.tracks)
}

// Track returns the track at position i, or nil when out of range.
func (t *Tractor) Track(i int) *Producer {
	if i < 0 || i >= len(t.tracks) {
		return nil
	}
	return t.tracks[i]
}

// AppendTrack adds a track to the end of the track list.
func (t *Tractor) AppendTrack(track *Producer) {
	t.tracks = append(t.tracks, track)
}
