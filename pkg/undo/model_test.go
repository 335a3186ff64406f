package undo

import (
	"testing"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// newLoaderFilter returns a system-internal filter of the kind the media
// loader inserts automatically.
func newLoaderFilter() *graph.Filter {
	f := graph.NewFilter("loader")
	f.Properties().SetInt(graph.PropLoader, 1)
	return f
}

func TestModelRowMapping(t *testing.T) {
	clip := graph.NewProducer("avformat")
	clip.Attach(newLoaderFilter())
	a := graph.NewFilter("a")
	b := graph.NewFilter("b")
	clip.Attach(a)
	clip.Attach(b)

	project := buildTimelineProject(clip)
	model := NewAttachedFiltersModel(project)
	model.SetProducer(clip)

	if got := model.RowCount(clip); got != 2 {
		t.Fatalf("RowCount = %d, want 2 (loader is not a row)", got)
	}
	if model.ServiceAt(clip, 0) != a || model.ServiceAt(clip, 1) != b {
		t.Error("rows must skip the loader filter")
	}
	if model.ServiceAt(clip, 2) != nil {
		t.Error("out of range row should return nil")
	}
}

func TestModelPrimitives(t *testing.T) {
	clip := graph.NewProducer("avformat")
	clip.Attach(newLoaderFilter())
	project := buildTimelineProject(clip)
	model := NewAttachedFiltersModel(project)
	model.SetProducer(clip)

	a := graph.NewFilter("a")
	b := graph.NewFilter("b")
	c := graph.NewFilter("c")
	model.AddService(clip, a, 0)
	model.AddService(clip, b, 1)
	model.AddService(clip, c, 2)

	t.Run("AddKeepsRowsContiguous", func(t *testing.T) {
		if model.RowCount(clip) != 3 {
			t.Fatalf("RowCount = %d, want 3", model.RowCount(clip))
		}
		// The loader filter stays at raw index 0 ahead of the rows.
		if clip.FilterAt(0).Service() != "loader" {
			t.Error("loader filter should stay first in the raw list")
		}
	})

	t.Run("MoveIsSymmetric", func(t *testing.T) {
		model.MoveService(clip, 0, 2) // [b c a]
		if model.ServiceAt(clip, 2) != a || model.ServiceAt(clip, 0) != b {
			t.Error("move 0->2 gave wrong row order")
		}
		model.MoveService(clip, 2, 0) // [a b c]
		if model.ServiceAt(clip, 0) != a {
			t.Error("inverse move did not restore the order")
		}
	})

	t.Run("RemoveRenumbers", func(t *testing.T) {
		got := model.RemoveService(clip, 1)
		if got != b {
			t.Fatalf("RemoveService returned %v, want filter b", got)
		}
		if model.RowCount(clip) != 2 || model.ServiceAt(clip, 1) != c {
			t.Error("rows not renumbered after removal")
		}
		model.AddService(clip, b, 1)
	})

	t.Run("SetDisabled", func(t *testing.T) {
		model.SetDisabled(clip, 1, true)
		if !b.Disabled() {
			t.Error("row 1 should be disabled")
		}
		model.SetDisabled(clip, 1, false)
		if b.Disabled() {
			t.Error("row 1 should be enabled again")
		}
	})
}
