package undo

import (
	"testing"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

func TestStackBookkeeping(t *testing.T) {
	model, clip := newTestModel(t)
	stack := NewStack()

	if stack.CanUndo() || stack.CanRedo() {
		t.Fatal("empty stack should allow neither undo nor redo")
	}
	if stack.Undo() || stack.Redo() {
		t.Fatal("undo/redo on an empty stack must report false")
	}

	stack.Push(NewAddCommand(model, "Blur", graph.NewFilter("blur"), 0, AddSingle))
	stack.Push(NewAddCommand(model, "Glow", graph.NewFilter("glow"), 1, AddSingle))

	if got := stack.UndoText(); got != "Add Glow filter" {
		t.Errorf("UndoText = %q", got)
	}
	if got := stack.RedoText(); got != "" {
		t.Errorf("RedoText on a fully applied stack = %q, want empty", got)
	}

	stack.Undo()
	if got := stack.RedoText(); got != "Add Glow filter" {
		t.Errorf("RedoText = %q", got)
	}
	if model.RowCount(clip) != 1 {
		t.Error("undo should have removed the second filter")
	}
	stack.Redo()
	if model.RowCount(clip) != 2 {
		t.Error("redo should have re-applied the second filter")
	}
}

// Pushing with undone commands pending discards the redo tail, exactly
// like replaying history then diverging.
func TestStackTruncatesRedoTail(t *testing.T) {
	model, clip := newTestModel(t)
	stack := NewStack()

	stack.Push(NewAddCommand(model, "A", graph.NewFilter("a"), 0, AddSingle))
	stack.Push(NewAddCommand(model, "B", graph.NewFilter("b"), 1, AddSingle))
	stack.Undo()

	stack.Push(NewAddCommand(model, "C", graph.NewFilter("c"), 1, AddSingle))
	if stack.Count() != 2 {
		t.Fatalf("stack holds %d commands, want 2 after truncation", stack.Count())
	}
	if stack.CanRedo() {
		t.Error("redo tail should be gone")
	}
	if got := model.ServiceAt(clip, 1).Service(); got != "c" {
		t.Errorf("row 1 is %q, want c", got)
	}
}

func TestStackClear(t *testing.T) {
	model, _ := newTestModel(t)
	stack := NewStack()
	stack.Push(NewAddCommand(model, "A", graph.NewFilter("a"), 0, AddSingle))
	stack.Clear()
	if stack.Count() != 0 || stack.CanUndo() {
		t.Error("Clear should drop the whole history")
	}
}

// The one-shot cache is only ever consumed by the redo immediately
// following construction; a push-undo-redo cycle must go through the
// locator and still land on the right producer.
func TestStackReplayUsesLocator(t *testing.T) {
	model, clip := newTestModel(t)
	stack := NewStack()
	f := graph.NewFilter("blur")

	stack.Push(NewAddCommand(model, "Blur", f, 0, AddSingle))
	stack.Undo()

	// Detach the model's current producer binding entirely; redo must
	// still find the clip through the project.
	model.SetProducer(nil)
	stack.Redo()
	if clip.FilterCount() != 1 || clip.FilterAt(0) != f {
		t.Error("redo after undo must re-resolve the producer by identifier")
	}
}
