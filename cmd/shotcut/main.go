// Command shotcut is a small demonstration driver for the undo engine.
// It builds a project, performs a series of filter edits through the
// command stack, then walks the whole history backward and forward again,
// logging the filter list at each step.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/undo"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// A minimal project: one timeline track holding one clip.
	clip := graph.NewProducer("avformat")
	clip.Properties().Set("resource", "clip.mp4")
	track := graph.NewProducer("playlist")
	track.AppendChild(clip)
	timeline := graph.NewTractor()
	timeline.AppendTrack(track)
	project := &graph.Project{Timeline: timeline}

	model := undo.NewAttachedFiltersModel(project)
	model.SetProducer(clip)
	model.OnFiltersChanged = func(p *graph.Producer) {
		slog.Info("filters changed", "count", model.RowCount(p))
	}
	stack := undo.NewStack()

	// Record a few edits.
	stack.Push(undo.NewAddCommand(model, "Blur", graph.NewFilter("avfilter.boxblur"), 0, undo.AddSingle))
	stack.Push(undo.NewAddCommand(model, "Grading", graph.NewFilter("lift_gamma_gain"), 1, undo.AddSingle))
	stack.Push(undo.NewMoveCommand(model, "Blur", 0, 1))
	stack.Push(undo.NewDisableCommand(model, "Blur", 1, true))

	printFilters(model, clip, "after edits")

	for stack.CanUndo() {
		slog.Info("undo", "text", stack.UndoText())
		stack.Undo()
	}
	printFilters(model, clip, "after full undo")

	for stack.CanRedo() {
		slog.Info("redo", "text", stack.RedoText())
		stack.Redo()
	}
	printFilters(model, clip, "after full redo")
}

func printFilters(model *undo.AttachedFiltersModel, p *graph.Producer, label string) {
	fmt.Printf("%s:\n", label)
	for row := 0; row < model.RowCount(p); row++ {
		f := model.ServiceAt(p, row)
		state := "enabled"
		if f.Disabled() {
			state = "disabled"
		}
		fmt.Printf("  %d: %s (%s)\n", row, f.Service(), state)
	}
}
