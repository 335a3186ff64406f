// This file implements the command stack that sequences push/undo/redo
// and decides when a merge is attempted: exactly once, between a newly
// pushed command and the current top. Because commands are only ever
// replayed in push order, the one-shot producer cache inside each command
// stays valid for the single redo that immediately follows construction.

package undo

import (
	"log/slog"

	"github.com/annihilatorrrr/shotcut/pkg/metrics"
)

// Stack is an ordered undo history. The zero value is unusable; create
// one with NewStack.
type Stack struct {
	commands []Command
	// index is the number of currently applied commands; commands[index:]
	// is the redo tail.
	index int
}

// NewStack creates an empty undo stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push applies cmd and records it as the newest undo step. Any undone
// commands waiting for redo are discarded first. After applying, Push
// offers cmd to the previous top for merging; a successful merge means
// the previous top now covers both edits and cmd is dropped. Pushing an
// unrelated command is also what freezes a still-evolving parameter
// command: once something else sits on top it can never merge again.
func (s *Stack) Push(cmd Command) {
	cmd.Apply(Redo)
	metrics.CommandsTotal.WithLabelValues(cmd.kind().String(), Redo.String()).Inc()

	// Discard the redo tail.
	s.commands = s.commands[:s.index]

	if s.index > 0 {
		top := s.commands[s.index-1]
		if top.kind() == cmd.kind() && top.MergeWith(cmd) {
			slog.Debug("merged command", "text", top.Text())
			metrics.MergesTotal.WithLabelValues(cmd.kind().String()).Inc()
			metrics.StackDepth.Set(float64(len(s.commands)))
			return
		}
	}
	s.commands = append(s.commands, cmd)
	s.index++
	metrics.StackDepth.Set(float64(len(s.commands)))
}

// Undo reverts the newest applied command. It reports false when there is
// nothing to undo.
func (s *Stack) Undo() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	cmd := s.commands[s.index]
	cmd.Apply(Undo)
	metrics.CommandsTotal.WithLabelValues(cmd.kind().String(), Undo.String()).Inc()
	return true
}

// Redo re-applies the most recently undone command. It reports false when
// there is nothing to redo.
func (s *Stack) Redo() bool {
	if s.index >= len(s.commands) {
		return false
	}
	cmd := s.commands[s.index]
	s.index++
	cmd.Apply(Redo)
	metrics.CommandsTotal.WithLabelValues(cmd.kind().String(), Redo.String()).Inc()
	return true
}

// CanUndo reports whether an applied command is available.
func (s *Stack) CanUndo() bool {
	return s.index > 0
}

// CanRedo reports whether an undone command is available.
func (s *Stack) CanRedo() bool {
	return s.index < len(s.commands)
}

// UndoText returns the label of the command Undo would revert, or "".
func (s *Stack) UndoText() string {
	if s.index == 0 {
		return ""
	}
	return s.commands[s.index-1].Text()
}

// RedoText returns the label of the command Redo would apply, or "".
func (s *Stack) RedoText() string {
	if s.index >= len(s.commands) {
		return ""
	}
	return s.commands[s.index].Text()
}

// Count returns the number of undo steps on the stack, applied or not.
func (s *Stack) Count() int {
	return len(s.commands)
}

// Clear drops the whole history without applying anything.
func (s *Stack) Clear() {
	s.commands = nil
	s.index = 0
	metrics.StackDepth.Set(0)
}
