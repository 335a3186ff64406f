package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.

var (
	// 1. Command Applications (Counter)
	// Counts every command application, labeled by command kind and
	// direction (redo/undo).
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shotcut_undo_commands_total",
			Help: "Total number of undo/redo command applications",
		},
		[]string{"command", "direction"}, // Labels
	)

	// 2. Command Merges (Counter)
	// Counts pushes that were absorbed into the previous command instead
	// of creating a new undo step.
	MergesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shotcut_undo_merges_total",
			Help: "Total number of commands merged into the stack top",
		},
		[]string{"command"},
	)

	// 3. Stack Depth (Gauge)
	// Tracks how many undo steps the stack currently holds.
	StackDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shotcut_undo_stack_depth",
			Help: "Current number of commands on the undo stack",
		},
	)
)
