package flow

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange is returned when an arc or terminal references a node
// outside [0, nodes).
var ErrNodeOutOfRange = errors.New("flow: node out of range")

// ErrCapacityLength is returned when a capacity vector's length differs from
// the number of terminals it describes.
var ErrCapacityLength = errors.New("flow: capacity vector length mismatch")

// ErrUnknownAlgorithm is returned for an unsupported FlowOptions.Algorithm.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when a terminal arc has a negative or non-finite capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// AlgorithmDinic selects Dinic's algorithm.
const AlgorithmDinic = "dinic"

// AlgorithmEdmondsKarp selects the Edmonds–Karp algorithm.
const AlgorithmEdmondsKarp = "edmonds-karp"

// FlowOptions configures the max-flow algorithms.
//   - Epsilon: residual capacities ≤ Epsilon are treated as zero (default 1e-9).
//   - Algorithm: AlgorithmDinic (default) or AlgorithmEdmondsKarp.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations (0 = never early).
type FlowOptions struct {
	Epsilon              float64
	Algorithm            string
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9, Algorithm: AlgorithmDinic}
}

// normalize fills zero values with defaults.
func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmDinic
	}
}

// Arc is an undirected, unbounded connection between two nodes.
// The stored order defines the sign of the reported flow.
type Arc struct {
	From, To int
}

// Result is the outcome of one MaxFlow call.
type Result struct {
	// Value is the total flow from super-source to super-sink.
	Value float64

	// Sources holds the amount delivered by each source terminal.
	Sources []float64

	// Sinks holds the amount received by each sink terminal.
	Sinks []float64

	// Arcs holds the signed flow on each arc; positive means From→To.
	Arcs []float64
}
