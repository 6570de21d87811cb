// Package prim_kruskal defines configuration options and sentinel errors for
// minimum spanning forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGraph indicates an edge endpoint outside the vertex range.
var ErrInvalidGraph = errors.New("prim_kruskal: edge endpoint out of range")

// ErrInvalidWeight indicates a NaN, infinite or negative edge weight.
var ErrInvalidWeight = errors.New("prim_kruskal: invalid edge weight")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm, restarted per component.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between vertices U and V in [0, n).
type Edge struct {
	U, V   int
	Weight float64
}

// MSTOptions configures which forest algorithm to run.
// Use DefaultOptions() to get Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the forest algorithm named by opts.Method.
func Compute(n int, edges []Edge, opts ...Option) ([]int, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return KruskalForest(n, edges)
	case MethodPrim:
		return PrimForest(n, edges)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate checks vertex range and weights for every edge.
func validate(n int, edges []Edge) error {
	if n < 0 {
		return ErrInvalidGraph
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("%w: edge %d (%d, %d) with %d vertices", ErrInvalidGraph, i, e.U, e.V, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return fmt.Errorf("%w: edge %d weight %g", ErrInvalidWeight, i, e.Weight)
		}
	}

	return nil
}
