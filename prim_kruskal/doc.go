// Package prim_kruskal computes minimum spanning forests over undirected,
// weighted edge lists: Kruskal's algorithm (default) and a Prim variant that
// restarts in every connected component.
//
// What & Why
//
//   - A minimum spanning forest keeps, in every connected component, the
//     subset of edges of minimum total weight that keeps the component
//     connected without cycles. For a candidate pipeline graph weighted by
//     distance it approximates "build along the shortest connecting paths"
//     and turns a dense candidate set into a sparse backbone before the
//     expensive hourly flow simulation.
//
//   - Disconnected inputs are normal (isolated plants, separate towns): unlike
//     a spanning tree, a forest is always defined, so no disconnection error
//     exists here.
//
// Algorithms Provided
//
//   - KruskalForest(n, edges) ([]int, float64, error)
//
//   - Strategy: stable-sort edges by weight, then accept every edge whose
//     endpoints lie in different union-find sets.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - PrimForest(n, edges) ([]int, float64, error)
//
//   - Strategy: grow a tree with a min-heap from the lowest-numbered
//     unvisited vertex, then restart from the next unvisited vertex.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Determinism
//
//	Both algorithms order candidate edges by (weight, input index), so equal
//	weights are broken by input order and results are reproducible. With
//	distinct weights both return the same edge set; with ties they may pick
//	different edges of equal total weight.
//
// Both functions return the indices of the kept edges in ascending input
// order, so callers can filter parallel attribute arrays in place.
//
// Error Conditions
//
//	ErrInvalidGraph  - negative vertex count or an endpoint outside [0, n).
//	ErrInvalidWeight - NaN, infinite or negative weight.
//	ErrUnknownMethod - Compute called with an unknown method name.
package prim_kruskal
