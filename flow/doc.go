// Package flow computes maximum flows on undirected transmission networks
// fed by capacity-limited terminals.
//
// A Network is an immutable topology: a number of nodes, a list of
// undirected arcs with unbounded capacity, and two terminal lists (source
// nodes and sink nodes). MaxFlow attaches a super-source to every source
// node and every sink node to a super-sink, with arc capacities taken from
// the per-call capacity vectors, and computes the maximum flow from
// super-source to super-sink. Only the terminal capacities bound the
// delivery: the physical network is never flow-limited.
//
// The key algorithms offered are:
//
//   - Dinic (default)
//
//   - Method: BFS level graph + blocking flow via DFS with current-arc pointers.
//
//   - Time:   O(V²·E) worst case, far less on the sparse forests used here.
//
//   - Memory: O(V + E) for levels, arc pointers and the residual arrays.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V·E²).
//
//   - Memory: O(V + E).
//
// # Residual representation
//
// Edges live in flat arrays with paired ids (e, e^1). Each stores its
// capacity and its current flow; the residual capacity is cap[e] - flow[e]
// and pushing f along e adds f to flow[e] and subtracts it from flow[e^1].
// Undirected arcs store +Inf in both directions, so the residual never
// loses precision on unbounded arcs.
//
// # Results
//
// Result reports the total value, the amount delivered per source terminal,
// the amount received per sink terminal, and the signed flow on every arc
// (positive means From→To). Magnitudes at or below Epsilon are reported as 0.
//
// # Concurrency
//
// MaxFlow never mutates the Network; scratch buffers come from a sync.Pool,
// so one Network can be solved for many hours from many goroutines.
//
// # Errors
//
//	ErrNodeOutOfRange   - an arc or terminal references a missing node.
//	ErrCapacityLength   - a capacity vector does not match its terminal list.
//	ErrUnknownAlgorithm - FlowOptions.Algorithm is not recognized.
//	EdgeError           - a terminal capacity is negative (beyond Epsilon) or not finite.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
package flow
