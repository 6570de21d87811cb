// Package core provides the heat transmission network graph: a thread-safe,
// index-aligned store of source and sink nodes, the undirected candidate
// pipelines between them, and the per-edge attribute arrays the optimizer
// reads and writes.
//
// Node identity is tagged: a NodeID carries its Kind (Source or Sink) and
// its position in that kind's list, so source 3 and sink 3 never collide.
//
// The Graph G = (V,E) supports:
//
//   - Construction from geo.Pair candidate lists (Connect, Build)
//   - Deduplication by unordered endpoint pair, rejection of self-loops
//   - Scalar edge attributes ("distance", "cost", ...) and per-edge series
//     ("flow": one value per hour), always aligned with the edge order
//   - Minimum spanning forest reduction over any scalar attribute, using
//     prim_kruskal (Kruskal by default, Prim via WithMSTMethod)
//   - Maximum flow with capacity-limited sources and sinks over unbounded
//     undirected edges, using flow (Dinic by default)
//   - Batch edge deletion that re-slices every attribute array
//
// Configuration Options (GraphOption):
//
//	– WithMSTMethod(method string)
//	    prim_kruskal.MethodKruskal (default) or prim_kruskal.MethodPrim.
//
//	– WithFlowOptions(opts flow.FlowOptions)
//	    Algorithm and epsilon used by MaximumFlow and FlowNetwork.
//
//	– WithSpatialIndex(enabled bool)
//	    Forces the geo grid index on or off in Build.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes, edges and attributes. Readers take
//	the read lock and receive copies; mutators take the write lock. The
//	*flow.Network returned by FlowNetwork is an immutable snapshot and can
//	be solved from many goroutines while the Graph is left untouched.
//
// Errors:
//
//	ErrBadNode           - a node's ID does not match its kind and position.
//	ErrNodeNotFound      - a pair or lookup references a missing node.
//	ErrLoopNotAllowed    - a pair connects a node to itself.
//	ErrEdgeNotFound      - DeleteEdges was given an unknown edge.
//	ErrAttributeNotFound - an attribute or series name is unknown.
//	ErrAttributeLength   - attribute values do not match the edge count.
package core
