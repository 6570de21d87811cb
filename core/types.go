package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/heatnet/flow"
	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// Sentinel errors for graph operations.
var (
	// ErrBadNode indicates a node whose ID does not match its kind and index.
	ErrBadNode = errors.New("core: node ID does not match its position")

	// ErrNodeNotFound indicates a reference to a node that does not exist.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an attempt to connect a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an edge that is not part of the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAttributeNotFound indicates an unknown attribute or series name.
	ErrAttributeNotFound = errors.New("core: attribute not found")

	// ErrAttributeLength indicates attribute values misaligned with the edges.
	ErrAttributeLength = errors.New("core: attribute length does not match edge count")
)

// Well-known attribute names.
const (
	// AttrDistance is the scalar edge length in kilometers, set on construction.
	AttrDistance = "distance"

	// SeriesFlow is the signed hourly flow per edge, in MWh/h.
	SeriesFlow = "flow"
)

// Kind tags a node as a heat source or a heat sink.
type Kind uint8

const (
	// Source is an excess-heat producer.
	Source Kind = iota
	// Sink is a heat consumer.
	Sink
)

func (k Kind) String() string {
	switch k {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NodeID identifies a node by kind and by its index in that kind's list.
type NodeID struct {
	Kind  Kind
	Index int
}

func (id NodeID) String() string {
	return fmt.Sprintf("%s[%d]", id.Kind, id.Index)
}

// SourceID returns the ID of the i-th source.
func SourceID(i int) NodeID { return NodeID{Kind: Source, Index: i} }

// SinkID returns the ID of the i-th sink.
func SinkID(i int) NodeID { return NodeID{Kind: Sink, Index: i} }

// Node is a heat source or sink at a WGS84 position.
// Temperature is metadata in °C and does not affect the flow.
type Node struct {
	ID          NodeID
	Position    orb.Point
	Temperature float64
}

// Edge is an undirected candidate pipeline. From and To keep the order in
// which the edge was created; that order defines the sign of its flow.
type Edge struct {
	From NodeID
	To   NodeID
}

func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.From, e.To)
}

// edgeKey is the unordered identity of an edge.
type edgeKey struct {
	a, b NodeID
}

func (e Edge) key() edgeKey {
	a, b := e.From, e.To
	if b.Kind < a.Kind || (b.Kind == a.Kind && b.Index < a.Index) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// GraphStats is a snapshot of graph sizes and attribute names.
type GraphStats struct {
	SourceCount    int
	SinkCount      int
	EdgeCount      int
	ComponentCount int // connected components with at least one edge
	IsolatedCount  int // nodes without edges
	Attributes     []string
	Series         []string
}

// GraphOption configures a Graph.
type GraphOption func(g *Graph)

// WithMSTMethod selects the minimum spanning forest algorithm.
func WithMSTMethod(method string) GraphOption {
	return func(g *Graph) { g.mstMethod = method }
}

// WithFlowOptions sets the max-flow algorithm options.
func WithFlowOptions(opts flow.FlowOptions) GraphOption {
	return func(g *Graph) { g.flowOpts = opts }
}

// WithSpatialIndex forces the neighbor grid index on or off in Build.
func WithSpatialIndex(enabled bool) GraphOption {
	return func(g *Graph) { g.spatialIndex = &enabled }
}

// Graph is the heat transmission network. All exported methods are safe
// for concurrent use.
type Graph struct {
	mu sync.RWMutex

	sources []Node
	sinks   []Node

	edges []Edge
	index map[edgeKey]int // edge identity → position in edges

	attrs  map[string][]float64   // name → value per edge
	series map[string][][]float64 // name → vector per edge

	mstMethod    string
	flowOpts     flow.FlowOptions
	spatialIndex *bool
}

// NewGraph creates a graph without edges. Every node's ID must equal its
// kind and position: sources[i].ID == SourceID(i), sinks[j].ID == SinkID(j).
//
// Complexity: O(S + K).
func NewGraph(sources, sinks []Node, opts ...GraphOption) (*Graph, error) {
	for i, n := range sources {
		if n.ID != SourceID(i) {
			return nil, fmt.Errorf("%w: sources[%d] has ID %s", ErrBadNode, i, n.ID)
		}
	}
	for j, n := range sinks {
		if n.ID != SinkID(j) {
			return nil, fmt.Errorf("%w: sinks[%d] has ID %s", ErrBadNode, j, n.ID)
		}
	}

	g := &Graph{
		sources:   append([]Node(nil), sources...),
		sinks:     append([]Node(nil), sinks...),
		index:     make(map[edgeKey]int),
		attrs:     map[string][]float64{AttrDistance: {}},
		series:    make(map[string][][]float64),
		mstMethod: prim_kruskal.MethodKruskal,
		flowOpts:  flow.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
