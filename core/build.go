package core

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/heatnet/geo"
)

// Build creates a graph over sources and sinks and connects every pair of
// nodes closer than radius km: source–sink first, then source–source, then
// sink–sink. Each edge's AttrDistance is the approximated distance.
//
// Complexity: O(N²) pairwise, or roughly O(N + P) with the grid index,
// where P is the number of candidate pairs.
func Build(sources, sinks []Node, radius float64, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(sources, sinks, opts...)
	if err != nil {
		return nil, err
	}

	var geoOpts []geo.Option
	if g.spatialIndex != nil {
		geoOpts = append(geoOpts, geo.WithIndex(*g.spatialIndex))
	}
	src, snk := positions(sources), positions(sinks)

	sets := []struct {
		kindA, kindB Kind
		a, b         []orb.Point
	}{
		{Source, Sink, src, snk},
		{Source, Source, src, src},
		{Sink, Sink, snk, snk},
	}
	for _, s := range sets {
		setOpts := geoOpts
		if s.kindA == s.kindB {
			setOpts = append(append([]geo.Option(nil), geoOpts...), geo.WithSameSet())
		}
		pairs, err := geo.FindNeighbors(s.a, s.b, radius, setOpts...)
		if err != nil {
			return nil, fmt.Errorf("core: %s-%s neighbors: %w", s.kindA, s.kindB, err)
		}
		if _, err = g.Connect(s.kindA, s.kindB, pairs); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func positions(nodes []Node) []orb.Point {
	pts := make([]orb.Point, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Position
	}
	return pts
}

// Connect adds one undirected edge per pair, from NodeID{kindA, p.A} to
// NodeID{kindB, p.B}, with AttrDistance = p.Distance. Edges that already
// exist (in either orientation) are skipped. Other scalar attributes of new
// edges start at 0 and series start empty. It returns the number of edges
// added.
//
// The batch is validated first; on error nothing is added.
//
// Complexity: O(P) amortized.
func (g *Graph) Connect(kindA, kindB Kind, pairs []geo.Pair) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Validate endpoints and loops.
	for _, p := range pairs {
		from, to := NodeID{Kind: kindA, Index: p.A}, NodeID{Kind: kindB, Index: p.B}
		if !g.hasNode(from) {
			return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, from)
		}
		if !g.hasNode(to) {
			return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, to)
		}
		if from == to {
			return 0, fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
		}
	}

	// 2) Append new edges and keep every attribute aligned.
	added := 0
	for _, p := range pairs {
		e := Edge{From: NodeID{Kind: kindA, Index: p.A}, To: NodeID{Kind: kindB, Index: p.B}}
		k := e.key()
		if _, dup := g.index[k]; dup {
			continue
		}
		g.index[k] = len(g.edges)
		g.edges = append(g.edges, e)
		for name, vals := range g.attrs {
			v := 0.0
			if name == AttrDistance {
				v = p.Distance
			}
			g.attrs[name] = append(vals, v)
		}
		for name, vals := range g.series {
			g.series[name] = append(vals, nil)
		}
		added++
	}

	return added, nil
}

// hasNode reports whether id refers to an existing node. Caller holds mu.
func (g *Graph) hasNode(id NodeID) bool {
	switch id.Kind {
	case Source:
		return id.Index >= 0 && id.Index < len(g.sources)
	case Sink:
		return id.Index >= 0 && id.Index < len(g.sinks)
	default:
		return false
	}
}

// vertex maps a node to its dense index: sources first, then sinks.
// Caller holds mu.
func (g *Graph) vertex(id NodeID) int {
	if id.Kind == Sink {
		return len(g.sources) + id.Index
	}
	return id.Index
}
