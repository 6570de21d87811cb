package core

import (
	"context"

	"github.com/katalvlaran/heatnet/flow"
)

// FlowNetwork returns an immutable snapshot of the current topology for
// repeated max-flow solves. Source i is terminal i of the source list, sink
// j terminal j of the sink list, and arc e is edge e in stored orientation.
// The snapshot does not follow later edge deletions.
//
// Complexity: O(V + E).
func (g *Graph) FlowNetwork() (*flow.Network, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := make([]flow.Arc, len(g.edges))
	for i, e := range g.edges {
		arcs[i] = flow.Arc{From: g.vertex(e.From), To: g.vertex(e.To)}
	}
	sources := make([]int, len(g.sources))
	for i := range sources {
		sources[i] = i
	}
	sinks := make([]int, len(g.sinks))
	for j := range sinks {
		sinks[j] = len(g.sources) + j
	}

	return flow.NewNetwork(len(g.sources)+len(g.sinks), arcs, sources, sinks, g.flowOpts)
}

// MaximumFlow solves a single max-flow instance: a super-source feeds each
// source up to sourceCaps[i], each sink drains into a super-sink up to
// sinkCaps[j], and edges are undirected and unbounded. Result.Arcs[e] is the
// signed flow on edge e (positive means From→To).
//
// Errors: flow.ErrCapacityLength, flow.EdgeError, context errors.
func (g *Graph) MaximumFlow(ctx context.Context, sourceCaps, sinkCaps []float64) (*flow.Result, error) {
	n, err := g.FlowNetwork()
	if err != nil {
		return nil, err
	}
	return n.MaxFlow(ctx, sourceCaps, sinkCaps)
}
