// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// Sources returns a copy of the source nodes.
func (g *Graph) Sources() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Node(nil), g.sources...)
}

// Sinks returns a copy of the sink nodes.
func (g *Graph) Sinks() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Node(nil), g.sinks...)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if id.Kind == Sink {
		return g.sinks[id.Index], nil
	}
	return g.sources[id.Index], nil
}

// Stats returns a snapshot of node, edge and component counts and the
// sorted attribute and series names.
//
// Complexity: O(V + E·α(V)).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.sources) + len(g.sinks)
	stats := GraphStats{
		SourceCount: len(g.sources),
		SinkCount:   len(g.sinks),
		EdgeCount:   len(g.edges),
	}

	// Union-find over the edge list to count components.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	degree := make([]int, n)
	for _, e := range g.edges {
		u, v := g.vertex(e.From), g.vertex(e.To)
		degree[u]++
		degree[v]++
		if ru, rv := find(u), find(v); ru != rv {
			parent[ru] = rv
		}
	}
	for v := 0; v < n; v++ {
		switch {
		case degree[v] == 0:
			stats.IsolatedCount++
		case find(v) == v:
			stats.ComponentCount++
		}
	}

	for name := range g.attrs {
		stats.Attributes = append(stats.Attributes, name)
	}
	for name := range g.series {
		stats.Series = append(stats.Series, name)
	}
	sort.Strings(stats.Attributes)
	sort.Strings(stats.Series)

	return &stats
}
