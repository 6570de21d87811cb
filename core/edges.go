package core

import "fmt"

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeEndpoints returns a copy of all edges in edge order. Attribute arrays
// use the same order.
func (g *Graph) EdgeEndpoints() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// DeleteEdges removes the given edges, matched by unordered endpoint pair,
// and re-slices every attribute and series so that they stay aligned with
// the surviving edges, whose relative order is preserved. Repeated entries
// count once. It returns the number of edges removed.
//
// If any edge is unknown, ErrEdgeNotFound is returned and nothing is removed.
//
// Complexity: O(E + D) plus O(A·E) for A attributes.
func (g *Graph) DeleteEdges(edges []Edge) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Resolve every edge before touching anything.
	drop := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		i, ok := g.index[e.key()]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
		}
		drop[i] = struct{}{}
	}
	if len(drop) == 0 {
		return 0, nil
	}

	// 2) Positions to keep, in order.
	keep := make([]int, 0, len(g.edges)-len(drop))
	for i := range g.edges {
		if _, gone := drop[i]; !gone {
			keep = append(keep, i)
		}
	}
	g.retain(keep)

	return len(drop), nil
}

// retain keeps only the edges at the given ascending positions and rebuilds
// the index and attribute arrays. Caller holds mu for writing.
func (g *Graph) retain(keep []int) {
	edges := make([]Edge, len(keep))
	for j, i := range keep {
		edges[j] = g.edges[i]
	}
	for name, vals := range g.attrs {
		next := make([]float64, len(keep))
		for j, i := range keep {
			next[j] = vals[i]
		}
		g.attrs[name] = next
	}
	for name, vals := range g.series {
		next := make([][]float64, len(keep))
		for j, i := range keep {
			next[j] = vals[i]
		}
		g.series[name] = next
	}

	g.edges = edges
	g.index = make(map[edgeKey]int, len(edges))
	for i, e := range edges {
		g.index[e.key()] = i
	}
}
