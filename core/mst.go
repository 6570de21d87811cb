package core

import (
	"fmt"

	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// ReduceToMinimumSpanningForest keeps only the edges of a minimum spanning
// forest weighted by the named scalar attribute; every connected component
// keeps its own tree. Ties are broken by edge order. It returns the number
// of edges removed. Calling it twice removes nothing the second time.
//
// Errors: ErrAttributeNotFound, prim_kruskal.ErrInvalidWeight for NaN,
// infinite or negative weights, prim_kruskal.ErrUnknownMethod.
//
// Complexity: O(E log E) for Kruskal, O(E log E) for Prim.
func (g *Graph) ReduceToMinimumSpanningForest(attr string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	weights, ok := g.attrs[attr]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrAttributeNotFound, attr)
	}

	edges := make([]prim_kruskal.Edge, len(g.edges))
	for i, e := range g.edges {
		edges[i] = prim_kruskal.Edge{U: g.vertex(e.From), V: g.vertex(e.To), Weight: weights[i]}
	}
	keep, _, err := prim_kruskal.Compute(len(g.sources)+len(g.sinks), edges, prim_kruskal.WithMethod(g.mstMethod))
	if err != nil {
		return 0, fmt.Errorf("core: spanning forest over %q: %w", attr, err)
	}

	removed := len(g.edges) - len(keep)
	if removed > 0 {
		g.retain(keep)
	}

	return removed, nil
}
