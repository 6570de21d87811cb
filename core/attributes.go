package core

import "fmt"

// EdgeAttribute returns a copy of the named scalar attribute, one value per edge.
func (g *Graph) EdgeAttribute(name string) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vals, ok := g.attrs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	return append([]float64(nil), vals...), nil
}

// AddEdgeAttribute creates or replaces a scalar attribute. values must hold
// one entry per edge, in edge order; it is copied.
func (g *Graph) AddEdgeAttribute(name string, values []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(values) != len(g.edges) {
		return fmt.Errorf("%w: %q has %d values for %d edges", ErrAttributeLength, name, len(values), len(g.edges))
	}
	g.attrs[name] = append([]float64(nil), values...)

	return nil
}

// EdgeSeries returns a deep copy of the named per-edge series.
func (g *Graph) EdgeSeries(name string) ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vals, ok := g.series[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	out := make([][]float64, len(vals))
	for i, v := range vals {
		out[i] = append([]float64(nil), v...)
	}
	return out, nil
}

// SetEdgeSeries creates or replaces a per-edge series such as SeriesFlow.
// values must hold one vector per edge; vectors are copied.
func (g *Graph) SetEdgeSeries(name string, values [][]float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(values) != len(g.edges) {
		return fmt.Errorf("%w: %q has %d vectors for %d edges", ErrAttributeLength, name, len(values), len(g.edges))
	}
	next := make([][]float64, len(values))
	for i, v := range values {
		next[i] = append([]float64(nil), v...)
	}
	g.series[name] = next

	return nil
}
