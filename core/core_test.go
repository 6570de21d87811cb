package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/flow"
	"github.com/katalvlaran/heatnet/geo"
	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// nodes builds n nodes of the given kind along the equator, 0.01° apart.
func nodes(kind core.Kind, lons ...float64) []core.Node {
	out := make([]core.Node, len(lons))
	for i, lon := range lons {
		out[i] = core.Node{ID: core.NodeID{Kind: kind, Index: i}, Position: orb.Point{lon, 0}, Temperature: 100}
	}
	return out
}

// hasEdge reports whether g holds an edge between a and b in either orientation.
func hasEdge(g *core.Graph, a, b core.NodeID) bool {
	for _, e := range g.EdgeEndpoints() {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}
	return false
}

// triangle returns s0, s1, k0 connected pairwise with distances 1, 2, 3.
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(nodes(core.Source, 0, 0.02), nodes(core.Sink, 0.01), opts...)
	require.NoError(t, err)
	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 1}, {A: 1, B: 0, Distance: 2}})
	require.NoError(t, err)
	_, err = g.Connect(core.Source, core.Source, []geo.Pair{{A: 0, B: 1, Distance: 3}})
	require.NoError(t, err)
	return g
}

func TestNewGraphRejectsMisnumberedNodes(t *testing.T) {
	src := nodes(core.Source, 0, 1)
	src[1].ID.Index = 0
	_, err := core.NewGraph(src, nil)
	assert.ErrorIs(t, err, core.ErrBadNode)

	_, err = core.NewGraph(nil, nodes(core.Source, 0))
	assert.ErrorIs(t, err, core.ErrBadNode)
}

func TestConnect(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0, 1), nodes(core.Sink, 2))
	require.NoError(t, err)

	added, err := g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 5}, {A: 1, B: 0, Distance: 7}})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// duplicates in either orientation are skipped
	added, err = g.Connect(core.Sink, core.Source, []geo.Pair{{A: 0, B: 0, Distance: 9}})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.True(t, hasEdge(g, core.SinkID(0), core.SourceID(0)))

	dist, err := g.EdgeAttribute(core.AttrDistance)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7}, dist)
}

func TestConnectErrorsAreAtomic(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0, 1), nodes(core.Sink, 2))
	require.NoError(t, err)

	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 1}, {A: 0, B: 3, Distance: 1}})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount())

	_, err = g.Connect(core.Source, core.Source, []geo.Pair{{A: 0, B: 1, Distance: 1}, {A: 1, B: 1}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestConnectExtendsExistingAttributes(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0), nodes(core.Sink, 1, 2))
	require.NoError(t, err)
	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 1}})
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeAttribute("cost", []float64{42}))
	require.NoError(t, g.SetEdgeSeries(core.SeriesFlow, [][]float64{{1, 2}}))

	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 1, Distance: 2}})
	require.NoError(t, err)

	cost, err := g.EdgeAttribute("cost")
	require.NoError(t, err)
	assert.Equal(t, []float64{42, 0}, cost)
	series, err := g.EdgeSeries(core.SeriesFlow)
	require.NoError(t, err)
	assert.Len(t, series, 2)
	assert.Empty(t, series[1])
}

func TestBuild(t *testing.T) {
	for _, indexed := range []bool{false, true} {
		g, err := core.Build(nodes(core.Source, 0, 0.02), nodes(core.Sink, 0.01, 0.5), 2, core.WithSpatialIndex(indexed))
		require.NoError(t, err)

		want := []core.Edge{
			{From: core.SourceID(0), To: core.SinkID(0)},
			{From: core.SourceID(1), To: core.SinkID(0)},
		}
		if diff := cmp.Diff(want, g.EdgeEndpoints()); diff != "" {
			t.Errorf("indexed=%v edges mismatch (-want +got):\n%s", indexed, diff)
		}
		dist, err := g.EdgeAttribute(core.AttrDistance)
		require.NoError(t, err)
		for _, d := range dist {
			assert.InDelta(t, 1.113, d, 0.001)
		}
	}
}

func TestBuildRejectsBadRadius(t *testing.T) {
	_, err := core.Build(nodes(core.Source, 0), nodes(core.Sink, 0.01), 0)
	assert.ErrorIs(t, err, geo.ErrBadRadius)
}

func TestReduceToMinimumSpanningForest(t *testing.T) {
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		g := triangle(t, core.WithMSTMethod(method))

		removed, err := g.ReduceToMinimumSpanningForest(core.AttrDistance)
		require.NoError(t, err, method)
		assert.Equal(t, 1, removed, method)
		assert.False(t, hasEdge(g, core.SourceID(0), core.SourceID(1)), method)

		removed, err = g.ReduceToMinimumSpanningForest(core.AttrDistance)
		require.NoError(t, err, method)
		assert.Equal(t, 0, removed, "second reduction must be a no-op (%s)", method)
	}
}

func TestReduceErrors(t *testing.T) {
	g := triangle(t)
	_, err := g.ReduceToMinimumSpanningForest("weight")
	assert.ErrorIs(t, err, core.ErrAttributeNotFound)

	require.NoError(t, g.AddEdgeAttribute("bad", []float64{1, -1, 2}))
	_, err = g.ReduceToMinimumSpanningForest("bad")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)
	assert.Equal(t, 3, g.EdgeCount())

	g = triangle(t, core.WithMSTMethod("boruvka"))
	_, err = g.ReduceToMinimumSpanningForest(core.AttrDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMaximumFlow(t *testing.T) {
	g := triangle(t)
	_, err := g.ReduceToMinimumSpanningForest(core.AttrDistance)
	require.NoError(t, err)

	res, err := g.MaximumFlow(context.Background(), []float64{10, 10}, []float64{15})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, res.Value, 1e-9)
	assert.InDelta(t, 15.0, res.Sources[0]+res.Sources[1], 1e-9)
	assert.Equal(t, []float64{15}, res.Sinks)
	for _, s := range res.Sources {
		assert.LessOrEqual(t, s, 10.0)
	}
	for _, a := range res.Arcs {
		assert.GreaterOrEqual(t, a, 0.0, "sources feed the sink along stored orientation")
	}
}

func TestMaximumFlowSign(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0), nodes(core.Sink, 0.01, 0.02))
	require.NoError(t, err)
	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 1}})
	require.NoError(t, err)
	_, err = g.Connect(core.Sink, core.Sink, []geo.Pair{{A: 1, B: 0, Distance: 1}})
	require.NoError(t, err)

	res, err := g.MaximumFlow(context.Background(), []float64{10}, []float64{0, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -5}, res.Arcs)
}

func TestMaximumFlowErrors(t *testing.T) {
	g := triangle(t)

	_, err := g.MaximumFlow(context.Background(), []float64{1}, []float64{1})
	assert.ErrorIs(t, err, flow.ErrCapacityLength)

	_, err = g.MaximumFlow(context.Background(), []float64{1, -4}, []float64{1})
	var ee flow.EdgeError
	assert.True(t, errors.As(err, &ee))
}

func TestMaximumFlowWithoutEdges(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0), nodes(core.Sink, 1))
	require.NoError(t, err)

	res, err := g.MaximumFlow(context.Background(), []float64{10}, []float64{10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
}

func TestDeleteEdges(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdgeAttribute("cost", []float64{10, 20, 30}))
	require.NoError(t, g.SetEdgeSeries(core.SeriesFlow, [][]float64{{1}, {2}, {3}}))

	// reversed orientation and a repeated entry still delete one edge
	removed, err := g.DeleteEdges([]core.Edge{
		{From: core.SinkID(0), To: core.SourceID(1)},
		{From: core.SourceID(1), To: core.SinkID(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	want := []core.Edge{
		{From: core.SourceID(0), To: core.SinkID(0)},
		{From: core.SourceID(0), To: core.SourceID(1)},
	}
	assert.Equal(t, want, g.EdgeEndpoints())
	dist, _ := g.EdgeAttribute(core.AttrDistance)
	assert.Equal(t, []float64{1, 3}, dist)
	cost, _ := g.EdgeAttribute("cost")
	assert.Equal(t, []float64{10, 30}, cost)
	series, _ := g.EdgeSeries(core.SeriesFlow)
	assert.Equal(t, [][]float64{{1}, {3}}, series)
}

func TestDeleteUnknownEdgeRemovesNothing(t *testing.T) {
	g := triangle(t)

	_, err := g.DeleteEdges([]core.Edge{
		{From: core.SourceID(0), To: core.SinkID(0)},
		{From: core.SinkID(0), To: core.SinkID(0)},
	})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAttributesAreCopies(t *testing.T) {
	g := triangle(t)

	dist, err := g.EdgeAttribute(core.AttrDistance)
	require.NoError(t, err)
	dist[0] = 99
	again, _ := g.EdgeAttribute(core.AttrDistance)
	assert.Equal(t, 1.0, again[0])

	in := [][]float64{{1, 2}, {3}, {4}}
	require.NoError(t, g.SetEdgeSeries(core.SeriesFlow, in))
	in[0][0] = 99
	out, _ := g.EdgeSeries(core.SeriesFlow)
	assert.Equal(t, 1.0, out[0][0])

	assert.ErrorIs(t, g.AddEdgeAttribute("cost", []float64{1}), core.ErrAttributeLength)
	assert.ErrorIs(t, g.SetEdgeSeries(core.SeriesFlow, nil), core.ErrAttributeLength)
	_, err = g.EdgeSeries("missing")
	assert.ErrorIs(t, err, core.ErrAttributeNotFound)
}

func TestNodeAndStats(t *testing.T) {
	g, err := core.NewGraph(nodes(core.Source, 0, 1), nodes(core.Sink, 2, 3, 4))
	require.NoError(t, err)
	_, err = g.Connect(core.Source, core.Sink, []geo.Pair{{A: 0, B: 0, Distance: 1}, {A: 1, B: 1, Distance: 1}})
	require.NoError(t, err)

	n, err := g.Node(core.SinkID(1))
	require.NoError(t, err)
	assert.Equal(t, orb.Point{3, 0}, n.Position)
	_, err = g.Node(core.SinkID(3))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	stats := g.Stats()
	assert.Equal(t, 2, stats.SourceCount)
	assert.Equal(t, 3, stats.SinkCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 2, stats.ComponentCount)
	assert.Equal(t, 1, stats.IsolatedCount)
	assert.Equal(t, []string{core.AttrDistance}, stats.Attributes)
	assert.Empty(t, stats.Series)

	assert.Len(t, g.Sources(), 2)
	assert.Len(t, g.Sinks(), 3)
	assert.Equal(t, "sink[1]", core.SinkID(1).String())
}
