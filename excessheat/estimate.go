package excessheat

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/cost"
	"github.com/katalvlaran/heatnet/dataset"
	"github.com/katalvlaran/heatnet/export"
	"github.com/katalvlaran/heatnet/optimize"
	"github.com/katalvlaran/heatnet/profile"
)

// Estimate filters the inputs against the profiles, builds and prunes the
// network and returns the surviving lines with the network summary.
func Estimate(ctx context.Context, in Inputs, s Settings, opts ...Option) (*Report, error) {
	r := newRunner(opts)
	if in.Profiles == nil {
		return nil, ErrNoProfiles
	}
	model := s.Model
	if model == nil {
		model = cost.Default()
	}
	rep := &Report{Region: s.Region, StartedAt: r.clock.Now()}

	sources, dropped := dataset.FilterSources(in.Sources, in.Profiles)
	rep.Sources, rep.DroppedSources = len(sources), dropped
	sinks, dropped := dataset.FilterSinks(in.Sinks, in.Profiles)
	rep.Sinks, rep.DroppedSinks = len(sinks), dropped
	r.logger.Info("records filtered",
		"region", s.Region,
		"residential_profiles", in.Profiles.Keys(dataset.ResidentialHeating),
		"sources", rep.Sources,
		"sources_dropped", rep.DroppedSources,
		"sinks", rep.Sinks,
		"sinks_dropped", rep.DroppedSinks,
	)

	sourceCaps, err := profile.BuildCapacities(in.Profiles, dataset.SourceDemands(sources))
	if err != nil {
		return nil, fmt.Errorf("excessheat: source capacities: %w", err)
	}
	sinkCaps, err := profile.BuildCapacities(in.Profiles, dataset.SinkDemands(sinks))
	if err != nil {
		return nil, fmt.Errorf("excessheat: sink capacities: %w", err)
	}

	g, err := core.Build(sourceNodes(sources), sinkNodes(sinks, s.DeliveryTemperature), s.SearchRadius, s.Graph...)
	if err != nil {
		return nil, fmt.Errorf("excessheat: build network: %w", err)
	}
	rep.CandidateEdges = g.EdgeCount()
	if _, err := g.ReduceToMinimumSpanningForest(core.AttrDistance); err != nil {
		return nil, fmt.Errorf("excessheat: spanning forest: %w", err)
	}
	rep.ForestEdges = g.EdgeCount()
	stats := g.Stats()
	r.logger.Info("network built",
		"candidate_edges", rep.CandidateEdges,
		"forest_edges", rep.ForestEdges,
		"components", stats.ComponentCount,
		"isolated", stats.IsolatedCount,
	)

	o, err := optimize.New(g, sourceCaps, sinkCaps, model, s.Params,
		optimize.WithLogger(r.logger),
		optimize.WithMetrics(r.metrics),
		optimize.WithClock(r.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("excessheat: %w", err)
	}
	res, err := o.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("excessheat: %w", err)
	}
	rep.Result = res

	rep.Lines, err = lines(g, res.Final, s.DeliveryTemperature)
	if err != nil {
		return nil, err
	}
	rep.Summary = export.Summary{
		TotalCostEUR:     res.Final.TotalCost,
		TotalFlowGWh:     res.Final.TotalFlow,
		CostPerFlowCtKWh: res.Final.CostPerFlow,
	}
	rep.FinishedAt = r.clock.Now()

	return rep, nil
}

func sourceNodes(records []dataset.SourceRecord) []core.Node {
	nodes := make([]core.Node, len(records))
	for i, rec := range records {
		nodes[i] = core.Node{ID: core.SourceID(i), Position: rec.Position, Temperature: rec.Temperature}
	}
	return nodes
}

// sinkNodes converts sink records into nodes. A positive temperature
// overrides the records' own so sinks and lines agree.
func sinkNodes(records []dataset.SinkRecord, temperature float64) []core.Node {
	nodes := make([]core.Node, len(records))
	for i, rec := range records {
		t := rec.Temperature
		if temperature > 0 {
			t = temperature
		}
		nodes[i] = core.Node{ID: core.SinkID(i), Position: rec.Position, Temperature: t}
	}
	return nodes
}

// lines converts the surviving edges of the final round into export lines,
// in edge order. Peaks come from the flow series the round left on g.
func lines(g *core.Graph, r *optimize.Round, temperature float64) ([]export.Line, error) {
	series, err := g.EdgeSeries(core.SeriesFlow)
	if err != nil {
		return nil, fmt.Errorf("excessheat: %w", err)
	}
	if len(series) != len(r.Edges) {
		return nil, fmt.Errorf("excessheat: %d flow series for %d lines", len(series), len(r.Edges))
	}

	out := make([]export.Line, len(r.Edges))
	for i, e := range r.Edges {
		from, err := g.Node(e.From)
		if err != nil {
			return nil, fmt.Errorf("excessheat: line %s: %w", e, err)
		}
		to, err := g.Node(e.To)
		if err != nil {
			return nil, fmt.Errorf("excessheat: line %s: %w", e, err)
		}
		out[i] = export.Line{
			From:          from.Position,
			To:            to.Position,
			FlowMWh:       r.AnnualFlows[i],
			PeakMW:        cost.Peak(series[i]),
			TemperatureC:  temperature,
			CostEUR:       r.ConnectionCosts[i],
			LengthKm:      r.Lengths[i],
			LevelizedCost: r.CostPerConnection[i],
		}
	}
	return out, nil
}
