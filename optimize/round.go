package optimize

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/flow"
)

// FlowRound solves every hour on the current topology, prices the network
// and stores "flow" (signed, per hour), AttrAnnualFlow, AttrConnectionCost
// and AttrLevelizedCost on the graph's edges.
//
// Steps:
//  1. Snapshot edges, lengths and the flow topology.
//  2. Solve hours on a pool of Params.Workers goroutines, one result slot per hour.
//  3. Transpose into per-node and per-edge sequences.
//  4. Price exchangers and lines, levelize lines, aggregate totals.
//  5. Write attributes, metrics and a debug log line.
func (o *Optimizer) FlowRound(ctx context.Context) (*Round, error) {
	start := o.clock.Now()

	// 1) Snapshot.
	edges := o.graph.EdgeEndpoints()
	lengths, err := o.graph.EdgeAttribute(core.AttrDistance)
	if err != nil {
		return nil, err
	}
	network, err := o.graph.FlowNetwork()
	if err != nil {
		return nil, err
	}

	// 2) Hourly max flows.
	results, err := o.solveHours(ctx, network)
	if err != nil {
		return nil, err
	}

	// 3) Transpose.
	r := &Round{
		Hours:       o.hours,
		Edges:       edges,
		Lengths:     lengths,
		SourceFlows: alloc(len(o.sourceCaps), o.hours),
		SinkFlows:   alloc(len(o.sinkCaps), o.hours),
		EdgeFlows:   alloc(len(edges), o.hours),
	}
	signed := alloc(len(edges), o.hours)
	for h, res := range results {
		for i, f := range res.Sources {
			r.SourceFlows[i][h] = math.Abs(f)
		}
		for j, f := range res.Sinks {
			r.SinkFlows[j][h] = math.Abs(f)
		}
		for e, f := range res.Arcs {
			signed[e][h] = f
			r.EdgeFlows[e][h] = math.Abs(f)
		}
	}

	// 4) Costs and totals.
	o.price(r)

	// 5) Publish.
	if err = o.graph.SetEdgeSeries(core.SeriesFlow, signed); err != nil {
		return nil, err
	}
	for name, vals := range map[string][]float64{
		AttrAnnualFlow:     r.AnnualFlows,
		AttrConnectionCost: r.ConnectionCosts,
		AttrLevelizedCost:  r.CostPerConnection,
	} {
		if err = o.graph.AddEdgeAttribute(name, vals); err != nil {
			return nil, err
		}
	}

	o.metrics.FlowRounds.Inc()
	o.metrics.HourlySolves.Add(float64(o.hours))
	o.metrics.RoundDuration.Observe(o.clock.Since(start).Seconds())
	o.metrics.NetworkEdges.Set(float64(len(edges)))
	o.metrics.TotalFlowGWh.Set(r.TotalFlow)
	o.metrics.CostPerFlow.Set(r.CostPerFlow)
	o.logger.Debug("flow round",
		"nodes", network.Nodes(),
		"edges", len(edges),
		"hours", o.hours,
		"total_flow_gwh", r.TotalFlow,
		"total_cost_eur", r.TotalCost,
		"cost_per_flow_ct_kwh", r.CostPerFlow,
	)

	return r, nil
}

// solveHours runs one max flow per hour with bounded parallelism.
func (o *Optimizer) solveHours(ctx context.Context, network *flow.Network) ([]*flow.Result, error) {
	results := make([]*flow.Result, o.hours)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.params.Workers)
	for h := 0; h < o.hours; h++ {
		if gctx.Err() != nil {
			break
		}
		h := h
		g.Go(func() error {
			res, err := network.MaxFlow(gctx, column(o.sourceCaps, h), column(o.sinkCaps, h))
			if err != nil {
				return fmt.Errorf("optimize: hour %d: %w", h, err)
			}
			results[h] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// price fills costs, levelized costs and totals of r.
func (o *Optimizer) price(r *Round) {
	period := o.params.InvestmentPeriod

	r.SourceCosts = make([]float64, len(r.SourceFlows))
	for i, f := range r.SourceFlows {
		r.SourceCosts[i] = o.model.SourceExchanger(f)
		r.TotalCost += r.SourceCosts[i]
		r.TotalSourceFlow += sum(f)
	}
	r.SinkCosts = make([]float64, len(r.SinkFlows))
	for j, f := range r.SinkFlows {
		r.SinkCosts[j] = o.model.SinkExchanger(f)
		r.TotalCost += r.SinkCosts[j]
	}

	r.AnnualFlows = make([]float64, len(r.EdgeFlows))
	r.ConnectionCosts = make([]float64, len(r.EdgeFlows))
	r.CostPerConnection = make([]float64, len(r.EdgeFlows))
	for e, f := range r.EdgeFlows {
		annual := sum(f)
		c := o.model.Connection(r.Lengths[e], f)
		r.AnnualFlows[e] = annual
		r.ConnectionCosts[e] = c
		r.TotalCost += c
		if annual <= flowEpsilon {
			r.CostPerConnection[e] = ZeroFlowCost
			continue
		}
		// €/MWh per year → ct/kWh
		r.CostPerConnection[e] = c / annual / period * 0.1
	}

	r.TotalFlow = r.TotalSourceFlow / 1000
	switch {
	case r.TotalFlow > 0:
		r.CostPerFlow = r.TotalCost / r.TotalFlow / period / 1e6 * 1e2
	case r.TotalCost == 0:
		r.CostPerFlow = 0
	default:
		r.CostPerFlow = UndeliverableCost
	}
}

func alloc(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

func column(m [][]float64, h int) []float64 {
	out := make([]float64, len(m))
	for i, seq := range m {
		out[i] = seq[h]
	}
	return out
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
