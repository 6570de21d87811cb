package optimize

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/heatnet/core"
)

// Run executes the convergence loop:
//
//	round := FlowRound
//	repeat:
//	    remove lines with levelized cost < 0 or > Threshold
//	    stop if nothing was removed
//	    round' := FlowRound
//	    stop if round'.TotalSourceFlow equals round.TotalSourceFlow within Tolerance
//
// Needing more than MaxIterations pruning passes returns ErrNotConverged.
func (o *Optimizer) Run(ctx context.Context) (*Result, error) {
	res := &Result{StartedAt: o.clock.Now()}

	round, err := o.FlowRound(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Info("initial flow round",
		"edges", len(round.Edges),
		"total_flow_gwh", round.TotalFlow,
		"cost_per_flow_ct_kwh", round.CostPerFlow,
	)

	for iter := 1; ; iter++ {
		remove := Prunable(round, o.params.Threshold)
		if len(remove) == 0 {
			break
		}
		if iter > o.params.MaxIterations {
			return nil, fmt.Errorf("%w: %d lines still prunable after %d iterations",
				ErrNotConverged, len(remove), o.params.MaxIterations)
		}

		removed, err := o.graph.DeleteEdges(remove)
		if err != nil {
			return nil, fmt.Errorf("optimize: iteration %d: %w", iter, err)
		}
		o.metrics.EdgesPruned.Add(float64(removed))

		next, err := o.FlowRound(ctx)
		if err != nil {
			return nil, err
		}
		res.History = append(res.History, Iteration{
			Index:       iter,
			EdgesBefore: len(round.Edges),
			Removed:     removed,
			TotalFlow:   next.TotalFlow,
			CostPerFlow: next.CostPerFlow,
		})
		o.logger.Info("pruning iteration",
			"iteration", iter,
			"removed", removed,
			"edges", len(next.Edges),
			"total_flow_gwh", next.TotalFlow,
			"cost_per_flow_ct_kwh", next.CostPerFlow,
		)

		unchanged := math.Abs(next.TotalSourceFlow-round.TotalSourceFlow) <= o.params.Tolerance
		round = next
		if unchanged {
			break
		}
	}

	res.Final = round
	res.Edges = round.Edges
	res.FinishedAt = o.clock.Now()
	o.logger.Info("network converged",
		"iterations", len(res.History),
		"edges", len(res.Edges),
		"total_flow_gwh", round.TotalFlow,
		"cost_per_flow_ct_kwh", round.CostPerFlow,
	)

	return res, nil
}

// Prunable returns the edges of r whose levelized cost is negative or
// strictly above threshold, in edge order.
func Prunable(r *Round, threshold float64) []core.Edge {
	var out []core.Edge
	for e, c := range r.CostPerConnection {
		if c < 0 || c > threshold {
			out = append(out, r.Edges[e])
		}
	}
	return out
}
