package optimize

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/cost"
	"github.com/katalvlaran/heatnet/observability"
)

// Optimizer owns a graph for the duration of a run and prunes it in place.
type Optimizer struct {
	graph      *core.Graph
	sourceCaps [][]float64 // [source][hour] MWh/h
	sinkCaps   [][]float64 // [sink][hour] MWh/h
	hours      int
	model      cost.Model
	params     Params

	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New validates the inputs and returns an Optimizer. sourceCaps and sinkCaps
// hold one hourly sequence per source and sink of graph, all of equal length.
// The capacity matrices are not copied and must not change during a run.
func New(graph *core.Graph, sourceCaps, sinkCaps [][]float64, model cost.Model, params Params, opts ...Option) (*Optimizer, error) {
	if graph == nil || model == nil {
		return nil, fmt.Errorf("%w: graph and cost model are required", ErrBadParams)
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}
	stats := graph.Stats()
	if len(sourceCaps) != stats.SourceCount {
		return nil, fmt.Errorf("%w: %d source sequences for %d sources", ErrCapacityShape, len(sourceCaps), stats.SourceCount)
	}
	if len(sinkCaps) != stats.SinkCount {
		return nil, fmt.Errorf("%w: %d sink sequences for %d sinks", ErrCapacityShape, len(sinkCaps), stats.SinkCount)
	}

	hours := -1
	for _, seqs := range [][][]float64{sourceCaps, sinkCaps} {
		for i, seq := range seqs {
			if hours < 0 {
				hours = len(seq)
			}
			if len(seq) != hours {
				return nil, fmt.Errorf("%w: sequence %d has %d hours, want %d", ErrCapacityShape, i, len(seq), hours)
			}
		}
	}
	if hours < 0 {
		hours = 0
	}

	o := &Optimizer{
		graph:      graph,
		sourceCaps: sourceCaps,
		sinkCaps:   sinkCaps,
		hours:      hours,
		model:      model,
		params:     params,
		logger:     observability.DiscardLogger(),
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = observability.NewMetricsForTesting()
	}

	return o, nil
}

// Params returns the normalized parameters.
func (o *Optimizer) Params() Params { return o.params }

// Hours returns the number of hours solved per round.
func (o *Optimizer) Hours() int { return o.hours }
