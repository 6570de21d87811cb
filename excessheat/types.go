package excessheat

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/cost"
	"github.com/katalvlaran/heatnet/dataset"
	"github.com/katalvlaran/heatnet/export"
	"github.com/katalvlaran/heatnet/observability"
	"github.com/katalvlaran/heatnet/optimize"
	"github.com/katalvlaran/heatnet/profile"
)

// ErrNoProfiles is returned when Inputs carries no profile set.
var ErrNoProfiles = errors.New("excessheat: no load profiles")

// Inputs are the materialized records of one region.
type Inputs struct {
	Sources  []dataset.SourceRecord
	Sinks    []dataset.SinkRecord
	Profiles *profile.Set
}

// Settings control one estimation.
type Settings struct {
	Region              string
	SearchRadius        float64 // km
	DeliveryTemperature float64 // °C, set on every sink and line when positive
	Params              optimize.Params
	Graph               []core.GraphOption
	Model               cost.Model // nil means cost.Default()
}

// Report is the outcome of one estimation.
type Report struct {
	Region         string
	Sources        int // after filtering
	Sinks          int
	DroppedSources int
	DroppedSinks   int
	CandidateEdges int // before the spanning forest reduction
	ForestEdges    int

	Result  *optimize.Result
	Lines   []export.Line
	Summary export.Summary

	// RunID is set by Run when the report was stored.
	RunID string

	StartedAt  time.Time
	FinishedAt time.Time
}

// Option configures Estimate and Run.
type Option func(*runner)

type runner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *runner) { r.metrics = m }
}

// WithClock sets the clock used for run timestamps and round durations.
func WithClock(c clockwork.Clock) Option {
	return func(r *runner) { r.clock = c }
}

func newRunner(opts []Option) *runner {
	r := &runner{
		logger: observability.DiscardLogger(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = observability.DiscardLogger()
	}
	if r.metrics == nil {
		r.metrics = observability.NewMetricsForTesting()
	}
	return r
}
