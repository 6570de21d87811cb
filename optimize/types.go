package optimize

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/observability"
)

// Sentinel errors.
var (
	// ErrNotConverged is returned when pruning needs more than MaxIterations passes.
	ErrNotConverged = errors.New("optimize: network did not converge")

	// ErrBadParams indicates invalid optimizer parameters.
	ErrBadParams = errors.New("optimize: invalid parameters")

	// ErrCapacityShape indicates capacity sequences that do not match the
	// graph's nodes or differ in length.
	ErrCapacityShape = errors.New("optimize: capacity matrix shape mismatch")
)

const (
	// ZeroFlowCost is the levelized cost of a line that carries no heat.
	// It is negative so that such lines are always pruned.
	ZeroFlowCost = -1.0

	// UndeliverableCost is the cost per flow of a network that costs money
	// but delivers nothing, in ct/kWh.
	UndeliverableCost = 100000.0

	// flowEpsilon is the annual flow (MWh) below which a line counts as idle.
	flowEpsilon = 1e-9
)

// Edge attributes written after every round, aligned with the graph's edges.
const (
	AttrConnectionCost = "cost"           // €
	AttrLevelizedCost  = "levelized_cost" // ct/kWh
	AttrAnnualFlow     = "annual_flow"    // MWh
)

// Params configures the convergence loop.
type Params struct {
	// InvestmentPeriod in years; must be positive.
	InvestmentPeriod float64

	// Threshold is the highest levelized cost (ct/kWh) a line may have.
	Threshold float64

	// MaxIterations bounds the number of pruning passes (default 1000).
	MaxIterations int

	// Workers bounds the hourly solver pool (default runtime.NumCPU()).
	Workers int

	// Tolerance is the change in total delivered heat (MWh) still treated
	// as unchanged (default 1e-6).
	Tolerance float64
}

// DefaultParams returns parameters with every optional field filled.
func DefaultParams() Params {
	return Params{
		InvestmentPeriod: 30,
		Threshold:        math.Inf(1),
		MaxIterations:    1000,
		Workers:          runtime.NumCPU(),
		Tolerance:        1e-6,
	}
}

func (p *Params) normalize() error {
	if !(p.InvestmentPeriod > 0) || math.IsInf(p.InvestmentPeriod, 0) {
		return fmt.Errorf("%w: investment period %g", ErrBadParams, p.InvestmentPeriod)
	}
	if math.IsNaN(p.Threshold) {
		return fmt.Errorf("%w: threshold is NaN", ErrBadParams)
	}
	if p.MaxIterations < 0 || p.Workers < 0 || p.Tolerance < 0 {
		return fmt.Errorf("%w: negative iteration, worker or tolerance setting", ErrBadParams)
	}
	d := DefaultParams()
	if p.MaxIterations == 0 {
		p.MaxIterations = d.MaxIterations
	}
	if p.Workers == 0 {
		p.Workers = d.Workers
	}
	if p.Tolerance == 0 {
		p.Tolerance = d.Tolerance
	}
	return nil
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger (default discards).
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) { o.logger = l }
}

// WithMetrics sets the metrics sink (default a private registry).
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Optimizer) { o.metrics = m }
}

// WithClock sets the clock used for timestamps and round durations.
func WithClock(c clockwork.Clock) Option {
	return func(o *Optimizer) { o.clock = c }
}

// Round is the outcome of one flow round. Per-edge slices follow Edges.
type Round struct {
	Hours int
	Edges []core.Edge

	// Absolute hourly flows in MWh/h, indexed [node or edge][hour].
	SourceFlows [][]float64
	SinkFlows   [][]float64
	EdgeFlows   [][]float64

	// Annual flow per edge in MWh.
	AnnualFlows []float64
	Lengths     []float64 // km

	// Investments in €.
	SourceCosts     []float64
	SinkCosts       []float64
	ConnectionCosts []float64

	// CostPerConnection is the levelized cost per edge in ct/kWh, or ZeroFlowCost.
	CostPerConnection []float64

	TotalCost       float64 // €
	TotalSourceFlow float64 // MWh
	TotalFlow       float64 // GWh
	CostPerFlow     float64 // ct/kWh over the investment period
}

// Iteration records one pruning pass.
type Iteration struct {
	Index       int
	EdgesBefore int
	Removed     int
	TotalFlow   float64 // GWh after the pass
	CostPerFlow float64
}

// Result is the converged network.
type Result struct {
	Final      *Round
	History    []Iteration
	Edges      []core.Edge
	StartedAt  time.Time
	FinishedAt time.Time
}
