package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "heatnet"

// Metrics holds the Prometheus counters, histograms, and gauges for one estimator process.
type Metrics struct {
	FlowRounds   prometheus.Counter
	HourlySolves prometheus.Counter
	EdgesPruned  prometheus.Counter

	RoundDuration prometheus.Histogram

	// Network state after the latest round.
	NetworkEdges prometheus.Gauge
	TotalFlowGWh prometheus.Gauge
	CostPerFlow  prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		FlowRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_rounds_total",
			Help:      "Total flow rounds (one max-flow solve per hour plus costing).",
		}),
		HourlySolves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hourly_solves_total",
			Help:      "Total single-hour max-flow solves.",
		}),
		EdgesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_pruned_total",
			Help:      "Total transmission lines removed by the convergence loop.",
		}),
		RoundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_duration_seconds",
			Help:      "Duration of one flow round.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		NetworkEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "network_edges",
			Help:      "Transmission lines in the network after the latest round.",
		}),
		TotalFlowGWh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_flow_gwh",
			Help:      "Annual heat delivered by the network after the latest round.",
		}),
		CostPerFlow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cost_per_flow_ct_kwh",
			Help:      "Levelized network cost after the latest round.",
		}),
	}
}

// NewMetrics creates all estimator metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.FlowRounds,
		m.HourlySolves,
		m.EdgesPruned,
		m.RoundDuration,
		m.NetworkEdges,
		m.TotalFlowGWh,
		m.CostPerFlow,
	)
	return m
}

// NewMetricsForTesting creates Metrics on a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// WriteTextfile dumps every metric in g to path in the node-exporter
// textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
