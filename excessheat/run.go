package excessheat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/heatnet/config"
	"github.com/katalvlaran/heatnet/core"
	"github.com/katalvlaran/heatnet/export"
	"github.com/katalvlaran/heatnet/flow"
	"github.com/katalvlaran/heatnet/observability"
	"github.com/katalvlaran/heatnet/optimize"
)

// SettingsFromConfig maps cfg onto estimation settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	params := optimize.DefaultParams()
	params.InvestmentPeriod = cfg.InvestmentPeriod
	params.Threshold = cfg.Threshold
	params.MaxIterations = cfg.MaxIterations
	params.Workers = cfg.Workers
	params.Tolerance = cfg.Tolerance

	fopts := flow.DefaultOptions()
	fopts.Algorithm = cfg.FlowAlgorithm

	return Settings{
		Region:              cfg.Region,
		SearchRadius:        cfg.SearchRadius,
		DeliveryTemperature: cfg.DeliveryTemperature,
		Params:              params,
		Graph: []core.GraphOption{
			core.WithMSTMethod(cfg.MSTMethod),
			core.WithFlowOptions(fopts),
			core.WithSpatialIndex(cfg.SpatialIndex),
		},
	}
}

// Run validates cfg, loads its inputs, estimates the network and writes
// <output.prefix>.geojson and <output.prefix>.csv. When output.sqlite is
// set the run is also stored there and Report.RunID is filled in.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithLogger(logger), WithMetrics(metrics)}, opts...)
	r := newRunner(opts)

	in, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	r.logger.Info("inputs loaded",
		"region", cfg.Region,
		"sources", len(in.Sources),
		"sinks", len(in.Sinks),
	)

	rep, err := Estimate(ctx, *in, SettingsFromConfig(cfg), opts...)
	if err != nil {
		return nil, err
	}

	if err := export.WriteFiles(cfg.Output.Prefix, rep.Lines, rep.Summary); err != nil {
		return nil, err
	}
	r.logger.Info("results written",
		"prefix", cfg.Output.Prefix,
		"lines", len(rep.Lines),
		"total_cost_eur", rep.Summary.TotalCostEUR,
		"total_flow_gwh", rep.Summary.TotalFlowGWh,
		"cost_per_flow_ct_kwh", rep.Summary.CostPerFlowCtKWh,
	)

	if cfg.Output.SQLite != "" {
		if rep.RunID, err = save(ctx, cfg, rep); err != nil {
			return nil, err
		}
		r.logger.Info("run stored", "path", cfg.Output.SQLite, "run_id", rep.RunID)
	}

	return rep, nil
}

func save(ctx context.Context, cfg *config.Config, rep *Report) (string, error) {
	store, err := export.OpenStore(ctx, cfg.Output.SQLite)
	if err != nil {
		return "", err
	}
	defer store.Close()

	id, err := store.SaveRun(ctx, export.Run{
		Region:           cfg.Region,
		SearchRadiusKm:   cfg.SearchRadius,
		InvestmentPeriod: cfg.InvestmentPeriod,
		Threshold:        cfg.Threshold,
		Iterations:       len(rep.Result.History),
		StartedAt:        rep.StartedAt,
		FinishedAt:       rep.FinishedAt,
		Summary:          rep.Summary,
		Lines:            rep.Lines,
	})
	if err != nil {
		return "", fmt.Errorf("excessheat: %w", err)
	}
	return id, nil
}
