package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatnet/config"
	"github.com/katalvlaran/heatnet/excessheat"
	"github.com/katalvlaran/heatnet/observability"
)

// loadConfig reads the optional config file and applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command, args []string, o *overrides) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if len(args) == 1 {
		cfg, err = config.Load(args[0])
	} else {
		cfg, err = config.Parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("region") {
		cfg.Region = o.region
	}
	if f.Changed("radius") {
		cfg.SearchRadius = o.radius
	}
	if f.Changed("period") {
		cfg.InvestmentPeriod = o.period
	}
	if f.Changed("threshold") {
		cfg.Threshold = o.threshold
	}
	if f.Changed("output") {
		cfg.Output.Prefix = o.output
	}
	return cfg, nil
}

func runValidate(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cmd.Printf("config OK: region %s, radius %g km, period %g years, threshold %g ct/kWh\n",
		cfg.Region, cfg.SearchRadius, cfg.InvestmentPeriod, cfg.Threshold)
	return nil
}

func runEstimate(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	rep, err := excessheat.Run(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Error("estimation failed", "region", cfg.Region, "error", err)
		return err
	}
	logger.Info("estimation finished",
		"region", rep.Region,
		"lines", len(rep.Lines),
		"iterations", len(rep.Result.History),
		"total_flow_gwh", rep.Summary.TotalFlowGWh,
		"cost_per_flow_ct_kwh", rep.Summary.CostPerFlowCtKWh,
		"run_id", rep.RunID,
		"elapsed", rep.FinishedAt.Sub(rep.StartedAt),
	)

	if cfg.Metrics.Textfile != "" {
		if err := observability.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
