// Command heatnet estimates the excess-heat transmission network of one
// NUTS2 region.
//
// Usage:
//
//	heatnet run [config.yaml] [--region DK05] [--radius 20] [--period 20] [--threshold 0.5] [--output ./results/results]
//	heatnet validate [config.yaml]
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "heatnet",
		Short:         "Excess-heat transmission network estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// overrides are the command-line values that replace file settings.
type overrides struct {
	region    string
	radius    float64
	period    float64
	threshold float64
	output    string
}

func (o *overrides) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.region, "region", "", "NUTS2 region code")
	f.Float64Var(&o.radius, "radius", 0, "search radius in km")
	f.Float64Var(&o.period, "period", 0, "investment period in years")
	f.Float64Var(&o.threshold, "threshold", 0, "transmission line threshold in ct/kWh")
	f.StringVar(&o.output, "output", "", "output path prefix")
}

func runCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "run [config.yaml]",
		Short: "Estimate the network and write GeoJSON and CSV results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, &o)
			if err != nil {
				return err
			}
			return runEstimate(cmd.Context(), cfg)
		},
	}
	o.register(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "validate [config.yaml]",
		Short: "Validate a configuration without running the estimator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, &o)
			if err != nil {
				return err
			}
			return runValidate(cmd, cfg)
		},
	}
	o.register(cmd)
	return cmd
}
