package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatnet/config"
	"github.com/katalvlaran/heatnet/flow"
	"github.com/katalvlaran/heatnet/geo"
	"github.com/katalvlaran/heatnet/prim_kruskal"
)

const full = `
search_radius: 15
investment_period: 30
threshold: 0
region: AT13
workers: 3
max_iterations: 50
flow_algorithm: edmonds-karp
mst_method: prim
spatial_index: false
data:
  industrial_sites: data/industrial_sites.csv
  entry_points: data/entry_points.csv
  coherent_areas_crs: EPSG:3035
  industry_profiles:
    - data/paper.csv
    - data/iron_and_steel.csv
  residential_profile: data/residential.csv
  profile_hour_base: 0
output:
  prefix: out/at13
  sqlite: out/runs.db
log:
  level: debug
metrics:
  textfile: out/heatnet.prom
`

func TestParseFull(t *testing.T) {
	cfg, err := config.Parse([]byte(full))
	require.NoError(t, err)

	assert.Equal(t, 15.0, cfg.SearchRadius)
	assert.Equal(t, 30.0, cfg.InvestmentPeriod)
	assert.Equal(t, 0.0, cfg.Threshold, "explicit zero threshold is kept")
	assert.Equal(t, "AT13", cfg.Region)
	assert.Equal(t, "AT", cfg.NUTS0())
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, flow.AlgorithmEdmondsKarp, cfg.FlowAlgorithm)
	assert.Equal(t, prim_kruskal.MethodPrim, cfg.MSTMethod)
	assert.False(t, cfg.SpatialIndex)
	assert.Equal(t, 0, cfg.Data.ProfileHourBase)
	assert.Equal(t, geo.CRSLAEAEurope, cfg.Data.CoherentAreasCRS)
	assert.Equal(t, []string{"data/paper.csv", "data/iron_and_steel.csv"}, cfg.Data.IndustryProfiles)
	assert.Equal(t, "out/runs.db", cfg.Output.SQLite)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format, "unset nested key keeps default")
	assert.Equal(t, "out/heatnet.prom", cfg.Metrics.Textfile)
	assert.Equal(t, config.DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, config.DefaultDeliveryTemperature, cfg.DeliveryTemperature)
	require.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 20.0, cfg.SearchRadius)
	assert.Equal(t, 20.0, cfg.InvestmentPeriod)
	assert.Equal(t, 0.5, cfg.Threshold)
	assert.Equal(t, "DK05", cfg.Region)
	assert.Equal(t, "DK", cfg.NUTS0())
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, flow.AlgorithmDinic, cfg.FlowAlgorithm)
	assert.Equal(t, prim_kruskal.MethodKruskal, cfg.MSTMethod)
	assert.True(t, cfg.SpatialIndex)
	assert.Equal(t, 1, cfg.Data.ProfileHourBase)
	assert.Equal(t, geo.CRSWGS84, cfg.Data.CoherentAreasCRS)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "text")
	t.Setenv(config.EnvWorkers, "7")

	cfg, err := config.Parse([]byte(full))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 7, cfg.Workers)
}

func TestEnvWorkersInvalid(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")

	_, err := config.Parse([]byte(full))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HEATNET_TEST_KEY", "")
	assert.Equal(t, "fallback", config.EnvOrDefault("HEATNET_TEST_KEY", "fallback"))
	t.Setenv("HEATNET_TEST_KEY", "set")
	assert.Equal(t, "set", config.EnvOrDefault("HEATNET_TEST_KEY", "fallback"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AT13", cfg.Region)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search_radius: [1"), 0o600))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.Parse([]byte(full))
		require.NoError(t, err)
		return cfg
	}

	cases := map[string]func(c *config.Config){
		"zero radius":        func(c *config.Config) { c.SearchRadius = 0 },
		"negative period":    func(c *config.Config) { c.InvestmentPeriod = -1 },
		"short region":       func(c *config.Config) { c.Region = "DK" },
		"zero workers":       func(c *config.Config) { c.Workers = 0 },
		"zero iterations":    func(c *config.Config) { c.MaxIterations = 0 },
		"negative tolerance": func(c *config.Config) { c.Tolerance = -1 },
		"flow algorithm":     func(c *config.Config) { c.FlowAlgorithm = "push-relabel" },
		"mst method":         func(c *config.Config) { c.MSTMethod = "boruvka" },
		"hour base":          func(c *config.Config) { c.Data.ProfileHourBase = 2 },
		"zero temperature":   func(c *config.Config) { c.DeliveryTemperature = 0 },
		"unknown crs":        func(c *config.Config) { c.Data.CoherentAreasCRS = "EPSG:25832" },
		"no sources":         func(c *config.Config) { c.Data.IndustrialSites = "" },
		"no sinks": func(c *config.Config) {
			c.Data.EntryPoints = ""
			c.Data.CoherentAreas = ""
		},
		"no industry profiles":   func(c *config.Config) { c.Data.IndustryProfiles = nil },
		"no residential profile": func(c *config.Config) { c.Data.ResidentialProfile = "" },
		"no output":              func(c *config.Config) { c.Output.Prefix = "" },
		"log format":             func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := valid()
	cfg.Threshold = -3
	assert.NoError(t, cfg.Validate(), "any finite threshold is accepted")
}
