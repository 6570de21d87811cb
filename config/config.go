// Package config loads estimator settings from a YAML file, fills in
// defaults and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heatnet/flow"
	"github.com/katalvlaran/heatnet/geo"
	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// Defaults for a run.
const (
	DefaultSearchRadius        = 20.0 // km
	DefaultInvestmentPeriod    = 20.0 // years
	DefaultThreshold           = 0.5  // ct/kWh
	DefaultRegion              = "DK05"
	DefaultMaxIterations       = 1000
	DefaultTolerance           = 1e-6
	DefaultDeliveryTemperature = 100.0 // °C
	DefaultProfileHourBase     = 1
	DefaultOutput              = "./results/results"
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "json"
)

// Environment variables that override file values.
const (
	EnvLogLevel  = "HEATNET_LOG_LEVEL"
	EnvLogFormat = "HEATNET_LOG_FORMAT"
	EnvWorkers   = "HEATNET_WORKERS"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all settings of one estimator run.
type Config struct {
	SearchRadius     float64 `yaml:"search_radius"`     // km
	InvestmentPeriod float64 `yaml:"investment_period"` // years
	Threshold        float64 `yaml:"threshold"`         // ct/kWh
	Region           string  `yaml:"region"`            // NUTS2 code

	Workers             int     `yaml:"workers"`
	MaxIterations       int     `yaml:"max_iterations"`
	Tolerance           float64 `yaml:"tolerance"`
	FlowAlgorithm       string  `yaml:"flow_algorithm"`
	MSTMethod           string  `yaml:"mst_method"`
	SpatialIndex        bool    `yaml:"spatial_index"`
	DeliveryTemperature float64 `yaml:"delivery_temperature"` // °C

	Data    Data    `yaml:"data"`
	Output  Output  `yaml:"output"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Data names the input files.
type Data struct {
	IndustrialSites    string   `yaml:"industrial_sites"`
	EntryPoints        string   `yaml:"entry_points"`
	CoherentAreas      string   `yaml:"coherent_areas"`
	CoherentAreasCRS   string   `yaml:"coherent_areas_crs"` // EPSG:4326 or EPSG:3035
	IndustryProfiles   []string `yaml:"industry_profiles"`
	ResidentialProfile string   `yaml:"residential_profile"`
	ProfileHourBase    int      `yaml:"profile_hour_base"`
}

// Output names the result destinations.
type Output struct {
	Prefix string `yaml:"prefix"`
	SQLite string `yaml:"sqlite"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics configures the metrics dump.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		SearchRadius:        DefaultSearchRadius,
		InvestmentPeriod:    DefaultInvestmentPeriod,
		Threshold:           DefaultThreshold,
		Region:              DefaultRegion,
		Workers:             runtime.NumCPU(),
		MaxIterations:       DefaultMaxIterations,
		Tolerance:           DefaultTolerance,
		FlowAlgorithm:       flow.AlgorithmDinic,
		MSTMethod:           prim_kruskal.MethodKruskal,
		SpatialIndex:        true,
		DeliveryTemperature: DefaultDeliveryTemperature,
		Data:                Data{CoherentAreasCRS: geo.CRSWGS84, ProfileHourBase: DefaultProfileHourBase},
		Output:              Output{Prefix: DefaultOutput},
		Log:                 Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads path over the defaults, so keys missing from the file keep
// their default value, and then applies the environment overrides. It does
// not validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Log.Level = EnvOrDefault(EnvLogLevel, c.Log.Level)
	c.Log.Format = EnvOrDefault(EnvLogFormat, c.Log.Format)
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalid, EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

// EnvOrDefault returns the value of key, or fallback when it is unset or empty.
func EnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NUTS0 returns the country code of the region.
func (c *Config) NUTS0() string {
	if len(c.Region) < 2 {
		return c.Region
	}
	return c.Region[:2]
}

// Validate reports the first invalid setting. Data paths are checked for
// presence only.
func (c *Config) Validate() error {
	switch {
	case !(c.SearchRadius > 0) || math.IsInf(c.SearchRadius, 0):
		return fmt.Errorf("%w: search_radius must be positive, got %v", ErrInvalid, c.SearchRadius)
	case !(c.InvestmentPeriod > 0) || math.IsInf(c.InvestmentPeriod, 0):
		return fmt.Errorf("%w: investment_period must be positive, got %v", ErrInvalid, c.InvestmentPeriod)
	case math.IsNaN(c.Threshold):
		return fmt.Errorf("%w: threshold is NaN", ErrInvalid)
	case len(c.Region) < 3:
		return fmt.Errorf("%w: region must be a NUTS2 code, got %q", ErrInvalid, c.Region)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max_iterations must be positive, got %d", ErrInvalid, c.MaxIterations)
	case !(c.DeliveryTemperature > 0) || math.IsInf(c.DeliveryTemperature, 0):
		return fmt.Errorf("%w: delivery_temperature must be positive, got %v", ErrInvalid, c.DeliveryTemperature)
	case !(c.Tolerance >= 0):
		return fmt.Errorf("%w: tolerance must not be negative, got %v", ErrInvalid, c.Tolerance)
	case c.FlowAlgorithm != flow.AlgorithmDinic && c.FlowAlgorithm != flow.AlgorithmEdmondsKarp:
		return fmt.Errorf("%w: unknown flow_algorithm %q", ErrInvalid, c.FlowAlgorithm)
	case c.MSTMethod != prim_kruskal.MethodKruskal && c.MSTMethod != prim_kruskal.MethodPrim:
		return fmt.Errorf("%w: unknown mst_method %q", ErrInvalid, c.MSTMethod)
	case c.Data.ProfileHourBase != 0 && c.Data.ProfileHourBase != 1:
		return fmt.Errorf("%w: data.profile_hour_base must be 0 or 1, got %d", ErrInvalid, c.Data.ProfileHourBase)
	case c.Data.IndustrialSites == "":
		return fmt.Errorf("%w: data.industrial_sites is required", ErrInvalid)
	case c.Data.EntryPoints == "" && c.Data.CoherentAreas == "":
		return fmt.Errorf("%w: data.entry_points or data.coherent_areas is required", ErrInvalid)
	case len(c.Data.IndustryProfiles) == 0:
		return fmt.Errorf("%w: data.industry_profiles is required", ErrInvalid)
	case c.Data.ResidentialProfile == "":
		return fmt.Errorf("%w: data.residential_profile is required", ErrInvalid)
	case c.Output.Prefix == "":
		return fmt.Errorf("%w: output.prefix is required", ErrInvalid)
	}
	if _, err := geo.ToWGS84(c.Data.CoherentAreasCRS); err != nil {
		return fmt.Errorf("%w: data.coherent_areas_crs: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format must be json or text, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
