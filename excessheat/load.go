package excessheat

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/heatnet/config"
	"github.com/katalvlaran/heatnet/dataset"
	"github.com/katalvlaran/heatnet/geo"
	"github.com/katalvlaran/heatnet/profile"
)

// Profile key columns of the load profile files.
const (
	IndustryKeyColumn    = "NUTS0_code"
	ResidentialKeyColumn = "NUTS2_code"
)

// Load reads every input file named by cfg for its region. Coherent-area
// sinks come before entry-point sinks and every sink carries
// cfg.DeliveryTemperature. Industry and residential profiles are normalized
// per file group and merged.
func Load(cfg *config.Config) (*Inputs, error) {
	nuts0 := cfg.NUTS0()
	in := &Inputs{}

	proj, err := geo.ToWGS84(cfg.Data.CoherentAreasCRS)
	if err != nil {
		return nil, fmt.Errorf("excessheat: coherent areas: %w", err)
	}
	sinkOpts := []dataset.SinkOption{
		dataset.WithSinkTemperature(cfg.DeliveryTemperature),
		dataset.WithProjection(proj),
	}

	err = readFile(cfg.Data.IndustrialSites, func(r io.Reader) (err error) {
		in.Sources, err = dataset.ReadIndustrialSites(r, []string{nuts0})
		return err
	})
	if err != nil {
		return nil, err
	}

	if cfg.Data.CoherentAreas != "" {
		err := readFile(cfg.Data.CoherentAreas, func(r io.Reader) error {
			sinks, err := dataset.ReadCoherentAreas(r, cfg.Region, sinkOpts...)
			in.Sinks = append(in.Sinks, sinks...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	if cfg.Data.EntryPoints != "" {
		err := readFile(cfg.Data.EntryPoints, func(r io.Reader) error {
			sinks, err := dataset.ReadEntryPoints(r, cfg.Region, sinkOpts...)
			in.Sinks = append(in.Sinks, sinks...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	var industry []profile.Row
	for _, path := range cfg.Data.IndustryProfiles {
		err := readFile(path, func(r io.Reader) error {
			got, err := dataset.ReadProfiles(r, dataset.ProfileTable{
				KeyColumn: IndustryKeyColumn,
				HourBase:  cfg.Data.ProfileHourBase,
				Keys:      []string{nuts0},
			})
			industry = append(industry, got...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	var residential []profile.Row
	err = readFile(cfg.Data.ResidentialProfile, func(r io.Reader) error {
		got, err := dataset.ReadProfiles(r, dataset.ProfileTable{
			KeyColumn: ResidentialKeyColumn,
			Category:  dataset.ResidentialHeating,
			HourBase:  cfg.Data.ProfileHourBase,
			Keys:      []string{cfg.Region},
		})
		residential = append(residential, got...)
		return err
	})
	if err != nil {
		return nil, err
	}

	industrySet, err := profile.Normalize(industry, profile.HoursPerYear)
	if err != nil {
		return nil, fmt.Errorf("excessheat: industry profiles: %w", err)
	}
	residentialSet, err := profile.Normalize(residential, profile.HoursPerYear)
	if err != nil {
		return nil, fmt.Errorf("excessheat: residential profile: %w", err)
	}
	if in.Profiles, err = industrySet.Merge(residentialSet); err != nil {
		return nil, fmt.Errorf("excessheat: profiles: %w", err)
	}

	return in, nil
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("excessheat: %w", err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("excessheat: %s: %w", path, err)
	}
	return nil
}
