package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Registry columns.
const (
	colGeom      = "geom"
	colSubsector = "Subsector"
	colCountry   = "Country"
)

// heatBands maps registry excess-heat columns to their representative
// temperature in °C.
var heatBands = []struct {
	column      string
	temperature float64
}{
	{"Excess_Heat_100-200C", 150},
	{"Excess_Heat_200-500C", 350},
	{"Excess_Heat_500C", 500},
}

var numberPattern = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// ReadIndustrialSites reads the industrial excess-heat registry. Every
// non-zero temperature band of a site becomes one SourceRecord with its
// energy converted from GWh to MWh. Sites without geometry are skipped.
// If nuts0 is non-empty only sites in those countries are returned.
func ReadIndustrialSites(r io.Reader, nuts0 []string) ([]SourceRecord, error) {
	required := []string{colGeom, colSubsector, colCountry}
	for _, b := range heatBands {
		required = append(required, b.column)
	}
	t, err := openTable(r, required...)
	if err != nil {
		return nil, err
	}
	keep := set(nuts0)

	var out []SourceRecord
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		geom := t.get(rec, colGeom)
		if geom == "" {
			continue
		}
		pos, err := ParsePoint(geom)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", t.line, err)
		}

		var code string
		if country := t.get(rec, colCountry); country != "" {
			c, ok := CountryNUTS0[country]
			if !ok {
				return nil, fmt.Errorf("%w: line %d %q", ErrUnknownCountry, t.line, country)
			}
			code = c
		}
		if len(keep) > 0 {
			if _, ok := keep[code]; !ok {
				continue
			}
		}

		for _, b := range heatBands {
			v, ok, err := t.float(rec, b.column)
			if err != nil {
				return nil, err
			}
			if !ok || v == 0 || math.IsNaN(v) {
				continue
			}
			out = append(out, SourceRecord{
				Position:    pos,
				NUTS0:       code,
				Subsector:   t.get(rec, colSubsector),
				ExcessHeat:  v * 1000,
				Temperature: b.temperature,
			})
		}
	}

	return out, nil
}

// ParsePoint parses an EWKT point such as "SRID=4326;POINT(12.5 55.7)".
// The SRID prefix is optional and not checked.
func ParsePoint(s string) (orb.Point, error) {
	body := s
	if i := strings.LastIndexByte(s, ';'); i >= 0 {
		body = s[i+1:]
	}
	nums := numberPattern.FindAllString(body, -1)
	if len(nums) < 2 {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrBadGeometry, s)
	}
	lon, err1 := strconv.ParseFloat(nums[0], 64)
	lat, err2 := strconv.ParseFloat(nums[1], 64)
	if err1 != nil || err2 != nil || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrBadGeometry, s)
	}
	return orb.Point{lon, lat}, nil
}

func set(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
