package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Entry point columns.
const (
	colLon    = "Lon"
	colLat    = "Lat"
	colDemand = "Annual heat demand in Gwh"
	colID     = "id"
)

// AreaGridStep is the spacing in degrees of the sink grid laid over a coherent area.
const AreaGridStep = 0.015

// PotentialProperty is the coherent-area property holding the annual demand in GWh.
const PotentialProperty = "Potential"

// SinkOption configures the sink readers.
type SinkOption func(*sinkOptions)

type sinkOptions struct {
	temperature float64
	projection  orb.Projection
}

// WithSinkTemperature sets the temperature of every sink read (default
// DeliveryTemperature).
func WithSinkTemperature(celsius float64) SinkOption {
	return func(o *sinkOptions) { o.temperature = celsius }
}

// WithProjection converts coherent-area geometries to WGS84 before the sink
// grid is laid out, e.g. geo.LAEAEuropeToWGS84 for EPSG:3035 input. It has no
// effect on entry points.
func WithProjection(p orb.Projection) SinkOption {
	return func(o *sinkOptions) { o.projection = p }
}

func newSinkOptions(opts []SinkOption) sinkOptions {
	o := sinkOptions{temperature: DeliveryTemperature}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var decimalPattern = regexp.MustCompile(`\d+\.\d+`)

// ReadEntryPoints reads district-heating entry points. Every complete row
// becomes one sink in region nuts2 with its demand converted from GWh to
// MWh; rows with an empty or NaN demand or id are skipped.
func ReadEntryPoints(r io.Reader, nuts2 string, opts ...SinkOption) ([]SinkRecord, error) {
	o := newSinkOptions(opts)
	t, err := openTable(r, colLon, colLat, colDemand, colID)
	if err != nil {
		return nil, err
	}

	var out []SinkRecord
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		lon, okLon, err := t.float(rec, colLon)
		if err != nil {
			return nil, err
		}
		lat, okLat, err := t.float(rec, colLat)
		if err != nil {
			return nil, err
		}
		if !okLon || !okLat || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
			return nil, fmt.Errorf("%w: line %d (%s, %s)", ErrBadGeometry, t.line, t.get(rec, colLon), t.get(rec, colLat))
		}
		demand, okDemand, err := t.float(rec, colDemand)
		if err != nil {
			return nil, err
		}
		id, okID, err := t.float(rec, colID)
		if err != nil {
			return nil, err
		}
		if !okDemand || !okID {
			continue
		}

		out = append(out, SinkRecord{
			Position:    orb.Point{lon, lat},
			NUTS2:       nuts2,
			HeatDemand:  demand * 1000,
			ID:          int(id),
			Temperature: o.temperature,
		})
	}

	return out, nil
}

// ReadCoherentAreas reads district-heating coherent areas from a GeoJSON
// FeatureCollection in WGS84, or in another CRS when WithProjection is
// given. Each Polygon or MultiPolygon feature is
// covered with a grid of AreaGridStep degrees; grid points inside the area
// become sinks sharing the area's demand equally. An area too small to
// contain a grid point gets a single sink at its bounding box's max corner.
// Sinks of the i-th area carry ID -i. Other geometry types are skipped.
func ReadCoherentAreas(r io.Reader, nuts2 string, opts ...SinkOption) ([]SinkRecord, error) {
	o := newSinkOptions(opts)
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeometry, err)
	}

	var out []SinkRecord
	area := 0
	for fi, f := range fc.Features {
		geom := f.Geometry
		if o.projection != nil && geom != nil {
			geom = project.Geometry(orb.Clone(geom), o.projection)
		}

		var contains func(orb.Point) bool
		switch g := geom.(type) {
		case orb.Polygon:
			contains = func(p orb.Point) bool { return planar.PolygonContains(g, p) }
		case orb.MultiPolygon:
			contains = func(p orb.Point) bool { return planar.MultiPolygonContains(g, p) }
		default:
			continue
		}

		potential, err := parsePotential(f.Properties[PotentialProperty])
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", fi, err)
		}

		points := gridPoints(geom.Bound(), contains)
		share := potential * 1000 / float64(len(points))
		for _, p := range points {
			out = append(out, SinkRecord{
				Position:    p,
				NUTS2:       nuts2,
				HeatDemand:  share,
				ID:          -area,
				Temperature: o.temperature,
			})
		}
		area++
	}

	return out, nil
}

// gridPoints returns grid points of the bound that pass contains, or the
// bound's max corner if none does.
func gridPoints(b orb.Bound, contains func(orb.Point) bool) []orb.Point {
	var pts []orb.Point
	for i := 0; ; i++ {
		x := b.Min[0] + float64(i)*AreaGridStep
		if x >= b.Max[0] {
			break
		}
		for j := 0; ; j++ {
			y := b.Min[1] + float64(j)*AreaGridStep
			if y >= b.Max[1] {
				break
			}
			if p := (orb.Point{x, y}); contains(p) {
				pts = append(pts, p)
			}
		}
	}
	if len(pts) == 0 {
		pts = append(pts, b.Max)
	}
	return pts
}

// parsePotential accepts a JSON number or a string holding a decimal
// number such as "12.5 GWh".
func parsePotential(v any) (float64, error) {
	switch p := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, PotentialProperty)
	case float64:
		return p, nil
	case json.Number:
		return p.Float64()
	case string:
		m := decimalPattern.FindString(p)
		if m == "" {
			return 0, fmt.Errorf("%w: %s %q", ErrBadValue, PotentialProperty, p)
		}
		return strconv.ParseFloat(m, 64)
	default:
		return 0, fmt.Errorf("%w: %s of type %T", ErrBadValue, PotentialProperty, v)
	}
}
