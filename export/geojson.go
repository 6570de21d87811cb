package export

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON property names of a line feature.
const (
	PropFlow          = "Flow"          // MWh/a
	PropPeak          = "Peak"          // MW
	PropTemperature   = "Temp"          // °C
	PropCost          = "Cost"          // €
	PropLength        = "Length"        // km
	PropLevelizedCost = "LevelizedCost" // ct/kWh
)

// FeatureCollection converts lines into LineString features in input order.
func FeatureCollection(lines []Line) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, l := range lines {
		f := geojson.NewFeature(orb.LineString{l.From, l.To})
		f.Properties[PropFlow] = l.FlowMWh
		f.Properties[PropPeak] = l.PeakMW
		f.Properties[PropTemperature] = l.TemperatureC
		f.Properties[PropCost] = l.CostEUR
		f.Properties[PropLength] = l.LengthKm
		f.Properties[PropLevelizedCost] = l.LevelizedCost
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes lines as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, lines []Line) error {
	raw, err := FeatureCollection(lines).MarshalJSON()
	if err != nil {
		return fmt.Errorf("export: encode geojson: %w", err)
	}
	_, err = w.Write(raw)
	return err
}
