package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatnet/export"
)

func sampleLines() []export.Line {
	return []export.Line{
		{From: orb.Point{9.9, 57.0}, To: orb.Point{10.0, 57.1}, FlowMWh: 1200, PeakMW: 0.4, TemperatureC: 100, CostEUR: 5e5, LengthKm: 12.3, LevelizedCost: 0.42},
		{From: orb.Point{10.0, 57.1}, To: orb.Point{10.2, 57.1}, FlowMWh: 300, PeakMW: 0.1, TemperatureC: 100, CostEUR: 1e5, LengthKm: 4, LevelizedCost: 0.17},
	}
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteGeoJSON(&buf, sampleLines()))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	ls, ok := f.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{9.9, 57.0}, {10.0, 57.1}}, ls)
	assert.InDelta(t, 1200, f.Properties.MustFloat64(export.PropFlow), 1e-9)
	assert.InDelta(t, 0.4, f.Properties.MustFloat64(export.PropPeak), 1e-9)
	assert.InDelta(t, 100, f.Properties.MustFloat64(export.PropTemperature), 1e-9)
	assert.InDelta(t, 5e5, f.Properties.MustFloat64(export.PropCost), 1e-9)
	assert.InDelta(t, 12.3, f.Properties.MustFloat64(export.PropLength), 1e-9)
	assert.InDelta(t, 0.42, f.Properties.MustFloat64(export.PropLevelizedCost), 1e-9)
}

func TestWriteGeoJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteGeoJSON(&buf, nil))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSummaryCSV(&buf, export.Summary{TotalCostEUR: 600000, TotalFlowGWh: 1.5, CostPerFlowCtKWh: 0.25}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, export.SummaryHeader, records[0])
	assert.Equal(t, []string{"600000", "1.5", "0.25"}, records[1])
}

func TestWriteFiles(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "out", "dk05")
	require.NoError(t, export.WriteFiles(prefix, sampleLines(), export.Summary{TotalFlowGWh: 1.5}))

	raw, err := os.ReadFile(prefix + ".geojson")
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)

	raw, err = os.ReadFile(prefix + ".csv")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Total annual flow of network in GWh")
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := export.OpenStore(ctx, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run := export.Run{
		Region:           "DK05",
		SearchRadiusKm:   20,
		InvestmentPeriod: 20,
		Threshold:        0.5,
		Iterations:       3,
		StartedAt:        start,
		FinishedAt:       start.Add(2 * time.Second),
		Summary:          export.Summary{TotalCostEUR: 6e5, TotalFlowGWh: 1.5, CostPerFlowCtKWh: 0.2},
		Lines:            sampleLines(),
	}
	id, err := store.SaveRun(ctx, run)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.LoadRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, run, *got)

	_, err = store.SaveRun(ctx, run)
	require.NoError(t, err)
	ids, err := store.RunIDs(ctx, "DK05")
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, id)

	ids, err = store.RunIDs(ctx, "DK01")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStoreRunNotFound(t *testing.T) {
	ctx := context.Background()
	store, err := export.OpenStore(ctx, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadRun(ctx, "missing")
	assert.ErrorIs(t, err, export.ErrRunNotFound)
}
