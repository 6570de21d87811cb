package geo_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatnet/geo"
)

func TestLAEAEurope_ReferencePoint(t *testing.T) {
	// 50°N 5°E, worked example for ETRS89-LAEA Europe.
	got := geo.WGS84ToLAEAEurope(orb.Point{5, 50})
	assert.InDelta(t, 3962799.45, got[0], 0.05)
	assert.InDelta(t, 2999718.85, got[1], 0.05)

	back := geo.LAEAEuropeToWGS84(orb.Point{3962799.45, 2999718.85})
	assert.InDelta(t, 5, back.Lon(), 1e-6)
	assert.InDelta(t, 50, back.Lat(), 1e-6)
}

func TestLAEAEurope_Origin(t *testing.T) {
	got := geo.LAEAEuropeToWGS84(orb.Point{4321000, 3210000})
	assert.InDelta(t, 10, got.Lon(), 1e-12)
	assert.InDelta(t, 52, got.Lat(), 1e-12)
}

func TestLAEAEurope_RoundTrip(t *testing.T) {
	for _, p := range []orb.Point{{12.57, 55.68}, {-9.14, 38.72}, {24.94, 60.17}, {16.37, 48.21}, {10, 52}} {
		back := geo.LAEAEuropeToWGS84(geo.WGS84ToLAEAEurope(p))
		assert.InDelta(t, p.Lon(), back.Lon(), 1e-8, "%v", p)
		assert.InDelta(t, p.Lat(), back.Lat(), 1e-8, "%v", p)
	}
}

func TestLAEAEurope_ProjectsGeometry(t *testing.T) {
	ring := orb.Ring{{5, 50}, {5.1, 50}, {5.1, 50.1}, {5, 50}}
	laea := project.Geometry(orb.Polygon{ring.Clone()}, geo.WGS84ToLAEAEurope)
	back := project.Geometry(laea, geo.LAEAEuropeToWGS84).(orb.Polygon)
	require.Len(t, back[0], len(ring))
	for i, p := range ring {
		assert.InDelta(t, p.Lon(), back[0][i].Lon(), 1e-8)
		assert.InDelta(t, p.Lat(), back[0][i].Lat(), 1e-8)
	}
}

func TestToWGS84(t *testing.T) {
	proj, err := geo.ToWGS84(geo.CRSWGS84)
	require.NoError(t, err)
	assert.Nil(t, proj)

	proj, err = geo.ToWGS84("")
	require.NoError(t, err)
	assert.Nil(t, proj)

	proj, err = geo.ToWGS84(geo.CRSLAEAEurope)
	require.NoError(t, err)
	require.NotNil(t, proj)
	assert.InDelta(t, 10, proj(orb.Point{4321000, 3210000}).Lon(), 1e-12)

	_, err = geo.ToWGS84("EPSG:31467")
	assert.ErrorIs(t, err, geo.ErrUnknownCRS)
}
