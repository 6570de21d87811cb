package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ETRS89-LAEA Europe (EPSG:3035) on the GRS80 ellipsoid.
const (
	laeaA          = 6378137.0
	laeaF          = 1 / 298.257222101
	laeaLat0       = 52 * degToRad
	laeaLon0       = 10 * degToRad
	laeaFalseEast  = 4321000.0
	laeaFalseNorth = 3210000.0
)

// CRS identifiers accepted by projection lookups.
const (
	CRSWGS84      = "EPSG:4326"
	CRSLAEAEurope = "EPSG:3035"
)

var laea = newLAEA()

type laeaParams struct {
	e2, e        float64
	qp           float64
	sinB0, cosB0 float64
	rq, d        float64
	c2, c4, c6   float64 // authalic to geodetic latitude series
}

func newLAEA() laeaParams {
	var p laeaParams
	p.e2 = 2*laeaF - laeaF*laeaF
	p.e = math.Sqrt(p.e2)
	p.qp = p.q(math.Pi / 2)
	b0 := math.Asin(p.q(laeaLat0) / p.qp)
	p.sinB0, p.cosB0 = math.Sin(b0), math.Cos(b0)
	p.rq = laeaA * math.Sqrt(p.qp/2)
	sinLat0 := math.Sin(laeaLat0)
	p.d = laeaA * (math.Cos(laeaLat0) / math.Sqrt(1-p.e2*sinLat0*sinLat0)) / (p.rq * p.cosB0)

	e4, e6 := p.e2*p.e2, p.e2*p.e2*p.e2
	p.c2 = p.e2/3 + 31*e4/180 + 517*e6/5040
	p.c4 = 23*e4/360 + 251*e6/3780
	p.c6 = 761 * e6 / 45360
	return p
}

func (p laeaParams) q(lat float64) float64 {
	s := math.Sin(lat)
	return (1 - p.e2) * (s/(1-p.e2*s*s) - 1/(2*p.e)*math.Log((1-p.e*s)/(1+p.e*s)))
}

// LAEAEuropeToWGS84 converts an EPSG:3035 point (easting, northing in
// meters) to longitude and latitude in degrees. It is an orb.Projection.
func LAEAEuropeToWGS84(pt orb.Point) orb.Point {
	x := pt[0] - laeaFalseEast
	y := pt[1] - laeaFalseNorth
	rho := math.Hypot(x/laea.d, laea.d*y)
	if rho == 0 {
		return orb.Point{laeaLon0 / degToRad, laeaLat0 / degToRad}
	}

	c := 2 * math.Asin(rho/(2*laea.rq))
	sinC, cosC := math.Sin(c), math.Cos(c)
	beta := math.Asin(cosC*laea.sinB0 + laea.d*y*sinC*laea.cosB0/rho)
	lon := laeaLon0 + math.Atan2(x*sinC, laea.d*rho*laea.cosB0*cosC-laea.d*laea.d*y*laea.sinB0*sinC)
	lat := beta + laea.c2*math.Sin(2*beta) + laea.c4*math.Sin(4*beta) + laea.c6*math.Sin(6*beta)

	return orb.Point{lon / degToRad, lat / degToRad}
}

// WGS84ToLAEAEurope converts longitude and latitude in degrees to EPSG:3035
// easting and northing in meters. It is an orb.Projection.
func WGS84ToLAEAEurope(pt orb.Point) orb.Point {
	lat := pt.Lat() * degToRad
	dLon := pt.Lon()*degToRad - laeaLon0
	beta := math.Asin(laea.q(lat) / laea.qp)
	sinB, cosB := math.Sin(beta), math.Cos(beta)
	b := laea.rq * math.Sqrt(2/(1+laea.sinB0*sinB+laea.cosB0*cosB*math.Cos(dLon)))

	return orb.Point{
		laeaFalseEast + b*laea.d*cosB*math.Sin(dLon),
		laeaFalseNorth + b/laea.d*(laea.cosB0*sinB-laea.sinB0*cosB*math.Cos(dLon)),
	}
}

// ToWGS84 returns the projection from crs to WGS84 longitude/latitude.
// A nil projection means the input is already WGS84.
func ToWGS84(crs string) (orb.Projection, error) {
	switch crs {
	case "", CRSWGS84:
		return nil, nil
	case CRSLAEAEurope:
		return LAEAEuropeToWGS84, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCRS, crs)
	}
}
