package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const degToRad = math.Pi / 180

// Distance returns the small-angle approximation of the distance between a
// and b in kilometers.
//
// Complexity: O(1).
func Distance(a, b orb.Point) float64 {
	dLon := (b.Lon() - a.Lon()) * degToRad
	dLat := (b.Lat() - a.Lat()) * degToRad
	meanLat := (a.Lat() + b.Lat()) / 2 * degToRad
	x := dLon * math.Cos(meanLat)

	return EarthRadiusKm * math.Sqrt(x*x+dLat*dLat)
}

// validate rejects coordinates that cannot be placed on the sphere.
func validate(points []orb.Point) error {
	for i, p := range points {
		lon, lat := p.Lon(), p.Lat()
		if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
			return fmt.Errorf("%w: point %d (%g, %g)", ErrBadPoint, i, lon, lat)
		}
	}

	return nil
}
