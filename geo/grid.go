package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// minCos bounds the longitude cell stretch near the poles; beyond it the
// grid degenerates and the pairwise scan is used instead.
const minCos = 1e-3

type cell struct{ x, y int }

// grid buckets the points of B by latitude/longitude cell.
//
// Cell height is the radius expressed in degrees of latitude. Cell width is
// the same angle divided by cos(maxAbsLat), where maxAbsLat is the largest
// absolute latitude of all points: Distance scales Δλ by the cosine of the
// pair's mean latitude, which is never smaller, so any pair within radius is
// at most one cell apart on both axes.
type grid struct {
	latStep float64
	lonStep float64
	cells   map[cell][]int
}

func newGrid(a, b []orb.Point, radius float64) (*grid, bool) {
	maxAbsLat := 0.0
	for _, pts := range [][]orb.Point{a, b} {
		for _, p := range pts {
			maxAbsLat = math.Max(maxAbsLat, math.Abs(p.Lat()))
		}
	}
	cos := math.Cos(maxAbsLat * degToRad)
	if cos < minCos {
		return nil, false
	}

	// slack keeps borderline pairs inside adjacent cells despite rounding
	latStep := radius / EarthRadiusKm / degToRad * (1 + 1e-9)
	g := &grid{
		latStep: latStep,
		lonStep: latStep / cos,
		cells:   make(map[cell][]int),
	}
	for j, p := range b {
		c := g.cellOf(p)
		g.cells[c] = append(g.cells[c], j)
	}

	return g, true
}

func (g *grid) cellOf(p orb.Point) cell {
	return cell{
		x: int(math.Floor(p.Lon() / g.lonStep)),
		y: int(math.Floor(p.Lat() / g.latStep)),
	}
}

func gridScan(a, b []orb.Point, radius float64, sameSet bool) []Pair {
	g, ok := newGrid(a, b, radius)
	if !ok {
		return pairwiseScan(a, b, radius, sameSet)
	}

	var pairs []Pair
	for i, pa := range a {
		c := g.cellOf(pa)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range g.cells[cell{x: c.x + dx, y: c.y + dy}] {
					if sameSet && j <= i {
						continue
					}
					if d := Distance(pa, b[j]); d <= radius {
						pairs = append(pairs, Pair{A: i, B: j, Distance: d})
					}
				}
			}
		}
	}

	return pairs
}
