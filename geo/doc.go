// Package geo finds candidate pipeline connections between two sets of
// geographic points that lie within a search radius of each other.
//
// Distances are computed with a small-angle (equirectangular) approximation:
//
//	d = R · sqrt((Δλ · cos φ̄)² + Δφ²)
//
// where Δλ and Δφ are the longitude and latitude differences in radians and
// φ̄ is the mean latitude of the two points. For regions spanning a few
// hundred kilometers the result stays within a fraction of a percent of the
// great-circle distance, while being several times cheaper than the
// haversine formula.
//
// FindNeighbors compares every point of set A with every point of set B.
// For larger inputs a uniform latitude/longitude grid index limits the
// comparisons to neighbouring cells; the index is conservative, so the
// resulting pair set is identical to the pairwise scan.
//
// Points are orb.Point values (longitude, latitude in degrees). Inputs in
// ETRS89-LAEA Europe (EPSG:3035) are converted with LAEAEuropeToWGS84, an
// orb.Projection usable with orb/project.
//
// Errors:
//
//	ErrBadRadius  - the search radius is not a positive finite number.
//	ErrBadPoint   - a coordinate is NaN/Inf or the latitude is outside [-90, 90].
//	ErrUnknownCRS - ToWGS84 got a reference system it cannot convert.
package geo
