package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the sphere radius used by Distance, in kilometers.
const EarthRadiusKm = orb.EarthRadius / 1000

// indexThreshold is the number of pairwise comparisons above which
// FindNeighbors switches to the grid index unless told otherwise.
const indexThreshold = 4096

// Sentinel errors for neighbor search.
var (
	// ErrBadRadius indicates a non-positive or non-finite search radius.
	ErrBadRadius = errors.New("geo: search radius must be a positive finite number")

	// ErrBadPoint indicates a coordinate that is not a valid (lon, lat) pair.
	ErrBadPoint = errors.New("geo: invalid coordinate")

	// ErrUnknownCRS indicates a coordinate reference system without a projection.
	ErrUnknownCRS = errors.New("geo: unknown coordinate reference system")
)

// Pair is one undirected candidate connection between A[A] and B[B].
// Distance is the approximated distance in kilometers.
type Pair struct {
	A        int
	B        int
	Distance float64
}

// Option configures FindNeighbors.
type Option func(*options)

type options struct {
	sameSet  bool
	index    bool
	indexSet bool
}

// WithSameSet declares that A and B are the same collection: self-pairs are
// dropped and every pair is reported once, with A < B.
func WithSameSet() Option {
	return func(o *options) { o.sameSet = true }
}

// WithIndex forces the grid index on or off. Without it the index is used
// once len(A)*len(B) exceeds an internal threshold.
func WithIndex(enabled bool) Option {
	return func(o *options) {
		o.index = enabled
		o.indexSet = true
	}
}
