package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// FindNeighbors returns every undirected pair (a ∈ A, b ∈ B) whose distance
// is at most radius kilometers, sorted by (A, B).
//
// Steps:
//  1. Validate radius and coordinates.
//  2. Pick the pairwise scan or the grid index (WithIndex overrides the choice).
//  3. Keep pairs with Distance <= radius; with WithSameSet keep only A < B.
//  4. Sort by (A, B) so both strategies return the same slice.
//
// Complexity: O(|A|·|B|) pairwise; roughly O(|A| + |B| + k) with the index,
// where k is the number of pairs inside neighbouring cells.
func FindNeighbors(a, b []orb.Point, radius float64, opts ...Option) ([]Pair, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, ErrBadRadius
	}
	if err := validate(a); err != nil {
		return nil, err
	}
	if err := validate(b); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	useIndex := len(a)*len(b) > indexThreshold
	if o.indexSet {
		useIndex = o.index
	}

	var pairs []Pair
	if useIndex {
		pairs = gridScan(a, b, radius, o.sameSet)
	} else {
		pairs = pairwiseScan(a, b, radius, o.sameSet)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	return pairs, nil
}

func pairwiseScan(a, b []orb.Point, radius float64, sameSet bool) []Pair {
	var pairs []Pair
	for i, pa := range a {
		start := 0
		if sameSet {
			start = i + 1
		}
		for j := start; j < len(b); j++ {
			if d := Distance(pa, b[j]); d <= radius {
				pairs = append(pairs, Pair{A: i, B: j, Distance: d})
			}
		}
	}

	return pairs
}
