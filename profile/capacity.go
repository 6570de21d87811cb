package profile

import (
	"fmt"
	"math"
)

// BuildCapacities scales the normalized profile of every demand by its annual
// magnitude, returning one hourly capacity sequence per demand (same order).
//
// A missing profile is a configuration error: callers are expected to have
// dropped such nodes already.
//
// Complexity: O(N·H).
func BuildCapacities(set *Set, demands []Demand) ([][]float64, error) {
	out := make([][]float64, len(demands))
	for i, d := range demands {
		if d.Annual < 0 || math.IsNaN(d.Annual) || math.IsInf(d.Annual, 0) {
			return nil, fmt.Errorf("%w: demand %d annual %g", ErrNegativeLoad, i, d.Annual)
		}
		caps, err := set.Lookup(d.Category, d.Key)
		if err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
		for h := range caps {
			caps[h] *= d.Annual
		}
		out[i] = caps
	}

	return out, nil
}

// Constant returns n hourly sequences of the given length, each holding a
// constant value. It is handy for synthetic networks and tests.
func Constant(n, hours int, value float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		seq := make([]float64, hours)
		for h := range seq {
			seq[h] = value
		}
		out[i] = seq
	}

	return out
}
