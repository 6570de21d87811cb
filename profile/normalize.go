package profile

import (
	"fmt"
	"math"
	"sort"
)

// Set holds normalized hourly weights keyed by (category, region key).
// A Set is read-only after Normalize returns and safe for concurrent use.
type Set struct {
	hours    int
	profiles map[groupKey][]float64
}

// Normalize builds unit-sum hourly weight sequences from raw rows.
//
// Steps:
//  1. Validate every row (hour range, non-negative finite load).
//  2. Accumulate loads per (Category, Key) at their hour; repeated hours add up.
//  3. Divide every group by its total; a zero total is ErrEmptyProfile.
//
// Complexity: O(R + G·H) for R rows, G groups and H hours.
func Normalize(rows []Row, hours int) (*Set, error) {
	if hours <= 0 {
		return nil, ErrBadHours
	}

	s := &Set{hours: hours, profiles: make(map[groupKey][]float64)}
	for i, r := range rows {
		if r.Hour < 0 || r.Hour >= hours {
			return nil, fmt.Errorf("%w: row %d hour %d", ErrHourOutOfRange, i, r.Hour)
		}
		if r.Load < 0 || math.IsNaN(r.Load) || math.IsInf(r.Load, 0) {
			return nil, fmt.Errorf("%w: row %d load %g", ErrNegativeLoad, i, r.Load)
		}
		k := groupKey{category: r.Category, key: r.Key}
		p, ok := s.profiles[k]
		if !ok {
			p = make([]float64, hours)
			s.profiles[k] = p
		}
		p[r.Hour] += r.Load
	}

	for k, p := range s.profiles {
		var total float64
		for _, v := range p {
			total += v
		}
		if total <= 0 {
			return nil, fmt.Errorf("%w: %s/%s", ErrEmptyProfile, k.category, k.key)
		}
		for h := range p {
			p[h] /= total
		}
	}

	return s, nil
}

// Hours returns the period length of every profile in the set.
func (s *Set) Hours() int { return s.hours }

// Has reports whether a profile exists for (category, key).
func (s *Set) Has(category, key string) bool {
	_, ok := s.profiles[groupKey{category: category, key: key}]
	return ok
}

// Lookup returns a copy of the weights for (category, key).
func (s *Set) Lookup(category, key string) ([]float64, error) {
	p, ok := s.profiles[groupKey{category: category, key: key}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingProfile, category, key)
	}
	out := make([]float64, len(p))
	copy(out, p)

	return out, nil
}

// Keys returns the region keys available for a category, sorted.
func (s *Set) Keys(category string) []string {
	var keys []string
	for k := range s.profiles {
		if k.category == category {
			keys = append(keys, k.key)
		}
	}
	sort.Strings(keys)

	return keys
}

// Merge returns a set holding the profiles of s and other; other wins on
// conflicting keys. Both sets must share the same period length.
func (s *Set) Merge(other *Set) (*Set, error) {
	if other == nil {
		return s, nil
	}
	if s.hours != other.hours {
		return nil, fmt.Errorf("%w: merging %d-hour and %d-hour sets", ErrBadHours, s.hours, other.hours)
	}
	out := &Set{hours: s.hours, profiles: make(map[groupKey][]float64, len(s.profiles)+len(other.profiles))}
	for k, p := range s.profiles {
		out.profiles[k] = p
	}
	for k, p := range other.profiles {
		out.profiles[k] = p
	}

	return out, nil
}
