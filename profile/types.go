package profile

import "errors"

// HoursPerYear is the length of every hourly sequence in a full-year run.
const HoursPerYear = 8760

// Sentinel errors for profile normalization and capacity building.
var (
	// ErrMissingProfile indicates that no profile exists for a (category, key).
	ErrMissingProfile = errors.New("profile: missing profile")

	// ErrHourOutOfRange indicates a row whose hour is outside [0, hours).
	ErrHourOutOfRange = errors.New("profile: hour out of range")

	// ErrNegativeLoad indicates a negative load or annual magnitude.
	ErrNegativeLoad = errors.New("profile: negative load")

	// ErrEmptyProfile indicates a group whose loads sum to zero.
	ErrEmptyProfile = errors.New("profile: profile sums to zero")

	// ErrBadHours indicates a non-positive period length.
	ErrBadHours = errors.New("profile: hours must be positive")
)

// Row is one raw load table entry.
type Row struct {
	Category string
	Key      string
	Hour     int
	Load     float64
}

// Demand selects a profile and scales it by an annual magnitude.
type Demand struct {
	Category string
	Key      string
	Annual   float64
}

type groupKey struct {
	category string
	key      string
}
