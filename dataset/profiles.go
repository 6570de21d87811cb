package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/heatnet/profile"
)

// Profile table columns besides the region key.
const (
	colProcess = "process"
	colHour    = "hour"
	colLoad    = "load"
)

// ProfileTable describes one load profile CSV.
type ProfileTable struct {
	// KeyColumn holds the region code, e.g. "NUTS0_code" or "NUTS2_code".
	KeyColumn string

	// Category overrides the process column when set.
	Category string

	// HourBase is the number of the first hour in the file (0 or 1).
	HourBase int

	// Keys restricts the rows to these regions when non-empty.
	Keys []string
}

// ReadProfiles reads a load profile table into profile rows with
// Category = process (or t.Category) and Key = region code.
func ReadProfiles(r io.Reader, t ProfileTable) ([]profile.Row, error) {
	tab, err := openTable(r, t.KeyColumn, colProcess, colHour, colLoad)
	if err != nil {
		return nil, err
	}
	keep := set(t.Keys)

	var rows []profile.Row
	for {
		rec, err := tab.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		key := tab.get(rec, t.KeyColumn)
		if len(keep) > 0 {
			if _, ok := keep[key]; !ok {
				continue
			}
		}
		hour, ok, err := tab.float(rec, colHour)
		if err != nil {
			return nil, err
		}
		if !ok || hour != math.Trunc(hour) {
			return nil, fmt.Errorf("%w: line %d hour %q", ErrBadValue, tab.line, tab.get(rec, colHour))
		}
		load, ok, err := tab.float(rec, colLoad)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		category := t.Category
		if category == "" {
			category = tab.get(rec, colProcess)
		}
		rows = append(rows, profile.Row{
			Category: category,
			Key:      key,
			Hour:     int(hour) - t.HourBase,
			Load:     load,
		})
	}

	return rows, nil
}
