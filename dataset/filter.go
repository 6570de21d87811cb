package dataset

import "github.com/katalvlaran/heatnet/profile"

// FilterSources drops sources without a region or without a load profile
// for their subsector process and region. It returns the kept records and
// the number dropped.
func FilterSources(records []SourceRecord, profiles *profile.Set) ([]SourceRecord, int) {
	kept := make([]SourceRecord, 0, len(records))
	for _, r := range records {
		process, ok := r.Process()
		if r.NUTS0 == "" || !ok || !profiles.Has(process, r.NUTS0) {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}

// FilterSinks drops sinks without a region or without a residential
// heating profile for it.
func FilterSinks(records []SinkRecord, profiles *profile.Set) ([]SinkRecord, int) {
	kept := make([]SinkRecord, 0, len(records))
	for _, r := range records {
		if r.NUTS2 == "" || !profiles.Has(ResidentialHeating, r.NUTS2) {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}

// SourceDemands returns one profile demand per source record. Records
// must have passed FilterSources.
func SourceDemands(records []SourceRecord) []profile.Demand {
	out := make([]profile.Demand, len(records))
	for i, r := range records {
		process, _ := r.Process()
		out[i] = profile.Demand{Category: process, Key: r.NUTS0, Annual: r.ExcessHeat}
	}
	return out
}

// SinkDemands returns one profile demand per sink record.
func SinkDemands(records []SinkRecord) []profile.Demand {
	out := make([]profile.Demand, len(records))
	for i, r := range records {
		out[i] = profile.Demand{Category: ResidentialHeating, Key: r.NUTS2, Annual: r.HeatDemand}
	}
	return out
}
