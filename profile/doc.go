// Package profile turns raw hourly load tables into normalized weight
// sequences and scales them into per-node hourly capacities.
//
// A profile is identified by a category (the load process, e.g.
// "residential_heating" or "iron_and_steel") and a region key (a NUTS0 or
// NUTS2 code). Normalize groups raw rows by (category, key) and scales each
// group so that its weights sum to one over the period. BuildCapacities
// multiplies the selected weights by each node's annual magnitude.
//
// Nodes whose profile is missing must be filtered out before
// BuildCapacities: a miss there is reported as ErrMissingProfile and treated
// as a configuration error by callers.
package profile
