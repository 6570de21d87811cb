// Package optimize prunes a heat transmission network until the heat it
// delivers stops changing.
//
// A flow round solves one maximum flow per hour of the year on the current
// topology, turns the hourly flows into annual flow sequences per source,
// sink and line, prices every component through a cost.Model, and
// levelizes each line's investment over its delivered energy (ct/kWh).
//
// Run repeats: remove every line whose levelized cost is negative (no flow)
// or above the threshold, then run a new round, until the total delivered
// heat is unchanged or nothing is left to remove. A line priced exactly at
// the threshold stays.
//
// Hours are solved on a bounded pool of goroutines (Params.Workers) against
// an immutable topology snapshot; results are stored by hour index, and
// edges are deleted strictly between rounds.
package optimize
