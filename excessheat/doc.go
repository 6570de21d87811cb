// Package excessheat runs the full excess-heat estimation for one NUTS2
// region: it loads sites, consumers and load profiles, builds the candidate
// transmission network, reduces it to a minimum spanning forest, prunes it
// with the convergence loop and exports the surviving lines.
//
// Estimate works on already-loaded records; Run adds file loading and
// result writing driven by a config.Config.
package excessheat
