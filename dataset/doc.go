// Package dataset reads the estimator's input tables: the industrial
// excess-heat registry (sources), district-heating entry points and
// coherent areas (sinks), and hourly load profiles.
//
// CSV readers sniff the delimiter (comma, semicolon or tab) from the header
// line and look columns up by name, so column order and extra columns do
// not matter. Energies are converted from GWh to MWh on read.
package dataset
