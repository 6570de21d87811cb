// Package heatnet estimates district-heating transmission networks that
// carry industrial excess heat to nearby heat consumers.
//
// 🚀 What does heatnet do?
//
//	For one NUTS2 region it:
//		• Loads industrial excess-heat sites and district-heating consumers
//		• Scales normalized hourly load profiles to every site and consumer
//		• Connects all sites within a search radius (small-angle distance)
//		• Reduces the candidate network to a minimum spanning forest
//		• Solves one maximum flow per hour of the year (Dinic or Edmonds–Karp)
//		• Prices heat exchangers and pipes, and prunes lines whose levelized
//		  cost exceeds a threshold until the delivered heat stops changing
//		• Writes the surviving lines as GeoJSON, a summary CSV and SQLite rows
//
// Under the hood, the work is split across subpackages:
//
//	geo/           — small-angle distance, neighbor search & EPSG:3035 input
//	profile/       — profile normalization & hourly capacities
//	prim_kruskal/  — minimum spanning forest (Kruskal, Prim)
//	flow/          — immutable max-flow networks (Dinic, Edmonds–Karp)
//	core/          — the transmission network graph & its edge attributes
//	cost/          — heat exchanger & pipe cost model
//	optimize/      — hourly flow rounds & the pruning loop
//	dataset/       — CSV / GeoJSON readers for sites, consumers & profiles
//	export/        — GeoJSON, CSV & SQLite result writers
//	config/        — YAML configuration with env overrides
//	observability/ — slog logger & Prometheus metrics
//	excessheat/    — end-to-end orchestration
//	cmd/heatnet/   — the command-line tool
//
// Quick ASCII example:
//
//	S0──────K0──────S1        S = source, K = sink
//	         │
//	         K1
//
// Two sources feed two sinks; each hour the network delivers at most
// min(Σ source capacity, Σ sink demand).
//
// See examples in example_test.go files for usage.
package heatnet
