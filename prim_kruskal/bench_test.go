package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// BenchmarkKruskalForest measures a 2000-vertex, 10000-edge graph in 20 components.
func BenchmarkKruskalForest(b *testing.B) {
	edges := randomGraph(2000, 10000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.KruskalForest(2000, edges)
	}
}

// BenchmarkPrimForest measures the same graph with the Prim variant.
func BenchmarkPrimForest(b *testing.B) {
	edges := randomGraph(2000, 10000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.PrimForest(2000, edges)
	}
}
