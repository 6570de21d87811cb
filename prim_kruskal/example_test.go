package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// ExampleKruskalForest reduces the "letter envelope" graph
// A-B (4), A-C (1), C-B (2), B-D (3), C-D (5), D-A (4)
// plus an isolated pair E-F (2) to its minimum spanning forest.
func ExampleKruskalForest() {
	const a, b, c, d, e, f = 0, 1, 2, 3, 4, 5
	edges := []prim_kruskal.Edge{
		{U: a, V: b, Weight: 4},
		{U: a, V: c, Weight: 1},
		{U: c, V: b, Weight: 2},
		{U: b, V: d, Weight: 3},
		{U: c, V: d, Weight: 5},
		{U: d, V: a, Weight: 4},
		{U: e, V: f, Weight: 2},
	}

	kept, total, err := prim_kruskal.KruskalForest(6, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("kept:", kept, "total:", total)
	// Output: kept: [1 2 3 6] total: 8
}
