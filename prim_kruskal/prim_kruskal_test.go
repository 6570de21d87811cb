package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatnet/prim_kruskal"
)

// triangle: 0-1 (1), 1-2 (2), 0-2 (3). MST = {0-1, 1-2}, weight 3.
func triangle() []prim_kruskal.Edge {
	return []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 3},
	}
}

// randomGraph builds a reproducible graph with n vertices and m edges.
// Chains are only added inside blocks of size block, so the graph has
// roughly n/block components.
func randomGraph(n, m, block int) []prim_kruskal.Edge {
	r := rand.New(rand.NewSource(42))
	var edges []prim_kruskal.Edge
	for i := 1; i < n; i++ {
		if i%block != 0 {
			edges = append(edges, prim_kruskal.Edge{U: i - 1, V: i, Weight: 1 + r.Float64()*10})
		}
	}
	for len(edges) < m {
		u := r.Intn(n)
		v := (u/block)*block + r.Intn(block)
		if v >= n || u == v {
			continue
		}
		edges = append(edges, prim_kruskal.Edge{U: u, V: v, Weight: 1 + r.Float64()*100})
	}

	return edges
}

func both() map[string]func(int, []prim_kruskal.Edge) ([]int, float64, error) {
	return map[string]func(int, []prim_kruskal.Edge) ([]int, float64, error){
		prim_kruskal.MethodKruskal: prim_kruskal.KruskalForest,
		prim_kruskal.MethodPrim:    prim_kruskal.PrimForest,
	}
}

func TestForest_Triangle(t *testing.T) {
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			kept, total, err := fn(3, triangle())
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1}, kept)
			assert.Equal(t, 3.0, total)
		})
	}
}

func TestForest_TwoComponents(t *testing.T) {
	// Component A: 0,1,2 (triangle). Component B: 3-4 twice, 5 isolated.
	edges := append(triangle(),
		prim_kruskal.Edge{U: 3, V: 4, Weight: 7},
		prim_kruskal.Edge{U: 4, V: 3, Weight: 5},
	)
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			kept, total, err := fn(6, edges)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 4}, kept)
			assert.Equal(t, 8.0, total)
		})
	}
}

func TestForest_SelfLoopIgnored(t *testing.T) {
	edges := []prim_kruskal.Edge{{U: 0, V: 0, Weight: 0}, {U: 0, V: 1, Weight: 2}}
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			kept, _, err := fn(2, edges)
			require.NoError(t, err)
			assert.Equal(t, []int{1}, kept)
		})
	}
}

func TestForest_TieBreakIsInputOrder(t *testing.T) {
	// Square with equal weights: the first three edges in input order win.
	edges := []prim_kruskal.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 0, Weight: 1},
	}
	kept, _, err := prim_kruskal.KruskalForest(4, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, kept)

	again, _, err := prim_kruskal.KruskalForest(4, edges)
	require.NoError(t, err)
	assert.Equal(t, kept, again, "result must be reproducible")
}

func TestForest_KruskalAndPrimAgree(t *testing.T) {
	edges := randomGraph(300, 1500, 50)
	kk, kw, err := prim_kruskal.KruskalForest(300, edges)
	require.NoError(t, err)
	pk, pw, err := prim_kruskal.PrimForest(300, edges)
	require.NoError(t, err)

	assert.InDelta(t, kw, pw, 1e-9)
	// Random float weights are distinct, so the edge sets coincide.
	assert.Equal(t, kk, pk)
	// 300 vertices in 6 blocks of 50, each block connected: 300-6 edges.
	assert.Len(t, kk, 294)
}

func TestForest_Idempotent(t *testing.T) {
	edges := randomGraph(120, 600, 40)
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			kept, total, err := fn(120, edges)
			require.NoError(t, err)

			reduced := make([]prim_kruskal.Edge, len(kept))
			for i, idx := range kept {
				reduced[i] = edges[idx]
			}
			again, total2, err := fn(120, reduced)
			require.NoError(t, err)
			require.Len(t, again, len(reduced), "a forest must be kept entirely")
			assert.InDelta(t, total, total2, 1e-9)
		})
	}
}

func TestForest_Empty(t *testing.T) {
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			kept, total, err := fn(0, nil)
			require.NoError(t, err)
			assert.Empty(t, kept)
			assert.Zero(t, total)

			kept, _, err = fn(5, nil)
			require.NoError(t, err)
			assert.Empty(t, kept)
		})
	}
}

func TestForest_Validation(t *testing.T) {
	for name, fn := range both() {
		t.Run(name, func(t *testing.T) {
			_, _, err := fn(2, []prim_kruskal.Edge{{U: 0, V: 2, Weight: 1}})
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

			_, _, err = fn(-1, nil)
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

			_, _, err = fn(2, []prim_kruskal.Edge{{U: 0, V: 1, Weight: math.NaN()}})
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)

			_, _, err = fn(2, []prim_kruskal.Edge{{U: 0, V: 1, Weight: -1}})
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)
		})
	}
}

func TestCompute_Dispatch(t *testing.T) {
	kept, _, err := prim_kruskal.Compute(3, triangle())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, kept)

	kept, _, err = prim_kruskal.Compute(3, triangle(), prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, kept)

	_, _, err = prim_kruskal.Compute(3, triangle(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
