// Package prim_kruskal provides an implementation of Prim's algorithm,
// restarted in every connected component to produce a spanning forest.
package prim_kruskal

import (
	"container/heap"
	"sort"
)

// PrimForest computes a minimum spanning forest by growing one tree per
// connected component with a min-heap of candidate edges.
//
// Steps:
//  1. Validate vertex range and weights.
//  2. Build incidence lists (edge indices per vertex, both directions).
//  3. For each vertex r in ascending order that is not yet visited:
//     a. Mark r visited and push its incident edges.
//     b. Pop the cheapest edge (ties by input index); skip it if both ends
//     are visited, otherwise keep it, mark the new vertex, push its edges.
//  4. Sort kept indices ascending.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimForest(n int, edges []Edge) ([]int, float64, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 0 || len(edges) == 0 {
		return []int{}, 0, nil
	}

	// 2. Incidence lists; self-loops can never join a new vertex.
	incident := make([][]int, n)
	for i, e := range edges {
		if e.U == e.V {
			continue
		}
		incident[e.U] = append(incident[e.U], i)
		incident[e.V] = append(incident[e.V], i)
	}

	visited := make([]bool, n)
	kept := make([]int, 0, n-1)
	var total float64
	pq := &edgePQ{edges: edges}

	push := func(v int) {
		for _, idx := range incident[v] {
			e := edges[idx]
			if !visited[e.U] || !visited[e.V] {
				heap.Push(pq, idx)
			}
		}
	}

	// 3. One tree per component.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)
		for pq.Len() > 0 {
			idx := heap.Pop(pq).(int)
			e := edges[idx]
			var next int
			switch {
			case !visited[e.U]:
				next = e.U
			case !visited[e.V]:
				next = e.V
			default:
				continue
			}
			visited[next] = true
			kept = append(kept, idx)
			total += e.Weight
			push(next)
		}
	}

	// 4. Report in input order.
	sort.Ints(kept)

	return kept, total, nil
}

// edgePQ implements heap.Interface over edge indices, ordered by
// (Weight, index).
type edgePQ struct {
	edges []Edge
	items []int
}

func (pq edgePQ) Len() int { return len(pq.items) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if pq.edges[a].Weight != pq.edges[b].Weight {
		return pq.edges[a].Weight < pq.edges[b].Weight
	}
	return a < b
}

func (pq edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	idx := old[n-1]
	pq.items = old[:n-1]

	return idx
}
