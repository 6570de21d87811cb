// Package prim_kruskal provides an implementation of Kruskal's minimum
// spanning forest algorithm over an index-based edge list.
package prim_kruskal

import "sort"

// KruskalForest computes a minimum spanning forest of the undirected graph
// with n vertices and the given edges. It returns the indices of the kept
// edges in ascending order and their total weight.
//
// Steps:
//  1. Validate vertex range and weights.
//  2. Build an index permutation and stable-sort it by weight, so that equal
//     weights keep their input order.
//  3. Initialize a disjoint-set (parent, rank) per vertex.
//  4. Accept each edge whose endpoints have different roots, merging them;
//     self-loops never qualify.
//  5. Stop early once n-1 edges were accepted (a single spanning tree).
//  6. Sort the accepted indices ascending.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func KruskalForest(n int, edges []Edge) ([]int, float64, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 0 || len(edges) == 0 {
		return []int{}, 0, nil
	}

	// 2. Sort an index permutation; the edge slice itself is left untouched.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return edges[order[i]].Weight < edges[order[j]].Weight
	})

	// 3. Disjoint-set with path halving and union by rank.
	dsu := newDisjointSet(n)

	// 4. Greedy selection.
	kept := make([]int, 0, n-1)
	var total float64
	for _, idx := range order {
		e := edges[idx]
		if !dsu.union(e.U, e.V) {
			// Same component (or self-loop): this edge would close a cycle.
			continue
		}
		kept = append(kept, idx)
		total += e.Weight
		// 5. A spanning tree over all vertices cannot grow further.
		if len(kept) == n-1 {
			break
		}
	}

	// 6. Report in input order.
	sort.Ints(kept)

	return kept, total, nil
}

// disjointSet is a union-find structure over [0, n).
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of u, halving the path on the way up.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
