package flow

import (
	"context"
	"math"
)

// edmondsKarp computes the maximum flow from s to t on r using shortest
// augmenting paths found by BFS.
//
// Steps:
//  1. Repeat:
//     a. Check for cancellation.
//     b. BFS from s recording the parent edge of every reached vertex.
//     c. If t was not reached, stop.
//     d. Walk back from t to find the bottleneck, then push it along the path.
//
// Complexity: O(V·E²).
func edmondsKarp(ctx context.Context, r *residual, s, t int, opts FlowOptions) (float64, error) {
	var maxFlow float64
	for {
		// 1a) Cancellation check
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		// 1b) BFS
		for i := range r.parent {
			r.parent[i] = -1
		}
		r.queue = append(r.queue[:0], s)
		reached := false
		for i := 0; i < len(r.queue) && !reached; i++ {
			u := r.queue[i]
			for _, e := range r.head[u] {
				v := r.to[e]
				if v == s || r.parent[v] >= 0 || r.res(e) <= opts.Epsilon {
					continue
				}
				r.parent[v] = e
				if v == t {
					reached = true
					break
				}
				r.queue = append(r.queue, v)
			}
		}

		// 1c) No augmenting path left
		if !reached {
			break
		}

		// 1d) Bottleneck and augmentation
		bottleneck := math.Inf(1)
		for v := t; v != s; v = r.to[r.parent[v]^1] {
			bottleneck = math.Min(bottleneck, r.res(r.parent[v]))
		}
		for v := t; v != s; v = r.to[r.parent[v]^1] {
			r.push(r.parent[v], bottleneck)
		}
		maxFlow += bottleneck
	}

	return maxFlow, nil
}
