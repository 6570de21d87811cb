package flow

import (
	"context"
	"math"
)

// dinic computes the maximum flow from s to t on r using Dinic's algorithm
// (level graph + blocking flows).
//
// Steps:
//  1. Repeat until t is unreachable:
//     a. Check for cancellation.
//     b. BFS over edges with residual > Epsilon to assign levels.
//     c. If t has no level, stop.
//     d. Reset current-arc pointers and push blocking flow with DFS,
//     optionally rebuilding levels every LevelRebuildInterval augmentations.
//
// Complexity: O(V²·E) worst case.
func dinic(ctx context.Context, r *residual, s, t int, opts FlowOptions) (float64, error) {
	var maxFlow float64
	augmentCount := 0
	for {
		// 1a) Cancellation check before BFS
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		// 1b) BFS to compute levels
		if !r.buildLevels(s, t, opts.Epsilon) {
			// 1c) sink unreachable in level graph
			break
		}

		// 1d) Blocking flow
		for i := range r.iter {
			r.iter[i] = 0
		}
		for {
			pushed := r.dfsPush(s, t, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// buildLevels assigns BFS distances from s and reports whether t is reachable.
func (r *residual) buildLevels(s, t int, eps float64) bool {
	for i := range r.level {
		r.level[i] = -1
	}
	r.queue = append(r.queue[:0], s)
	r.level[s] = 0
	for i := 0; i < len(r.queue); i++ {
		u := r.queue[i]
		for _, e := range r.head[u] {
			v := r.to[e]
			if r.level[v] < 0 && r.res(e) > eps {
				r.level[v] = r.level[u] + 1
				r.queue = append(r.queue, v)
			}
		}
	}

	return r.level[t] >= 0
}

// dfsPush sends up to available units from u to t along the level graph and
// returns the amount sent. An edge's pointer only advances once the edge is
// saturated or leads to a dead end.
func (r *residual) dfsPush(u, t int, available, eps float64) float64 {
	if u == t {
		return available
	}
	for ; r.iter[u] < len(r.head[u]); r.iter[u]++ {
		e := r.head[u][r.iter[u]]
		v := r.to[e]
		rc := r.res(e)
		if rc <= eps || r.level[v] != r.level[u]+1 {
			continue
		}
		pushed := r.dfsPush(v, t, math.Min(available, rc), eps)
		if pushed > eps {
			r.push(e, pushed)
			return pushed
		}
	}

	return 0
}
