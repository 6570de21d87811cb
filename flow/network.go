package flow

import (
	"context"
	"fmt"
	"math"
	"sync"
)

// Network is an immutable max-flow topology with capacity-limited terminals.
type Network struct {
	nodes   int
	arcs    []Arc
	sources []int
	sinks   []int
	opts    FlowOptions
	pool    sync.Pool
}

// NewNetwork validates and freezes a topology.
//
// Complexity: O(V + A + S + K).
func NewNetwork(nodes int, arcs []Arc, sources, sinks []int, opts FlowOptions) (*Network, error) {
	opts.normalize()
	if opts.Algorithm != AlgorithmDinic && opts.Algorithm != AlgorithmEdmondsKarp {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}
	if nodes < 0 {
		return nil, ErrNodeOutOfRange
	}
	inRange := func(v int) bool { return v >= 0 && v < nodes }
	for i, a := range arcs {
		if !inRange(a.From) || !inRange(a.To) {
			return nil, fmt.Errorf("%w: arc %d (%d, %d)", ErrNodeOutOfRange, i, a.From, a.To)
		}
	}
	for i, v := range sources {
		if !inRange(v) {
			return nil, fmt.Errorf("%w: source terminal %d -> node %d", ErrNodeOutOfRange, i, v)
		}
	}
	for i, v := range sinks {
		if !inRange(v) {
			return nil, fmt.Errorf("%w: sink terminal %d -> node %d", ErrNodeOutOfRange, i, v)
		}
	}

	n := &Network{
		nodes:   nodes,
		arcs:    append([]Arc(nil), arcs...),
		sources: append([]int(nil), sources...),
		sinks:   append([]int(nil), sinks...),
		opts:    opts,
	}
	n.pool.New = func() any { return n.newResidual() }

	return n, nil
}

// Nodes returns the number of nodes (terminals excluded).
func (n *Network) Nodes() int { return n.nodes }

// MaxFlow solves one instance with the given terminal capacities.
//
// Steps:
//  1. Validate vector lengths and capacities (tiny negatives within Epsilon clamp to 0).
//  2. Borrow a residual skeleton from the pool, reset flows, load capacities.
//  3. Run the configured algorithm from the super-source to the super-sink.
//  4. Read delivered/received/arc flows, zeroing magnitudes ≤ Epsilon.
//
// Complexity: dominated by the algorithm; O(V + E) for setup and readout.
func (n *Network) MaxFlow(ctx context.Context, sourceCaps, sinkCaps []float64) (*Result, error) {
	// 1) Validate inputs.
	if len(sourceCaps) != len(n.sources) {
		return nil, fmt.Errorf("%w: %d source capacities for %d sources", ErrCapacityLength, len(sourceCaps), len(n.sources))
	}
	if len(sinkCaps) != len(n.sinks) {
		return nil, fmt.Errorf("%w: %d sink capacities for %d sinks", ErrCapacityLength, len(sinkCaps), len(n.sinks))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Prepare the residual graph.
	r := n.pool.Get().(*residual)
	defer n.pool.Put(r)
	r.reset()
	for k, c := range sourceCaps {
		c, err := n.checkCap(c, "s*", fmt.Sprintf("source[%d]", k))
		if err != nil {
			return nil, err
		}
		r.cap[n.sourceEdge(k)] = c
	}
	for k, c := range sinkCaps {
		c, err := n.checkCap(c, fmt.Sprintf("sink[%d]", k), "t*")
		if err != nil {
			return nil, err
		}
		r.cap[n.sinkEdge(k)] = c
	}

	// 3) Solve.
	var (
		value float64
		err   error
	)
	switch n.opts.Algorithm {
	case AlgorithmEdmondsKarp:
		value, err = edmondsKarp(ctx, r, n.superSource(), n.superSink(), n.opts)
	default:
		value, err = dinic(ctx, r, n.superSource(), n.superSink(), n.opts)
	}
	if err != nil {
		return nil, err
	}

	// 4) Read out.
	res := &Result{
		Value:   n.clean(value),
		Sources: make([]float64, len(n.sources)),
		Sinks:   make([]float64, len(n.sinks)),
		Arcs:    make([]float64, len(n.arcs)),
	}
	for k := range n.sources {
		res.Sources[k] = n.clean(r.flow[n.sourceEdge(k)])
	}
	for k := range n.sinks {
		res.Sinks[k] = n.clean(r.flow[n.sinkEdge(k)])
	}
	for i := range n.arcs {
		res.Arcs[i] = n.clean(r.flow[2*i])
	}

	return res, nil
}

// checkCap rejects negative (beyond Epsilon) and non-finite capacities.
func (n *Network) checkCap(c float64, from, to string) (float64, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < -n.opts.Epsilon {
		return 0, EdgeError{From: from, To: to, Cap: c}
	}
	if c < 0 {
		return 0, nil
	}

	return c, nil
}

func (n *Network) clean(x float64) float64 {
	if math.Abs(x) <= n.opts.Epsilon {
		return 0
	}
	return x
}

func (n *Network) superSource() int { return n.nodes }
func (n *Network) superSink() int   { return n.nodes + 1 }

func (n *Network) sourceEdge(k int) int { return 2*len(n.arcs) + 2*k }
func (n *Network) sinkEdge(k int) int   { return 2*len(n.arcs) + 2*len(n.sources) + 2*k }

// residual holds flat paired edge arrays; e^1 is the reverse of e.
type residual struct {
	head [][]int // edge ids leaving each vertex
	to   []int
	cap  []float64
	flow []float64

	// scratch reused by the algorithms
	level  []int
	iter   []int
	parent []int
	queue  []int
}

// newResidual lays out arcs first, then source terminals, then sink terminals.
func (n *Network) newResidual() *residual {
	vertices := n.nodes + 2
	edges := 2 * (len(n.arcs) + len(n.sources) + len(n.sinks))
	r := &residual{
		head:   make([][]int, vertices),
		to:     make([]int, 0, edges),
		cap:    make([]float64, 0, edges),
		flow:   make([]float64, edges),
		level:  make([]int, vertices),
		iter:   make([]int, vertices),
		parent: make([]int, vertices),
		queue:  make([]int, 0, vertices),
	}
	inf := math.Inf(1)
	for _, a := range n.arcs {
		r.addPair(a.From, a.To, inf, inf)
	}
	for _, v := range n.sources {
		r.addPair(n.superSource(), v, 0, 0)
	}
	for _, v := range n.sinks {
		r.addPair(v, n.superSink(), 0, 0)
	}

	return r
}

func (r *residual) addPair(u, v int, capFwd, capBwd float64) {
	e := len(r.to)
	r.to = append(r.to, v, u)
	r.cap = append(r.cap, capFwd, capBwd)
	r.head[u] = append(r.head[u], e)
	r.head[v] = append(r.head[v], e+1)
}

// reset clears flows; terminal capacities are overwritten by the caller.
func (r *residual) reset() {
	for i := range r.flow {
		r.flow[i] = 0
	}
}

func (r *residual) res(e int) float64 { return r.cap[e] - r.flow[e] }

func (r *residual) push(e int, f float64) {
	r.flow[e] += f
	r.flow[e^1] -= f
}
