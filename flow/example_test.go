package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heatnet/flow"
)

// ExampleNetwork_MaxFlow routes two plants through a junction to one consumer.
//
//	plant0 ─┐
//	        ├─ junction ── consumer
//	plant1 ─┘
func ExampleNetwork_MaxFlow() {
	arcs := []flow.Arc{{From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 3}}
	n, _ := flow.NewNetwork(4, arcs, []int{0, 1}, []int{3}, flow.DefaultOptions())

	res, _ := n.MaxFlow(context.Background(), []float64{6, 3}, []float64{8})
	fmt.Println("total:", res.Value)
	fmt.Println("into consumer:", res.Arcs[2])
	// Output:
	// total: 8
	// into consumer: 8
}
