package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/kruskal"
)

// ExampleBuildSpanningSubgraph demonstrates the barely connected network of
// a four-location "envelope" map. Roads are accepted shortest first. Of the
// three 4 km roads, A-B would close a cycle and D-A beats B-D on ID.
//
//	A-B (4,#1), B-C (2,#2), C-D (5,#3), D-A (4,#4), A-C (1,#5), B-D (4,#6)
func ExampleBuildSpanningSubgraph() {
	m := core.NewRoadMap("A", "D", []core.Road{
		{ID: 1, Distance: 4, From: "A", To: "B"},
		{ID: 2, Distance: 2, From: "B", To: "C"},
		{ID: 3, Distance: 5, From: "C", To: "D"},
		{ID: 4, Distance: 4, From: "D", To: "A"},
		{ID: 5, Distance: 1, From: "A", To: "C"},
		{ID: 6, Distance: 4, From: "B", To: "D"},
	})

	roads := kruskal.BuildSpanningSubgraph(m.Roads, m.Locations)
	fmt.Printf("Total: %d\n", core.TotalDistance(roads))
	for _, r := range roads {
		fmt.Printf("%s-%s #%d\n", r.From, r.To, r.ID)
	}
	// Output:
	// Total: 7
	// A-C #5
	// B-C #2
	// D-A #4
}
