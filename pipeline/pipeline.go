// Package pipeline drives one road map analysis through its fixed stages:
//
//	FastestRoute → BarelyConnected → BarelyAdjacency → FastestBarelyRoute → Analyze
//
// Every stage is a pure function. It takes the previous stages' results
// explicitly and returns its own result together with the report Section
// it contributes, so each stage can be tested in isolation and the report
// is assembled without shared mutable state. Run chains all of them.
package pipeline

import (
	"github.com/katalvlaran/roadmap/analysis"
	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/dijkstra"
	"github.com/katalvlaran/roadmap/kruskal"
	"github.com/katalvlaran/roadmap/report"
)

// Result collects the output of every stage of a single run.
type Result struct {
	// Map is the input road map.
	Map *core.RoadMap

	// Route is the shortest route on the full map.
	Route dijkstra.Path

	// Barely lists the barely connected roads in acceptance order.
	Barely []core.Road

	// BarelyAdjacency indexes Barely by endpoint.
	BarelyAdjacency core.Adjacency

	// BarelyRoute is the shortest route on the barely connected map.
	BarelyRoute dijkstra.Path

	// Ratios compares the two networks and the two routes.
	Ratios analysis.Ratios

	// Report holds the rendered sections in stage order.
	Report report.Report
}

// Run executes every stage over m, in order, and returns all results.
func Run(m *core.RoadMap) Result {
	res := Result{Map: m}

	var section report.Section
	res.Route, section = FastestRoute(m)
	res.Report.Append(section)

	res.Barely, section = BarelyConnected(m)
	res.Report.Append(section)

	res.BarelyAdjacency = BarelyAdjacency(res.Barely)

	res.BarelyRoute, section = FastestBarelyRoute(m, res.BarelyAdjacency)
	res.Report.Append(section)

	res.Ratios, section = Analyze(m, res.BarelyAdjacency, res.Route, res.BarelyRoute)
	res.Report.Append(section)

	return res
}

// FastestRoute finds the shortest route on the full map.
func FastestRoute(m *core.RoadMap) (dijkstra.Path, report.Section) {
	p := dijkstra.FindPath(m.Adjacency, m.Locations, m.Start, m.End)

	return p, report.FastestRoute(m.End, m.Start, p.Distance, p.Discovery)
}

// BarelyConnected selects the minimum spanning roads of the full map.
func BarelyConnected(m *core.RoadMap) ([]core.Road, report.Section) {
	roads := kruskal.BuildSpanningSubgraph(m.Roads, m.Locations)

	return roads, report.BarelyConnected(roads)
}

// BarelyAdjacency indexes the barely connected roads by endpoint.
func BarelyAdjacency(roads []core.Road) core.Adjacency {
	return core.NewAdjacency(roads)
}

// FastestBarelyRoute finds the shortest route restricted to adj. Every
// location of m keeps an entry in the search, including those adj omits.
func FastestBarelyRoute(m *core.RoadMap, adj core.Adjacency) (dijkstra.Path, report.Section) {
	p := dijkstra.FindPath(adj, m.Locations, m.Start, m.End)

	return p, report.FastestBarelyRoute(m.End, m.Start, p.Distance, p.Discovery)
}

// Analyze compares the full and barely connected networks and routes.
func Analyze(m *core.RoadMap, barely core.Adjacency, route, barelyRoute dijkstra.Path) (analysis.Ratios, report.Section) {
	r := analysis.Analyze(m.Adjacency, barely, route.Distance, barelyRoute.Distance)

	return r, report.Analysis(r)
}
