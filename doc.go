// Package roadmap analyzes undirected road networks: it finds the fastest
// route between two locations, builds the barely connected network (the
// cheapest set of roads that keeps every location reachable) and compares
// the two by construction material and route length.
//
// The module is organized as small packages, each with one job:
//
//	core/       Road, Adjacency and RoadMap types
//	unionfind/  disjoint-set forest with rank and path compression
//	dijkstra/   shortest route with (distance, road ID) tie-breaking
//	kruskal/    barely connected network over case-insensitively indexed locations
//	bfs/        reachability and connected components
//	analysis/   material and route ratios
//	report/     report sections and their text rendering
//	pipeline/   the five analysis stages wired together
//	parser/     TAB-separated input reader
//	builder/    deterministic random road maps for tests and benchmarks
//	config/     YAML/TOML run configuration
//	cmd/roadmap command-line entry point
//
// Quick start:
//
//	lines, _ := parser.ReadFile("map.txt")
//	m, _ := parser.Parse(lines)
//	res := pipeline.Run(m)
//	fmt.Println(res.Report.String())
package roadmap
