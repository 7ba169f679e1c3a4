// Package core provides the in-memory road map model shared by every
// algorithm in this module.
//
// The map G = (L, R) is an undirected, weighted multigraph:
//
//   - L is the set of named locations, derived from road endpoints.
//   - R is the ordered list of roads, each carrying an integer ID and a
//     non-negative integer Distance.
//
// Types:
//
//	Road      – immutable {ID, Distance, From, To} value.
//	Adjacency – location → incident roads, in insertion order.
//	RoadMap   – Start/End pair, Roads, Locations and the full Adjacency.
//
// Ordering:
//
//	Roads compare by Distance ascending, ties by ID ascending (Road.Less).
//	This is the single ordering used by the shortest-path queue and the
//	spanning-subgraph builder; results depend on it being reproduced exactly.
//
// Determinism:
//
//   - Locations are kept in first-seen order, never in map order.
//   - Adjacency lists follow the order roads were added, not sorted order.
//
// No validation happens here: duplicate IDs, negative distances and self-loops
// are stored as given. Parsing guarantees are the caller's responsibility
// (see package parser).
//
// Quick ASCII example:
//
//	    A───5───B
//	     \      │
//	      20    5
//	        \   │
//	          C─┘
//
// is built with:
//
//	m := core.NewRoadMap("A", "C", []core.Road{
//	    {ID: 1, Distance: 5, From: "A", To: "B"},
//	    {ID: 2, Distance: 5, From: "B", To: "C"},
//	    {ID: 3, Distance: 20, From: "A", To: "C"},
//	})
package core
