// Package kruskal builds the "barely connected" road network: the
// minimum-total-distance subset of roads that keeps every location as
// connected as the full map is (a minimum spanning tree, or a spanning
// forest when the map itself is disconnected).
//
// Strategy:
//
//	Sort roads by core.Road.Less (distance, then ID), then walk them from
//	shortest to longest. A disjoint-set (package unionfind) tracks which
//	locations are already joined; a road is accepted only when its
//	endpoints lie in different sets. The walk stops once |L|-1 roads are
//	accepted or the roads run out.
//
// Determinism:
//
//   - Road order is fully defined by (Distance, ID); equal-distance roads
//     are accepted lowest ID first.
//   - Locations are indexed by case-insensitive lexicographic order
//     (IndexLocations). The indexing only drives union-find bookkeeping;
//     it never changes which roads are emitted or their order.
//
// A disconnected map is not an error: the result simply holds fewer than
// |L|-1 roads.
//
// Complexity: O(R log R + R·α(L)) time, O(L + R) memory.
package kruskal
