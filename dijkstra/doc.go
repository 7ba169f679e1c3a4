// Package dijkstra finds the shortest route between two locations of a
// road map using a label-setting Dijkstra search.
//
// Overview:
//
//   - FindPath searches an explicit core.Adjacency, so the same finder runs
//     over the full map and over any reduced map (e.g. a spanning subgraph).
//   - The priority queue orders entries by (cumulative distance, road ID).
//     Equal distances are therefore resolved by the lower road ID, which
//     makes the chosen route deterministic.
//   - The queue is seeded with a synthetic zero-distance self-road at the
//     start (ID -1). It only primes the loop and never appears in a Path.
//   - Stale queue entries are skipped on pop ("lazy decrease-key").
//   - The search stops as soon as the end location is finalized.
//
// Results:
//
//	Path.Roads     – roads from start to end.
//	Path.Discovery – the same roads from end back to start, the order in
//	                 which predecessor links are walked (used by reports).
//	Path.Distance  – sum of the roads' distances.
//
// An unreachable end, or end == start, yields an empty Path with Distance 0.
// Neither is an error.
//
// Complexity:
//
//   - Time:  O((L + R) log R), L = |locations|, R = |roads|.
//   - Space: O(L + R), dominated by the lazy queue.
//
// Negative distances are not rejected; the search then behaves however the
// generic algorithm behaves on them.
package dijkstra
