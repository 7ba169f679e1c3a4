package kruskal

import (
	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/unionfind"
)

// BuildSpanningSubgraph returns the roads of the barely connected network,
// in the order they were accepted.
//
// Steps:
//  1. Sort a copy of roads by (Distance, ID).
//  2. Index locations case-insensitively (IndexLocations). Endpoints absent
//     from locations are indexed after them so every lookup succeeds.
//  3. For each sorted road, if its endpoints are in different sets, union
//     them and accept the road.
//  4. Stop once len(locations)-1 roads are accepted, or when roads run out.
//
// Self-loops never join two sets and are therefore never accepted.
//
// Complexity: O(R log R + R·α(L)). Memory: O(L + R).
func BuildSpanningSubgraph(roads []core.Road, locations []string) []core.Road {
	// 1. Canonical order; the caller's slice stays untouched.
	sorted := core.SortRoads(roads)

	// 2. Dense indices for union-find bookkeeping.
	index := IndexLocations(locations)
	for _, r := range sorted {
		for _, loc := range [2]string{r.From, r.To} {
			if _, ok := index[loc]; !ok {
				index[loc] = len(index)
			}
		}
	}
	uf := unionfind.New(len(index))

	// 3. Greedy acceptance.
	target := len(locations) - 1
	accepted := make([]core.Road, 0, max(target, 0))
	for _, r := range sorted {
		u, v := index[r.From], index[r.To]
		if uf.Find(u) == uf.Find(v) {
			continue
		}
		uf.Union(u, v)
		accepted = append(accepted, r)

		// 4. A full spanning tree cannot grow further.
		if len(accepted) == target {
			break
		}
	}

	return accepted
}
