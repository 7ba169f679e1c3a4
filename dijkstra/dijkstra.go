package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/roadmap/core"
)

// FindPath computes the shortest route from start to end over adj.
//
// locations lists every location whose best-known distance starts at
// "infinity"; start is always set to 0 even when it is not listed.
// A location missing from both is treated as infinitely far.
//
// Steps:
//  1. dist[l] = +∞ for every l in locations, dist[start] = 0.
//  2. Push the seed entry {start, 0, -1}.
//  3. Pop the minimum (dist, roadID); skip already finalized locations.
//  4. Finalize the location; stop if it is end.
//  5. Relax every incident road, recording the road as predecessor and
//     pushing {next, newDist, road.ID} on strict improvement.
//  6. Walk predecessors back from end to rebuild the route.
//
// Complexity: O((L + R) log R) time, O(L + R) memory.
func FindPath(adj core.Adjacency, locations []string, start, end string) Path {
	r := &runner{
		adj:     adj,
		start:   start,
		end:     end,
		dist:    make(map[string]int64, len(locations)+1),
		prev:    make(map[string]core.Road, len(locations)),
		visited: make(map[string]bool, len(locations)+1),
		pq:      make(itemPQ, 0, len(locations)+1),
	}
	r.init(locations)
	r.process()

	return r.path()
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	adj     core.Adjacency       // roads to search; read-only.
	start   string               // source location.
	end     string               // target location.
	dist    map[string]int64     // best-known distance per location.
	prev    map[string]core.Road // road that last improved each location.
	visited map[string]bool      // finalized locations.
	pq      itemPQ               // lazy min-heap of queue entries.
}

// init sets every distance to +∞, the start to 0, and seeds the heap.
func (r *runner) init(locations []string) {
	for _, loc := range locations {
		r.dist[loc] = math.MaxInt64
	}
	r.dist[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, queueItem{to: r.start, dist: 0, roadID: seedID})
}

// process pops entries until the heap is empty or end is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(queueItem)
		u := item.to

		// Stale entry for a finalized location.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.end {
			return
		}
		r.relax(u)
	}
}

// relax examines each road incident to u and improves its far endpoint.
// Assumes dist[u] is final.
func (r *runner) relax(u string) {
	for _, road := range r.adj.Roads(u) {
		v := road.Other(u)
		newDist := r.dist[u] + road.Distance

		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.distance(v) {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = road

		// The entry carries the genuine road ID so ties resolve on real roads.
		heap.Push(&r.pq, queueItem{to: v, dist: newDist, roadID: road.ID})
	}
}

// distance returns dist[v], or +∞ for locations never initialized.
func (r *runner) distance(v string) int64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.MaxInt64
}

// path rebuilds the route by walking predecessors from end.
// The walk stops at the first location without a predecessor: the start,
// or end itself when it was never reached.
func (r *runner) path() Path {
	var (
		discovery []core.Road
		total     int64
	)
	seen := make(map[string]bool, len(r.prev))
	for step := r.end; !seen[step]; {
		road, ok := r.prev[step]
		if !ok {
			break
		}
		seen[step] = true
		discovery = append(discovery, road)
		total += road.Distance
		step = road.Other(step)
	}

	roads := make([]core.Road, len(discovery))
	for i, road := range discovery {
		roads[len(discovery)-1-i] = road
	}

	return Path{Roads: roads, Discovery: discovery, Distance: total}
}
