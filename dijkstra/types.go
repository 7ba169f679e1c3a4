package dijkstra

import (
	"github.com/katalvlaran/roadmap/core"
)

// seedID marks the synthetic self-road that primes the queue at the start.
const seedID = -1

// Path is the outcome of a single FindPath call.
type Path struct {
	// Roads lists the route from start to end.
	Roads []core.Road

	// Discovery lists the same roads from end back to start.
	Discovery []core.Road

	// Distance is the total length of the route.
	Distance int64
}

// Empty reports whether no route was found (or start == end).
func (p Path) Empty() bool {
	return len(p.Roads) == 0
}

// queueItem is a priority-queue entry: the location reached, the cumulative
// distance to it, and the ID of the road that reached it.
type queueItem struct {
	to     string
	dist   int64
	roadID int
}

// itemPQ is a min-heap of queueItem ordered by (dist, roadID).
type itemPQ []queueItem

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by cumulative distance, ties by road ID.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].roadID < pq[j].roadID
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
