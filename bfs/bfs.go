package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadmap/core"
)

// queueItem pairs a location with its BFS depth.
type queueItem struct {
	loc   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     core.Adjacency
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search over adj starting from start. Roads are
// followed in adjacency (insertion) order, so the result is deterministic.
// Returns ErrStartNotFound if start has no roads, or the context error on
// cancellation.
func BFS(adj core.Adjacency, start string, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := adj[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		visited: make(map[string]bool, len(adj)),
		res: &BFSResult{
			Start:  start,
			Order:  make([]string, 0, len(adj)),
			Depth:  make(map[string]int, len(adj)),
			Parent: make(map[string]core.Road, len(adj)),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks loc visited at depth d and adds it to the queue.
func (w *walker) enqueue(loc string, d int) {
	w.visited[loc] = true
	w.res.Depth[loc] = d
	w.queue = append(w.queue, queueItem{loc: loc, depth: d})
}

// loop processes the queue until it is empty or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.loc)

		next := item.depth + 1
		for _, road := range w.adj.Roads(item.loc) {
			nbr := road.Other(item.loc)
			if w.visited[nbr] {
				continue
			}
			w.res.Parent[nbr] = road
			w.enqueue(nbr, next)
		}
	}

	return nil
}
