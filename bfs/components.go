package bfs

import (
	"errors"

	"github.com/katalvlaran/roadmap/core"
)

// Components partitions locations into the connected components of adj.
//
// Components are ordered by their first member in locations, and members
// appear in BFS visit order. A location with no roads in adj forms a
// component of its own. opts are passed to every BFS; a cancelled context
// stops the partition and its error is returned.
//
// Complexity: O(L + R).
func Components(adj core.Adjacency, locations []string, opts ...Option) ([][]string, error) {
	seen := make(map[string]bool, len(locations))
	var comps [][]string
	for _, loc := range locations {
		if seen[loc] {
			continue
		}
		res, err := BFS(adj, loc, opts...)
		if errors.Is(err, ErrStartNotFound) {
			// Isolated location: no roads in adj.
			seen[loc] = true
			comps = append(comps, []string{loc})
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, member := range res.Order {
			seen[member] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// Connected reports whether every location lies in one component.
// An empty location list is trivially connected.
func Connected(adj core.Adjacency, locations []string) bool {
	comps, _ := Components(adj, locations)

	return len(comps) <= 1
}
