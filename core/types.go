package core

import (
	"fmt"
	"sort"
)

// Road represents an undirected, weighted connection between two locations.
//
// From and To are not semantically ordered; they are preserved as given
// so that reports print roads exactly as they were read.
type Road struct {
	// ID uniquely identifies this road within a session.
	ID int

	// Distance is the road length in kilometres.
	Distance int64

	// From is the first endpoint as given in the input.
	From string

	// To is the second endpoint as given in the input.
	To string
}

// Less reports whether r sorts before o: Distance ascending, then ID ascending.
//
// Complexity: O(1).
func (r Road) Less(o Road) bool {
	if r.Distance != o.Distance {
		return r.Distance < o.Distance
	}

	return r.ID < o.ID
}

// Other returns the endpoint of r opposite to loc.
// If loc equals From the result is To, otherwise From. A self-loop yields loc.
func (r Road) Other(loc string) string {
	if r.From == loc {
		return r.To
	}

	return r.From
}

// String renders the road as "from<TAB>to<TAB>distance<TAB>id",
// the per-road line format used throughout reports and input files.
func (r Road) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d", r.From, r.To, r.Distance, r.ID)
}

// SortRoads returns a copy of roads sorted by Road.Less.
// The input slice is left untouched.
//
// Complexity: O(R log R). Memory: O(R).
func SortRoads(roads []Road) []Road {
	sorted := make([]Road, len(roads))
	copy(sorted, roads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	return sorted
}

// TotalDistance sums the distances of roads.
func TotalDistance(roads []Road) int64 {
	var total int64
	for _, r := range roads {
		total += r.Distance
	}

	return total
}
