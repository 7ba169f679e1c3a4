package core

// Adjacency maps a location to the roads incident to it, in the order the
// roads were added. A road appears in the list of each of its endpoints;
// a self-loop therefore appears twice in the same list.
type Adjacency map[string][]Road

// NewAdjacency builds an Adjacency from roads, preserving their order.
//
// Complexity: O(R). Memory: O(R).
func NewAdjacency(roads []Road) Adjacency {
	adj := make(Adjacency)
	for _, r := range roads {
		adj.Add(r)
	}

	return adj
}

// Add appends r to the lists of both of its endpoints.
func (a Adjacency) Add(r Road) {
	a[r.From] = append(a[r.From], r)
	a[r.To] = append(a[r.To], r)
}

// Roads returns the roads incident to loc, or nil if loc has none.
// The returned slice must not be modified.
func (a Adjacency) Roads(loc string) []Road {
	return a[loc]
}

// Total sums Distance over every list occurrence in a.
//
// Every road is listed under both endpoints, so the result is twice the
// network length. Ratios of two totals are unaffected; absolute values
// are double-counted.
//
// Complexity: O(R).
func (a Adjacency) Total() int64 {
	var total int64
	for _, roads := range a {
		total += TotalDistance(roads)
	}

	return total
}
