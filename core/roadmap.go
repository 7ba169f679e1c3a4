package core

// RoadMap holds one session's road network: the designated Start and End
// locations, every road in input order, the derived location set and the
// full adjacency structure. It is built once and never mutated afterwards.
type RoadMap struct {
	// Start is the location the route begins at.
	Start string

	// End is the location the route ends at.
	End string

	// Roads lists every road in the order it was given.
	Roads []Road

	// Locations lists every road endpoint once, in first-seen order.
	Locations []string

	// Adjacency indexes Roads by endpoint.
	Adjacency Adjacency

	seen map[string]struct{}
}

// NewRoadMap builds a RoadMap from start, end and roads.
// Each road is inserted into both endpoints' adjacency lists.
// Start and End are not required to be road endpoints; a location without
// roads is simply unreachable.
//
// Complexity: O(R). Memory: O(L + R).
func NewRoadMap(start, end string, roads []Road) *RoadMap {
	m := &RoadMap{
		Start:     start,
		End:       end,
		Roads:     make([]Road, 0, len(roads)),
		Locations: make([]string, 0, 2*len(roads)),
		Adjacency: make(Adjacency, 2*len(roads)),
		seen:      make(map[string]struct{}, 2*len(roads)),
	}
	for _, r := range roads {
		m.addRoad(r)
	}

	return m
}

// addRoad records r and its endpoints.
func (m *RoadMap) addRoad(r Road) {
	m.Roads = append(m.Roads, r)
	m.addLocation(r.From)
	m.addLocation(r.To)
	m.Adjacency.Add(r)
}

func (m *RoadMap) addLocation(loc string) {
	if _, ok := m.seen[loc]; ok {
		return
	}
	m.seen[loc] = struct{}{}
	m.Locations = append(m.Locations, loc)
}

// HasLocation reports whether loc is an endpoint of at least one road.
func (m *RoadMap) HasLocation(loc string) bool {
	_, ok := m.seen[loc]
	return ok
}

// Len returns the number of distinct locations.
func (m *RoadMap) Len() int {
	return len(m.Locations)
}
