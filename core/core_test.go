package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/core"
)

// triangle returns the A/B/C map used across packages:
// A-B(5,#1), B-C(5,#2), A-C(20,#3).
func triangle() []core.Road {
	return []core.Road{
		{ID: 1, Distance: 5, From: "A", To: "B"},
		{ID: 2, Distance: 5, From: "B", To: "C"},
		{ID: 3, Distance: 20, From: "A", To: "C"},
	}
}

func TestRoad_Less(t *testing.T) {
	short := core.Road{ID: 9, Distance: 1}
	long := core.Road{ID: 1, Distance: 2}
	assert.True(t, short.Less(long), "smaller distance wins regardless of ID")
	assert.False(t, long.Less(short))

	a := core.Road{ID: 1, Distance: 5}
	b := core.Road{ID: 2, Distance: 5}
	assert.True(t, a.Less(b), "equal distance falls back to ID")
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a), "Less must be irreflexive")
}

func TestRoad_Other(t *testing.T) {
	r := core.Road{ID: 1, Distance: 3, From: "X", To: "Y"}
	assert.Equal(t, "Y", r.Other("X"))
	assert.Equal(t, "X", r.Other("Y"))

	loop := core.Road{ID: 2, Distance: 3, From: "Z", To: "Z"}
	assert.Equal(t, "Z", loop.Other("Z"))
}

func TestRoad_String(t *testing.T) {
	r := core.Road{ID: 42, Distance: 17, From: "Ankara", To: "Konya"}
	assert.Equal(t, "Ankara\tKonya\t17\t42", r.String())
}

func TestSortRoads(t *testing.T) {
	roads := []core.Road{
		{ID: 3, Distance: 5},
		{ID: 1, Distance: 9},
		{ID: 2, Distance: 5},
		{ID: 0, Distance: 1},
	}
	sorted := core.SortRoads(roads)

	ids := make([]int, len(sorted))
	for i, r := range sorted {
		ids[i] = r.ID
	}
	assert.Equal(t, []int{0, 2, 3, 1}, ids)
	assert.Equal(t, 3, roads[0].ID, "input slice must not be reordered")
}

func TestNewAdjacency_InsertionOrder(t *testing.T) {
	adj := core.NewAdjacency(triangle())

	require.Len(t, adj.Roads("A"), 2)
	assert.Equal(t, 1, adj.Roads("A")[0].ID)
	assert.Equal(t, 3, adj.Roads("A")[1].ID)

	require.Len(t, adj.Roads("C"), 2)
	assert.Equal(t, 2, adj.Roads("C")[0].ID)
	assert.Equal(t, 3, adj.Roads("C")[1].ID)

	assert.Nil(t, adj.Roads("missing"))
}

func TestAdjacency_TotalDoubleCounts(t *testing.T) {
	adj := core.NewAdjacency(triangle())
	assert.Equal(t, int64(60), adj.Total(), "each road counted once per endpoint")
	assert.Equal(t, int64(30), core.TotalDistance(triangle()))

	loop := core.NewAdjacency([]core.Road{{ID: 1, Distance: 4, From: "L", To: "L"}})
	assert.Len(t, loop.Roads("L"), 2)
	assert.Equal(t, int64(8), loop.Total())
}

func TestNewRoadMap(t *testing.T) {
	m := core.NewRoadMap("A", "C", triangle())

	assert.Equal(t, "A", m.Start)
	assert.Equal(t, "C", m.End)
	assert.Equal(t, triangle(), m.Roads)
	assert.Equal(t, []string{"A", "B", "C"}, m.Locations)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.HasLocation("B"))
	assert.False(t, m.HasLocation("D"))
	assert.Len(t, m.Adjacency, 3)
}

func TestNewRoadMap_AcceptsOddInput(t *testing.T) {
	roads := []core.Road{
		{ID: 1, Distance: 2, From: "A", To: "B"},
		{ID: 1, Distance: 2, From: "B", To: "A"},  // duplicate ID
		{ID: 2, Distance: -1, From: "B", To: "C"}, // negative distance
		{ID: 3, Distance: 0, From: "C", To: "C"},  // self-loop
	}
	m := core.NewRoadMap("Z", "A", roads)

	assert.Len(t, m.Roads, 4)
	assert.Equal(t, []string{"A", "B", "C"}, m.Locations)
	assert.False(t, m.HasLocation("Z"), "start without roads is not a location")
}
