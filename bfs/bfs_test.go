package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/bfs"
	"github.com/katalvlaran/roadmap/core"
)

// chain returns A-B-C-D plus an isolated island X-Y.
func chain() *core.RoadMap {
	return core.NewRoadMap("A", "D", []core.Road{
		{ID: 1, Distance: 9, From: "A", To: "B"},
		{ID: 2, Distance: 9, From: "C", To: "B"},
		{ID: 3, Distance: 9, From: "C", To: "D"},
		{ID: 4, Distance: 1, From: "X", To: "Y"},
	})
}

func TestBFS_OrderDepthParent(t *testing.T) {
	m := chain()
	res, err := bfs.BFS(m.Adjacency, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 3, res.Depth["D"])
	assert.Equal(t, 2, res.Parent["C"].ID)
	_, reachedX := res.Depth["X"]
	assert.False(t, reachedX)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, 1, path[0].ID)
	assert.Equal(t, 3, path[2].ID)

	_, err = res.PathTo("X")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_Errors(t *testing.T) {
	m := chain()

	_, err := bfs.BFS(m.Adjacency, "Nowhere")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(m.Adjacency, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := bfs.BFS(m.Adjacency, "A", bfs.WithContext(nil))
	require.NoError(t, err, "nil context falls back to Background")
	assert.Len(t, res.Order, 4)
}

func TestComponents(t *testing.T) {
	m := chain()
	comps, err := bfs.Components(m.Adjacency, append(m.Locations, "Lonely"))
	require.NoError(t, err)

	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A", "B", "C", "D"}, comps[0])
	assert.Equal(t, []string{"X", "Y"}, comps[1])
	assert.Equal(t, []string{"Lonely"}, comps[2])

	assert.False(t, bfs.Connected(m.Adjacency, m.Locations))
	assert.True(t, bfs.Connected(m.Adjacency, []string{"A", "D"}))
	assert.True(t, bfs.Connected(core.Adjacency{}, nil))
}

func TestComponents_Cancelled(t *testing.T) {
	m := chain()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comps, err := bfs.Components(m.Adjacency, m.Locations, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, comps)

	// Isolated locations never start a search, so they still partition.
	comps, err = bfs.Components(m.Adjacency, []string{"Lonely"}, bfs.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Lonely"}}, comps)
}
