package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadmap/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start location has no roads.
	ErrStartNotFound = errors.New("bfs: start location not found")

	// ErrNoPath is returned by PathTo for a location that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns BFSOptions bound to context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: locations visited, in visit sequence.
//   - Depth: hops from the start.
//   - Parent: the road through which each location was first reached.
type BFSResult struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]core.Road
}

// PathTo reconstructs the fewest-hops road sequence from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]core.Road, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	var path []core.Road
	for cur := dest; cur != r.Start; {
		road := r.Parent[cur]
		path = append(path, road)
		cur = road.Other(cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
