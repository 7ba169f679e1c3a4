package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/roadmap/bfs"
	"github.com/katalvlaran/roadmap/core"
)

// checkConnectivity logs warnings for maps the analysis will handle but
// that are probably not what the author meant: a start or end without
// roads, several components, or an end that cannot be reached.
// Only a cancelled ctx is returned as an error.
func checkConnectivity(ctx context.Context, logger *slog.Logger, m *core.RoadMap) error {
	for _, loc := range []string{m.Start, m.End} {
		if !m.HasLocation(loc) {
			logger.Warn("location has no roads", "location", loc)
		}
	}

	comps, err := bfs.Components(m.Adjacency, m.Locations, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	if len(comps) > 1 {
		logger.Warn("road map is disconnected; the barely connected map will be a forest",
			"components", len(comps))
	}

	if m.Start == m.End {
		return nil
	}
	res, err := bfs.BFS(m.Adjacency, m.Start, bfs.WithContext(ctx))
	switch {
	case errors.Is(err, bfs.ErrStartNotFound):
		logger.Warn("no route between start and end", "start", m.Start, "end", m.End)
		return nil
	case err != nil:
		return err
	}

	hops, err := res.PathTo(m.End)
	if errors.Is(err, bfs.ErrNoPath) {
		logger.Warn("no route between start and end", "start", m.Start, "end", m.End)
		return nil
	}
	logger.Debug("end reachable", "fewest_roads", len(hops))

	return err
}
