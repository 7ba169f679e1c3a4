package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmap/core"
)

const methodRandomRoads = "RandomRoads"

// RandomRoads returns m roads over n locations.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewLocations).
//   - m ≥ n-1 (else ErrTooFewRoads).
//   - 0 ≤ lo ≤ hi for WithDistanceRange (else ErrInvalidRange).
//   - Roads 1..n-1 form the chain idFn(0)-idFn(1)-…-idFn(n-1).
//   - Roads n..m join random distinct pairs (parallel roads allowed).
//     With n == 1 no distinct pair exists, so the extras are self-loops.
//
// Complexity: O(n + m) time and memory.
func RandomRoads(n, m int, opts ...BuilderOption) ([]core.Road, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomRoads, n, ErrTooFewLocations)
	}
	if m < n-1 {
		return nil, fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomRoads, m, n-1, ErrTooFewRoads)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.minDistance < 0 || cfg.maxDistance < cfg.minDistance {
		return nil, fmt.Errorf("%s: range [%d,%d]: %w",
			methodRandomRoads, cfg.minDistance, cfg.maxDistance, ErrInvalidRange)
	}

	names := make([]string, n)
	for i := range names {
		names[i] = cfg.idFn(i)
	}

	roads := make([]core.Road, 0, m)
	next := func(u, v int) {
		roads = append(roads, core.Road{
			ID:       len(roads) + 1,
			Distance: cfg.distance(),
			From:     names[u],
			To:       names[v],
		})
	}

	// 1) Chain for connectivity.
	for i := 1; i < n; i++ {
		next(i-1, i)
	}

	// 2) Extra random roads between distinct locations.
	for len(roads) < m {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n)
		if u == v && n > 1 {
			continue
		}
		next(u, v)
	}

	return roads, nil
}
