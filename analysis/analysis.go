// Package analysis compares the full road network with its barely
// connected reduction.
//
// Two ratios are produced:
//
//	Material – reduced network total / full network total.
//	Route    – reduced route distance / full route distance.
//
// Network totals come from core.Adjacency.Total, which counts every road
// once per endpoint. Both sides of the material ratio are doubled the same
// way, so the ratio is exact; the absolute totals in Totals are doubled.
//
// Division uses float64 and is never guarded: a zero denominator (empty
// network, unreachable end) yields NaN or ±Inf, and that value is kept.
package analysis

import (
	"github.com/katalvlaran/roadmap/core"
)

// Totals holds the four inputs of an analysis.
type Totals struct {
	// FullNetwork is the double-counted length of the full map.
	FullNetwork int64

	// ReducedNetwork is the double-counted length of the barely connected map.
	ReducedNetwork int64

	// FullRoute is the shortest route distance on the full map.
	FullRoute int64

	// ReducedRoute is the shortest route distance on the barely connected map.
	ReducedRoute int64
}

// Ratios is the outcome of an analysis.
type Ratios struct {
	// Material is ReducedNetwork / FullNetwork.
	Material float64

	// Route is ReducedRoute / FullRoute.
	Route float64
}

// Analyze computes Ratios from the full and reduced adjacency structures
// and the two route distances.
//
// Complexity: O(R).
func Analyze(full, reduced core.Adjacency, fullRoute, reducedRoute int64) Ratios {
	return Compute(Totals{
		FullNetwork:    full.Total(),
		ReducedNetwork: reduced.Total(),
		FullRoute:      fullRoute,
		ReducedRoute:   reducedRoute,
	})
}

// Compute derives Ratios from precomputed Totals.
func Compute(t Totals) Ratios {
	return Ratios{
		Material: ratio(t.ReducedNetwork, t.FullNetwork),
		Route:    ratio(t.ReducedRoute, t.FullRoute),
	}
}

// ratio divides as float64; zero denominators propagate NaN/±Inf.
func ratio(num, den int64) float64 {
	return float64(num) / float64(den)
}
