package builder

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed        = int64(1)
	defaultMinDistance = int64(1)
	defaultMaxDistance = int64(100)
)

// builderConfig aggregates all knobs used by RandomRoads.
// It is passed by value (immutable to callers).
type builderConfig struct {
	// Location name strategy: index → name.
	idFn IDFn
	// RNG for stochastic choices; always non-nil after resolution.
	rng *rand.Rand
	// Inclusive distance range for generated roads.
	minDistance int64
	maxDistance int64
}

// BuilderOption configures builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the location naming function. nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithSeed freezes the RNG with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned RNG. nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithDistanceRange sets the inclusive range road distances are drawn from.
// The range is validated by RandomRoads (ErrInvalidRange).
func WithDistanceRange(lo, hi int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.minDistance = lo
		cfg.maxDistance = hi
	}
}

// newBuilderConfig applies opts over deterministic defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        LocationIDFn,
		rng:         rand.New(rand.NewSource(defaultSeed)),
		minDistance: defaultMinDistance,
		maxDistance: defaultMaxDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// distance draws one road distance in [minDistance, maxDistance].
func (cfg builderConfig) distance() int64 {
	if cfg.maxDistance == cfg.minDistance {
		return cfg.minDistance
	}

	return cfg.minDistance + cfg.rng.Int63n(cfg.maxDistance-cfg.minDistance+1)
}
