package builder

import "errors"

// ErrTooFewLocations indicates n < 1.
var ErrTooFewLocations = errors.New("builder: too few locations")

// ErrTooFewRoads indicates m < n-1, too few roads to keep the chain connected.
var ErrTooFewRoads = errors.New("builder: too few roads for a connected map")

// ErrInvalidRange indicates a distance range with lo < 0 or hi < lo.
var ErrInvalidRange = errors.New("builder: invalid distance range")
