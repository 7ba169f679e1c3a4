package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/roadmap/analysis"
	"github.com/katalvlaran/roadmap/core"
)

// Section headers, analysis line prefixes and ratio precision.
const (
	ratioDigits = 2

	headerBarelyConnected = "Roads of Barely Connected Map is:"
	headerAnalysis        = "Analysis:"
	lineMaterial          = "Ratio of Construction Material Usage Between Barely Connected and Original Map: "
	lineRoute             = "Ratio of Fastest Route Between Barely Connected and Original Map: "
)

// RoadLines renders each road as "from<TAB>to<TAB>distance<TAB>id".
func RoadLines(roads []core.Road) []string {
	lines := make([]string, len(roads))
	for i, r := range roads {
		lines[i] = r.String()
	}

	return lines
}

// FastestRoute renders the full-map route. roads are expected in
// end→start discovery order.
func FastestRoute(end, start string, total int64, roads []core.Road) Section {
	return Section{
		Header: fmt.Sprintf("Fastest Route from %s to %s (%d KM):", end, start, total),
		Lines:  RoadLines(roads),
	}
}

// FastestBarelyRoute renders the route on the barely connected map.
func FastestBarelyRoute(end, start string, total int64, roads []core.Road) Section {
	return Section{
		Header: fmt.Sprintf("Fastest Route from %s to %s on Barely Connected Map (%d KM):", end, start, total),
		Lines:  RoadLines(roads),
	}
}

// BarelyConnected renders the spanning roads in acceptance order.
func BarelyConnected(roads []core.Road) Section {
	return Section{Header: headerBarelyConnected, Lines: RoadLines(roads)}
}

// Analysis renders both ratios with two decimals.
func Analysis(r analysis.Ratios) Section {
	return Section{
		Header: headerAnalysis,
		Lines: []string{
			lineMaterial + FormatRatio(r.Material),
			lineRoute + FormatRatio(r.Route),
		},
	}
}

// FormatRatio renders v with two decimals, rounding the shortest decimal
// form of v half away from zero: 1.125 is "1.13" and 0.145 is "0.15".
// Non-finite values are written as "NaN", "Infinity" and "-Infinity".
func FormatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	return decimal.NewFromFloat(v).StringFixed(ratioDigits)
}
