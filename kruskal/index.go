package kruskal

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// IndexLocations assigns each location a dense index in [0, len(locations))
// following case-insensitive lexicographic order. Names equal under case
// folding keep a byte-order tie-break so the index never depends on input
// order. Duplicate names get a single index.
//
// Complexity: O(L log L).
func IndexLocations(locations []string) map[string]int {
	sorted := make([]string, 0, len(locations))
	index := make(map[string]int, len(locations))
	for _, loc := range locations {
		if _, dup := index[loc]; dup {
			continue
		}
		index[loc] = 0
		sorted = append(sorted, loc)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if c := compareFold(sorted[i], sorted[j]); c != 0 {
			return c < 0
		}

		return sorted[i] < sorted[j]
	})
	for i, loc := range sorted {
		index[loc] = i
	}

	return index
}

// compareFold compares a and b rune by rune, ignoring case: two runes that
// differ are compared after upper-casing, then after lower-casing the
// upper-cased forms. Shorter strings sort first when one is a prefix.
func compareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]
		if ra == rb {
			continue
		}
		ua, ub := unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ua == ub {
			continue
		}
		la, lb := unicode.ToLower(ua), unicode.ToLower(ub)
		if la != lb {
			return int(la) - int(lb)
		}
	}

	return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
}
