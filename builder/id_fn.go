package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a location name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// LocationIDFn returns "L" + decimal index, e.g. 0→"L0", 42→"L42".
func LocationIDFn(idx int) string {
	return "L" + strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the "Excel-style" column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
