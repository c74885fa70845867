// Package sequence holds the fixed Recaman table drawn by the visualizer.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Values is the first 66 terms of the Recaman sequence. It is never mutated.
var Values = [...]int{
	0, 1, 3, 6, 2, 7, 13, 20, 12, 21, 11, 22, 10, 23, 9, 24, 8, 25, 43, 62,
	42, 63, 41, 18, 42, 17, 43, 16, 44, 15, 45, 14, 46, 79, 113, 78, 114, 77, 39, 78, 38,
	79, 37, 80, 36, 81, 35, 82, 34, 83, 33, 84, 32, 85, 31, 86, 30, 87, 29, 88, 28, 89, 27, 90, 26, 91,
}

// Len returns the number of terms in the table.
func Len() int { return len(Values) }

// MaxLimit is the highest valid limit, i.e. the last index of the table.
func MaxLimit() int { return len(Values) - 1 }

// Scaled returns a fresh copy of the table in drawing units.
func Scaled(scale float64) []float64 {
	out := make([]float64, len(Values))
	for i, v := range Values {
		out[i] = float64(v) * scale
	}
	return out
}

// Clamp bounds n to [0, MaxLimit()].
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxLimit() {
		return MaxLimit()
	}
	return n
}

// ParseLimit coerces control text (slider value, flag) into a clamped limit.
func ParseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q: %w", s, err)
	}
	return Clamp(n), nil
}
