package sequence

import "math"

// Wrap maps an unbounded 1-based requested index onto [1, n], cycling in
// both directions. Wrap(0, n) == n and Wrap(n+1, n) == 1.
func Wrap(requested, n int) int {
	if n <= 0 {
		return 1
	}
	return ((requested-1)%n+n)%n + 1
}

// Clamp maps a normalized progress value onto a 0-based index in [0, n-1].
// Progress outside [0, 1] is saturated first; NaN maps to 0.
func Clamp(progress float64, n int) int {
	if n <= 0 {
		return 0
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return min(n-1, int(math.Floor(progress*float64(n))))
}
