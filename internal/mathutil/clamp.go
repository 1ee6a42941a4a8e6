// Package mathutil holds small generic numeric helpers shared across the
// conversion pipeline.
package mathutil

import "golang.org/x/exp/constraints"

// Clamp returns f clamped to the range [low, high]. Works for any ordered
// numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
