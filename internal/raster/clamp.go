package raster

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi]. Used for color-component clamping
// (color.go), as one generic body instead of duplicate float32/float64
// copies. The shader tile-mode code does its own clamping and does not
// call it.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
