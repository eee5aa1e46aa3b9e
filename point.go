// Package raster is a software 2D rasterizer: it turns vector drawing
// commands (filled rectangles, convex polygons, paths with lines and
// Bézier curves, colored/textured triangle meshes, tessellated quads)
// into pixel writes on a caller-owned in-memory bitmap.
//
// The package does no anti-aliasing, stroking, text layout, or color
// management, and it clips only to an axis-aligned device rectangle.
// It is meant to sit underneath a window/event loop, file I/O, and
// demo code that this package does not provide.
package raster

import "math"

// Point is a location in user or device space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle with float edges.
//
// A Rect is empty iff L >= R or T >= B; callers should not rely on any
// particular representation for an empty rect beyond that test.
type Rect struct {
	L, T, R, B float64
}

// RectLTRB builds a Rect from its four edges.
func RectLTRB(l, t, r, b float64) Rect {
	return Rect{L: l, T: t, R: r, B: b}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.L >= r.R || r.T >= r.B
}

// Width returns R-L.
func (r Rect) Width() float64 { return r.R - r.L }

// Height returns B-T.
func (r Rect) Height() float64 { return r.B - r.T }

// Corners returns the four corners of r in clockwise order starting at
// the top-left: TL, TR, BR, BL.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.L, r.T}, {r.R, r.T}, {r.R, r.B}, {r.L, r.B},
	}
}

// Contains reports whether p lies within r under the half-open
// convention (L,T inclusive; R,B exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.L && p.X < r.R && p.Y >= r.T && p.Y < r.B
}

// approxEqual reports whether a and b differ by no more than eps. It is
// the package's standalone tolerance helper for float comparisons in
// tests, in place of testify's require.InDelta (the teacher repo has no
// such dependency, so tests call this directly).
func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
