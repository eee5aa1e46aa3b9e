package raster

import "math"

// ChopQuadAt subdivides the quadratic Bézier p0,p1,p2 at parameter t via
// De Casteljau's algorithm, writing the 5 output points (two sub-curves
// sharing their middle point) to dst, which must have length >= 5.
// Grounded on 9fans.net/go/draw/bezier.go's bpts1 recursive-midpoint
// construction, specialized to a single split at an arbitrary t instead
// of always-bisection.
func ChopQuadAt(p0, p1, p2 Point, t float64, dst []Point) {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	abc := ab.Lerp(bc, t)
	dst[0] = p0
	dst[1] = ab
	dst[2] = abc
	dst[3] = bc
	dst[4] = p2
}

// ChopCubicAt subdivides the cubic Bézier p0,p1,p2,p3 at parameter t,
// writing the 7 output points to dst, which must have length >= 7.
func ChopCubicAt(p0, p1, p2, p3 Point, t float64, dst []Point) {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	cd := p2.Lerp(p3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	abcd := abc.Lerp(bcd, t)
	dst[0] = p0
	dst[1] = ab
	dst[2] = abc
	dst[3] = abcd
	dst[4] = bcd
	dst[5] = cd
	dst[6] = p3
}

// quadFlattenSteps returns the number of line segments k a quadratic
// Bézier should be approximated with, per spec.md §4.4:
// e = (-p0+2p1-p2)*0.25, k = ceil(sqrt(4*|e|)). k is never less than 1,
// so a degenerate (zero-length) curve still produces a single chord.
func quadFlattenSteps(p0, p1, p2 Point) int {
	ex := (-p0.X + 2*p1.X - p2.X) * 0.25
	ey := (-p0.Y + 2*p1.Y - p2.Y) * 0.25
	e := math.Hypot(ex, ey)
	k := int(math.Ceil(math.Sqrt(4 * e)))
	if k < 1 {
		k = 1
	}
	return k
}

// cubicFlattenSteps returns the number of line segments for a cubic
// Bézier, per spec.md §4.4: p = -p0+2p1-p2, q = -p1+2p2-p3,
// e = (max(|px|,|qx|), max(|py|,|qy|)), k = ceil(sqrt(3*|e|)).
func cubicFlattenSteps(p0, p1, p2, p3 Point) int {
	px := -p0.X + 2*p1.X - p2.X
	py := -p0.Y + 2*p1.Y - p2.Y
	qx := -p1.X + 2*p2.X - p3.X
	qy := -p1.Y + 2*p2.Y - p3.Y
	ex := math.Max(math.Abs(px), math.Abs(qx))
	ey := math.Max(math.Abs(py), math.Abs(qy))
	e := math.Hypot(ex, ey)
	k := int(math.Ceil(math.Sqrt(3 * e)))
	if k < 1 {
		k = 1
	}
	return k
}

// flattenQuad evaluates the quadratic Bézier p0,p1,p2 at k-1 interior
// parameter values t=i/k and calls emit with each consecutive chord,
// including the final chord to p2. Grounded on spec.md §4.4; the
// reconstructed polyline's first and last points are always exactly p0
// and p2 (invariant 7 in spec.md §8), since the first chord starts at p0
// itself and the last chord ends at p2 itself; only interior points are
// evaluated.
func flattenQuad(p0, p1, p2 Point, emit func(a, b Point)) {
	k := quadFlattenSteps(p0, p1, p2)
	prev := p0
	for i := 1; i < k; i++ {
		t := float64(i) / float64(k)
		pt := evalQuad(p0, p1, p2, t)
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p2)
}

// flattenCubic is the cubic analogue of flattenQuad.
func flattenCubic(p0, p1, p2, p3 Point, emit func(a, b Point)) {
	k := cubicFlattenSteps(p0, p1, p2, p3)
	prev := p0
	for i := 1; i < k; i++ {
		t := float64(i) / float64(k)
		pt := evalCubic(p0, p1, p2, p3, t)
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	return ab.Lerp(bc, t)
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	cd := p2.Lerp(p3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}
