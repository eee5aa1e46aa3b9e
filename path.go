package raster

import "math"

// Verb identifies one path command.
type Verb int

const (
	Move Verb = iota
	Line
	Quad
	Cubic
	Done
)

// circleHandle is the cubic Bézier handle length for approximating a
// quarter circle of the given radius: radius*0.5522847498, per
// spec.md §4.4. Grounded on 9fans.net/go/draw/ellipse.go's use of the
// same magic constant to build circles out of cubic segments.
const circleHandle = 0.5522847498

// Path is an ordered sequence of verbs over a shared point buffer:
// Move starts a contour, Line/Quad/Cubic consume 1/2/3 more points.
// Grounded on gogpu-gg's path.go/path_builder.go parallel verb+point
// arrays, adapted to this package's exact verb set.
type Path struct {
	verbs  []Verb
	points []Point
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt Point) {
	p.verbs = append(p.verbs, Move)
	p.points = append(p.points, pt)
}

// LineTo appends a line from the current point to pt.
func (p *Path) LineTo(pt Point) {
	p.verbs = append(p.verbs, Line)
	p.points = append(p.points, pt)
}

// QuadTo appends a quadratic Bézier through control point c to end pt.
func (p *Path) QuadTo(c, pt Point) {
	p.verbs = append(p.verbs, Quad)
	p.points = append(p.points, c, pt)
}

// CubicTo appends a cubic Bézier through control points c1,c2 to end pt.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.verbs = append(p.verbs, Cubic)
	p.points = append(p.points, c1, c2, pt)
}

// Winding selects contour direction for the add* helpers.
type Winding int

const (
	CW Winding = iota
	CCW
)

// AddRect appends a rectangle contour in the requested winding direction:
// a Move to the top-left corner followed by three Lines. The closing edge
// back to the top-left corner is synthesized by the edger, not stored.
func (p *Path) AddRect(r Rect, w Winding) {
	c := r.Corners() // TL, TR, BR, BL
	p.MoveTo(c[0])
	if w == CW {
		p.LineTo(c[1])
		p.LineTo(c[2])
		p.LineTo(c[3])
	} else {
		p.LineTo(c[3])
		p.LineTo(c[2])
		p.LineTo(c[1])
	}
}

// AddPolygon appends one Move followed by len(pts)-1 Lines.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
}

// AddCircle appends a circle of the given radius centered at c, built
// from four cubic Béziers, per spec.md §4.4.
func (p *Path) AddCircle(c Point, radius float64, w Winding) {
	h := radius * circleHandle
	right := Point{c.X + radius, c.Y}
	top := Point{c.X, c.Y - radius}
	left := Point{c.X - radius, c.Y}
	bottom := Point{c.X, c.Y + radius}

	p.MoveTo(right)
	if w == CCW {
		p.CubicTo(Point{right.X, right.Y - h}, Point{top.X + h, top.Y}, top)
		p.CubicTo(Point{top.X - h, top.Y}, Point{left.X, left.Y - h}, left)
		p.CubicTo(Point{left.X, left.Y + h}, Point{bottom.X - h, bottom.Y}, bottom)
		p.CubicTo(Point{bottom.X + h, bottom.Y}, Point{right.X, right.Y + h}, right)
	} else {
		p.CubicTo(Point{right.X, right.Y + h}, Point{bottom.X + h, bottom.Y}, bottom)
		p.CubicTo(Point{bottom.X - h, bottom.Y}, Point{left.X, left.Y + h}, left)
		p.CubicTo(Point{left.X, left.Y - h}, Point{top.X - h, top.Y}, top)
		p.CubicTo(Point{top.X + h, top.Y}, Point{right.X, right.Y - h}, right)
	}
}

// AddRoundRect appends a rectangle with quarter-circle corners of the
// given radius. Not in spec.md's distillation, but a natural extension
// of addRect/addCircle in the same "verb-emitting helper" family — see
// SPEC_FULL.md's supplemented-features section.
func (p *Path) AddRoundRect(r Rect, radius float64, w Winding) {
	h := radius * circleHandle
	l, t, rr, b := r.L, r.T, r.R, r.B

	if w == CW {
		p.MoveTo(Point{l + radius, t})
		p.LineTo(Point{rr - radius, t})
		p.CubicTo(Point{rr - radius + h, t}, Point{rr, t + radius - h}, Point{rr, t + radius})
		p.LineTo(Point{rr, b - radius})
		p.CubicTo(Point{rr, b - radius + h}, Point{rr - radius + h, b}, Point{rr - radius, b})
		p.LineTo(Point{l + radius, b})
		p.CubicTo(Point{l + radius - h, b}, Point{l, b - radius + h}, Point{l, b - radius})
		p.LineTo(Point{l, t + radius})
		p.CubicTo(Point{l, t + radius - h}, Point{l + radius - h, t}, Point{l + radius, t})
		return
	}
	p.MoveTo(Point{l + radius, t})
	p.CubicTo(Point{l + radius - h, t}, Point{l, t + radius - h}, Point{l, t + radius})
	p.LineTo(Point{l, b - radius})
	p.CubicTo(Point{l, b - radius + h}, Point{l + radius - h, b}, Point{l + radius, b})
	p.LineTo(Point{rr - radius, b})
	p.CubicTo(Point{rr - radius + h, b}, Point{rr, b - radius + h}, Point{rr, b - radius})
	p.LineTo(Point{rr, t + radius})
	p.CubicTo(Point{rr, t + radius - h}, Point{rr - radius + h, t}, Point{rr - radius, t})
	p.LineTo(Point{l + radius, t})
}

// Transform applies m to every point in the path in place.
func (p *Path) Transform(m Matrix) {
	m.MapPoints(p.points, p.points)
}

// Bounds returns the smallest Rect containing every point in the path.
// An empty path returns the zero Rect (which is itself empty).
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	minX, minY := p.points[0].X, p.points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{L: minX, T: minY, R: maxX, B: maxY}
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	c := &Path{
		verbs:  append([]Verb(nil), p.verbs...),
		points: append([]Point(nil), p.points...),
	}
	return c
}

// edger walks a Path's verbs, synthesizing each contour's closing line
// before the next Move (or at the end) without mutating the stored
// verbs — the closing state lives entirely in the edger, per
// spec.md's Design Notes §9.
type edger struct {
	path      *Path
	verbIdx   int
	ptIdx     int
	moveStart Point
	cur       Point
	started   bool
}

func newEdger(p *Path) *edger {
	return &edger{path: p}
}

// next returns the next verb and its control points (2 points for
// Line, 3 for Quad, 4 for Cubic — each including the current point as
// pts[0]), or Done when the path and its final closing edge, if any,
// are exhausted.
func (e *edger) next() (Verb, []Point) {
	if e.verbIdx >= len(e.path.verbs) {
		if e.started {
			if e.cur != e.moveStart {
				from, to := e.cur, e.moveStart
				e.cur = e.moveStart
				return Line, []Point{from, to}
			}
			e.started = false
		}
		return Done, nil
	}

	v := e.path.verbs[e.verbIdx]
	if v == Move {
		if e.started && e.cur != e.moveStart {
			from, to := e.cur, e.moveStart
			e.cur = e.moveStart
			return Line, []Point{from, to}
		}
		e.moveStart = e.path.points[e.ptIdx]
		e.cur = e.moveStart
		e.ptIdx++
		e.verbIdx++
		e.started = true
		return e.next()
	}

	switch v {
	case Line:
		from := e.cur
		to := e.path.points[e.ptIdx]
		e.cur = to
		e.ptIdx++
		e.verbIdx++
		return Line, []Point{from, to}
	case Quad:
		pts := []Point{e.cur, e.path.points[e.ptIdx], e.path.points[e.ptIdx+1]}
		e.cur = pts[2]
		e.ptIdx += 2
		e.verbIdx++
		return Quad, pts
	case Cubic:
		pts := []Point{e.cur, e.path.points[e.ptIdx], e.path.points[e.ptIdx+1], e.path.points[e.ptIdx+2]}
		e.cur = pts[3]
		e.ptIdx += 3
		e.verbIdx++
		return Cubic, pts
	}
	return Done, nil
}
