package raster

// Point mirrors the parent package's Point without importing it (this
// package sits below github.com/rsc/raster in the import graph).
type Point struct {
	X, Y float64
}

// Edge is one clipped, device-space line segment ready for scan
// conversion: x = M*y + B, active for integer rows Top <= y < Bottom.
// CurX is scratch state the scan converters use to track x as they
// sweep rows; it starts undefined until a converter calls ResetX.
type Edge struct {
	M, B      float64
	Top       int
	Bottom    int
	CurX      float64
	Winding   int
}

// XAtRow returns the unrounded x coordinate at the center of scanline y
// (pixel centers at y+0.5), per spec.md §4.5's containment rule. Callers
// round it with roundHalfUp, i.e. floor(v+0.5), to get a pixel column.
func (e *Edge) XAtRow(y int) float64 {
	return e.M*(float64(y)+0.5) + e.B
}

// ResetX seeds CurX from XAtRow(y); scan converters call this once when
// an edge becomes active, then advance CurX by M per row thereafter.
func (e *Edge) ResetX(y int) {
	e.CurX = e.XAtRow(y)
}

// roundHalfUp implements floor(v+0.5), the rounding spec.md §4.5 and
// §4.3 both specify for mapping a sub-pixel x/y to an integer row/column.
func roundHalfUp(v float64) int {
	return int(floorf(v + 0.5))
}

func floorf(v float64) float64 {
	i := float64(int64(v))
	if v < 0 && i != v {
		i--
	}
	return i
}

// EdgeBag collects the edges produced by clipping one path/polygon's
// segments against the device rectangle, before scan conversion sorts
// them. Grounded on memdraw/fillpoly.go's segtab/seg arrays — a flat,
// reusable, cache-friendly slice rather than a linked list, per
// spec.md's Design Notes §9.
type EdgeBag struct {
	Edges []Edge
}

// Reset empties the bag for reuse across draws without reallocating.
func (b *EdgeBag) Reset() {
	b.Edges = b.Edges[:0]
}

// ClipSegment clips the segment (p0,p1) against the device rectangle
// [0,w]x[0,h] and appends 0-3 edges to the bag, following the algorithm
// in spec.md §4.3. The winding sign is flipped once for the y-swap and
// once more unconditionally afterward, per original_source/v6/my_utils.h's
// MUclipPoints: its x-comparison is an if/else-if over the two
// exhaustive orderings of p0.fX and p1.fX, and both arms multiply
// winding by -1, so the flip does not actually depend on which arm is
// taken — it is unconditional. A literal single-branch transliteration
// (flipping only in the p0.X >= p1.X arm) is not equivalent and produces
// two same-signed edges on an asymmetric contour's diagonal, which
// ScanComplex's non-zero-winding walk then never closes mid-row.
func (b *EdgeBag) ClipSegment(p0, p1 Point, w, h float64) {
	sign := 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		sign = -sign
	}
	sign = -sign

	if roundHalfUp(p0.Y) == roundHalfUp(p1.Y) {
		return // horizontal segment contributes no row
	}
	if p1.Y <= 0 || p0.Y >= h {
		return // fully outside vertically
	}

	dy := p1.Y - p0.Y
	m := (p1.X - p0.X) / dy
	bIntercept := p0.X - m*p0.Y

	top := p0
	bot := p1
	if top.Y < 0 {
		top = Point{X: bIntercept, Y: 0}
	}
	if bot.Y > h {
		bot = Point{X: m*h + bIntercept, Y: h}
	}

	for _, seg := range clipHorizontal(top, bot, m, bIntercept, w) {
		b.emit(seg[0], seg[1], sign)
	}
}

// emit converts one fully-clipped segment into a canonical Edge,
// swapping endpoints so the top has the smaller y, rounding row bounds,
// and dropping zero-height edges (spec.md §4.3 step 7).
func (b *EdgeBag) emit(p0, p1 Point, winding int) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	dy := p1.Y - p0.Y
	if dy == 0 {
		return
	}
	m := (p1.X - p0.X) / dy
	bIntercept := p0.X - m*p0.Y
	top := roundHalfUp(p0.Y)
	bottom := roundHalfUp(p1.Y)
	if top == bottom {
		return
	}
	b.Edges = append(b.Edges, Edge{
		M: m, B: bIntercept,
		Top: top, Bottom: bottom,
		Winding: winding,
	})
}

// clipHorizontal clips the segment top->bot (already vertically
// clipped to [0,h], top.Y <= bot.Y) against [0,w] in x, per spec.md §4.3
// step 6. It returns 1, 2 or 3 segments (3 when the segment crosses
// both x=0 and x=w), left in top-first order.
//
// Implemented as two sequential one-sided passes (clip against x=0, then
// clip the result(s) against x=w) rather than one combined case split;
// this composes correctly even when a segment is out of bounds on both
// sides (spans the full device width), which the spec's step 6 prose
// doesn't spell out explicitly but its "symmetric treatment" note
// implies.
func clipHorizontal(top, bot Point, m, bIntercept, w float64) [][2]Point {
	segs := clipLeft(top, bot, m, bIntercept)
	var out [][2]Point
	for _, s := range segs {
		out = append(out, clipRight(s[0], s[1], m, bIntercept, w)...)
	}
	return out
}

func clipLeft(top, bot Point, m, bIntercept float64) [][2]Point {
	switch {
	case top.X < 0 && bot.X < 0:
		return [][2]Point{{{0, top.Y}, {0, bot.Y}}}
	case top.X < 0:
		// top is out, bot is in range or beyond the right edge
		yAtZero := -bIntercept / m
		return [][2]Point{
			{{0, top.Y}, {0, yAtZero}},
			{{0, yAtZero}, bot},
		}
	case bot.X < 0:
		yAtZero := -bIntercept / m
		return [][2]Point{
			{top, {0, yAtZero}},
			{{0, yAtZero}, {0, bot.Y}},
		}
	default:
		return [][2]Point{{top, bot}}
	}
}

func clipRight(top, bot Point, m, bIntercept, w float64) [][2]Point {
	switch {
	case top.X > w && bot.X > w:
		return [][2]Point{{{w, top.Y}, {w, bot.Y}}}
	case top.X > w:
		yAtW := (w - bIntercept) / m
		return [][2]Point{
			{{w, top.Y}, {w, yAtW}},
			{{w, yAtW}, bot},
		}
	case bot.X > w:
		yAtW := (w - bIntercept) / m
		return [][2]Point{
			{top, {w, yAtW}},
			{{w, yAtW}, {w, bot.Y}},
		}
	default:
		return [][2]Point{{top, bot}}
	}
}
