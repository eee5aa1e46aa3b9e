package raster

// TriColorShader shades a triangle by interpolating three vertex colors
// across barycentric coordinates (u,v), where u=p1-p0 and v=p2-p0 span
// the triangle from p0. Grounded on spec.md §4.6's exact affine
// construction; no example repo carries a barycentric vertex-color
// shader, so this is built directly from the spec's formulas in the
// style of the other shader variants here.
type TriColorShader struct {
	localToPoint Matrix // maps (u,v,1) -> triangle point space
	c0, c1, c2   Color

	inverse Matrix // device -> (u,v)
}

// NewTriColorShader returns a shader interpolating c0,c1,c2 across the
// triangle p0,p1,p2 via barycentric coordinates anchored at p0.
func NewTriColorShader(p0, p1, p2 Point, c0, c1, c2 Color) *TriColorShader {
	u := p1.Sub(p0)
	v := p2.Sub(p0)
	m := Matrix{A: u.X, B: v.X, C: p0.X, D: u.Y, E: v.Y, F: p0.Y}
	return &TriColorShader{localToPoint: m, c0: c0, c1: c1, c2: c2}
}

func (s *TriColorShader) IsOpaque() bool {
	return s.c0.A >= 1 && s.c1.A >= 1 && s.c2.A >= 1
}

func (s *TriColorShader) SetContext(ctm Matrix) bool {
	combined := ctm.Concat(s.localToPoint)
	inv, ok := combined.Invert()
	if !ok {
		return false
	}
	s.inverse = inv
	return true
}

func (s *TriColorShader) ShadeRow(x, y, count int, out []Color) {
	py := float64(y) + 0.5
	px0 := float64(x) + 0.5
	uv := s.inverse.MapPoint(Point{X: px0, Y: py})
	u, v := uv.X, uv.Y
	du, dv := s.inverse.A, s.inverse.D // per-step delta as x advances by 1
	for i := 0; i < count; i++ {
		out[i] = s.colorAt(u, v).premultiplied()
		u += du
		v += dv
	}
}

func (s *TriColorShader) colorAt(u, v float64) Color {
	c01 := Color{
		R: s.c1.R - s.c0.R,
		G: s.c1.G - s.c0.G,
		B: s.c1.B - s.c0.B,
		A: s.c1.A - s.c0.A,
	}
	c02 := Color{
		R: s.c2.R - s.c0.R,
		G: s.c2.G - s.c0.G,
		B: s.c2.B - s.c0.B,
		A: s.c2.A - s.c0.A,
	}
	return Color{
		R: s.c0.R + u*c01.R + v*c02.R,
		G: s.c0.G + u*c01.G + v*c02.G,
		B: s.c0.B + u*c01.B + v*c02.B,
		A: s.c0.A + u*c01.A + v*c02.A,
	}
}
