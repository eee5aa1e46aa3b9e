package raster

import iraster "github.com/rsc/raster/internal/raster"

// CompositeShader wraps two shaders and multiplies their shaded output
// component-wise, per spec.md §4.6: setContext requires both children
// to accept the CTM; shadeRow computes each into a temporary row and
// multiplies channels using the fast /255 (iraster.Mul8), the same
// primitive the Porter-Duff blend table uses.
type CompositeShader struct {
	a, b Shader
	rowA []Color
}

// NewCompositeShader returns a shader whose output is a's shaded color
// multiplied channel-wise by b's.
func NewCompositeShader(a, b Shader) *CompositeShader {
	return &CompositeShader{a: a, b: b}
}

func (s *CompositeShader) IsOpaque() bool { return s.a.IsOpaque() && s.b.IsOpaque() }

func (s *CompositeShader) SetContext(ctm Matrix) bool {
	return s.a.SetContext(ctm) && s.b.SetContext(ctm)
}

func (s *CompositeShader) ShadeRow(x, y, count int, out []Color) {
	if cap(s.rowA) < count {
		s.rowA = make([]Color, count)
	}
	rowA := s.rowA[:count]
	s.a.ShadeRow(x, y, count, rowA)
	s.b.ShadeRow(x, y, count, out)
	for i := 0; i < count; i++ {
		out[i] = multiplyPremultiplied(rowA[i], out[i])
	}
}

// multiplyPremultiplied multiplies two premultiplied colors channel by
// channel using the fast byte-domain /255, converting through bytes and
// back so the result matches the integer pixel math spec.md specifies.
func multiplyPremultiplied(a, b Color) Color {
	pa := a.premultipliedPixel()
	pb := b.premultipliedPixel()
	r := iraster.Mul8(pa.R(), pb.R())
	g := iraster.Mul8(pa.G(), pb.G())
	bl := iraster.Mul8(pa.B(), pb.B())
	al := iraster.Mul8(pa.A(), pb.A())
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(bl) / 255,
		A: float64(al) / 255,
	}
}
