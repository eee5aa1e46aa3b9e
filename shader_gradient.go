package raster

// LinearGradientShader interpolates between n colors along the axis
// from p0 (t=0) to p1 (t=1), tiling t outside [0,1] per TileMode.
// Grounded on gogpu-gg's LinearGradientBrush (Start/End/Stops/Extend,
// projecting a point onto the gradient axis via a dot product), adapted
// from gogpu-gg's general ColorStop offsets to spec.md §4.6's simpler
// n-evenly-spaced-colors model and to this package's premultiplied,
// setContext/shadeRow shader contract.
type LinearGradientShader struct {
	p0, p1 Point
	colors []Color
	mode   TileMode

	axis    Matrix // maps user space (where p0, p1 live) so that p0->0, p1->1 along X
	inverse Matrix
}

// NewLinearGradientShader returns a shader interpolating colors evenly
// along p0->p1, or nil if count < 1 (spec.md §6's external-interface
// contract for this factory).
func NewLinearGradientShader(p0, p1 Point, colors []Color, count int, mode TileMode) *LinearGradientShader {
	if count < 1 {
		return nil
	}
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	lenSq := dx*dx + dy*dy
	var axis Matrix
	if lenSq == 0 {
		axis = Translate(-p0.X, -p0.Y)
	} else {
		// Map the gradient axis onto the unit X axis: local.x = t.
		axis = Matrix{
			A: dx / lenSq, B: dy / lenSq, C: -(p0.X*dx + p0.Y*dy) / lenSq,
			D: 0, E: 0, F: 0,
		}
	}
	return &LinearGradientShader{p0: p0, p1: p1, colors: append([]Color(nil), colors[:count]...), mode: mode, axis: axis}
}

func (s *LinearGradientShader) IsOpaque() bool {
	for _, c := range s.colors {
		if c.A < 1 {
			return false
		}
	}
	return true
}

func (s *LinearGradientShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.inverse = inv
	return true
}

func (s *LinearGradientShader) ShadeRow(x, y, count int, out []Color) {
	py := float64(y) + 0.5
	n := len(s.colors)
	for i := 0; i < count; i++ {
		px := float64(x+i) + 0.5
		device := s.inverse.MapPoint(Point{X: px, Y: py})
		local := s.axis.MapPoint(device)
		t := tileContinuous(local.X, 1, s.mode, 1)
		out[i] = s.colorAt(t, n)
	}
}

func (s *LinearGradientShader) colorAt(t float64, n int) Color {
	if n == 1 {
		return s.colors[0].premultiplied()
	}
	scaled := t * float64(n-1)
	i := int(scaled)
	if i < 0 {
		i = 0
	}
	if i >= n-1 {
		i = n - 2
	}
	w := scaled - float64(i)
	return s.colors[i].Lerp(s.colors[i+1], w).premultiplied()
}
