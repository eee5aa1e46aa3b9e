package raster

import "math"

// BitmapShader samples a source Bitmap through a local matrix, tiling
// out-of-range coordinates per TileMode. Grounded on
// 9fans.net/go/draw/memdraw's replicated-image sampling (draw.go's
// handling of a 1x1 "repl" source bitmap generalized to a full tiling
// table) and spec.md §4.6.
type BitmapShader struct {
	bitmap      *Bitmap
	localMatrix Matrix
	tileX       TileMode
	tileY       TileMode

	inverse Matrix
}

// NewBitmapShader returns a shader sampling bitmap through localMatrix
// (mapping bitmap pixel coordinates into the space the shader is drawn
// in; SetContext inverts ctm·localMatrix to go from device pixels back to
// bitmap pixels), tiling
// both axes the same way. A nil bitmap or zero-size bitmap is never
// produced by this factory since spec.md's external interface assumes
// a valid source.
func NewBitmapShader(bitmap *Bitmap, localMatrix Matrix, mode TileMode) *BitmapShader {
	return &BitmapShader{bitmap: bitmap, localMatrix: localMatrix, tileX: mode, tileY: mode}
}

func (s *BitmapShader) IsOpaque() bool { return s.bitmap.IsOpaque }

func (s *BitmapShader) SetContext(ctm Matrix) bool {
	combined := ctm.Concat(s.localMatrix)
	inv, ok := combined.Invert()
	if !ok {
		return false
	}
	s.inverse = inv
	return true
}

func (s *BitmapShader) ShadeRow(x, y, count int, out []Color) {
	w := float64(s.bitmap.Width)
	h := float64(s.bitmap.Height)
	py := float64(y) + 0.5
	for i := 0; i < count; i++ {
		px := float64(x+i) + 0.5
		local := s.inverse.MapPoint(Point{X: px, Y: py})
		fx := math.Floor(local.X)
		fy := math.Floor(local.Y)
		fx = tile(fx, w, s.tileX)
		fy = tile(fy, h, s.tileY)
		ix := int(fx)
		iy := int(fy)
		if ix < 0 {
			ix = 0
		} else if ix >= s.bitmap.Width {
			ix = s.bitmap.Width - 1
		}
		if iy < 0 {
			iy = 0
		} else if iy >= s.bitmap.Height {
			iy = s.bitmap.Height - 1
		}
		out[i] = pixelToColor(s.bitmap.At(ix, iy))
	}
}
