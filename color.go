package raster

import (
	"math"

	iraster "github.com/rsc/raster/internal/raster"
)

// Color is an unpremultiplied RGBA color, each component nominally in
// [0,1] (out-of-range components are clamped on conversion to a pixel).
type Color struct {
	R, G, B, A float64
}

// RGBA builds a Color from components in [0,1].
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

// Opaque builds a fully opaque Color from components in [0,1].
func Opaque(r, g, b float64) Color { return Color{r, g, b, 1} }

// toByte clamps x to [0,1] and rounds x*255 to the nearest integer via
// floor(x*255+0.5), per spec.md §4.1.
func toByte(x float64) uint8 {
	x = iraster.Clamp(x, 0.0, 1.0)
	return uint8(math.Floor(x*255 + 0.5))
}

// Pixel converts c to a premultiplied 32-bit ARGB pixel: each channel is
// clamped to [0,1], RGB is premultiplied by A, then each component is
// rounded independently per spec.md §4.1.
func (c Color) Pixel() iraster.Pixel {
	a := iraster.Clamp(c.A, 0.0, 1.0)
	r := iraster.Clamp(c.R, 0.0, 1.0) * a
	g := iraster.Clamp(c.G, 0.0, 1.0) * a
	b := iraster.Clamp(c.B, 0.0, 1.0) * a
	return iraster.PackARGB(toByte(a), toByte(r), toByte(g), toByte(b))
}

// Lerp returns the color a fraction t of the way from c to d,
// componentwise, used by the gradient and triangle shaders.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// premultiplied returns c with R,G,B scaled by A, matching the
// premultiplied-channel convention shadeRow output uses (spec.md §4.6).
func (c Color) premultiplied() Color {
	a := iraster.Clamp(c.A, 0.0, 1.0)
	return Color{R: iraster.Clamp(c.R, 0.0, 1.0) * a, G: iraster.Clamp(c.G, 0.0, 1.0) * a, B: iraster.Clamp(c.B, 0.0, 1.0) * a, A: a}
}

// premultipliedPixel packs c directly into a Pixel without
// premultiplying RGB by A again: used where c already holds
// premultiplied channel values, as shadeRow's output does per
// spec.md §4.6 ("shadeRow produces premultiplied pixels").
func (c Color) premultipliedPixel() iraster.Pixel {
	a := iraster.Clamp(c.A, 0.0, 1.0)
	r := iraster.Clamp(c.R, 0.0, 1.0)
	g := iraster.Clamp(c.G, 0.0, 1.0)
	b := iraster.Clamp(c.B, 0.0, 1.0)
	return iraster.PackARGB(toByte(a), toByte(r), toByte(g), toByte(b))
}

// pixelToColor unpacks a premultiplied Pixel into a Color whose
// channels remain premultiplied (R,G,B already scaled by A), the
// inverse of premultipliedPixel. Used by shaders that read premultiplied
// pixels out of a Bitmap and hand them onward as shadeRow output.
func pixelToColor(p iraster.Pixel) Color {
	return Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
		A: float64(p.A()) / 255,
	}
}
