// Package raster implements the pixel-level half of the rasterizer: 32-bit
// premultiplied ARGB packing, the Porter-Duff blend family, the edge
// builder/clipper, and the convex and complex (non-zero winding) scan
// converters. The public API in the parent package (github.com/rsc/raster)
// is the only supported entry point; this package's types are the
// per-draw scratch state that API drives.
//
// This is grounded directly on 9fans.net/go/draw/memdraw's pixel
// compositing core (draw.go's _CALC11 fast-divide helper and the
// draw.Op bit algebra) and draw/memdraw/fillpoly.go's sorted edge walk,
// translated from Plan 9's fixed-point C-shaped Go into floating point.
package raster

// Pixel is a 32-bit premultiplied ARGB word, A in the most significant
// byte: bits 24-31 = A, 16-23 = R, 8-15 = G, 0-7 = B.
type Pixel uint32

// PackARGB packs premultiplied byte components into a Pixel.
func PackARGB(a, r, g, b uint8) Pixel {
	return Pixel(a)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// Div255 is the fast, exact-for-its-domain approximation to x/255 for a
// byte-times-byte product x, x in [0, 65025]: (x+128)*257 >> 16. Grounded
// on memdraw/draw.go's _CALC11, which computes the same quantity as
// ((a*v+128)-1)/255; we use the shift-based identity spec.md Design
// Notes §9 calls out, since it avoids the division entirely.
func Div255(x uint32) uint8 {
	return uint8((x + 128) * 257 >> 16)
}

// Mul8 multiplies two byte channel values as if both were in [0,1],
// i.e. round(a*b/255).
func Mul8(a, b uint8) uint8 {
	return Div255(uint32(a) * uint32(b))
}
