package raster

import (
	iraster "github.com/rsc/raster/internal/raster"
)

// Bitmap is a caller-owned view onto pixel memory: width, height,
// rowBytes, and a base address, exactly as spec.md §6 describes. Draw
// operations only read and write pixel cells through At/Set; they never
// allocate or free the backing memory (NewBitmap is a convenience that
// allocates a fresh zeroed buffer). Grounded on
// 9fans.net/go/draw/memdraw's Image (width/height/row-stride/base byte
// slice), generalized from Plan 9's many pixel depths to this package's
// single 32-bit premultiplied ARGB format.
type Bitmap struct {
	Width, Height int
	RowBytes      int
	Pix           []byte // at least Height*RowBytes bytes
	IsOpaque      bool
}

// NewBitmap allocates a Bitmap of the given size with a tightly packed
// row stride (width*4 bytes), its pixels zeroed (transparent black).
func NewBitmap(width, height int) *Bitmap {
	rowBytes := width * 4
	return &Bitmap{
		Width:    width,
		Height:   height,
		RowBytes: rowBytes,
		Pix:      make([]byte, rowBytes*height),
	}
}

// addr returns the byte offset of pixel (x,y).
func (b *Bitmap) addr(x, y int) int {
	return y*b.RowBytes + x*4
}

// At returns the pixel at (x,y). x,y must be in bounds.
func (b *Bitmap) At(x, y int) iraster.Pixel {
	o := b.addr(x, y)
	return iraster.PackARGB(b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3])
}

// Set writes the pixel at (x,y). x,y must be in bounds.
func (b *Bitmap) Set(x, y int, p iraster.Pixel) {
	o := b.addr(x, y)
	b.Pix[o+0] = p.A()
	b.Pix[o+1] = p.R()
	b.Pix[o+2] = p.G()
	b.Pix[o+3] = p.B()
}

// DeviceRect returns the bitmap's own bounds as the device-space clip
// rectangle every draw call is clipped against.
func (b *Bitmap) DeviceRect() Rect {
	return Rect{L: 0, T: 0, R: float64(b.Width), B: float64(b.Height)}
}
