package raster

import "testing"

func TestPaintIsOpaqueColorOnly(t *testing.T) {
	p := NewPaint(Opaque(1, 0, 0))
	if !p.IsOpaque() {
		t.Error("opaque color with SrcOver should report IsOpaque")
	}
	p.Color.A = 0.5
	if p.IsOpaque() {
		t.Error("translucent color should not report IsOpaque")
	}
}

func TestPaintIsOpaqueWrongBlendMode(t *testing.T) {
	p := NewPaint(Opaque(1, 0, 0))
	p.Mode = SrcOver
	if !p.IsOpaque() {
		t.Error("SrcOver with opaque color should be opaque")
	}
	p.Mode = DstOver
	if p.IsOpaque() {
		t.Error("DstOver should never report IsOpaque regardless of color")
	}
}

func TestPaintIsOpaqueShader(t *testing.T) {
	bmp := NewBitmap(2, 2)
	bmp.IsOpaque = true
	p := NewPaint(RGBA(0, 0, 0, 0))
	p.Shader = NewBitmapShader(bmp, Identity, Clamp)
	if !p.IsOpaque() {
		t.Error("opaque bitmap shader with SrcOver should report IsOpaque")
	}
	bmp.IsOpaque = false
	if p.IsOpaque() {
		t.Error("non-opaque bitmap shader should not report IsOpaque")
	}
}
