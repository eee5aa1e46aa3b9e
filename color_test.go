package raster

import "testing"

func TestColorPixelInvariant(t *testing.T) {
	cases := []Color{
		Opaque(1, 0.5, 0.25),
		RGBA(1, 1, 1, 0.5),
		RGBA(0.2, 0.8, 0.6, 0.3),
		RGBA(0, 0, 0, 0),
	}
	for _, c := range cases {
		p := c.Pixel()
		if p.R() > p.A() || p.G() > p.A() || p.B() > p.A() {
			t.Errorf("%v.Pixel() = %#x: R=%d G=%d B=%d exceed A=%d", c, uint32(p), p.R(), p.G(), p.B(), p.A())
		}
	}
}

func TestColorPixelClamps(t *testing.T) {
	c := RGBA(2, -1, 0.5, 1.5)
	p := c.Pixel()
	if p.A() != 255 {
		t.Errorf("A = %d; want 255 (alpha clamped to 1)", p.A())
	}
	if p.R() != 255 {
		t.Errorf("R = %d; want 255 (component clamped to 1 then premultiplied by 1)", p.R())
	}
	if p.G() != 0 {
		t.Errorf("G = %d; want 0 (component clamped to 0)", p.G())
	}
}

func TestColorLerp(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(1, 1, 1, 1)
	mid := a.Lerp(b, 0.5)
	want := RGBA(0.5, 0.5, 0.5, 0.5)
	if mid != want {
		t.Errorf("Lerp(0.5) = %v; want %v", mid, want)
	}
}

func TestPixelToColorRoundTrip(t *testing.T) {
	c := Opaque(0.2, 0.4, 0.6)
	p := c.Pixel()
	back := pixelToColor(p)
	if !approxEqual(back.R, c.R, 1.0/255) || !approxEqual(back.G, c.G, 1.0/255) || !approxEqual(back.B, c.B, 1.0/255) {
		t.Errorf("pixelToColor(Pixel()) = %v; want approximately %v", back, c)
	}
}
