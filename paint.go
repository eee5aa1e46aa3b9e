package raster

// Paint bundles everything a draw call needs to turn geometry into
// pixels: a fallback Color (used when Shader is nil), an optional
// Shader that overrides the color per-pixel, and the BlendMode used to
// composite the result onto the destination. Grounded on
// 9fans.net/go/draw's implicit pairing of a source Image and an Op at
// every draw call; this package collects that pairing into one value
// so Canvas methods take a single Paint argument instead of parallel
// color/shader/mode parameters.
type Paint struct {
	Color  Color
	Shader Shader
	Mode   BlendMode
}

// NewPaint returns a Paint that fills with c using SrcOver, the most
// common case (spec.md §4.2's default compositing mode).
func NewPaint(c Color) Paint {
	return Paint{Color: c, Mode: SrcOver}
}

// IsOpaque reports whether every pixel this Paint produces has alpha 1.
// It is a read-only query; Canvas does not consult it and always blends
// through Mode. Not named in
// spec.md's distillation; a natural consequence of Shader.IsOpaque and
// BlendMode already being tracked per-Paint (see SPEC_FULL.md's
// supplemented-features section).
func (p Paint) IsOpaque() bool {
	if p.Mode != SrcOver && p.Mode != Src {
		return false
	}
	if p.Shader != nil {
		return p.Shader.IsOpaque()
	}
	return p.Color.A >= 1
}
