package raster

// BlendMode selects one of the 12 Porter-Duff compositing operators from
// spec.md §4.1. The names and algebra mirror
// 9fans.net/go/draw.Op (SinD|SoutD|DinS|DoutS, etc.), generalized from
// Plan 9's seven named combinations to the full twelve-mode table.
type BlendMode int

const (
	Clear BlendMode = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcATop
	DstATop
	Xor
)

// blendChannel applies mode to one premultiplied byte channel (one of
// A,R,G,B) of source s and destination d, given the source and
// destination alpha bytes sa, da. Every mode in the table reduces to one
// of these five shapes; channels (including alpha) are computed
// independently, per spec.md §4.1.
func blendChannel(mode BlendMode, s, d, sa, da uint8) uint8 {
	switch mode {
	case Clear:
		return 0
	case Src:
		return s
	case Dst:
		return d
	case SrcOver:
		// S + (1-Sa)*D
		return clampAdd(s, Mul8(255-sa, d))
	case DstOver:
		// D + (1-Da)*S
		return clampAdd(d, Mul8(255-da, s))
	case SrcIn:
		// Da*S
		return Mul8(da, s)
	case DstIn:
		// Sa*D
		return Mul8(sa, d)
	case SrcOut:
		// (1-Da)*S
		return Mul8(255-da, s)
	case DstOut:
		// (1-Sa)*D
		return Mul8(255-sa, d)
	case SrcATop:
		// Da*S + (1-Sa)*D
		return clampAdd(Mul8(da, s), Mul8(255-sa, d))
	case DstATop:
		// Sa*D + (1-Da)*S
		return clampAdd(Mul8(sa, d), Mul8(255-da, s))
	case Xor:
		// (1-Sa)*D + (1-Da)*S
		return clampAdd(Mul8(255-sa, d), Mul8(255-da, s))
	default:
		return 0
	}
}

// clampAdd adds two bytes, saturating at 255. Premultiplied-byte blend
// math never overflows in practice (each term is itself a product of
// bytes in [0,255] scaled down by Mul8), but saturating keeps the
// result well-defined even given a non-conformant source pixel where
// R,G,B > A.
func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Blend composites src over dst using mode, returning the new premultiplied pixel.
func Blend(mode BlendMode, src, dst Pixel) Pixel {
	sa, da := src.A(), dst.A()
	a := blendChannel(mode, sa, da, sa, da)
	r := blendChannel(mode, src.R(), dst.R(), sa, da)
	g := blendChannel(mode, src.G(), dst.G(), sa, da)
	b := blendChannel(mode, src.B(), dst.B(), sa, da)
	return PackARGB(a, r, g, b)
}
