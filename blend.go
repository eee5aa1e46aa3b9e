package raster

import iraster "github.com/rsc/raster/internal/raster"

// BlendMode names one of the 12 Porter-Duff compositing operators a
// Paint can use to combine shaded source pixels with the destination.
// Grounded on 9fans.net/go/draw's Op bit algebra (SinD|SoutD|DinS|DoutS),
// generalized from Plan 9's combinations to the 12 spec.md §4.2 names
// and re-expressed as the internal/raster.BlendMode enum.
type BlendMode = iraster.BlendMode

const (
	Clear   = iraster.Clear
	Src     = iraster.Src
	Dst     = iraster.Dst
	SrcOver = iraster.SrcOver
	DstOver = iraster.DstOver
	SrcIn   = iraster.SrcIn
	DstIn   = iraster.DstIn
	SrcOut  = iraster.SrcOut
	DstOut  = iraster.DstOut
	SrcATop = iraster.SrcATop
	DstATop = iraster.DstATop
	Xor     = iraster.Xor
)
