package raster

import "testing"

func TestBlendModeConstantsDistinct(t *testing.T) {
	modes := []BlendMode{Clear, Src, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcATop, DstATop, Xor}
	seen := map[BlendMode]bool{}
	for _, m := range modes {
		if seen[m] {
			t.Errorf("duplicate BlendMode value %v", m)
		}
		seen[m] = true
	}
	if len(seen) != 12 {
		t.Errorf("got %d distinct blend modes; want 12", len(seen))
	}
}
