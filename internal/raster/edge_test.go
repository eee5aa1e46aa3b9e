package raster

import "testing"

func TestClipSegmentInBounds(t *testing.T) {
	var bag EdgeBag
	bag.ClipSegment(Point{0, 0}, Point{10, 10}, 100, 100)
	if len(bag.Edges) != 1 {
		t.Fatalf("got %d edges; want 1", len(bag.Edges))
	}
	e := bag.Edges[0]
	if e.M != 1 || e.B != 0 || e.Top != 0 || e.Bottom != 10 || e.Winding != -1 {
		t.Errorf("edge = %+v; want {M:1 B:0 Top:0 Bottom:10 Winding:-1}", e)
	}
}

func TestClipSegmentHorizontalDropped(t *testing.T) {
	var bag EdgeBag
	bag.ClipSegment(Point{0, 5}, Point{10, 5}, 100, 100)
	if len(bag.Edges) != 0 {
		t.Errorf("got %d edges for horizontal segment; want 0", len(bag.Edges))
	}
}

func TestClipSegmentFullyOffscreenDropped(t *testing.T) {
	var bag EdgeBag
	bag.ClipSegment(Point{0, -20}, Point{10, -10}, 100, 100)
	if len(bag.Edges) != 0 {
		t.Errorf("got %d edges for fully off-screen segment; want 0", len(bag.Edges))
	}
}

func TestClipSegmentLeftSplit(t *testing.T) {
	var bag EdgeBag
	bag.ClipSegment(Point{-5, 0}, Point{5, 10}, 100, 100)
	if len(bag.Edges) != 2 {
		t.Fatalf("got %d edges; want 2 (vertical projection + main edge)", len(bag.Edges))
	}
	a, b := bag.Edges[0], bag.Edges[1]
	if a.Top != 0 || a.Bottom != 5 || a.M != 0 {
		t.Errorf("projection edge = %+v; want Top:0 Bottom:5 M:0", a)
	}
	if b.Top != 5 || b.Bottom != 10 || b.M != 1 {
		t.Errorf("main edge = %+v; want Top:5 Bottom:10 M:1", b)
	}
}

// TestClipSegmentAsymmetricTriangleWindingCancels regresses a bug where
// the x-orientation sign flip was only applied in the p0.X >= p1.X
// branch: for this triangle, its two non-horizontal edges take opposite
// branches and came out with the same Winding, so ScanComplex's
// winding count never returned to 0 and the fill was silently empty.
// The diagonal (0,0)-(10,10) takes the p0.X < p1.X branch and the
// closing edge (0,10)-(0,0) takes the p0.X >= p1.X branch (after its
// y-swap), so the two edges only cancel if the sign flip is
// unconditional on x-orientation, matching original_source/v6's
// MUclipPoints (both arms of its if/else-if multiply winding by -1).
func TestClipSegmentAsymmetricTriangleWindingCancels(t *testing.T) {
	var bag EdgeBag
	// Diagonal: (0,0) -> (10,10), p0.X < p1.X.
	bag.ClipSegment(Point{0, 0}, Point{10, 10}, 100, 100)
	// Closing edge: (0,10) -> (0,0), y-swapped then p0.X >= p1.X.
	bag.ClipSegment(Point{0, 10}, Point{0, 0}, 100, 100)
	if len(bag.Edges) != 2 {
		t.Fatalf("got %d edges; want 2", len(bag.Edges))
	}
	diagonal, closing := bag.Edges[0], bag.Edges[1]
	if diagonal.Winding == closing.Winding {
		t.Fatalf("diagonal and closing edge both have Winding %d; they must be opposite signs or ScanComplex's winding count never returns to 0 mid-row", diagonal.Winding)
	}
}

func TestEdgeXAtRowAndResetX(t *testing.T) {
	e := Edge{M: 2, B: 1, Top: 0, Bottom: 10}
	got := e.XAtRow(3)
	want := 2*(3.5) + 1
	if got != want {
		t.Errorf("XAtRow(3) = %v; want %v", got, want)
	}
	e.ResetX(3)
	if e.CurX != want {
		t.Errorf("after ResetX, CurX = %v; want %v", e.CurX, want)
	}
}
