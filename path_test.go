package raster

import "testing"

func TestEdgerClosesContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))

	e := newEdger(p)
	var got []Point
	for {
		verb, pts := e.next()
		if verb == Done {
			break
		}
		if verb != Line {
			t.Fatalf("unexpected verb %v", verb)
		}
		got = append(got, pts[0], pts[1])
	}

	want := []Point{
		{0, 0}, {10, 0},
		{10, 0}, {10, 10},
		{10, 10}, {0, 0}, // synthesized closing edge
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points; want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestEdgerMultipleContours(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 5))

	e := newEdger(p)
	var segs [][2]Point
	for {
		verb, pts := e.next()
		if verb == Done {
			break
		}
		segs = append(segs, [2]Point{pts[0], pts[1]})
	}

	want := [][2]Point{
		{{0, 0}, {1, 0}},
		{{1, 0}, {0, 0}}, // closes first contour before the second Move
		{{5, 5}, {6, 5}},
		{{6, 5}, {5, 5}}, // closes second contour at end of path
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments; want %d: %v", len(segs), len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %v; want %v", i, segs[i], want[i])
		}
	}
}

func TestEdgerAlreadyClosed(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(0, 0)) // explicitly returns to the move point

	e := newEdger(p)
	var count int
	for {
		verb, _ := e.next()
		if verb == Done {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("got %d edges; want 2 (no redundant closing edge)", count)
	}
}

func TestAddRectVerbAndPointCounts(t *testing.T) {
	p := NewPath()
	p.AddRect(RectLTRB(0, 0, 10, 20), CW)
	if len(p.verbs) != 4 || len(p.points) != 4 {
		t.Fatalf("AddRect: %d verbs, %d points; want 4, 4", len(p.verbs), len(p.points))
	}
}

func TestAddPolygon(t *testing.T) {
	p := NewPath()
	p.AddPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if len(p.verbs) != 4 {
		t.Fatalf("AddPolygon: %d verbs; want 4 (1 move + 3 lines)", len(p.verbs))
	}
	if p.verbs[0] != Move {
		t.Errorf("first verb = %v; want Move", p.verbs[0])
	}
}

func TestAddCircle(t *testing.T) {
	p := NewPath()
	p.AddCircle(Pt(0, 0), 5, CW)
	if len(p.verbs) != 5 { // 1 move + 4 cubics
		t.Fatalf("AddCircle: %d verbs; want 5", len(p.verbs))
	}
	for _, v := range p.verbs[1:] {
		if v != Cubic {
			t.Errorf("verb = %v; want Cubic", v)
		}
	}
}

func TestAddRoundRect(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(RectLTRB(0, 0, 20, 10), 3, CW)
	// 1 move + 4x(line, cubic) per corner.
	if len(p.verbs) != 9 {
		t.Fatalf("AddRoundRect: %d verbs; want 9 (1 move + 4 line/cubic pairs)", len(p.verbs))
	}
	if p.verbs[0] != Move {
		t.Errorf("first verb = %v; want Move", p.verbs[0])
	}
	got := p.Bounds()
	want := RectLTRB(0, 0, 20, 10)
	if got != want {
		t.Errorf("Bounds() = %v; want %v (corner handles stay within the rect)", got, want)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(-1, 2))
	p.LineTo(Pt(5, -3))
	p.LineTo(Pt(2, 9))
	got := p.Bounds()
	want := RectLTRB(-1, -3, 5, 9)
	if got != want {
		t.Errorf("Bounds() = %v; want %v", got, want)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(1, 0))
	p.Transform(Translate(2, 3))
	if p.points[0] != (Point{3, 3}) {
		t.Errorf("Transform: got %v; want {3 3}", p.points[0])
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(1, 1))
	clone := p.Clone()
	clone.LineTo(Pt(2, 2))
	if len(p.verbs) == len(clone.verbs) {
		t.Errorf("Clone shares backing array: mutating clone changed original")
	}
}
