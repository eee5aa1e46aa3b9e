package raster

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMatrixInvertIdentity(t *testing.T) {
	inv, ok := Identity.Invert()
	if !ok {
		t.Fatal("Identity.Invert() failed")
	}
	if inv != Identity {
		t.Errorf("Identity.Invert() = %v; want Identity", inv)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	cases := []Matrix{
		Identity,
		Scale(2, 3),
		Translate(5, -7),
		Rotate(math.Pi / 4),
		Translate(3, 4).Concat(Rotate(0.7)).Concat(Scale(2, 0.5)),
	}
	pts := []Point{{0, 0}, {1, 0}, {0, 1}, {3.5, -2.25}}
	for _, m := range cases {
		inv, ok := m.Invert()
		if !ok {
			t.Errorf("%v.Invert() failed", m)
			continue
		}
		for _, p := range pts {
			mapped := m.MapPoint(p)
			back := inv.MapPoint(mapped)
			if !approxEqual(back.X, p.X, 1e-9) || !approxEqual(back.Y, p.Y, 1e-9) {
				t.Errorf("invert round trip for %v at %v: got %v; want %v", m, p, back, p)
			}
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Matrix{A: 0, B: 0, C: 0, D: 0, E: 0, F: 0}
	if _, ok := m.Invert(); ok {
		t.Error("zero matrix Invert() succeeded; want failure")
	}
}

func TestMatrixConcatOrder(t *testing.T) {
	// Translate(10,0) then Scale(2,2): m = Scale.Concat(Translate) applies
	// Translate first, then Scale.
	m := Scale(2, 2).Concat(Translate(10, 0))
	got := m.MapPoint(Point{X: 0, Y: 0})
	want := Point{X: 20, Y: 0}
	if got != want {
		t.Errorf("Concat order: got %v; want %v", got, want)
	}
}

func TestMatrixMapPointsAliasing(t *testing.T) {
	pts := []Point{{1, 0}, {0, 1}, {2, 3}}
	m := Translate(1, 1)
	m.MapPoints(pts, pts)
	want := []Point{{2, 1}, {1, 2}, {3, 4}}
	for i := range pts {
		if pts[i] != want[i] {
			t.Errorf("MapPoints in place[%d] = %v; want %v", i, pts[i], want[i])
		}
	}
}

func TestMatrixAff3RoundTrip(t *testing.T) {
	m := Translate(3, 4).Concat(Rotate(0.7)).Concat(Scale(2, 0.5))
	aff := m.ToAff3()
	want := f32.Aff3{float32(m.A), float32(m.B), float32(m.C), float32(m.D), float32(m.E), float32(m.F)}
	if aff != want {
		t.Errorf("ToAff3() = %v; want %v", aff, want)
	}
	back := MatrixFromAff3(aff)
	if !approxEqual(back.A, m.A, 1e-6) || !approxEqual(back.B, m.B, 1e-6) ||
		!approxEqual(back.C, m.C, 1e-6) || !approxEqual(back.D, m.D, 1e-6) ||
		!approxEqual(back.E, m.E, 1e-6) || !approxEqual(back.F, m.F, 1e-6) {
		t.Errorf("MatrixFromAff3(ToAff3(m)) = %v; want %v (within float32 precision)", back, m)
	}
}

func TestCTMStackSaveRestore(t *testing.T) {
	s := NewCTMStack()
	s.SetCurrent(Translate(1, 2))
	s.Save()
	s.SetCurrent(Scale(3, 3))
	s.Restore()
	if s.Current() != (Translate(1, 2)) {
		t.Errorf("after restore, Current() = %v; want Translate(1,2)", s.Current())
	}
	// The construction-time save balances this restore.
	s.Restore()
	if s.Current() != Identity {
		t.Errorf("after second restore, Current() = %v; want Identity", s.Current())
	}
}

func TestCTMStackRestoreUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restore on empty stack did not panic")
		}
	}()
	s := NewCTMStack()
	s.Restore()
	s.Restore() // one save happened at construction; this is the underflow
}

func TestCTMStackSaveScope(t *testing.T) {
	s := NewCTMStack()
	s.SetCurrent(Translate(1, 1))
	func() {
		defer s.SaveScope()()
		s.SetCurrent(Scale(5, 5))
	}()
	if s.Current() != (Translate(1, 1)) {
		t.Errorf("after SaveScope, Current() = %v; want Translate(1,1)", s.Current())
	}
}
