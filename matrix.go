package raster

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix is a 2x3 affine transform, row-major:
//
//	[ A B C ]
//	[ D E F ]
//	[ 0 0 1 ]
//
// mapping x' = A*x + B*y + C, y' = D*x + E*y + F.
//
// Structurally this is the same shape as golang.org/x/image/math/f32.Aff3;
// ToAff3/MatrixFromAff3 convert to and from that type so this package's
// matrices interoperate with other x/image-based geometry without a
// second representation of the same six numbers.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{A: 1, E: 1}

// Translate returns a matrix that translates by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, C: tx, E: 1, F: ty}
}

// Scale returns a matrix that scales by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a matrix that rotates by angle radians around the origin.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Concat returns the matrix that applies other first, then m — i.e. the
// standard 3x3 product m*other restricted to the affine subgroup.
func (m Matrix) Concat(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Invert returns the inverse of m and true, or the zero Matrix and false
// if m is singular. The determinant is computed as spec'd,
// det = B*D - A*E; this is the negation of the textbook A*E-B*D, and the
// cofactors below are derived against that convention so the result is
// the ordinary matrix inverse regardless of which sign is called "det".
func (m Matrix) Invert() (Matrix, bool) {
	det := m.B*m.D - m.A*m.E
	if det == 0 {
		return Matrix{}, false
	}
	invDet := 1 / det
	var inv Matrix
	inv.A = -m.E * invDet
	inv.B = m.B * invDet
	inv.D = m.D * invDet
	inv.E = -m.A * invDet
	inv.C = -(inv.A*m.C + inv.B*m.F)
	inv.F = -(inv.D*m.C + inv.E*m.F)
	return inv, true
}

// MapPoint transforms a single point.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// MapPoints transforms each of src into dst. src and dst may alias the
// same slice (including exactly overlapping, element for element), since
// each output point only reads its own input point.
func (m Matrix) MapPoints(dst, src []Point) {
	for i, p := range src {
		dst[i] = m.MapPoint(p)
	}
}

// ToAff3 returns m as a golang.org/x/image/math/f32.Aff3, so this
// package's matrices interoperate directly with x/image-based geometry
// (e.g. handing a CTM to a vector.Rasterizer-style consumer) without a
// second hand-rolled representation of the same six numbers.
func (m Matrix) ToAff3() f32.Aff3 {
	return f32.Aff3{
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	}
}

// MatrixFromAff3 builds a Matrix from a golang.org/x/image/math/f32.Aff3.
func MatrixFromAff3(a f32.Aff3) Matrix {
	return Matrix{
		A: float64(a[0]), B: float64(a[1]), C: float64(a[2]),
		D: float64(a[3]), E: float64(a[4]), F: float64(a[5]),
	}
}

// CTMStack is a LIFO stack of saved transforms, the "current
// transformation matrix" stack described in spec.md §3/§4.2. The zero
// value is not ready for use; call NewCTMStack.
type CTMStack struct {
	cur   Matrix
	saved []Matrix
}

// NewCTMStack returns a stack whose current matrix is Identity, with one
// save already issued so a caller's first Restore is always safe to
// balance against construction.
func NewCTMStack() *CTMStack {
	s := &CTMStack{cur: Identity}
	s.Save()
	return s
}

// Current returns the current transform.
func (s *CTMStack) Current() Matrix { return s.cur }

// SetCurrent replaces the current transform (used by Concat/Translate/
// Scale/Rotate on the owning Canvas).
func (s *CTMStack) SetCurrent(m Matrix) { s.cur = m }

// Save pushes a copy of the current transform.
func (s *CTMStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the most recently saved transform into current. Calling
// Restore without a matching prior Save is a caller-contract violation
// (spec.md §4.2/§7) and panics rather than silently doing nothing, so
// the bug surfaces immediately instead of producing a subtly wrong CTM.
func (s *CTMStack) Restore() {
	if len(s.saved) == 0 {
		panic("raster: Restore without matching Save")
	}
	n := len(s.saved) - 1
	s.cur = s.saved[n]
	s.saved = s.saved[:n]
}

// SaveScope saves the current transform and returns a function that
// restores it, for the scoped-acquisition pattern:
//
//	defer ctm.SaveScope()()
//
// This is the idiomatic Go stand-in for the guard-object/destructor
// pattern spec.md's Design Notes call for: Go has no destructors, so the
// returned closure plays that role under defer.
func (s *CTMStack) SaveScope() func() {
	s.Save()
	return s.Restore
}
