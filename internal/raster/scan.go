package raster

import "sort"

// RowFunc receives one filled span [x0,x1) on scanline y. x0 may equal
// x1 (empty span) only in edge cases the converters already filter out,
// but callers should treat an empty span as a no-op regardless.
type RowFunc func(y, x0, x1 int)

// sortEdges orders edges by (Top, x at Top, slope) ascending, the key
// spec.md §4.5 names for both the convex walk's one-time sort and the
// complex walk's initial global sort.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		ax, bx := a.XAtRow(a.Top), b.XAtRow(b.Top)
		if ax != bx {
			return ax < bx
		}
		return a.M < b.M
	})
}

// ScanConvex walks a strictly convex polygon's already-clipped, sorted
// edges two at a time (left edge, right edge) and emits one span per
// row via emit. Grounded on spec.md §4.5's convex two-edge walk; the
// precondition (strict convexity, so the initial sort order stays valid
// without re-sorting mid-walk) is the caller's responsibility — see
// spec.md's Design Notes §9.
func ScanConvex(edges []Edge, emit RowFunc) {
	if len(edges) < 2 {
		return
	}
	sortEdges(edges)

	minY := edges[0].Top
	maxY := edges[len(edges)-1].Bottom
	l, r := 0, 1
	next := 2

	active := func(e *Edge, y int) bool {
		return e.Top <= y && y < e.Bottom
	}

	for y := minY; y < maxY; y++ {
		left, right := &edges[l], &edges[r]
		xL := roundHalfUp(left.XAtRow(y))
		xR := roundHalfUp(right.XAtRow(y))
		if xL < xR {
			emit(y, xL, xR)
		} else if xR < xL {
			emit(y, xR, xL)
		}

		if !active(left, y+1) && next < len(edges) {
			l = next
			next++
		}
		if !active(right, y+1) && next < len(edges) {
			r = next
			next++
		}
	}
}

// ScanComplex walks a set of already-clipped edges (possibly several
// overlapping or self-intersecting contours) using the non-zero winding
// rule, per spec.md §4.5. Grounded directly on
// memdraw/fillpoly.go's xscan: edges are sorted once by (top, x, slope),
// then an active list is grown/shrunk/re-sorted row by row.
func ScanComplex(edges []Edge, emit RowFunc) {
	if len(edges) == 0 {
		return
	}
	sortEdges(edges)

	y := edges[0].Top
	nextToAdmit := 0
	var active []int // indices into edges

	for {
		for nextToAdmit < len(edges) && edges[nextToAdmit].Top == y {
			edges[nextToAdmit].ResetX(y)
			active = append(active, nextToAdmit)
			nextToAdmit++
		}
		if len(active) == 0 {
			if nextToAdmit >= len(edges) {
				return
			}
			y = edges[nextToAdmit].Top
			continue
		}

		sort.Slice(active, func(i, j int) bool {
			a, b := &edges[active[i]], &edges[active[j]]
			if a.CurX != b.CurX {
				return a.CurX < b.CurX
			}
			return a.M < b.M
		})

		winding := 0
		spanStart := 0
		haveSpan := false
		for _, idx := range active {
			e := &edges[idx]
			wasZero := winding == 0
			winding += e.Winding
			isZero := winding == 0
			if wasZero && !isZero {
				spanStart = roundHalfUp(e.CurX)
				haveSpan = true
			} else if !wasZero && isZero && haveSpan {
				x1 := roundHalfUp(e.CurX)
				if spanStart < x1 {
					emit(y, spanStart, x1)
				}
				haveSpan = false
			}
		}

		kept := active[:0]
		for _, idx := range active {
			if edges[idx].Bottom > y+1 {
				edges[idx].CurX += edges[idx].M
				kept = append(kept, idx)
			}
		}
		active = kept

		if len(active) == 0 {
			if nextToAdmit >= len(edges) {
				return
			}
			y = edges[nextToAdmit].Top
			continue
		}
		y++
	}
}
