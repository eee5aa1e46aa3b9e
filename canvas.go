package raster

import iraster "github.com/rsc/raster/internal/raster"

// Canvas is the entry point for drawing into a Bitmap: it owns a CTM
// stack and a borrowed reference to the destination bitmap, and
// implements every draw operation in spec.md §4.7 in terms of the edge
// builder, scan converters, and shaders in the rest of this package.
// Grounded on 9fans.net/go/draw's Image as the "everything draws
// through here" facade, generalized from Plan 9's network-protocol
// drawing ops to direct in-process calls against an owned CTM stack.
type Canvas struct {
	bitmap *Bitmap
	ctm    *CTMStack

	edges iraster.EdgeBag // reused scratch space across draws
	row   []Color         // reused shader scratch row
}

// NewCanvas returns a Canvas drawing into bitmap, with an identity CTM.
func NewCanvas(bitmap *Bitmap) *Canvas {
	return &Canvas{bitmap: bitmap, ctm: NewCTMStack()}
}

// Save pushes a copy of the current transform.
func (c *Canvas) Save() { c.ctm.Save() }

// Restore pops the most recently saved transform. Panics if there is no
// matching Save, per spec.md §4.2's caller contract.
func (c *Canvas) Restore() { c.ctm.Restore() }

// Concat premultiplies the current transform by m: CTM = CTM * m.
func (c *Canvas) Concat(m Matrix) { c.ctm.SetCurrent(c.ctm.Current().Concat(m)) }

// Translate concatenates a translation onto the current transform.
func (c *Canvas) Translate(tx, ty float64) { c.Concat(Translate(tx, ty)) }

// Scale concatenates a scale onto the current transform.
func (c *Canvas) Scale(sx, sy float64) { c.Concat(Scale(sx, sy)) }

// Rotate concatenates a rotation (radians) onto the current transform.
func (c *Canvas) Rotate(angle float64) { c.Concat(Rotate(angle)) }

// CTM returns the current transform.
func (c *Canvas) CTM() Matrix { return c.ctm.Current() }

// drawPaint fills the entire device bounds with paint, per spec.md §4.7.
func (c *Canvas) DrawPaint(paint Paint) {
	c.DrawRect(c.bitmap.DeviceRect(), paint)
}

// Clear fills the entire bitmap with color using the Src blend mode,
// bypassing any existing content. Not named in spec.md's distillation;
// a convenience built the same way DrawPaint is, with a fixed Src mode
// (see SPEC_FULL.md's supplemented-features section).
func (c *Canvas) Clear(color Color) {
	c.DrawPaint(Paint{Color: color, Mode: Src})
}

// DrawRect decomposes r into its 4 corners and fills it as a convex
// polygon, per spec.md §4.7.
func (c *Canvas) DrawRect(r Rect, paint Paint) {
	corners := r.Corners()
	c.DrawConvexPolygon(corners[:], paint)
}

// DrawRoundRect fills a rectangle with quarter-circle corners of the
// given radius, per SPEC_FULL.md's supplemented-features section: it
// builds the contour with Path.AddRoundRect and fills it exactly like
// any other DrawPath call.
func (c *Canvas) DrawRoundRect(r Rect, radius float64, paint Paint) {
	p := NewPath()
	p.AddRoundRect(r, radius, CW)
	c.DrawPath(p, paint)
}

// DrawConvexPolygon maps pts through the CTM, builds clipped edges for
// every consecutive pair (including the closing pair back to pts[0]),
// and scan-converts assuming strict convexity, per spec.md §4.7.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint Paint) {
	if len(pts) < 3 {
		return
	}
	if paint.Shader != nil && !paint.Shader.SetContext(c.CTM()) {
		return
	}

	ctm := c.CTM()
	device := make([]Point, len(pts))
	ctm.MapPoints(device, pts)

	c.edges.Reset()
	w, h := float64(c.bitmap.Width), float64(c.bitmap.Height)
	for i := range device {
		p0 := device[i]
		p1 := device[(i+1)%len(device)]
		c.edges.ClipSegment(toIEdgePoint(p0), toIEdgePoint(p1), w, h)
	}
	if len(c.edges.Edges) == 0 {
		return
	}
	iraster.ScanConvex(c.edges.Edges, func(y, x0, x1 int) {
		c.blit(y, x0, x1, paint)
	})
}

// DrawPath copy-transforms path by the CTM, walks it with an Edger
// (flattening Quads/Cubics into line segments), builds/clips edges for
// every resulting segment, and scan-converts with the non-zero winding
// rule, per spec.md §4.7.
func (c *Canvas) DrawPath(path *Path, paint Paint) {
	if paint.Shader != nil && !paint.Shader.SetContext(c.CTM()) {
		return
	}

	transformed := path.Clone()
	transformed.Transform(c.CTM())

	c.edges.Reset()
	w, h := float64(c.bitmap.Width), float64(c.bitmap.Height)
	e := newEdger(transformed)
Walk:
	for {
		verb, pts := e.next()
		switch verb {
		case Done:
			break Walk
		case Line:
			c.edges.ClipSegment(toIEdgePoint(pts[0]), toIEdgePoint(pts[1]), w, h)
		case Quad:
			flattenQuad(pts[0], pts[1], pts[2], func(a, b Point) {
				c.edges.ClipSegment(toIEdgePoint(a), toIEdgePoint(b), w, h)
			})
		case Cubic:
			flattenCubic(pts[0], pts[1], pts[2], pts[3], func(a, b Point) {
				c.edges.ClipSegment(toIEdgePoint(a), toIEdgePoint(b), w, h)
			})
		}
	}

	if len(c.edges.Edges) == 0 {
		return
	}
	iraster.ScanComplex(c.edges.Edges, func(y, x0, x1 int) {
		c.blit(y, x0, x1, paint)
	})
}

// DrawTriangle synthesizes a shader for the (colors,texs) case per
// spec.md §4.7's table, then fills p0,p1,p2 as a convex polygon.
func (c *Canvas) DrawTriangle(p0, p1, p2 Point, colors *[3]Color, texs *[3]Point, paint Paint) {
	effective := paint
	switch {
	case colors == nil && texs == nil:
		// paint's own shader (or plain color) stands.
	case colors != nil && texs == nil:
		effective.Shader = NewTriColorShader(p0, p1, p2, colors[0], colors[1], colors[2])
	case colors == nil && texs != nil:
		effective.Shader = NewProxyShader(paint.Shader, textureMatrix(p0, p1, p2, texs[0], texs[1], texs[2]))
	default:
		tri := NewTriColorShader(p0, p1, p2, colors[0], colors[1], colors[2])
		proxy := NewProxyShader(paint.Shader, textureMatrix(p0, p1, p2, texs[0], texs[1], texs[2]))
		effective.Shader = NewCompositeShader(tri, proxy)
	}
	c.DrawConvexPolygon([]Point{p0, p1, p2}, effective)
}

// textureMatrix returns P·T⁻¹, mapping texture-space points into the
// triangle's point space (T⁻¹ takes them to the barycentric (u,v) space
// anchored at p0, then P to point space), per spec.md §4.7's
// drawTriangle formula: P maps barycentric to point space, T maps
// barycentric to texture space.
func textureMatrix(p0, p1, p2, t0, t1, t2 Point) Matrix {
	u, v := p1.Sub(p0), p2.Sub(p0)
	p := Matrix{A: u.X, B: v.X, C: p0.X, D: u.Y, E: v.Y, F: p0.Y}
	tu, tv := t1.Sub(t0), t2.Sub(t0)
	t := Matrix{A: tu.X, B: tv.X, C: t0.X, D: tu.Y, E: tv.Y, F: t0.Y}
	tInv, ok := t.Invert()
	if !ok {
		return Identity
	}
	return p.Concat(tInv)
}

// DrawMesh dispatches each of count triangles, indices taken in groups
// of 3, to DrawTriangle, per spec.md §4.7.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, count int, indices []int, paint Paint) {
	for i := 0; i < count; i++ {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		var cptr *[3]Color
		if colors != nil {
			cptr = &[3]Color{colors[i0], colors[i1], colors[i2]}
		}
		var tptr *[3]Point
		if texs != nil {
			tptr = &[3]Point{texs[i0], texs[i1], texs[i2]}
		}
		c.DrawTriangle(verts[i0], verts[i1], verts[i2], cptr, tptr, paint)
	}
}

// DrawQuad generates a (level+2)x(level+2) grid of interior/edge points
// by bilinear interpolation of the quad's 4 corners (and, if present,
// colors/texs), then emits 2*(level+1)^2 triangles into DrawMesh, per
// spec.md §4.7. verts is ordered 0=TL,1=TR,2=BR,3=BL; the diagonal of
// each grid cell runs top-right to bottom-left.
func (c *Canvas) DrawQuad(verts [4]Point, colors *[4]Color, texs *[4]Point, level int, paint Paint) {
	n := level + 2
	gridPts := make([]Point, n*n)
	var gridColors []Color
	var gridTexs []Point
	if colors != nil {
		gridColors = make([]Color, n*n)
	}
	if texs != nil {
		gridTexs = make([]Point, n*n)
	}

	for row := 0; row < n; row++ {
		v := float64(row) / float64(n-1)
		for col := 0; col < n; col++ {
			u := float64(col) / float64(n-1)
			idx := row*n + col
			gridPts[idx] = bilerpPoint(verts[0], verts[1], verts[3], verts[2], u, v)
			if colors != nil {
				gridColors[idx] = bilerpColor(colors[0], colors[1], colors[3], colors[2], u, v)
			}
			if texs != nil {
				gridTexs[idx] = bilerpPoint(texs[0], texs[1], texs[3], texs[2], u, v)
			}
		}
	}

	triCount := 2 * (level + 1) * (level + 1)
	indices := make([]int, 0, triCount*3)
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			tl := row*n + col
			tr := row*n + col + 1
			bl := (row+1)*n + col
			br := (row+1)*n + col + 1
			// Diagonal runs top-right to bottom-left (tr,bl).
			indices = append(indices, tl, tr, bl)
			indices = append(indices, tr, br, bl)
		}
	}
	c.DrawMesh(gridPts, gridColors, gridTexs, triCount, indices, paint)
}

// bilerpPoint bilinearly interpolates the 4 corners tl,tr,bl,br at (u,v).
func bilerpPoint(tl, tr, bl, br Point, u, v float64) Point {
	top := tl.Lerp(tr, u)
	bot := bl.Lerp(br, u)
	return top.Lerp(bot, v)
}

func bilerpColor(tl, tr, bl, br Color, u, v float64) Color {
	top := tl.Lerp(tr, u)
	bot := bl.Lerp(br, u)
	return top.Lerp(bot, v)
}

// blit fills device row [x0,x1) on scanline y with paint, per spec.md
// §4.7: if the paint has a shader, shade into a scratch row then blend
// each source pixel; otherwise pack the paint's color once and blend
// that constant across the row.
func (c *Canvas) blit(y, x0, x1 int, paint Paint) {
	if x0 >= x1 {
		return
	}
	if y < 0 || y >= c.bitmap.Height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.bitmap.Width {
		x1 = c.bitmap.Width
	}
	if x0 >= x1 {
		return
	}

	if paint.Shader != nil {
		count := x1 - x0
		if cap(c.row) < count {
			c.row = make([]Color, count)
		}
		row := c.row[:count]
		paint.Shader.ShadeRow(x0, y, count, row)
		for i, x := 0, x0; x < x1; i, x = i+1, x+1 {
			src := row[i].premultipliedPixel()
			dst := c.bitmap.At(x, y)
			c.bitmap.Set(x, y, iraster.Blend(paint.Mode, src, dst))
		}
		return
	}

	src := paint.Color.Pixel()
	for x := x0; x < x1; x++ {
		dst := c.bitmap.At(x, y)
		c.bitmap.Set(x, y, iraster.Blend(paint.Mode, src, dst))
	}
}

// toIEdgePoint converts a public Point to the internal edge-builder's
// package-local Point, keeping internal/raster free of a dependency on
// this package (it sits below raster in the import graph).
func toIEdgePoint(p Point) iraster.Point {
	return iraster.Point{X: p.X, Y: p.Y}
}
