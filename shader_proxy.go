package raster

// ProxyShader wraps another shader with an additional local matrix
// applied before it, per spec.md §4.6: setContext forwards ctm·extra to
// the wrapped shader. Used by drawTriangle/drawQuad to adapt a bitmap
// (or other) shader from texture space into a specific triangle's
// barycentric space.
type ProxyShader struct {
	child Shader
	extra Matrix
}

// NewProxyShader returns a shader that forwards to child through the
// extra local matrix.
func NewProxyShader(child Shader, extra Matrix) *ProxyShader {
	return &ProxyShader{child: child, extra: extra}
}

func (s *ProxyShader) IsOpaque() bool { return s.child.IsOpaque() }

func (s *ProxyShader) SetContext(ctm Matrix) bool {
	return s.child.SetContext(ctm.Concat(s.extra))
}

func (s *ProxyShader) ShadeRow(x, y, count int, out []Color) {
	s.child.ShadeRow(x, y, count, out)
}
