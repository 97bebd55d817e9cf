package calligraphy

// Path builds a path ring the way a METAFONT-style path grammar would:
// MoveTo starts the ring, LineTo/CurveTo extend it, and Close finalizes
// the builder chain. This is the "ring builder" external collaborator
// the convolution core expects as input but does not implement itself
// — the core only ever reads a ring that already satisfies the path
// invariant (exactly one knot with Right == Regular).
type Path struct {
	Ring  *Ring
	First KnotRef

	tail KnotRef
}

// MoveTo starts a new path at (x, y). The head knot begins with
// Left == Open, Right == Regular, per the state machine's
// "construction of a path head" transition.
func MoveTo(x, y float64) *Path {
	r, first := NewKnotRing(Point{X: x, Y: y}, Open(), Regular())
	return &Path{Ring: r, First: first, tail: first}
}

// LineTo extends the path with a straight segment to (x, y),
// represented as a cubic whose controls sit on the 1/3-2/3 chord —
// the same convention BrushMake uses for pen edges.
func (p *Path) LineTo(x, y float64) *Path {
	to := Point{X: x, Y: y}
	from := p.Ring.Pos(p.tail)
	third := to.Sub(from).Div(3)
	p.Ring.SetRight(p.tail, Explicit(from.Add(third)))
	p.tail = p.Ring.InsertAfter(p.tail, to, Explicit(to.Sub(third)), Regular())
	return p
}

// CurveTo extends the path with an explicit cubic Bezier segment to
// (x, y) using the given control points.
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Ring.SetRight(p.tail, Explicit(Point{X: c1x, Y: c1y}))
	to := Point{X: x, Y: y}
	p.tail = p.Ring.InsertAfter(p.tail, to, Explicit(Point{X: c2x, Y: c2y}), Regular())
	return p
}

// Close finalizes the builder chain. The underlying ring is cyclic by
// construction (every InsertAfter keeps it closed), so Close performs
// no structural work; it exists so callers used to an explicit
// moveto/.../close grammar have a place to end the chain.
func (p *Path) Close() *Path {
	return p
}
