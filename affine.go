package calligraphy

import "math"

// Matrix is a 2D affine transform, applied to a pen ring before
// BrushMake. This is an external collaborator: the convolution core
// is entirely oblivious to how (or whether) a pen was transformed
// before validation.
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation transform.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, E: 1, C: x, F: y}
}

// Scale returns a scaling transform.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// transformRing applies m to every knot position and every explicit
// side control in the ring reachable from first, in place.
func transformRing(r *Ring, first KnotRef, m Matrix) {
	for k, started := first, false; !started || k != first; k = r.Succ(k) {
		started = true
		r.SetPos(k, m.TransformPoint(r.Pos(k)))
		if left := r.Left(k); left.IsExplicit() {
			r.SetLeft(k, Explicit(m.TransformPoint(left.Control)))
		}
		if right := r.Right(k); right.IsExplicit() {
			r.SetRight(k, Explicit(m.TransformPoint(right.Control)))
		}
	}
}

// Transformed returns a clone of pen with m applied to every knot,
// followed by BrushMake. This is a convenience wrapper around the
// clone-transform-validate sequence a caller would otherwise hand-roll
// every time it wants to sweep a rotated or scaled nib; it does not
// change BrushMake's validation semantics.
func (pen *Pen) Transformed(m Matrix) (*Pen, error) {
	clonedRing, clonedFirst := pen.Ring.Clone(pen.First)
	transformRing(clonedRing, clonedFirst, m)
	out := NewPen(clonedRing, clonedFirst)
	if err := BrushMake(out); err != nil {
		return nil, err
	}
	return out, nil
}
