package calligraphy

import (
	"log/slog"
	"math"
	"sort"
)

// SplitAtTees walks path's ring and, for every real path segment
// (p, succ(p)) up to the next Regular boundary, inserts new knots at
// every inflection tee and pen-slope tee of that segment, using
// de Casteljau splits. It mutates path's ring in place; pen must
// already have passed BrushMake.
func SplitAtTees(path *Path, pen *Pen) {
	r := path.Ring
	p := path.First
	for {
		right := r.Right(p)
		if right.Kind != SideExplicit {
			break
		}
		q := r.Succ(p)
		splitSegmentAtTees(r, pen, p, q)
		p = q
		if p == path.First {
			break
		}
	}
}

func splitSegmentAtTees(r *Ring, pen *Pen, p, q KnotRef) {
	P0 := r.Pos(p)
	P1 := r.Right(p).Control
	P2 := r.Left(q).Control
	P3 := r.Pos(q)

	tees := inflectionTees(P0, P1, P2, P3)
	tees = append(tees, penSlopeTees(pen, P0, P1, P2, P3)...)

	// Roots within teeEpsilon of 0 or 1 are endpoint tees that rounding
	// in the root solver left just inside (0, 1); they are dropped too.
	const teeEpsilon = 1e-9
	filtered := make([]float64, 0, len(tees))
	for _, t := range tees {
		if t > teeEpsilon && t < 1-teeEpsilon {
			filtered = append(filtered, t)
		} else {
			Logger().Warn("calligraphy: dropped degenerate tee", slog.Float64("t", t))
		}
	}
	sort.Float64s(filtered)

	Logger().Debug("calligraphy: segment tees", slog.Int("count", len(filtered)))

	c0, c1, c2, c3 := P0, P1, P2, P3
	cur := p
	s := 0.0
	for _, t := range filtered {
		tPrime := (t - s) / (1 - s)
		if tPrime <= 0 || tPrime >= 1 {
			Logger().Warn("calligraphy: dropped duplicate/boundary tee", slog.Float64("t", t))
			continue
		}

		a := c0.Lerp(c1, tPrime)
		b := c1.Lerp(c2, tPrime)
		c := c2.Lerp(c3, tPrime)
		d := a.Lerp(b, tPrime)
		e := b.Lerp(c, tPrime)
		m := d.Lerp(e, tPrime)

		r.SetRight(cur, Explicit(a))
		mid := r.InsertAfter(cur, m, Explicit(d), Explicit(e))
		r.SetLeft(q, Explicit(c))

		cur = mid
		c0, c1, c2 = m, e, c
		s = t
	}
}

// inflectionTees finds the parameters t in (-inf, inf) where the cubic
// (P0, P1, P2, P3) has an inflection, by translating the segment so P0
// is the origin and rotating so P3 lies on the +x axis.
func inflectionTees(P0, P1, P2, P3 Point) []float64 {
	d := P3.Sub(P0)
	length := d.Length()
	if length == 0 {
		return nil
	}
	angle := math.Atan2(d.Y, d.X)
	o1 := P1.Sub(P0).Rotate(-angle)
	o2 := P2.Sub(P0).Rotate(-angle)

	x0, y0 := o1.X, o1.Y
	x1, y1 := o2.X, o2.Y
	x2 := length

	a := x1 * y0
	b := x2 * y0
	c := x0 * y1
	dd := x2 * y1

	A := 18 * (-3*a + 2*b + 3*c - dd)
	B := 9 * (-3*a + b + 3*c)
	C := 18 * (c - a)
	return SolveQuadraticSpec(A, B, C)
}

// penSlopeTees finds the parameters t where the segment's tangent is
// collinear with one of the pen's edge directions, iterating every
// pen edge.
func penSlopeTees(pen *Pen, P0, P1, P2, P3 Point) []float64 {
	v0 := P1.Sub(P0)
	v1 := P2.Sub(P1)
	v2 := P3.Sub(P2)

	pr := pen.Ring
	var tees []float64
	for e, started := pen.First, false; !started || e != pen.First; e = pr.Succ(e) {
		started = true
		next := pr.Succ(e)
		d := pr.Pos(next).Sub(pr.Pos(e))

		u := v0.Y*d.X - v0.X*d.Y
		v := v1.Y*d.X - v1.X*d.Y
		w := v2.Y*d.X - v2.X*d.Y
		tees = append(tees, SolveBezierQuadratic(u, v, w)...)
	}
	return tees
}
