package calligraphy

import (
	"log/slog"
	"math"
)

// clockwise classifies a turn from vector a to vector b. A tolerance
// clamp treats any near-colinear pair (|cross| < 1e-12) as clockwise;
// this is deliberate and biases corner emission toward inclusion
// rather than dropping segments at axis-aligned pens.
func clockwise(a, b Point) bool {
	cross := a.Cross(b)
	if math.Abs(cross) < 1e-12 {
		return true
	}
	return cross >= 0
}

// withinTurn decides whether v3 lies in the convex angular arc spanned
// by v1 and v2: swept counter-clockwise from v1 to v2 when that turn is
// a left turn (anti-parallel counts as left, per clockwise's clamp),
// and from v2 to v1 otherwise. The arc's boundaries count as inside.
func withinTurn(v1, v2, v3 Point) bool {
	if !clockwise(v1, v2) {
		return clockwise(v2, v3) && clockwise(v3, v1)
	}
	return clockwise(v1, v3) && clockwise(v3, v2)
}

// TraceBuffer is a flat list of output points; every four consecutive
// points are one emitted cubic piece (start, c1, c2, end), in strict
// emission order.
type TraceBuffer []Point

// ConvolveAll sweeps pen around every real segment of path's ring and
// returns the resulting trace buffer. path's ring is read-only here
// (SplitAtTees is the mutating pass); pen must already have passed
// BrushMake.
func ConvolveAll(path *Path, pen *Pen, opts ...ConvolveOption) TraceBuffer {
	cfg := defaultConvolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	trace := make(TraceBuffer, 0, cfg.traceCapacityHint)
	r := path.Ring
	for p := path.First; ; {
		if r.Right(p).Kind != SideExplicit {
			break
		}
		q := r.Succ(p)
		convolveSegment(r, p, q, pen, &trace)
		p = q
		if p == path.First {
			break
		}
	}
	Logger().Debug("calligraphy: convolve_all complete", slog.Int("pieces", len(trace)/4))
	return trace
}

func convolveSegment(r *Ring, p, q KnotRef, pen *Pen, trace *TraceBuffer) {
	vOut := r.Right(p).Control.Sub(r.Pos(p))

	var vIn Point
	if left := r.Left(p); left.IsExplicit() {
		vIn = r.Pos(p).Sub(left.Control)
	} else {
		vIn = vOut.Mul(-1)
	}

	vNext := r.Pos(q).Sub(r.Pos(p))

	pr := pen.Ring
	for knot, started := pen.First, false; !started || knot != pen.First; knot = pr.Succ(knot) {
		started = true
		convolve(r, p, q, vIn, vOut, vNext, pr, knot, trace)
	}
}

// convolve is the heart of the method: it classifies, via withinTurn,
// whether the path's turn arc at p admits a forward-emitted piece
// translated by the pen knot r, and whether the pen's turn arc at r
// admits a reverse-emitted piece translated by p.
func convolve(pathRing *Ring, p, q KnotRef, v1, v2, v3 Point, penRing *Ring, r KnotRef, trace *TraceBuffer) {
	pred := penRing.Pred(r)
	succ := penRing.Succ(r)
	v4 := penRing.Pos(r).Sub(penRing.Pos(pred))
	v5 := penRing.Pos(succ).Sub(penRing.Pos(r))

	if withinTurn(v1, v2, v5) {
		rPos := penRing.Pos(r)
		*trace = append(*trace,
			pathRing.Pos(p).Add(rPos),
			pathRing.Right(p).Control.Add(rPos),
			pathRing.Left(q).Control.Add(rPos),
			pathRing.Pos(q).Add(rPos),
		)
	}

	if withinTurn(v4, v5, v3) {
		pPos := pathRing.Pos(p)
		*trace = append(*trace,
			penRing.Pos(r).Add(pPos),
			penRing.Right(r).Control.Add(pPos),
			penRing.Left(succ).Control.Add(pPos),
			penRing.Pos(succ).Add(pPos),
		)
	}
}
