package calligraphy

import (
	"log/slog"
	"math"
)

// Pen is a knot ring treated as a nib shape: a candidate that
// BrushMake must validate (and, on success, initialize) before any
// convolution can use it.
type Pen struct {
	Ring  *Ring
	First KnotRef
}

// NewPen wraps an existing ring as a pen candidate. The ring is not
// validated until BrushMake is called on it.
func NewPen(ring *Ring, first KnotRef) *Pen {
	return &Pen{Ring: ring, First: first}
}

// BrushMake validates that pen's ring is a closed, strictly convex,
// counter-clockwise pen with total turning angle in (0, 2*pi], and on
// success materializes every side descriptor as an explicit control
// point on the 1/3-2/3 chord between adjacent knots.
//
// Returns ErrDuplicatePoint if two adjacent knots coincide,
// ErrNonLeftTurn if any turn is not strictly to the left, or
// ErrTooManyTurns if the ring winds more than once. On any error the
// ring is left partially mutated (earlier edges may already carry
// explicit controls); a failing pen must not be reused by a caller
// without rebuilding it.
func BrushMake(pen *Pen) error {
	r := pen.Ring
	first := pen.First

	pred := r.Pred(first)
	prevV := r.Pos(first).Sub(r.Pos(pred))
	if prevV.X == 0 && prevV.Y == 0 {
		return ErrDuplicatePoint
	}

	alpha := 0.0
	for p := first; ; {
		q := r.Succ(p)
		v := r.Pos(q).Sub(r.Pos(p))
		if v.X == 0 && v.Y == 0 {
			return ErrDuplicatePoint
		}

		theta := reduceAngle(math.Atan2(v.Y, v.X) - math.Atan2(prevV.Y, prevV.X))
		if theta <= 0 {
			return ErrNonLeftTurn
		}
		alpha += theta

		third := v.Div(3)
		r.SetRight(p, Explicit(r.Pos(p).Add(third)))
		r.SetLeft(q, Explicit(r.Pos(q).Sub(third)))

		prevV = v
		p = q
		if p == first {
			break
		}
	}

	if alpha > 2*math.Pi {
		return ErrTooManyTurns
	}

	Logger().Debug("calligraphy: pen validated", slog.Int("knots", r.Len()), slog.Float64("turning_angle", alpha))
	return nil
}
