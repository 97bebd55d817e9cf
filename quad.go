package calligraphy

import "math"

// SolveQuadraticSpec finds the real roots of A*t^2 - 2*B*t + C = 0,
// where the caller supplies B as minus half of the conventional linear
// coefficient (B = -b/2 of A*t^2 + b*t + C = 0). This unconventional
// calling contract is deliberate: it lets every caller in this package
// hand in a B it already has lying around from a Bezier-to-quadratic
// reduction (see SolveBezierQuadratic) without an extra multiply, and
// it is what makes the Citardauq branch below fall out cleanly.
//
// Returns 0, 1, or 2 roots, in no particular order.
func SolveQuadraticSpec(A, B, C float64) []float64 {
	switch {
	case A == 0 && B != 0:
		return []float64{C / (2 * B)}
	case A == 0 && B == 0:
		return nil
	case C == 0:
		roots := []float64{0}
		if B != 0 {
			roots = append(roots, 2*B/A)
		}
		return roots
	default:
		D := B*B - A*C
		switch {
		case D < 0:
			return nil
		case D == 0:
			return []float64{B / A}
		default:
			sq := math.Sqrt(D)
			// Citardauq's method: compute the root that doesn't
			// suffer cancellation directly, then derive the other
			// from the product of roots (C/A). A naive
			// (-b +/- sqrt(D)) / (2a) visibly loses precision here
			// when B and sqrt(D) are close in magnitude.
			if B < 0 {
				return []float64{C / (B - sq), (B - sq) / A}
			}
			return []float64{C / (B + sq), (B + sq) / A}
		}
	}
}

// SolveBezierQuadratic finds the roots t in the degree-2 Bernstein
// polynomial with control values u, v, w: (1-t)^2*u + 2t(1-t)*v +
// t^2*w = 0. It reduces to SolveQuadraticSpec(u-2v+w, u-v, u).
func SolveBezierQuadratic(u, v, w float64) []float64 {
	return SolveQuadraticSpec(u-2*v+w, u-v, u)
}
