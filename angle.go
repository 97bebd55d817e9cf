package calligraphy

import "math"

// reduceAngle maps theta into (-pi, pi], assuming theta is already
// within [-2pi, 2pi]. This is the single-shot reduction the pen
// validator uses on each step's turning angle, not a general modulo.
func reduceAngle(theta float64) float64 {
	switch {
	case theta > math.Pi:
		return theta - 2*math.Pi
	case theta < -math.Pi:
		return theta + 2*math.Pi
	default:
		return theta
	}
}
