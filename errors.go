package calligraphy

import "errors"

// ErrDuplicatePoint is returned by BrushMake when two adjacent pen
// knots coincide, producing a zero-length edge.
var ErrDuplicatePoint = errors.New("calligraphy: pen has a zero-length edge between adjacent knots")

// ErrNonLeftTurn is returned by BrushMake when the pen ring makes a
// non-strict-left turn somewhere — a right turn or a straight run —
// which means it is not strictly convex and counter-clockwise.
var ErrNonLeftTurn = errors.New("calligraphy: pen is not strictly convex and counter-clockwise")

// ErrTooManyTurns is returned by BrushMake when the pen's accumulated
// turning angle exceeds a full turn, meaning the ring winds around
// more than once.
var ErrTooManyTurns = errors.New("calligraphy: pen winds more than one full turn")
