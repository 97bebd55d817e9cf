package calligraphy

// SideKind identifies which variant a SideDescriptor holds.
type SideKind int

const (
	// SideRegular marks a path endpoint: the boundary between one chain
	// of segments and the next. Carries no payload.
	SideRegular SideKind = iota
	// SideOpen marks an undefined direction, used transiently during
	// ring construction and reversal.
	SideOpen
	// SideExplicit carries an explicit cubic control point.
	SideExplicit
	// SideGiven carries a tension/angle pair. Accepted for
	// completeness but never produced or interpreted by this package.
	SideGiven
	// SideCurl carries a tension/curl pair. Accepted for completeness
	// but never produced or interpreted by this package.
	SideCurl
)

// SideDescriptor is a closed tagged union describing one side (left or
// right) of a knot. Only Regular, Open, and Explicit are read by the
// convolution core; Given and Curl are accepted as inert payloads so a
// ring built by an external collaborator that still carries them from a
// METAFONT-style path grammar does not need to be pre-filtered.
type SideDescriptor struct {
	Kind SideKind

	// Control is the explicit control point. Valid only when Kind ==
	// SideExplicit.
	Control Point

	// Tension and Angle/Curl back Given and Curl. Never read by the
	// core; carried opaquely.
	Tension float64
	Angle   float64
	Curl    float64
}

// Regular returns a Regular side descriptor.
func Regular() SideDescriptor { return SideDescriptor{Kind: SideRegular} }

// Open returns an Open side descriptor.
func Open() SideDescriptor { return SideDescriptor{Kind: SideOpen} }

// Explicit returns an Explicit side descriptor with the given control point.
func Explicit(p Point) SideDescriptor {
	return SideDescriptor{Kind: SideExplicit, Control: p}
}

// Given returns a Given side descriptor. Unused by the core; provided so
// callers building a fuller path grammar have a place to put the value.
func Given(tension, angle float64) SideDescriptor {
	return SideDescriptor{Kind: SideGiven, Tension: tension, Angle: angle}
}

// CurlSide returns a Curl side descriptor. Unused by the core.
func CurlSide(tension, curl float64) SideDescriptor {
	return SideDescriptor{Kind: SideCurl, Tension: tension, Curl: curl}
}

// IsExplicit reports whether the descriptor holds an explicit control point.
func (s SideDescriptor) IsExplicit() bool { return s.Kind == SideExplicit }

// IsRegular reports whether the descriptor is the Regular boundary sentinel.
func (s SideDescriptor) IsRegular() bool { return s.Kind == SideRegular }

// IsOpen reports whether the descriptor is the transient Open marker.
func (s SideDescriptor) IsOpen() bool { return s.Kind == SideOpen }
