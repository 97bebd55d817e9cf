package calligraphy

// RGBA is an opaque color value carried through a Stroke. This
// package never computes or mixes colors — Color-mixing is an
// external collaborator's concern — it only stores whatever color the
// caller attaches to a stroke and passes it through untouched.
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque RGBA with full alpha.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}
