package calligraphy

// Convolve runs the full pipeline: validate pen, subdivide path at
// tees, convolve forward, then convolve again over a reversed clone
// of the (now subdivided) path so the returned Stroke traces both
// edges of the outline. path's ring is mutated in place by the tee
// subdivision; callers that need the untouched original must clone it
// first.
func Convolve(path *Path, pen *Pen, color RGBA, opts ...ConvolveOption) (*Stroke, error) {
	if err := BrushMake(pen); err != nil {
		return nil, err
	}

	SplitAtTees(path, pen)

	stroke := &Stroke{Color: color}

	forward := ConvolveAll(path, pen, opts...)
	ShowSegments(forward, stroke)

	reversedRing, reversedFirst := path.Ring.Clone(path.First)
	reversedHead := reversedRing.Reverse(reversedFirst)
	backward := ConvolveAll(&Path{Ring: reversedRing, First: reversedHead}, pen, opts...)
	ShowSegments(backward, stroke)

	return stroke, nil
}
