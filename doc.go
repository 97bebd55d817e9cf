// Package calligraphy implements a METAFONT-style pen-convolution engine.
//
// Given a path (a cyclic ring of cubic-Bezier knots with one designated
// boundary) and a pen (a small closed, strictly convex, counter-clockwise
// ring of knots representing a nib), the package convolves the pen along
// the path and emits the resulting outline as a flat sequence of cubic
// Bezier pieces. This is the core of a calligraphic stroke renderer: pen
// validation (BrushMake), curve subdivision at slope tees (SplitAtTees),
// and the pen-path convolution itself (ConvolveAll).
//
// Rasterization, pixel buffers, image encoding, and color mixing are
// explicitly out of scope — this package produces geometry only, packaged
// as a Stroke of cubic Bezier pieces plus an opaque color.
package calligraphy
