// Package renderer draws a non-Euclidean tile graph from a first-person
// viewpoint onto a 2D drawing surface. It walks the graph outward from the
// viewer's tile, narrowing an angular visibility wedge as it recurses, and
// splits the view wherever the grid's connectivity disagrees with
// flat-plane geometry.
package renderer

import "image/color"

// Surface defines the 2D immediate-mode drawing backend the renderer draws
// against. Implementations can include a software raster context (gg), an
// SVG writer, or a test recorder.
//
// Coordinates are device pixels, origin at the top-left, y growing
// downward, as modified by the current transform. Push/Pop save and
// restore the transform together with any clip regions established since
// the matching Push.
type Surface interface {
	// Clear fills the whole surface with a color, ignoring transform
	// and clip state.
	Clear(c color.Color)

	// SetFill sets the color used by FillRect and FillText.
	SetFill(c color.Color)

	// SetStroke sets the color and line width used by StrokeRect and
	// StrokeLine.
	SetStroke(c color.Color, width float64)

	// Push saves the current transform and clip state; Pop restores it.
	Push()
	Pop()

	// Translate and Rotate compose onto the current transform. Rotate is
	// in radians; a positive angle turns screen-up toward screen-right.
	Translate(x, y float64)
	Rotate(rad float64)

	// FillRect and StrokeRect draw a rectangle with top-left corner
	// (x, y) under the current transform.
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	// StrokeLine draws a line segment under the current transform.
	StrokeLine(x1, y1, x2, y2 float64)

	// ClipPolygon restricts subsequent drawing to the closed polygon,
	// intersected with any clip already in effect, until the enclosing
	// Push is popped. The polygon is given under the current transform.
	ClipPolygon(xs, ys []float64)

	// FillText draws a text label whose anchor point (left end of the
	// baseline) is mapped through the current transform. Glyphs may be
	// drawn upright regardless of the transform's rotation.
	FillText(s string, x, y float64)

	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string) float64
}
