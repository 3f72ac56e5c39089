// Package ggsurface adapts a gogpu/gg drawing context to the renderer's
// Surface contract. It is the canonical software backend: the recursive
// renderer draws into it, and frontends blit the resulting image wherever
// they like (a window, a PNG on disk).
package ggsurface

import (
	"image"
	"image/color"
	"os"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"twistgrid/pkg/game/renderer"
)

// DefaultFontSize is the label size in points when the caller does not
// pick one.
const DefaultFontSize = 13

// systemFontPaths are tried in order when no font file is given on the
// command line. Covers the usual suspects per platform.
var systemFontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	// macOS
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Monaco.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arial.ttf",
}

// FindSystemFont returns the first readable font file from the known
// per-platform locations, or "" when none exists. Labels are simply not
// drawn in that case.
func FindSystemFont() string {
	for _, path := range systemFontPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// clipPoly is one active clip polygon, vertices in device coordinates.
type clipPoly struct {
	xs, ys []float64
}

// contains reports whether the device point (x, y) lies inside the
// polygon, by even-odd ray casting.
func (p clipPoly) contains(x, y float64) bool {
	inside := false
	n := len(p.xs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if (p.ys[i] > y) != (p.ys[j] > y) &&
			x < (p.xs[j]-p.xs[i])*(y-p.ys[i])/(p.ys[j]-p.ys[i])+p.xs[i] {
			inside = !inside
		}
	}
	return inside
}

// Surface wraps a gg.Context. gg keeps a single current color, while the
// renderer sets fill and stroke independently and expects both to stick,
// so the colors are held here and applied just before each draw call.
//
// gg's text path writes glyphs straight to the pixel buffer, outside the
// path pipeline, so the surface also mirrors the clip stack here in
// device coordinates to gate FillText on its own.
type Surface struct {
	dc *gg.Context

	fillColor   color.Color
	strokeColor color.Color
	strokeWidth float64

	clips []clipPoly
	saved [][]clipPoly

	source *ggtext.FontSource
	points float64
}

var _ renderer.Surface = (*Surface)(nil)

// New creates a surface with the given pixel dimensions and no font.
// Text calls are silently skipped until LoadFont succeeds.
func New(width, height int) *Surface {
	return &Surface{
		dc:          gg.NewContext(width, height),
		fillColor:   color.White,
		strokeColor: color.White,
		strokeWidth: 1,
		points:      DefaultFontSize,
	}
}

// LoadFont loads a TTF/OTF file and uses it for all subsequent FillText
// calls. points <= 0 keeps the current size.
func (s *Surface) LoadFont(path string, points float64) error {
	source, err := ggtext.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	if points > 0 {
		s.points = points
	}
	if s.source != nil {
		s.source.Close()
	}
	s.source = source
	s.dc.SetFont(source.Face(s.points))
	return nil
}

// Image returns the rendered frame. The returned image shares the
// surface's pixel buffer; copy it before the next render if it must
// survive.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Resize reallocates the pixel buffer for a new viewport size. The font
// and current colors carry over.
func (s *Surface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

// SavePNG writes the current frame to disk.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close releases the font source and the drawing context.
func (s *Surface) Close() error {
	if s.source != nil {
		s.source.Close()
		s.source = nil
	}
	return s.dc.Close()
}

func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) SetFill(c color.Color) {
	s.fillColor = c
}

func (s *Surface) SetStroke(c color.Color, width float64) {
	s.strokeColor = c
	s.strokeWidth = width
}

func (s *Surface) Push() {
	s.dc.Push()
	s.saved = append(s.saved, append([]clipPoly(nil), s.clips...))
}

func (s *Surface) Pop() {
	s.dc.Pop()
	if n := len(s.saved); n > 0 {
		s.clips = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(rad float64)     { s.dc.Rotate(rad) }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.SetColor(s.fillColor)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.dc.SetColor(s.strokeColor)
	s.dc.SetLineWidth(s.strokeWidth)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64) {
	s.dc.SetColor(s.strokeColor)
	s.dc.SetLineWidth(s.strokeWidth)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *Surface) ClipPolygon(xs, ys []float64) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return
	}
	poly := clipPoly{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	s.dc.MoveTo(xs[0], ys[0])
	poly.xs[0], poly.ys[0] = s.dc.TransformPoint(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		s.dc.LineTo(xs[i], ys[i])
		poly.xs[i], poly.ys[i] = s.dc.TransformPoint(xs[i], ys[i])
	}
	s.dc.ClosePath()
	s.dc.Clip()
	s.clips = append(s.clips, poly)
}

// textBoxInsideClips reports whether the axis-aligned device box is
// inside every active clip polygon, checked corner by corner.
func (s *Surface) textBoxInsideClips(x0, y0, x1, y1 float64) bool {
	for _, p := range s.clips {
		if !p.contains(x0, y0) || !p.contains(x1, y0) ||
			!p.contains(x0, y1) || !p.contains(x1, y1) {
			return false
		}
	}
	return true
}

// FillText draws a label with its anchor mapped through the current
// transform. gg draws glyphs straight to the pixel buffer, so the glyphs
// themselves stay upright whatever the camera rotation; only the anchor
// point rotates. For the same reason the pixel clip does not apply to
// glyphs, so the label's device-space box is tested against the mirrored
// clip stack instead. A label is drawn whole or not at all: one that
// would cross a clip boundary is skipped.
func (s *Surface) FillText(text string, x, y float64) {
	if s.source == nil {
		return
	}
	tx, ty := s.dc.TransformPoint(x, y)
	w, _ := s.dc.MeasureString(text)
	if !s.textBoxInsideClips(tx, ty-s.points, tx+w, ty) {
		return
	}
	s.dc.SetColor(s.fillColor)
	s.dc.DrawString(text, tx, ty)
}

func (s *Surface) MeasureText(text string) float64 {
	w, _ := s.dc.MeasureString(text)
	return w
}
