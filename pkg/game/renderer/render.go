package renderer

import (
	"image/color"

	"twistgrid/pkg/engine/geometry"
	"twistgrid/pkg/engine/world"
)

// Palette for tile rendering
var (
	colorBackground = color.RGBA{R: 14, G: 15, B: 22, A: 255}
	colorTileFill   = color.RGBA{R: 36, G: 39, B: 54, A: 255}
	colorTileBorder = color.RGBA{R: 74, G: 79, B: 102, A: 255}
	colorLabel      = color.RGBA{R: 203, G: 207, B: 222, A: 255}
	colorTick       = color.RGBA{R: 120, G: 162, B: 222, A: 255}
	colorSplit      = color.RGBA{R: 224, G: 120, B: 92, A: 255}
)

// Render draws one full frame of the tile graph as seen from a viewer
// standing on root at the fractional offset (in [0,1] per axis), with the
// view rotated by rotation radians. It is stateless given its inputs; the
// only effects are draw calls against the surface.
func Render(s Surface, width, height int, root world.DirectedTile, offset geometry.Vec2, rotation float64) {
	RenderWithConfig(NewRenderConfig(s, float64(width), float64(height)), root, offset, rotation)
}

// RenderWithConfig is Render with a caller-built config, letting frontends
// override the tile-size policy (zoom).
func RenderWithConfig(cfg RenderConfig, root world.DirectedTile, offset geometry.Vec2, rotation float64) {
	s := cfg.Surface
	s.Clear(colorBackground)
	s.Push()

	// Viewer at the surface center; all drawing below happens in the
	// camera frame.
	s.Translate(cfg.Width/2, cfg.Height/2)
	s.Rotate(rotation)

	// The root tile spans [0,1]x[0,1] around the viewer, so its center
	// sits at (0.5,0.5)-offset in tile units.
	rootLoc := geometry.Vec2{X: 0.5, Y: 0.5}.Sub(offset)

	renderTile(cfg, root, rootLoc)
	for _, d := range world.AllDirections() {
		renderCardinal(cfg, d, root, rootLoc)
	}
	for _, d := range world.AllDirections() {
		d2 := d.Add(world.East)
		qcfg := cfg.BeginClip(d.Vector(), d2.Vector())
		renderIntercardinal(qcfg, d, d2, root, rootLoc)
	}

	s.Pop()
}

// isTileVisible reports whether the axis-aligned footprint of a tile at
// loc (in tile units from the viewer) overlaps the viewport rectangle
// centered on the viewer. This is the sole bound on straight-line
// recursion: tile coordinates grow monotonically with step count along a
// fixed direction, so every walk leaves the viewport in
// O(viewport/tileSize) steps whatever the graph's topology.
func isTileVisible(cfg RenderConfig, loc geometry.Vec2) bool {
	ts := cfg.TileSize()
	c := loc.Scale(ts)
	half := ts / 2
	return c.X+half >= -cfg.Width/2 && c.X-half <= cfg.Width/2 &&
		c.Y+half >= -cfg.Height/2 && c.Y-half <= cfg.Height/2
}

// splitCorner returns the corner of the tile at loc between its d1 and d2
// faces, in tile units from the viewer. The ray from the viewer through
// this corner is the visual boundary between the two inconsistent
// continuations at a holonomy split.
func splitCorner(loc geometry.Vec2, d1, d2 world.Direction) geometry.Vec2 {
	return loc.Add(d1.Vector().Add(d2.Vector()).Scale(0.5))
}

// renderCardinal draws tiles in a straight line in direction dir, starting
// one step beyond tile. It stops when the edge is an open boundary or the
// current tile has left the viewport. tile itself is not drawn here; the
// caller already did.
func renderCardinal(cfg RenderConfig, dir world.Direction, tile world.DirectedTile, loc geometry.Vec2) {
	if !isTileVisible(cfg, loc) {
		return
	}
	next := tile.GetAdjacent(dir)
	if next == nil {
		return
	}
	nl := loc.Add(dir.Vector())
	renderTile(cfg, *next, nl)
	renderCardinal(cfg, dir, *next, nl)
}

// renderIntercardinal renders the full quadrant beyond tile between the d1
// and d2 axes (exclusive of both axes), splitting the visibility wedge
// wherever the two traversal orders around a unit square disagree.
// d1 must be immediately left of d2.
func renderIntercardinal(cfg RenderConfig, d1, d2 world.Direction, tile world.DirectedTile, loc geometry.Vec2) {
	if !d1.IsLeftOf(d2) {
		panic("renderer: renderIntercardinal requires d1 immediately left of d2")
	}
	if !isTileVisible(cfg, loc) {
		return
	}

	if world.HasIntercardinalSplit(tile, d1, d2) {
		// The quadrant tears along the ray through the corner between
		// d1 and d2. Everything reached d1-first renders on the d1 side
		// of the ray, everything reached d2-first on the other, each
		// within its narrowed wedge.
		corner := splitCorner(loc, d1, d2)
		if n1 := tile.GetAdjacent(d1); n1 != nil {
			if sub, ok := cfg.ClipLower(corner); ok {
				l1 := loc.Add(d1.Vector())
				renderCardinal(sub, d2, *n1, l1)
				renderIntercardinal(sub, d1, d2, *n1, l1)
			}
		}
		if n2 := tile.GetAdjacent(d2); n2 != nil {
			if sub, ok := cfg.ClipUpper(corner); ok {
				l2 := loc.Add(d2.Vector())
				renderCardinal(sub, d1, *n2, l2)
				renderIntercardinal(sub, d1, d2, *n2, l2)
			}
		}
		drawSplitLine(cfg, corner)
		return
	}

	// No split here, but splits further out along either axis may hang
	// tiles off it. Each walk draws those within its own narrowed wedge
	// and reports the corner whose ray delimits the main body.
	r1 := renderAlongEdge(cfg, d1, d2, tile, loc)
	r2 := renderAlongEdge(cfg, d2, d1, tile, loc)

	body := cfg
	ok := true
	if r1 != nil {
		body, ok = body.ClipUpper(*r1)
	}
	if ok && r2 != nil {
		body, ok = body.ClipLower(*r2)
	}
	if ok {
		if n1 := tile.GetAdjacent(d1); n1 != nil {
			if inner := n1.GetAdjacent(d2); inner != nil {
				li := loc.Add(d1.Vector()).Add(d2.Vector())
				renderTile(body, *inner, li)
				renderCardinal(body, d1, *inner, li)
				renderCardinal(body, d2, *inner, li)
				renderIntercardinal(body, d1, d2, *inner, li)
			}
		}
	}

	if r1 != nil {
		drawSplitLine(cfg, *r1)
	}
	if r2 != nil {
		drawSplitLine(cfg, *r2)
	}
}

// renderAlongEdge walks outward along dirMain looking for the first
// holonomy split against dirSnd. When one is found it draws the tiles
// hanging off the axis there, inside the wedge between the axis and the
// split ray, and returns the split corner so the caller can bound the
// quadrant's main body. A walk that leaves the viewport, or runs off an
// open boundary, found no split and returns nil. Tiles on the axis itself
// are never drawn here; they are the caller's responsibility.
func renderAlongEdge(cfg RenderConfig, dirMain, dirSnd world.Direction, tile world.DirectedTile, loc geometry.Vec2) *geometry.Vec2 {
	if !isTileVisible(cfg, loc) {
		return nil
	}

	if world.HasIntercardinalSplit(tile, dirMain, dirSnd) {
		corner := splitCorner(loc, dirMain, dirSnd)
		if n := tile.GetAdjacent(dirSnd); n != nil {
			ln := loc.Add(dirSnd.Vector())
			// Which side of the ray the hanging region occupies, and
			// the axis order of its quadrant, both follow from which
			// edge of the quadrant this walk is on.
			if dirMain.IsLeftOf(dirSnd) {
				if sub, ok := cfg.ClipLower(corner); ok {
					renderTile(sub, *n, ln)
					renderCardinal(sub, dirMain, *n, ln)
					renderCardinal(sub, dirSnd, *n, ln)
					renderIntercardinal(sub, dirMain, dirSnd, *n, ln)
				}
			} else {
				if sub, ok := cfg.ClipUpper(corner); ok {
					renderTile(sub, *n, ln)
					renderCardinal(sub, dirMain, *n, ln)
					renderCardinal(sub, dirSnd, *n, ln)
					renderIntercardinal(sub, dirSnd, dirMain, *n, ln)
				}
			}
		}
		return &corner
	}

	next := tile.GetAdjacent(dirMain)
	if next == nil {
		return nil
	}
	return renderAlongEdge(cfg, dirMain, dirSnd, *next, loc.Add(dirMain.Vector()))
}

// renderTile draws one tile: an axis-aligned background and border
// (deliberately unrotated, so adjacent tiles share pixel edges without
// seams), an orientation tick from the center toward the tile's local
// north, and the label anchored at the rotated top-left corner. All
// drawing happens inside the caller's clip region.
func renderTile(cfg RenderConfig, dt world.DirectedTile, loc geometry.Vec2) {
	if !isTileVisible(cfg, loc) {
		return
	}
	s := cfg.Surface
	ts := cfg.TileSize()
	half := ts / 2
	c := loc.Scale(ts)

	s.Push()
	applyClip(cfg)

	s.SetFill(colorTileFill)
	s.FillRect(c.X-half, -c.Y-half, ts, ts)
	s.SetStroke(colorTileBorder, 1)
	s.StrokeRect(c.X-half, -c.Y-half, ts, ts)

	tip := c.Add(dt.Dir.Vector().Scale(ts * 0.35))
	s.SetStroke(colorTick, 1)
	s.StrokeLine(c.X, -c.Y, tip.X, -tip.Y)

	if dt.Tile.Label != "" {
		pad := ts * 0.14
		cornerOff := geometry.Vec2{X: -(half - pad), Y: half - pad}.Rotate(dt.Dir.Angle())
		p := c.Add(cornerOff)
		s.SetFill(colorLabel)
		s.FillText(dt.Tile.Label, p.X, -p.Y)
	}

	s.Pop()
}

// drawSplitLine strokes the visual indicator for a holonomy split: the
// half-line from the split corner outward along the ray from the viewer,
// clipped to the caller's region.
func drawSplitLine(cfg RenderConfig, corner geometry.Vec2) {
	if corner.Length() < 1e-9 {
		// The viewer is standing on the split corner, so the indicator
		// ray has no direction.
		return
	}
	s := cfg.Surface
	ts := cfg.TileSize()
	p1 := corner.Scale(ts)
	p2 := corner.Normalize().Scale(2 * (cfg.Width + cfg.Height))

	s.Push()
	applyClip(cfg)
	s.SetStroke(colorSplit, 1.5)
	s.StrokeLine(p1.X, -p1.Y, p2.X, -p2.Y)
	s.Pop()
}

// applyClip restricts drawing to the config's wedge, if one is active.
// The unbounded wedge is handed to the surface as a closed polygon large
// enough to cover any visible point.
func applyClip(cfg RenderConfig) {
	r := cfg.Clip()
	if r == nil {
		return
	}
	reach := 2 * (cfg.Width + cfg.Height)
	u := r.Upper.Normalize()
	l := r.Lower.Normalize()
	// Upper.Angle(Lower) < pi, so u+l cannot vanish.
	m := u.Add(l).Normalize().Scale(reach * 1.5)
	up := u.Scale(reach)
	lp := l.Scale(reach)

	xs := []float64{0, up.X, m.X, lp.X}
	ys := []float64{0, -up.Y, -m.Y, -lp.Y}
	cfg.Surface.ClipPolygon(xs, ys)
}
