package renderer

import (
	"twistgrid/pkg/engine/geometry"
)

// minTilesAcross sets the display density: at least this many tiles fit
// along the shorter viewport dimension.
const minTilesAcross = 12

// ClipRegion is a convex angular wedge from the viewer, bounded by two
// rays. Invariant: the signed angle swept clockwise from Upper to Lower
// lies in [0, pi). Regions only ever narrow; an inverted wedge is
// represented as the absent value (the ok=false return), which is a
// first-class "nothing here is visible" signal, not an error.
type ClipRegion struct {
	Upper geometry.Vec2
	Lower geometry.Vec2
}

// Width returns the wedge angle swept from Upper to Lower.
func (r ClipRegion) Width() float64 {
	return r.Upper.Angle(r.Lower)
}

// ClipUpper replaces the upper ray with v if that narrows the wedge.
// A ray at or outside the current upper bound leaves the region unchanged;
// a ray past the lower bound inverts the wedge and yields ok=false.
func (r ClipRegion) ClipUpper(v geometry.Vec2) (ClipRegion, bool) {
	if r.Upper.Angle(v) <= 0 {
		return r, true
	}
	if v.Angle(r.Lower) < 0 {
		return ClipRegion{}, false
	}
	return ClipRegion{Upper: v, Lower: r.Lower}, true
}

// ClipLower replaces the lower ray with v if that narrows the wedge.
func (r ClipRegion) ClipLower(v geometry.Vec2) (ClipRegion, bool) {
	if v.Angle(r.Lower) <= 0 {
		return r, true
	}
	if r.Upper.Angle(v) < 0 {
		return ClipRegion{}, false
	}
	return ClipRegion{Upper: r.Upper, Lower: v}, true
}

// RenderConfig bundles the viewport, the drawing surface and the active
// clip region for one branch of the recursive render. Configs are values:
// narrowing produces a copy, and each recursive call discards its copies
// on return.
type RenderConfig struct {
	Surface Surface
	Width   float64
	Height  float64

	// TileOverride forces a tile size in pixels when positive; zero keeps
	// the density policy of TileSize.
	TileOverride float64

	clip *ClipRegion
}

// NewRenderConfig creates a config for the given surface and viewport with
// no active clip region.
func NewRenderConfig(s Surface, width, height float64) RenderConfig {
	return RenderConfig{Surface: s, Width: width, Height: height}
}

// TileSize derives the tile edge length in pixels so that at least
// minTilesAcross tiles fit along the shorter viewport dimension.
func (c RenderConfig) TileSize() float64 {
	if c.TileOverride > 0 {
		return c.TileOverride
	}
	short := c.Width
	if c.Height < short {
		short = c.Height
	}
	return short / minTilesAcross
}

// Clip returns the active clip region, or nil if none has been begun.
func (c RenderConfig) Clip() *ClipRegion {
	return c.clip
}

// BeginClip returns a copy of the config with a fresh clip region bounded
// by the two rays.
func (c RenderConfig) BeginClip(upper, lower geometry.Vec2) RenderConfig {
	c.clip = &ClipRegion{Upper: upper, Lower: lower}
	return c
}

// ClipUpper narrows the active region's upper ray, returning the narrowed
// copy. ok=false means the region collapsed and the branch holds nothing
// visible. Narrowing a config whose clip region was never begun is a
// programmer error: the top-level renderer always establishes a region
// before recursing.
func (c RenderConfig) ClipUpper(v geometry.Vec2) (RenderConfig, bool) {
	if c.clip == nil {
		panic("renderer: ClipUpper before BeginClip")
	}
	region, ok := c.clip.ClipUpper(v)
	if !ok {
		return RenderConfig{}, false
	}
	c.clip = &region
	return c, true
}

// ClipLower narrows the active region's lower ray; see ClipUpper.
func (c RenderConfig) ClipLower(v geometry.Vec2) (RenderConfig, bool) {
	if c.clip == nil {
		panic("renderer: ClipLower before BeginClip")
	}
	region, ok := c.clip.ClipLower(v)
	if !ok {
		return RenderConfig{}, false
	}
	c.clip = &region
	return c, true
}
