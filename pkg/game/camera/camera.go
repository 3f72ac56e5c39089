// Package camera tracks the viewer's position on the tile graph: which
// tile it stands on, where on that tile, and which way it faces.
package camera

import (
	"math"

	"twistgrid/pkg/engine/geometry"
	"twistgrid/pkg/engine/world"
)

// Camera is the viewer state handed to the renderer each frame. Offset is
// the fractional position on Root, each axis in [0,1). Rotation is the
// yaw in radians relative to world north, positive turning toward east.
//
// Both Offset and Rotation live in the frame carried by Root: crossing a
// twisted link changes Root's orientation and the carried frame follows
// it, so no extra bookkeeping happens here.
type Camera struct {
	Root     world.DirectedTile
	Offset   geometry.Vec2
	Rotation float64
}

// New places a camera at the center of root, facing its world north.
func New(root world.DirectedTile) *Camera {
	return &Camera{Root: root, Offset: geometry.Vec2{X: 0.5, Y: 0.5}}
}

// Move advances the camera by delta expressed in its local frame
// (positive Y forward, positive X to the right). Crossing the edge of the
// root tile re-roots onto the adjacent tile via the graph; at an open
// boundary the position clamps to the edge instead.
func (c *Camera) Move(delta geometry.Vec2) {
	c.Offset = c.Offset.Add(delta.Rotate(c.Rotation))

	for c.Offset.X < 0 {
		if !c.cross(world.West) {
			c.Offset.X = 0
			break
		}
		c.Offset.X++
	}
	for c.Offset.X >= 1 {
		if !c.cross(world.East) {
			c.Offset.X = math.Nextafter(1, 0)
			break
		}
		c.Offset.X--
	}
	for c.Offset.Y < 0 {
		if !c.cross(world.South) {
			c.Offset.Y = 0
			break
		}
		c.Offset.Y++
	}
	for c.Offset.Y >= 1 {
		if !c.cross(world.North) {
			c.Offset.Y = math.Nextafter(1, 0)
			break
		}
		c.Offset.Y--
	}
}

// Turn rotates the camera by rad, positive toward the right.
func (c *Camera) Turn(rad float64) {
	c.Rotation = math.Mod(c.Rotation+rad, 2*math.Pi)
}

func (c *Camera) cross(dir world.Direction) bool {
	next := c.Root.GetAdjacent(dir)
	if next == nil {
		return false
	}
	c.Root = *next
	return true
}
