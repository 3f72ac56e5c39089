package camera

import (
	"math"
	"testing"

	"twistgrid/pkg/engine/geometry"
	"twistgrid/pkg/engine/world"
)

// grid3x3 builds a flat 3x3 patch and returns its tiles as tiles[y][x]
// with y growing north.
func grid3x3(t *testing.T) [][]*world.Tile {
	t.Helper()
	tiles := make([][]*world.Tile, 3)
	for y := range tiles {
		tiles[y] = make([]*world.Tile, 3)
		for x := range tiles[y] {
			tiles[y][x] = world.NewTile("t")
		}
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x+1 < 3 {
				world.Link(tiles[y][x], tiles[y][x+1], world.East, world.West)
			}
			if y+1 < 3 {
				world.Link(tiles[y][x], tiles[y+1][x], world.North, world.South)
			}
		}
	}
	return tiles
}

func TestMoveWithinTile(t *testing.T) {
	tiles := grid3x3(t)
	c := New(world.DirectedTile{Dir: world.North, Tile: tiles[1][1]})

	c.Move(geometry.Vec2{X: 0.2, Y: 0.3})
	if c.Root.Tile != tiles[1][1] {
		t.Error("camera re-rooted without leaving the tile")
	}
	want := geometry.Vec2{X: 0.7, Y: 0.8}
	if math.Abs(c.Offset.X-want.X) > 1e-9 || math.Abs(c.Offset.Y-want.Y) > 1e-9 {
		t.Errorf("Offset = %v, want %v", c.Offset, want)
	}
}

func TestMoveCrossesEastEdge(t *testing.T) {
	tiles := grid3x3(t)
	c := New(world.DirectedTile{Dir: world.North, Tile: tiles[1][1]})

	c.Move(geometry.Vec2{X: 0.6, Y: 0})
	if c.Root.Tile != tiles[1][2] {
		t.Error("camera did not re-root onto the east neighbor")
	}
	if c.Root.Dir != world.North {
		t.Errorf("Root.Dir = %v, want North on a flat link", c.Root.Dir)
	}
	if math.Abs(c.Offset.X-0.1) > 1e-9 {
		t.Errorf("Offset.X = %v, want 0.1", c.Offset.X)
	}
}

func TestMoveCrossesSeveralTilesAndClamps(t *testing.T) {
	tiles := grid3x3(t)
	c := New(world.DirectedTile{Dir: world.North, Tile: tiles[1][1]})

	// One crossing east, then the grid ends.
	c.Move(geometry.Vec2{X: 2.2, Y: 0})
	if c.Root.Tile != tiles[1][2] {
		t.Error("camera stopped on the wrong tile")
	}
	if c.Offset.X >= 1 || c.Offset.X < 0.99 {
		t.Errorf("Offset.X = %v, want clamped just inside the east edge", c.Offset.X)
	}
}

func TestMoveClampsAtOpenBoundary(t *testing.T) {
	tiles := grid3x3(t)
	c := New(world.DirectedTile{Dir: world.North, Tile: tiles[0][1]})

	c.Move(geometry.Vec2{X: 0, Y: -0.8})
	if c.Root.Tile != tiles[0][1] {
		t.Error("camera re-rooted across an open boundary")
	}
	if c.Offset.Y != 0 {
		t.Errorf("Offset.Y = %v, want 0 at the south boundary", c.Offset.Y)
	}
}

func TestMoveRespectsRotation(t *testing.T) {
	tiles := grid3x3(t)
	c := New(world.DirectedTile{Dir: world.North, Tile: tiles[1][1]})
	c.Turn(math.Pi / 2) // facing east

	// Forward in the local frame is now world east.
	c.Move(geometry.Vec2{X: 0, Y: 0.6})
	if c.Root.Tile != tiles[1][2] {
		t.Error("forward movement while facing east did not cross the east edge")
	}
}

func TestMoveAcrossTwistedLink(t *testing.T) {
	a := world.NewTile("a")
	b := world.NewTile("b")
	world.Link(a, b, world.North, world.East)

	c := New(world.DirectedTile{Dir: world.North, Tile: a})
	c.Move(geometry.Vec2{X: 0, Y: 0.6})
	if c.Root.Tile != b {
		t.Fatal("camera did not cross onto the linked tile")
	}
	if c.Root.Dir != world.East {
		t.Errorf("Root.Dir = %v, want East after the twisted crossing", c.Root.Dir)
	}
	if math.Abs(c.Offset.Y-0.1) > 1e-9 {
		t.Errorf("Offset.Y = %v, want 0.1", c.Offset.Y)
	}
}

func TestTurnWraps(t *testing.T) {
	c := New(world.DirectedTile{Dir: world.North, Tile: world.NewTile("t")})
	for i := 0; i < 8; i++ {
		c.Turn(math.Pi / 2)
	}
	if math.Abs(c.Rotation) > 1e-9 {
		t.Errorf("Rotation after eight quarter turns = %v, want 0", c.Rotation)
	}
}
