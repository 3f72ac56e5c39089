// Package generator builds sample tile graphs for the viewer to walk
// around in. Each generator returns the entry tile of a fully linked
// graph; nothing here is consulted again after construction.
package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"twistgrid/pkg/engine/world"
)

// Generator produces a tile graph and names itself for the -grid flag.
type Generator interface {
	Name() string
	Generate() world.DirectedTile
}

// ByName returns the generator registered under name.
func ByName(name string) (Generator, bool) {
	switch name {
	case "flat":
		return &FlatGenerator{Rows: 9, Cols: 9}, true
	case "cone":
		return &ConeGenerator{Size: 6}, true
	case "dislocation":
		return &DislocationGenerator{Size: 11}, true
	}
	return nil, false
}

// Names lists the -grid values accepted by ByName.
func Names() []string {
	return []string{"flat", "cone", "dislocation"}
}

// FlatGenerator produces an ordinary Euclidean grid. Useful as a control:
// no splits anywhere, the view is a plain chessboard.
type FlatGenerator struct {
	Rows, Cols int
}

func (g *FlatGenerator) Name() string { return "Flat" }

func (g *FlatGenerator) Generate() world.DirectedTile {
	tiles := flatPatch(g.Rows, g.Cols, "")
	return world.DirectedTile{Dir: world.North, Tile: tiles[g.Rows/2][g.Cols/2]}
}

// ConeGenerator glues three square quadrants around a single vertex, each
// to the next with a quarter-turn link. Only 270 degrees of material meet
// at that vertex, so walking around it composes to a net rotation and the
// renderer shows a split along the sight line past the corner.
type ConeGenerator struct {
	Size int
}

func (g *ConeGenerator) Name() string { return "Cone" }

func (g *ConeGenerator) Generate() world.DirectedTile {
	n := g.Size
	quads := make([][][]*world.Tile, 3)
	for q := range quads {
		quads[q] = flatPatch(n, n, fmt.Sprintf("%c", 'A'+q))
	}
	// Quadrant q's east boundary meets quadrant q+1's south boundary.
	// The shared vertex is the southeast corner of each [0][n-1] tile.
	for q := range quads {
		next := quads[(q+1)%3]
		for y := 0; y < n; y++ {
			world.Link(quads[q][y][n-1], next[0][y], world.East, world.South)
		}
	}
	return world.DirectedTile{Dir: world.North, Tile: quads[0][n/2][n/2]}
}

// DislocationGenerator produces a screw dislocation: a flat grid where,
// east of the core, stepping north lands one column further west. The cut
// makes the edges along it one-directional, so the renderer sees
// asymmetric splits there rather than orientation twists.
type DislocationGenerator struct {
	Size int
}

func (g *DislocationGenerator) Name() string { return "Dislocation" }

func (g *DislocationGenerator) Generate() world.DirectedTile {
	n := g.Size
	core := n / 2
	tiles := make([][]*world.Tile, n)
	for y := range tiles {
		tiles[y] = make([]*world.Tile, n)
		for x := range tiles[y] {
			tiles[y][x] = world.NewTile(fmt.Sprintf("%d,%d", x, y))
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				world.Link(tiles[y][x], tiles[y][x+1], world.East, world.West)
			}
			if y+1 < n {
				if y == core && x >= core {
					// Shifted crossing; overwrites the straight link
					// into x-1 set on the previous iteration, leaving
					// the cut's edges asymmetric.
					world.Link(tiles[y][x], tiles[y+1][x-1], world.North, world.South)
				} else {
					world.Link(tiles[y][x], tiles[y+1][x], world.North, world.South)
				}
			}
		}
	}
	return world.DirectedTile{Dir: world.North, Tile: tiles[core][core]}
}

// Report summarizes a walk over every tile reachable from one entry
// point.
type Report struct {
	// Tiles is the number of distinct tiles reached.
	Tiles int
	// AsymmetricEdges counts edges whose reverse edge is missing or does
	// not lead back with the inverse orientation. Zero on any graph
	// built purely from paired links; positive across a dislocation cut.
	AsymmetricEdges int
}

// Validate breadth-first walks the graph from start and checks every edge
// against its reverse.
func Validate(start world.DirectedTile) Report {
	seen := mapset.New[*world.Tile]()
	seen.Put(start.Tile)
	queue := []*world.Tile{start.Tile}
	var asym int

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			e := t.GetAdjacent(dir)
			if e == nil {
				continue
			}
			// The face of the neighbor this edge entered through, and
			// the orientation its reverse edge must carry to undo this
			// one.
			backFace := dir.Sub(e.Dir).Add(world.South)
			back := e.Tile.GetAdjacent(backFace)
			if back == nil || back.Tile != t || back.Dir != backFace.Sub(dir).Add(world.South) {
				asym++
			}
			if !seen.Has(e.Tile) {
				seen.Put(e.Tile)
				queue = append(queue, e.Tile)
			}
		}
	}
	return Report{Tiles: seen.Size(), AsymmetricEdges: asym}
}

// flatPatch links a rows-by-cols Euclidean patch. Labels are "x,y" with
// an optional prefix naming the patch.
func flatPatch(rows, cols int, prefix string) [][]*world.Tile {
	tiles := make([][]*world.Tile, rows)
	for y := range tiles {
		tiles[y] = make([]*world.Tile, cols)
		for x := range tiles[y] {
			tiles[y][x] = world.NewTile(fmt.Sprintf("%s%d,%d", prefix, x, y))
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x+1 < cols {
				world.Link(tiles[y][x], tiles[y][x+1], world.East, world.West)
			}
			if y+1 < rows {
				world.Link(tiles[y][x], tiles[y+1][x], world.North, world.South)
			}
		}
	}
	return tiles
}
