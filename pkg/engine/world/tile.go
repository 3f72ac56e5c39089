package world

// Tile represents a single unoriented node in the tile graph: a display
// label and exactly four edge slots, one per cardinal direction. Tiles are
// compared by identity (two values are the same node iff they are the same
// allocated instance), so the graph may freely contain cycles and twists.
type Tile struct {
	Label string

	// adjacent holds the outgoing edge per local direction, or nil for an
	// open boundary. Each edge records the neighbor and the orientation
	// twist accumulated by crossing it.
	adjacent [directionCount]*DirectedTile
}

// NewTile creates a new tile with the given display label and no edges.
func NewTile(label string) *Tile {
	return &Tile{Label: label}
}

// GetAdjacent returns the stored edge in the given local direction, or nil
// if the face is an open boundary.
func (t *Tile) GetAdjacent(dir Direction) *DirectedTile {
	if t == nil || !dir.IsValid() {
		return nil
	}
	return t.adjacent[dir]
}

// SetAdjacent stores an edge in the given local direction. It is an
// unchecked overwrite: last write wins, and only this tile's slot is
// touched. Callers establishing a bidirectional connection should use Link.
func (t *Tile) SetAdjacent(dir Direction, target DirectedTile) {
	if t == nil || !dir.IsValid() {
		return
	}
	t.adjacent[dir] = &target
}

// DirectedTile is a tile paired with the world-space orientation under
// which it is currently being viewed. It is an immutable comparable value:
// two DirectedTiles denote the same world-space tile iff both the
// orientation and the tile instance compare equal.
type DirectedTile struct {
	Dir  Direction
	Tile *Tile
}

// GetAdjacent walks one step in the given world-space direction. The
// direction is transformed into the tile's own local frame, the local edge
// is looked up, and the result is re-expressed with the accumulated
// orientation. The call never mutates the graph; it is a pure function of
// the graph contents, the orientation, and dir.
func (dt DirectedTile) GetAdjacent(dir Direction) *DirectedTile {
	edge := dt.Tile.GetAdjacent(dir.Sub(dt.Dir))
	if edge == nil {
		return nil
	}
	return &DirectedTile{
		Dir:  edge.Dir.Add(dt.Dir),
		Tile: edge.Tile,
	}
}

// Link connects tile a's face aFace to tile b's face bFace, writing both
// edges so that they are mutually inverse: walking from a through aFace and
// back through the reverse edge returns DirectedTile{North, a}. The South
// term encodes the implicit half turn of facing back the way you came; any
// extra difference between the two faces is what introduces a twisted,
// non-orientation-preserving connection.
func Link(a, b *Tile, aFace, bFace Direction) {
	a.SetAdjacent(aFace, DirectedTile{Dir: aFace.Sub(bFace).Add(South), Tile: b})
	b.SetAdjacent(bFace, DirectedTile{Dir: bFace.Sub(aFace).Add(South), Tile: a})
}

// HasIntercardinalSplit reports whether the Euclidean assumption fails at t
// between d1 and d2: going around the unit square d1-then-d2 versus
// d2-then-d1 either reaches different tiles, reaches the same tile under
// different orientations, or succeeds on exactly one of the two paths. The
// predicate is symmetric in d1 and d2.
func HasIntercardinalSplit(t DirectedTile, d1, d2 Direction) bool {
	a := t.GetAdjacent(d1)
	if a != nil {
		a = a.GetAdjacent(d2)
	}
	b := t.GetAdjacent(d2)
	if b != nil {
		b = b.GetAdjacent(d1)
	}
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}
