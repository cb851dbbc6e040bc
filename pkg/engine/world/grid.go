package world

import (
	"github.com/zyedidia/generic/mapset"

	"delve/pkg/engine/geom"
)

// Grid represents the level map with encapsulated tile storage and the
// ordered registry of committed rooms. It is mutated only while a level is
// being generated; afterwards callers treat it as read-only.
type Grid struct {
	tiles  []Tile
	bounds geom.Rect
	rooms  []Room
}

// NewGrid creates an all-Void grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		tiles:  make([]Tile, width*height),
		bounds: geom.NewRect(0, 0, width, height),
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.bounds.Size.X
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.bounds.Size.Y
}

// Bounds returns the grid's bounding rectangle.
func (g *Grid) Bounds() geom.Rect {
	return g.bounds
}

// InBounds checks if a point is within grid bounds
func (g *Grid) InBounds(p geom.Point) bool {
	return g.bounds.Contains(p)
}

// At returns the tile at the given position, or Void if out of bounds.
func (g *Grid) At(p geom.Point) Tile {
	if !g.InBounds(p) {
		return Void
	}
	return g.tiles[p.Y*g.Width()+p.X]
}

// Set writes the tile at the given position. Out-of-bounds writes are ignored.
func (g *Grid) Set(p geom.Point, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[p.Y*g.Width()+p.X] = t
}

// Rooms returns the committed rooms in creation order.
func (g *Grid) Rooms() []Room {
	return g.rooms
}

// RoomAt returns the committed room containing the point, if any.
func (g *Grid) RoomAt(p geom.Point) (Room, bool) {
	for _, r := range g.rooms {
		if r.Bounds.Contains(p) {
			return r, true
		}
	}
	return Room{}, false
}

// AddRoom commits a room: assigns the next ID, registers it, and stamps its
// rectangle as Floor. The rectangle must lie fully inside the grid.
func (g *Grid) AddRoom(bounds geom.Rect) Room {
	room := Room{ID: len(g.rooms), Bounds: bounds}
	g.rooms = append(g.rooms, room)
	for y := bounds.Pos.Y; y < bounds.MaxY(); y++ {
		for x := bounds.Pos.X; x < bounds.MaxX(); x++ {
			g.Set(geom.Pt(x, y), Floor)
		}
	}
	return room
}

// CarveCorridor writes the given path as CorridorFloor. Tiles that are
// already Floor are left untouched, so every walkable tile keeps belonging
// to exactly one room or corridor.
func (g *Grid) CarveCorridor(path []geom.Point) {
	for _, p := range path {
		if g.At(p) == Void {
			g.Set(p, CorridorFloor)
		}
	}
}

// AddWalls turns every Void tile that touches a walkable tile (including
// diagonally) into Wall, ringing all rooms and corridors.
func (g *Grid) AddWalls() {
	g.ForEachTile(func(p geom.Point, t Tile) {
		if t != Void {
			return
		}
		for _, d := range geom.AllDirections() {
			dx, dy := d.Delta()
			if g.At(p.Add(geom.Pt(dx, dy))).Walkable() {
				g.Set(p, Wall)
				return
			}
		}
	})
}

// FloorRatio returns the fraction of the grid's tiles that are walkable.
func (g *Grid) FloorRatio() float64 {
	walkable := 0
	for _, t := range g.tiles {
		if t.Walkable() {
			walkable++
		}
	}
	return float64(walkable) / float64(len(g.tiles))
}

// IsFullyConnected flood-fills walkable tiles from the first room and checks
// that every other room is reached. This recomputes reachability from the
// tiles themselves, independent of any bookkeeping done while connecting, so
// it catches carving bugs. A grid with fewer than two rooms is connected.
func (g *Grid) IsFullyConnected() bool {
	if len(g.rooms) < 2 {
		return true
	}

	visited := mapset.New[geom.Point]()
	queue := []geom.Point{g.rooms[0].Bounds.Pos}
	visited.Put(queue[0])

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range geom.CardinalDirections() {
			dx, dy := d.Delta()
			n := p.Add(geom.Pt(dx, dy))
			if g.At(n).Walkable() && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	for _, room := range g.rooms[1:] {
		if !visited.Has(room.Bounds.Pos) {
			return false
		}
	}
	return true
}

// ForEachTile calls fn for every tile in the grid in row-major order.
func (g *Grid) ForEachTile(fn func(p geom.Point, t Tile)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fn(geom.Pt(x, y), g.tiles[y*g.Width()+x])
		}
	}
}
