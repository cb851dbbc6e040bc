// Package geom provides integer geometry primitives for tile-based maps:
// points, axis-aligned rectangles, and 8-way directions.
// These are engine-level constructs usable by any grid-based game.
package geom

// Point is a position or offset in tile coordinates.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by the given offset.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ManhattanDistance returns the Manhattan distance to another point.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Rect is an axis-aligned rectangle: top-left corner plus width/height.
// The x-range is [Pos.X, Pos.X+Size.X) and the y-range is [Pos.Y, Pos.Y+Size.Y).
type Rect struct {
	Pos  Point
	Size Point
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Pos: Pt(x, y), Size: Pt(w, h)}
}

// MaxX returns the exclusive right edge of the rectangle.
func (r Rect) MaxX() int {
	return r.Pos.X + r.Size.X
}

// MaxY returns the exclusive bottom edge of the rectangle.
func (r Rect) MaxY() int {
	return r.Pos.Y + r.Size.Y
}

// Area returns width times height.
func (r Rect) Area() int {
	return r.Size.X * r.Size.Y
}

// Empty returns true if the rectangle covers no tiles.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Center returns the rectangle's center tile.
func (r Rect) Center() Point {
	return Pt(r.Pos.X+r.Size.X/2, r.Pos.Y+r.Size.Y/2)
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X < r.MaxX() && p.Y >= r.Pos.Y && p.Y < r.MaxY()
}

// Overlaps returns true if the two rectangles share at least one tile.
func (r Rect) Overlaps(o Rect) bool {
	return r.Pos.X < o.MaxX() && o.Pos.X < r.MaxX() &&
		r.Pos.Y < o.MaxY() && o.Pos.Y < r.MaxY()
}

// Crop clamps the rectangle to the given bounds. The result may be empty.
func (r Rect) Crop(bounds Rect) Rect {
	x0 := max(r.Pos.X, bounds.Pos.X)
	y0 := max(r.Pos.Y, bounds.Pos.Y)
	x1 := min(r.MaxX(), bounds.MaxX())
	y1 := min(r.MaxY(), bounds.MaxY())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Corners returns the four corner tiles of the rectangle (inclusive
// coordinates), in top-left, top-right, bottom-left, bottom-right order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		Pt(r.Pos.X, r.Pos.Y),
		Pt(r.MaxX()-1, r.Pos.Y),
		Pt(r.Pos.X, r.MaxY()-1),
		Pt(r.MaxX()-1, r.MaxY()-1),
	}
}

// Relation classifies how two rectangles relate to each other.
type Relation int

// Relation constants
const (
	// Overlapping rectangles share at least one tile.
	Overlapping Relation = iota
	// AlignedX rectangles share x-coordinates but are separated vertically.
	AlignedX
	// AlignedY rectangles share y-coordinates but are separated horizontally.
	AlignedY
	// Diagonal rectangles share neither x- nor y-coordinates.
	Diagonal
)

// String returns the string representation of a relation
func (rel Relation) String() string {
	switch rel {
	case Overlapping:
		return "Overlapping"
	case AlignedX:
		return "AlignedX"
	case AlignedY:
		return "AlignedY"
	case Diagonal:
		return "Diagonal"
	default:
		return "Unknown"
	}
}

// Aligned returns true if the rectangles share a coordinate range on
// exactly one axis, so a single straight corridor can join them.
func (rel Relation) Aligned() bool {
	return rel == AlignedX || rel == AlignedY
}

// Intersection describes the relation between two rectangles together with
// the region between (or shared by) them. For Overlapping the Gap is the
// shared region; for AlignedX/AlignedY it is the empty strip between the
// facing edges; for Diagonal it is the empty space between the nearest
// corners.
type Intersection struct {
	Rel Relation
	Gap Rect
}

// Intersect computes the intersection classification of two rectangles.
func (r Rect) Intersect(o Rect) Intersection {
	x0 := max(r.Pos.X, o.Pos.X)
	y0 := max(r.Pos.Y, o.Pos.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())

	switch {
	case x0 < x1 && y0 < y1:
		return Intersection{Rel: Overlapping, Gap: NewRect(x0, y0, x1-x0, y1-y0)}
	case x0 < x1:
		// Shared x-range, vertical gap between y1 and y0.
		return Intersection{Rel: AlignedX, Gap: NewRect(x0, y1, x1-x0, y0-y1)}
	case y0 < y1:
		// Shared y-range, horizontal gap between x1 and x0.
		return Intersection{Rel: AlignedY, Gap: NewRect(x1, y0, x0-x1, y1-y0)}
	default:
		return Intersection{Rel: Diagonal, Gap: NewRect(x1, y1, x0-x1, y0-y1)}
	}
}

// Distance returns the Manhattan distance between the two rectangles'
// nearest edges or corners. Overlapping rectangles are zero distance apart,
// and so are rectangles that merely touch.
func (i Intersection) Distance() int {
	switch i.Rel {
	case Overlapping:
		return 0
	case AlignedX:
		return i.Gap.Size.Y
	case AlignedY:
		return i.Gap.Size.X
	default:
		return i.Gap.Size.X + i.Gap.Size.Y
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
