package generator

import (
	"fmt"
	"math/rand"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

// carveEdge routes a corridor for one accepted edge and returns the tiles
// to write. Aligned rooms get a single straight line across the gap between
// their facing walls; diagonal rooms get an L-shaped path between their
// nearest corners. A route that crosses the floor of a third room is retried
// with a different random offset or leg order up to CarveRetries times; if
// no clean route is found, the naive path is accepted anyway unless strict
// carving is on. Corridors clipping room walls is a known rough edge of this
// scheme.
func carveEdge(g *world.Grid, e Edge, rng *rand.Rand, cfg Config) ([]geom.Point, error) {
	a := g.Rooms()[e.A].Bounds
	b := g.Rooms()[e.B].Bounds

	var path []geom.Point
	for try := 0; ; try++ {
		if e.Rel == geom.Diagonal {
			path = cornerPath(a, b, rng)
		} else {
			path = straightPath(a, b, rng)
		}
		if !crossesThirdRoom(g, path, e) {
			return path, nil
		}
		if try >= cfg.CarveRetries {
			break
		}
	}

	if cfg.StrictCarving {
		return nil, fmt.Errorf("%w: rooms %d and %d", ErrCarvingBlocked, e.A, e.B)
	}
	return path, nil
}

// straightPath carves across the gap between two aligned rooms, at a random
// coordinate within their shared axis range.
func straightPath(a, b geom.Rect, rng *rand.Rand) []geom.Point {
	in := a.Intersect(b)
	gap := in.Gap

	var path []geom.Point
	switch in.Rel {
	case geom.AlignedX:
		x := gap.Pos.X + rng.Intn(gap.Size.X)
		for y := gap.Pos.Y; y < gap.MaxY(); y++ {
			path = append(path, geom.Pt(x, y))
		}
	case geom.AlignedY:
		y := gap.Pos.Y + rng.Intn(gap.Size.Y)
		for x := gap.Pos.X; x < gap.MaxX(); x++ {
			path = append(path, geom.Pt(x, y))
		}
	}
	// Overlapping or touching rooms need no tiles at all.
	return path
}

// cornerPath carves an L between the nearest pair of corners of two
// diagonal rooms, one straight leg per axis, leg order chosen at random.
func cornerPath(a, b geom.Rect, rng *rand.Rand) []geom.Point {
	ca, cb := nearestCorners(a, b)

	var path []geom.Point
	if rng.Intn(2) == 0 {
		// Horizontal leg first, bend at (cb.X, ca.Y).
		path = appendHSegment(path, ca.X, cb.X, ca.Y)
		path = appendVSegment(path, ca.Y, cb.Y, cb.X)
	} else {
		// Vertical leg first, bend at (ca.X, cb.Y).
		path = appendVSegment(path, ca.Y, cb.Y, ca.X)
		path = appendHSegment(path, ca.X, cb.X, cb.Y)
	}
	return path
}

// nearestCorners returns the pair of corners, one per rectangle, with the
// smallest squared Euclidean distance. Ties resolve to the first pair in
// corner order, keeping the choice deterministic.
func nearestCorners(a, b geom.Rect) (geom.Point, geom.Point) {
	var bestA, bestB geom.Point
	best := -1
	for _, pa := range a.Corners() {
		for _, pb := range b.Corners() {
			dx, dy := pa.X-pb.X, pa.Y-pb.Y
			d := dx*dx + dy*dy
			if best < 0 || d < best {
				best = d
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB
}

func appendHSegment(path []geom.Point, x1, x2, y int) []geom.Point {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		path = append(path, geom.Pt(x, y))
	}
	return path
}

func appendVSegment(path []geom.Point, y1, y2, x int) []geom.Point {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		path = append(path, geom.Pt(x, y))
	}
	return path
}

// crossesThirdRoom reports whether the path passes through floor belonging
// to a room other than the edge's two endpoints.
func crossesThirdRoom(g *world.Grid, path []geom.Point, e Edge) bool {
	for _, p := range path {
		if g.At(p) != world.Floor {
			continue
		}
		if r, ok := g.RoomAt(p); ok && r.ID != e.A && r.ID != e.B {
			return true
		}
	}
	return false
}
