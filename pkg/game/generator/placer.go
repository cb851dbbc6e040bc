package generator

import (
	"math/rand"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

// placeRoom draws one candidate room: random size within the configured
// bounds, random origin inside the region. While the candidate overlaps an
// existing room it is pushed one tile at a time in a random direction
// (diagonals included), re-testing after each step, up to MaxPushSteps.
// A candidate that still overlaps, or that falls below the minimum size
// after cropping to the region, is discarded with errRoomDiscarded; the
// caller retries with a fresh candidate.
func placeRoom(region geom.Rect, rooms []world.Room, rng *rand.Rand, cfg Config) (geom.Rect, error) {
	w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	cand := geom.NewRect(
		region.Pos.X+rng.Intn(region.Size.X),
		region.Pos.Y+rng.Intn(region.Size.Y),
		w, h,
	)

	for steps := 0; overlapsAny(cand, rooms); steps++ {
		if steps >= cfg.MaxPushSteps {
			return geom.Rect{}, errRoomDiscarded
		}
		dx, dy := geom.RandomDirection(rng).Delta()
		cand.Pos.X += dx
		cand.Pos.Y += dy
	}

	cand = cand.Crop(region)
	if cand.Size.X < cfg.MinRoomSize || cand.Size.Y < cfg.MinRoomSize {
		return geom.Rect{}, errRoomDiscarded
	}
	return cand, nil
}

// overlapsAny reports whether the candidate overlaps any committed room.
func overlapsAny(cand geom.Rect, rooms []world.Room) bool {
	for _, r := range rooms {
		if cand.Overlaps(r.Bounds) {
			return true
		}
	}
	return false
}
