package world

// Level is the result of a successful generation run: the tile grid, the
// rooms it was built from, and the generation metadata. A Level is only ever
// returned whole; after generation completes it is read-only.
type Level struct {
	Grid *Grid

	// Seed is the seed the level was generated from.
	Seed int64
	// TargetFloorRatio is the coverage the generator was asked for.
	TargetFloorRatio float64
	// AchievedFloorRatio is the coverage the finished grid actually has.
	AchievedFloorRatio float64
}

// Rooms returns the level's rooms in creation order.
func (l *Level) Rooms() []Room {
	return l.Grid.Rooms()
}
