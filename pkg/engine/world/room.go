package world

import "delve/pkg/engine/geom"

// Room is a committed rectangular floor area. IDs are assigned when the room
// is added to a grid, are dense (0..n-1 in creation order), and never change.
type Room struct {
	ID     int
	Bounds geom.Rect
}

// Center returns the room's center tile.
func (r Room) Center() geom.Point {
	return r.Bounds.Center()
}

// Area returns the number of floor tiles the room covers.
func (r Room) Area() int {
	return r.Bounds.Area()
}
