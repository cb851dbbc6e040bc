// Package world provides the tile grid a generated level lives on: tile
// states, committed rooms, and the validation queries (floor ratio and
// flood-fill connectivity) that decide whether a generation run succeeded.
package world

// Tile represents the state of a single grid position.
type Tile uint8

// Tile states
const (
	// Void is an untouched tile outside any room or corridor.
	Void Tile = iota
	// Floor is a walkable tile inside a committed room.
	Floor
	// Wall is a solid tile ringing the walkable area.
	Wall
	// CorridorFloor is a walkable tile carved for a corridor.
	CorridorFloor
)

// String returns the string representation of a tile state
func (t Tile) String() string {
	switch t {
	case Void:
		return "Void"
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case CorridorFloor:
		return "CorridorFloor"
	default:
		return "Unknown"
	}
}

// Walkable returns true for tiles a creature could stand on.
func (t Tile) Walkable() bool {
	return t == Floor || t == CorridorFloor
}

// Rune returns the single-character map symbol for the tile.
func (t Tile) Rune() rune {
	switch t {
	case Floor:
		return '.'
	case Wall:
		return '#'
	case CorridorFloor:
		return ','
	default:
		return ' '
	}
}
