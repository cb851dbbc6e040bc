// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

// DumpLevelToFile writes a full debug dump of a generated level: metadata,
// legend, the ASCII map, and a per-room table. Format is human- and
// LLM-readable (sections, key: value, consistent structure). Returns the
// absolute path written.
func DumpLevelToFile(level *world.Level, filename string) (string, error) {
	if level == nil || level.Grid == nil {
		return "", fmt.Errorf("no level")
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	grid := level.Grid

	fmt.Fprintln(f, "=== LEVEL DUMP DEBUG (layout, rooms, coverage) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", level.Seed)
	fmt.Fprintf(f, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(f, "grid_height: %d\n", grid.Height())
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "room_count: %d\n", len(level.Rooms()))
	fmt.Fprintf(f, "target_floor_ratio: %.3f\n", level.TargetFloorRatio)
	fmt.Fprintf(f, "achieved_floor_ratio: %.3f\n", level.AchievedFloorRatio)
	fmt.Fprintf(f, "fully_connected: %v\n", grid.IsFullyConnected())
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (tile symbols) ---")
	fmt.Fprintln(f, ". = room floor  , = corridor  # = wall  (space) = void")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map ---")
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			fmt.Fprintf(f, "%c", grid.At(geom.Pt(x, y)).Rune())
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Rooms (creation order) ---")
	for _, room := range level.Rooms() {
		b := room.Bounds
		c := room.Center()
		fmt.Fprintf(f, "  id: %d x: %d y: %d width: %d height: %d area: %d center: %d,%d\n",
			room.ID, b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y, room.Area(), c.X, c.Y)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END LEVEL DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
