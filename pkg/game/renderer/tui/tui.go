// Package tui renders a generated level to a terminal: one colored glyph
// per tile, with a summary line of the generation metadata. It consumes a
// finished level only and never mutates it.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

// Glyphs for the map tiles
const (
	IconVoid     = " "
	IconFloor    = "·"
	IconWall     = "▒"
	IconCorridor = "░"
)

// Renderer writes a level as colored text.
type Renderer struct {
	colorFloor    color.Style
	colorWall     color.Style
	colorCorridor color.Style
	colorSubtle   color.Style

	// NoColor disables styling, for dumb terminals and piped output.
	NoColor bool
}

// New creates a renderer with the default styles.
func New() *Renderer {
	return &Renderer{
		colorFloor:    color.Style{color.FgBlue},
		colorWall:     color.Style{color.FgGray, color.OpBold},
		colorCorridor: color.Style{color.FgCyan},
		colorSubtle:   color.Style{color.FgGray},
	}
}

// Render writes the whole level map to w, one line per grid row, followed by
// the generation summary.
func (r *Renderer) Render(w io.Writer, level *world.Level) {
	grid := level.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			fmt.Fprint(w, r.tileGlyph(grid.At(geom.Pt(x, y))))
		}
		fmt.Fprintln(w)
	}

	summary := gotext.Get("Seed %d: %d rooms, floor ratio %.2f (target %.2f)",
		level.Seed, len(level.Rooms()), level.AchievedFloorRatio, level.TargetFloorRatio)
	fmt.Fprintln(w, r.styled(r.colorSubtle, summary))
}

// WarnIfTooWide prints a notice when the map is wider than the terminal, so
// a wrapped map is not mistaken for a generation bug. The terminal size is
// measured from w itself; writers that are not terminal files get no notice.
func (r *Renderer) WarnIfTooWide(w io.Writer, level *world.Level) {
	f, ok := w.(*os.File)
	if !ok {
		return
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return
	}
	if level.Grid.Width() > width {
		fmt.Fprintln(w, r.styled(r.colorSubtle,
			gotext.Get("Map is %d columns wide but the terminal only has %d; lines will wrap.",
				level.Grid.Width(), width)))
	}
}

func (r *Renderer) tileGlyph(t world.Tile) string {
	switch t {
	case world.Floor:
		return r.styled(r.colorFloor, IconFloor)
	case world.Wall:
		return r.styled(r.colorWall, IconWall)
	case world.CorridorFloor:
		return r.styled(r.colorCorridor, IconCorridor)
	default:
		return IconVoid
	}
}

func (r *Renderer) styled(s color.Style, text string) string {
	if r.NoColor {
		return text
	}
	return s.Sprint(text)
}
