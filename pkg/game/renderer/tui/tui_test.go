package tui

import (
	"strings"
	"testing"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

func testLevel() *world.Level {
	grid := world.NewGrid(8, 4)
	grid.AddRoom(geom.NewRect(1, 1, 3, 2))
	grid.CarveCorridor([]geom.Point{{X: 4, Y: 1}, {X: 5, Y: 1}})
	grid.AddWalls()
	return &world.Level{
		Grid:               grid,
		Seed:               7,
		TargetFloorRatio:   0.2,
		AchievedFloorRatio: grid.FloorRatio(),
	}
}

func TestRenderPlain(t *testing.T) {
	r := New()
	r.NoColor = true

	var sb strings.Builder
	r.Render(&sb, testLevel())
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 4 grid rows plus the summary line.
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	for i, line := range lines[:4] {
		if n := len([]rune(line)); n != 8 {
			t.Errorf("row %d has %d glyphs, want 8", i, n)
		}
	}
	if !strings.Contains(out, IconFloor) {
		t.Error("output should contain floor glyphs")
	}
	if !strings.Contains(out, IconCorridor) {
		t.Error("output should contain corridor glyphs")
	}
	if !strings.Contains(out, IconWall) {
		t.Error("output should contain wall glyphs")
	}
	if !strings.Contains(lines[4], "Seed 7") {
		t.Errorf("summary line missing seed: %q", lines[4])
	}
}

func TestWarnIfTooWideSkipsNonTerminalWriters(t *testing.T) {
	r := New()
	r.NoColor = true

	// The level is far wider than any terminal, but a plain buffer has no
	// size to measure, so nothing must be written.
	grid := world.NewGrid(5000, 2)
	grid.AddRoom(geom.NewRect(0, 0, 2, 2))
	level := &world.Level{Grid: grid}

	var sb strings.Builder
	r.WarnIfTooWide(&sb, level)
	if sb.Len() != 0 {
		t.Errorf("non-terminal writer got a width notice: %q", sb.String())
	}
}

func TestRenderIsStable(t *testing.T) {
	r := New()
	r.NoColor = true
	level := testLevel()

	var a, b strings.Builder
	r.Render(&a, level)
	r.Render(&b, level)
	if a.String() != b.String() {
		t.Error("rendering the same level twice should give identical output")
	}
}
