package generator

import (
	"errors"
	"math/rand"
	"testing"

	"delve/pkg/engine/geom"
	"delve/pkg/engine/world"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.RegionWidth = 30
	cfg.RegionHeight = 30
	cfg.TargetFloorRatio = 0.35
	cfg.MinRoomSize = 4
	cfg.MaxRoomSize = 8
	cfg.Seed = 42
	return cfg
}

func TestGenerateScenario(t *testing.T) {
	level, err := New(scenarioConfig()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(level.Rooms()) < 1 {
		t.Error("level should contain at least one room")
	}
	if level.AchievedFloorRatio < 0.35-ratioTolerance {
		t.Errorf("achieved floor ratio %.3f below target", level.AchievedFloorRatio)
	}
	if !level.Grid.IsFullyConnected() {
		t.Error("level should be fully connected")
	}
	if level.Seed != 42 {
		t.Errorf("level seed = %d, want 42", level.Seed)
	}
}

func TestGenerateRoomsDisjointAndInBounds(t *testing.T) {
	level, err := New(scenarioConfig()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	region := level.Grid.Bounds()
	rooms := level.Rooms()
	for i, a := range rooms {
		if a.Bounds.Crop(region) != a.Bounds {
			t.Errorf("room %d bounds %+v leave the region", a.ID, a.Bounds)
		}
		for _, b := range rooms[i+1:] {
			if a.Bounds.Overlaps(b.Bounds) {
				t.Errorf("rooms %d and %d overlap", a.ID, b.ID)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := New(scenarioConfig()).Generate()
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := New(scenarioConfig()).Generate()
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	if len(first.Rooms()) != len(second.Rooms()) {
		t.Fatalf("room counts differ: %d vs %d", len(first.Rooms()), len(second.Rooms()))
	}
	for i := range first.Rooms() {
		if first.Rooms()[i] != second.Rooms()[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, first.Rooms()[i], second.Rooms()[i])
		}
	}
	first.Grid.ForEachTile(func(p geom.Point, tile world.Tile) {
		if other := second.Grid.At(p); other != tile {
			t.Errorf("tile %+v differs: %v vs %v", p, tile, other)
		}
	})
	if first.AchievedFloorRatio != second.AchievedFloorRatio {
		t.Errorf("achieved ratios differ: %f vs %f",
			first.AchievedFloorRatio, second.AchievedFloorRatio)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	cfg := scenarioConfig()
	first, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	cfg.Seed = 1234
	second, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	same := true
	first.Grid.ForEachTile(func(p geom.Point, tile world.Tile) {
		if second.Grid.At(p) != tile {
			same = false
		}
	})
	if same {
		t.Error("different seeds produced identical grids")
	}
}

func TestGenerateImpossibleRoomSizeExhausts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegionWidth = 10
	cfg.RegionHeight = 10
	cfg.MinRoomSize = 20
	cfg.MaxRoomSize = 20
	cfg.MaxPlacementFailures = 10
	cfg.MaxLevelRetries = 3

	_, err := New(cfg).Generate()
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Errorf("err = %v, want ErrGenerationExhausted", err)
	}
}

func TestGenerateUnreachableRatioTerminates(t *testing.T) {
	// A target near 1 with small rooms cannot be met; the run must end in
	// bounded time with exhaustion rather than looping.
	cfg := DefaultConfig()
	cfg.RegionWidth = 20
	cfg.RegionHeight = 20
	cfg.TargetFloorRatio = 0.99
	cfg.MinRoomSize = 3
	cfg.MaxRoomSize = 4
	cfg.MaxPlacementFailures = 15
	cfg.MaxLevelRetries = 3

	_, err := New(cfg).Generate()
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Errorf("err = %v, want ErrGenerationExhausted", err)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetFloorRatio = 1.5
	if _, err := New(cfg).Generate(); err == nil {
		t.Error("invalid config should fail Generate")
	}
}

func TestGenerateMinRoomCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegionWidth = 40
	cfg.RegionHeight = 40
	cfg.TargetFloorRatio = 0.05 // met by a single room
	cfg.MinRoomCount = 4
	cfg.Seed = 7

	level, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(level.Rooms()) < 4 {
		t.Errorf("got %d rooms, want at least 4", len(level.Rooms()))
	}
}

// namedConnector exercises the pluggable strategy hook.
type namedConnector struct {
	inner SortedEdgeConnector
	calls int
}

func (n *namedConnector) Name() string { return "Test Strategy" }

func (n *namedConnector) Connect(rooms []world.Room, ds *DisjointSet, rng *rand.Rand) ([]Edge, error) {
	n.calls++
	return n.inner.Connect(rooms, ds, rng)
}

func TestGenerateWithCustomConnector(t *testing.T) {
	c := &namedConnector{}
	level, err := NewWithConnector(scenarioConfig(), c).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.calls == 0 {
		t.Error("custom connector was never invoked")
	}
	if !level.Grid.IsFullyConnected() {
		t.Error("level should be fully connected")
	}
}
