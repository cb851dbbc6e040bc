// Package generator builds dungeon levels: rooms placed by collision-driven
// displacement, connected through a union-find over distance-sorted pairs,
// and joined by straight or L-shaped corridors. Generation is synchronous
// and deterministic: one config, one level.
package generator

import (
	"fmt"
	"math/rand"

	"delve/pkg/engine/world"
)

// ratioTolerance is how far below the target the achieved floor ratio may
// land before a level attempt is rejected.
const ratioTolerance = 0.01

// substreamStep separates the random substreams of successive whole-level
// attempts, so a retry replays nothing of the failed attempt.
const substreamStep = 0x9E3779B9

// Generator runs the generation pipeline for one configuration.
// Each attempt moves through the phases placing, connecting, carving and
// validating; a failed attempt restarts from placing with a fresh random
// substream until MaxLevelRetries is spent.
type Generator struct {
	cfg       Config
	connector RoomConnector
}

// New creates a generator with the default sorted-edge connector.
func New(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		connector: &SortedEdgeConnector{
			MinConnectionDistance: cfg.MinConnectionDistance,
			ExtraConnections:      cfg.ExtraConnections,
		},
	}
}

// NewWithConnector creates a generator using a custom connection strategy.
func NewWithConnector(cfg Config, connector RoomConnector) *Generator {
	return &Generator{cfg: cfg, connector: connector}
}

// Generate produces a complete level or fails with ErrGenerationExhausted.
// Every per-attempt failure (placement, connection, carving, validation) is
// absorbed by a whole-level retry; no partial level ever escapes.
func (g *Generator) Generate() (*world.Level, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= g.cfg.MaxLevelRetries; attempt++ {
		rng := rand.New(rand.NewSource(g.cfg.Seed + int64(attempt)*substreamStep))
		level, err := g.generateOnce(rng)
		if err == nil {
			return level, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w after %d attempts: %v",
		ErrGenerationExhausted, g.cfg.MaxLevelRetries+1, lastErr)
}

// generateOnce runs a single pipeline attempt.
func (g *Generator) generateOnce(rng *rand.Rand) (*world.Level, error) {
	grid := world.NewGrid(g.cfg.RegionWidth, g.cfg.RegionHeight)
	region := grid.Bounds()

	// Placing: accumulate rooms until the target coverage is reached.
	targetArea := g.cfg.TargetFloorRatio * float64(region.Area())
	floorArea := 0
	failures := 0
	for float64(floorArea) < targetArea || len(grid.Rooms()) < g.cfg.MinRoomCount {
		bounds, err := placeRoom(region, grid.Rooms(), rng, g.cfg)
		if err != nil {
			failures++
			if failures >= g.cfg.MaxPlacementFailures {
				return nil, fmt.Errorf("%w (%d in a row)", ErrPlacementExhausted, failures)
			}
			continue
		}
		failures = 0
		room := grid.AddRoom(bounds)
		floorArea += room.Area()
	}

	// Connecting: pick the corridors to carve.
	ds := NewDisjointSet(len(grid.Rooms()))
	edges, err := g.connector.Connect(grid.Rooms(), ds, rng)
	if err != nil {
		return nil, err
	}

	// Carving: apply the instructions in the order they were emitted.
	for _, e := range edges {
		path, err := carveEdge(grid, e, rng, g.cfg)
		if err != nil {
			return nil, err
		}
		grid.CarveCorridor(path)
	}
	grid.AddWalls()

	// Validating: ground truth, independent of the connector's bookkeeping.
	achieved := grid.FloorRatio()
	if achieved < g.cfg.TargetFloorRatio-ratioTolerance {
		return nil, fmt.Errorf("floor ratio %.3f short of target %.3f", achieved, g.cfg.TargetFloorRatio)
	}
	if !grid.IsFullyConnected() {
		return nil, ErrDisconnectedLevel
	}

	return &world.Level{
		Grid:               grid,
		Seed:               g.cfg.Seed,
		TargetFloorRatio:   g.cfg.TargetFloorRatio,
		AchievedFloorRatio: achieved,
	}, nil
}
