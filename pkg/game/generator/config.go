package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob of a generation run. A run is a pure function of
// its Config: same config, same level.
type Config struct {
	// RegionWidth and RegionHeight fix the level bounds.
	RegionWidth  int `yaml:"regionWidth"`
	RegionHeight int `yaml:"regionHeight"`

	// TargetFloorRatio is the fraction of tiles, in (0,1], that should end
	// up walkable (room floor plus corridors).
	TargetFloorRatio float64 `yaml:"targetFloorRatio"`

	// MinRoomSize and MaxRoomSize bound room width and height.
	MinRoomSize int `yaml:"minRoomSize"`
	MaxRoomSize int `yaml:"maxRoomSize"`

	// MinRoomCount is the lower bound on rooms before connection is
	// attempted, regardless of coverage.
	MinRoomCount int `yaml:"minRoomCount"`

	// MinConnectionDistance is the shortest extra connection worth carving
	// once the level is already fully connected. Only used when
	// ExtraConnections is on.
	MinConnectionDistance int `yaml:"minConnectionDistance"`

	// ExtraConnections keeps the connector scanning after full
	// connectivity, accepting redundant links longer than
	// MinConnectionDistance. Off by default: no loop edges.
	ExtraConnections bool `yaml:"extraConnections"`

	// MaxPushSteps bounds the displacement loop for one candidate room.
	MaxPushSteps int `yaml:"maxPushSteps"`

	// MaxPlacementFailures is how many consecutive discarded candidates
	// abort the placing phase.
	MaxPlacementFailures int `yaml:"maxPlacementFailures"`

	// CarveRetries is how many alternative routes the carver tries before
	// falling back to (or, with StrictCarving, rejecting) a path that
	// clips a third room.
	CarveRetries int `yaml:"carveRetries"`

	// StrictCarving rejects the level attempt instead of accepting a
	// corridor that crosses a third room.
	StrictCarving bool `yaml:"strictCarving"`

	// MaxLevelRetries is how many times the whole pipeline restarts before
	// giving up for good.
	MaxLevelRetries int `yaml:"maxLevelRetries"`

	// Seed seeds the random stream.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a config that generates a mid-sized level.
func DefaultConfig() Config {
	return Config{
		RegionWidth:           48,
		RegionHeight:          32,
		TargetFloorRatio:      0.35,
		MinRoomSize:           4,
		MaxRoomSize:           9,
		MinRoomCount:          1,
		MinConnectionDistance: 3,
		MaxPushSteps:          60,
		MaxPlacementFailures:  30,
		CarveRetries:          4,
		MaxLevelRetries:       10,
		Seed:                  1,
	}
}

// LoadConfig reads a YAML config file over the defaults, so a file only
// needs to name the fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the generator cannot work with.
func (c Config) Validate() error {
	if c.RegionWidth < 1 || c.RegionHeight < 1 {
		return fmt.Errorf("region must be positive, got %dx%d", c.RegionWidth, c.RegionHeight)
	}
	if c.TargetFloorRatio <= 0 || c.TargetFloorRatio > 1 {
		return fmt.Errorf("targetFloorRatio must be in (0,1], got %g", c.TargetFloorRatio)
	}
	if c.MinRoomSize < 1 {
		return fmt.Errorf("minRoomSize must be at least 1, got %d", c.MinRoomSize)
	}
	if c.MaxRoomSize < c.MinRoomSize {
		return fmt.Errorf("maxRoomSize %d is smaller than minRoomSize %d", c.MaxRoomSize, c.MinRoomSize)
	}
	if c.MinRoomCount < 0 {
		return fmt.Errorf("minRoomCount must not be negative, got %d", c.MinRoomCount)
	}
	if c.MaxPushSteps < 0 || c.MaxPlacementFailures < 1 || c.CarveRetries < 0 || c.MaxLevelRetries < 0 {
		return fmt.Errorf("attempt budgets must not be negative")
	}
	return nil
}
