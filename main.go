package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"delve/pkg/game/devtools"
	"delve/pkg/game/generator"
	"delve/pkg/game/renderer/tui"
)

func initGotext() {
	gotext.Configure("mo", "en_GB", "default")
}

func main() {
	defaults := generator.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file with generation settings")
	width := flag.Int("width", defaults.RegionWidth, "level width in tiles")
	height := flag.Int("height", defaults.RegionHeight, "level height in tiles")
	seed := flag.Int64("seed", defaults.Seed, "random seed")
	ratio := flag.Float64("ratio", defaults.TargetFloorRatio, "target floor coverage ratio (0,1]")
	minRoom := flag.Int("min-room", defaults.MinRoomSize, "minimum room width/height")
	maxRoom := flag.Int("max-room", defaults.MaxRoomSize, "maximum room width/height")
	extra := flag.Bool("extra-connections", defaults.ExtraConnections, "carve redundant long corridors after full connectivity")
	dump := flag.Bool("dump", false, "write a debug dump to map.txt")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	initGotext()

	cfg := defaults
	if *configPath != "" {
		loaded, err := generator.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.RegionWidth = *width
		case "height":
			cfg.RegionHeight = *height
		case "seed":
			cfg.Seed = *seed
		case "ratio":
			cfg.TargetFloorRatio = *ratio
		case "min-room":
			cfg.MinRoomSize = *minRoom
		case "max-room":
			cfg.MaxRoomSize = *maxRoom
		case "extra-connections":
			cfg.ExtraConnections = *extra
		}
	})

	level, err := generator.New(cfg).Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", gotext.Get("Level generation failed:"), err)
		os.Exit(1)
	}

	r := tui.New()
	r.NoColor = *noColor
	r.WarnIfTooWide(os.Stdout, level)
	r.Render(os.Stdout, level)

	if *dump {
		path, err := devtools.DumpLevelToFile(level, "map.txt")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", gotext.Get("Map dump failed:"), err)
			os.Exit(1)
		}
		fmt.Println(gotext.Get("Map dump written to"), path)
	}
}
