package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tempest/pkg/logger"
	"tempest/pkg/shared/world"
)

func main() {
	opts := world.DefaultGenOptions()
	out := flag.String("out", "data/maps/arena.json", "output map file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	companions := flag.String("companions", strings.Join(opts.Companions, ","), "comma separated character presets for spawners")
	flag.IntVar(&opts.Width, "width", opts.Width, "width in tiles")
	flag.IntVar(&opts.Height, "height", opts.Height, "height in tiles")
	flag.IntVar(&opts.Spawners, "spawners", opts.Spawners, "number of spawners")
	flag.Float64Var(&opts.BoulderChance, "boulders", opts.BoulderChance, "boulder chance per grass tile")
	flag.Parse()

	logger.Init()

	if opts.Width < 3 || opts.Height < 3 {
		logger.Log.Fatalf("Map must be at least 3x3, got %dx%d", opts.Width, opts.Height)
	}
	opts.Companions = nil
	for _, c := range strings.Split(*companions, ",") {
		if c = strings.TrimSpace(c); c != "" {
			opts.Companions = append(opts.Companions, c)
		}
	}

	def := world.Generate(opts, rand.New(rand.NewSource(*seed)))

	file, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		logger.Log.Fatalf("Failed to encode map: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		logger.Log.Fatalf("Failed to create %s: %v", filepath.Dir(*out), err)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		logger.Log.Fatalf("Failed to write %s: %v", *out, err)
	}
	logger.Log.Infof("Generated %s (%dx%d, %d spawners, seed %d)", *out, def.Width, def.Height, len(def.Spawners), *seed)
}
