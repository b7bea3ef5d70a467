package world

import (
	"math/rand"

	"tempest/pkg/shared/components"
)

// GenOptions shapes a generated arena.
type GenOptions struct {
	Width, Height int
	BoulderChance float64 // per grass tile
	Companions    []string
	Spawners      int
}

func DefaultGenOptions() GenOptions {
	return GenOptions{
		Width:         30,
		Height:        20,
		BoulderChance: 0.05,
		Companions:    []string{"guard_patrol", "sentry", "wanderer"},
		Spawners:      4,
	}
}

// Generate builds a walled arena with a pond, a cross of paths and scattered
// boulders, then places spawners on walkable tiles.
func Generate(opts GenOptions, rng *rand.Rand) MapDefinition {
	w, h := opts.Width, opts.Height
	ground := make([][]int, h)
	objects := make([][]int, h)
	for y := range ground {
		ground[y] = make([]int, w)
		objects[y] = make([]int, w)
	}

	cx, cy := w/3, h/3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			switch {
			case x == 0 || y == 0 || x == w-1 || y == h-1:
				ground[y][x] = int(TileWall)
			case dx*dx+dy*dy < 4:
				ground[y][x] = int(TileWater)
			case dx*dx+dy*dy < 9:
				ground[y][x] = int(TileSand) // Beach
			case x == w/2 || y == h/2:
				ground[y][x] = int(TileDirtPath)
			default:
				ground[y][x] = int(TileGrass)
			}
		}
	}

	// Boulders only on grass
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if TileType(ground[y][x]) == TileGrass && rng.Float64() < opts.BoulderChance {
				objects[y][x] = 1
			}
		}
	}

	def := MapDefinition{
		Width:  w,
		Height: h,
		Layers: MapLayers{Ground: ground, Objects: objects},
	}
	if len(opts.Companions) == 0 {
		return def
	}

	m := def.Build()
	for i := 0; i < opts.Spawners; i++ {
		// Try 10 times to find a walkable spot
		for attempt := 0; attempt < 10; attempt++ {
			x := m.TileSize * (float64(1+rng.Intn(w-2)) + 0.5)
			y := m.TileSize * (float64(1+rng.Intn(h-2)) + 0.5)
			if !m.Walkable(components.Vec2{X: x, Y: y}) {
				continue
			}
			def.Spawners = append(def.Spawners, SpawnerDef{
				X:           x,
				Y:           y,
				CharacterID: opts.Companions[i%len(opts.Companions)],
			})
			break
		}
	}
	return def
}
