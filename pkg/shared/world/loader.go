package world

import (
	"encoding/json"
	"fmt"
	"os"

	"tempest/pkg/logger"
)

type MapDefinition struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Layers   MapLayers    `json:"layers"`
	Spawners []SpawnerDef `json:"spawners"`
}

type MapLayers struct {
	Ground  [][]int `json:"ground"`
	Objects [][]int `json:"objects"`
}

type SpawnerDef struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	CharacterID string  `json:"character_id"`
}

func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMap(data)
}

func ParseMap(data []byte) (*Map, error) {
	var def MapDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse map json: %w", err)
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("map has no extent: %dx%d", def.Width, def.Height)
	}
	return def.Build(), nil
}

// Build turns a definition into a Map. Mismatched layer rows are skipped.
func (def MapDefinition) Build() *Map {
	m := NewMap(def.Width, def.Height)
	for _, s := range def.Spawners {
		m.Spawners = append(m.Spawners, Spawner{X: s.X, Y: s.Y, CharacterID: s.CharacterID})
	}

	if len(def.Layers.Ground) == def.Height {
		for y := 0; y < def.Height; y++ {
			if len(def.Layers.Ground[y]) != def.Width {
				logger.Log.Warnf("Ground layer row %d width mismatch. Expected %d, got %d", y, def.Width, len(def.Layers.Ground[y]))
				continue
			}
			for x := 0; x < def.Width; x++ {
				m.Tiles[y][x] = Tile{Type: TileType(def.Layers.Ground[y][x])}
			}
		}
	} else {
		logger.Log.Warnf("Ground layer height mismatch. Expected %d, got %d", def.Height, len(def.Layers.Ground))
	}

	// Objects are optional
	if len(def.Layers.Objects) == def.Height {
		for y := 0; y < def.Height; y++ {
			if len(def.Layers.Objects[y]) != def.Width {
				continue
			}
			copy(m.Objects[y], def.Layers.Objects[y])
		}
	}

	return m
}
