package sim

import (
	"fmt"

	"tempest/pkg/items"
	"tempest/pkg/logger"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/world"
)

// Arena size used when no map file is configured.
const (
	ArenaWidth  = config.ScreenWidth / config.TileSize
	ArenaHeight = config.ScreenHeight / config.TileSize
)

// LoadRegistry reads the equipment file, or returns the stock registry when path is empty.
func LoadRegistry(path string) (*items.Registry, error) {
	if path == "" {
		return items.DefaultRegistry(), nil
	}
	reg, err := items.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("equipment %s: %w", path, err)
	}
	logger.Log.Infof("Loaded %d weapons and %d spells from %s", reg.WeaponCount(), reg.SpellCount(), path)
	return reg, nil
}

// LoadMap reads the map file, or builds an open arena when path is empty.
func LoadMap(path string) (*world.Map, error) {
	if path == "" {
		return world.NewArena(ArenaWidth, ArenaHeight), nil
	}
	m, err := world.LoadMap(path)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}
