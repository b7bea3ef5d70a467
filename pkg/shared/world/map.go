package world

import "tempest/pkg/shared/config"

type TileType int

const (
	TileGrass TileType = iota
	TileWater
	TileTree
	TileBoulder
	TileSand
	TileDirtPath
	TileStoneFloor
	TileWall
)

func (t TileType) IsSolid() bool {
	switch t {
	case TileWater, TileTree, TileBoulder, TileWall:
		return true
	default:
		return false
	}
}

type Tile struct {
	Type TileType
}

// Map is the obstacle grid actors move on.
type Map struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile // Ground Layer
	Objects  [][]int  // Object Layer (0=Empty, >0=solid prop)
	Spawners []Spawner

	// Hitbox is the collision box, centered on the actor position.
	HitboxW, HitboxH float64
}

// Spawner places a character preset on the map.
type Spawner struct {
	X, Y        float64
	CharacterID string
}

func NewMap(width, height int) *Map {
	m := &Map{
		Width:    width,
		Height:   height,
		TileSize: config.TileSize,
		Tiles:    make([][]Tile, height),
		Objects:  make([][]int, height),
		HitboxW:  config.TileSize - 6,
		HitboxH:  config.TileSize - 26,
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
		m.Objects[y] = make([]int, width)
	}
	return m
}

// PixelSize is the map extent in pixels.
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width) * m.TileSize, float64(m.Height) * m.TileSize
}

func (m *Map) solidAt(tx, ty int) bool {
	if tx < 0 || tx >= m.Width || ty < 0 || ty >= m.Height {
		return true // Out of bounds is a collision
	}
	return m.Tiles[ty][tx].Type.IsSolid() || m.Objects[ty][tx] > 0
}

// NewArena is an open grass field ringed by walls.
func NewArena(width, height int) *Map {
	m := NewMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				m.Tiles[y][x] = Tile{Type: TileWall}
			}
		}
	}
	return m
}
