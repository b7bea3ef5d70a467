package world

import (
	"encoding/json"
	"math/rand"
	"testing"

	"tempest/pkg/shared/components"
)

func arena() *Map {
	m := NewMap(10, 10)
	// Wall column at tile x=5
	for y := 0; y < 10; y++ {
		m.Tiles[y][5] = Tile{Type: TileWall}
	}
	return m
}

func TestResolveFreeMove(t *testing.T) {
	m := arena()
	from := components.Vec2{X: 96, Y: 96}
	to := components.Vec2{X: 101, Y: 101}
	if got := m.Resolve(from, to); got != to {
		t.Errorf("Expected free move to %v, got %v", to, got)
	}
}

func TestResolveSlidesAlongWall(t *testing.T) {
	m := arena()
	// 58px hitbox: right edge at 319 clears the wall at 320, +5 does not.
	from := components.Vec2{X: 290, Y: 200}
	to := components.Vec2{X: 295, Y: 205}
	got := m.Resolve(from, to)
	if got.X != 290 {
		t.Errorf("Expected horizontal move to be blocked, got x=%.0f", got.X)
	}
	if got.Y != 205 {
		t.Errorf("Expected vertical slide to go through, got y=%.0f", got.Y)
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	m := arena()
	from := components.Vec2{X: 40, Y: 40}
	got := m.Resolve(from, components.Vec2{X: 20, Y: 40})
	if got != from {
		t.Errorf("Expected map edge to block, got %v", got)
	}
}

func TestWalkable(t *testing.T) {
	m := arena()
	if !m.Walkable(components.Vec2{X: 96, Y: 96}) {
		t.Error("Expected open ground to be walkable")
	}
	if m.Walkable(components.Vec2{X: 352, Y: 96}) {
		t.Error("Expected wall tile to be blocked")
	}
	m.Objects[1][1] = 1
	if m.Walkable(components.Vec2{X: 96, Y: 96}) {
		t.Error("Expected object layer to block")
	}
}

func TestParseMap(t *testing.T) {
	src := []byte(`{
  "width": 2, "height": 2,
  "layers": {"ground": [[0, 7], [0, 0]], "objects": [[0, 0], [1, 0]]},
  "spawners": [{"x": 96, "y": 96, "character_id": "sentry"}]
}`)
	m, err := ParseMap(src)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if m.Tiles[0][1].Type != TileWall || m.Objects[1][0] != 1 {
		t.Error("Expected layers to be copied")
	}
	if len(m.Spawners) != 1 || m.Spawners[0].CharacterID != "sentry" {
		t.Errorf("Unexpected spawners %+v", m.Spawners)
	}

	if _, err := ParseMap([]byte(`{"width": 0}`)); err == nil {
		t.Error("Expected empty map to be rejected")
	}
}

func TestArenaIsWalled(t *testing.T) {
	m := NewArena(6, 5)
	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 4}, {3, 4}, {5, 2}} {
		if !m.solidAt(p[0], p[1]) {
			t.Errorf("border tile %v not solid", p)
		}
	}
	if m.solidAt(2, 2) {
		t.Errorf("interior tile is solid")
	}
	if !m.Walkable(components.Vec2{X: 160, Y: 160}) {
		t.Errorf("arena center not walkable")
	}
}

func TestGenerateArena(t *testing.T) {
	opts := DefaultGenOptions()
	def := Generate(opts, rand.New(rand.NewSource(7)))

	if def.Width != opts.Width || def.Height != opts.Height {
		t.Fatalf("size = %dx%d", def.Width, def.Height)
	}
	for x := 0; x < def.Width; x++ {
		if TileType(def.Layers.Ground[0][x]) != TileWall || TileType(def.Layers.Ground[def.Height-1][x]) != TileWall {
			t.Fatalf("column %d not walled", x)
		}
	}
	if len(def.Spawners) == 0 {
		t.Fatalf("no spawners placed")
	}

	b, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m, err := ParseMap(b)
	if err != nil {
		t.Fatalf("parse generated map: %v", err)
	}
	for _, sp := range m.Spawners {
		if !m.Walkable(components.Vec2{X: sp.X, Y: sp.Y}) {
			t.Errorf("spawner %s at %v,%v is blocked", sp.CharacterID, sp.X, sp.Y)
		}
	}
}
