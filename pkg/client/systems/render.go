package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tempest/pkg/shared/config"
	protocol "tempest/pkg/shared/network"
	"tempest/pkg/shared/world"
)

// RenderSystem draws the map and a frame snapshot as flat shapes, with the
// camera following the player.
type RenderSystem struct {
	Map   *world.Map
	Debug bool
}

func NewRenderSystem(m *world.Map) *RenderSystem {
	return &RenderSystem{Map: m}
}

// Camera is the top-left world point of the view: the player centred, or the
// origin when there is no player.
func Camera(f protocol.Frame) (float64, float64) {
	for _, a := range f.Actors {
		if a.Player {
			return a.X - config.ScreenWidth/2, a.Y - config.ScreenHeight/2
		}
	}
	return 0, 0
}

func tileColor(t world.TileType) color.RGBA {
	switch t {
	case world.TileGrass:
		return color.RGBA{34, 139, 34, 255} // Forest Green
	case world.TileWater:
		return color.RGBA{0, 191, 255, 255} // Deep Sky Blue
	case world.TileSand:
		return color.RGBA{238, 214, 175, 255}
	case world.TileDirtPath:
		return color.RGBA{139, 69, 19, 255} // Saddle Brown
	case world.TileStoneFloor:
		return color.RGBA{105, 105, 105, 255} // Dim Gray
	case world.TileWall:
		return color.RGBA{60, 60, 70, 255}
	case world.TileTree:
		return color.RGBA{1, 50, 32, 255}
	case world.TileBoulder:
		return color.RGBA{128, 128, 128, 255}
	default:
		return color.RGBA{0, 100, 0, 255} // Fallback Dark Green
	}
}

func effectColor(kind string) color.RGBA {
	switch kind {
	case "flame":
		return color.RGBA{255, 69, 0, 200}
	case "heal":
		return color.RGBA{120, 255, 120, 160}
	case "blink":
		return color.RGBA{180, 120, 255, 160}
	default:
		return color.RGBA{230, 230, 230, 220} // weapon hitbox
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, f protocol.Frame) {
	camX, camY := Camera(f)
	s.drawMap(screen, camX, camY)

	half := float32(config.TileSize / 2)
	for _, fx := range f.Effects {
		x, y := float32(fx.X-camX), float32(fx.Y-camY)
		vector.DrawFilledRect(screen, x-half/2, y-half/2, half, half, effectColor(fx.Kind), false)
	}

	for _, a := range f.Actors {
		x, y := float32(a.X-camX), float32(a.Y-camY)
		c := a.Color
		if c == (color.RGBA{}) {
			c = color.RGBA{0, 255, 0, 255}
		}
		body := color.NRGBA{R: c.R, G: c.G, B: c.B, A: a.Alpha}
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, body, true)
		drawFacing(screen, x, y, half, a.Facing)

		// Health bar over anything hurt
		if a.MaxHealth > 0 && a.Health < a.MaxHealth {
			pct := float32(max(a.Health, 0) / a.MaxHealth)
			vector.DrawFilledRect(screen, x-half, y-half-10, 2*half, 5, color.RGBA{50, 50, 50, 255}, true)
			vector.DrawFilledRect(screen, x-half, y-half-10, 2*half*min(pct, 1), 5, color.RGBA{0, 255, 0, 255}, true)
		}
		if s.Debug {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n%s #%d", a.Name, a.Status, a.Frame), int(x-half), int(y+half))
		}
	}
}

func (s *RenderSystem) drawMap(screen *ebiten.Image, camX, camY float64) {
	if s.Map == nil {
		return
	}
	ts := s.Map.TileSize
	for y := 0; y < s.Map.Height; y++ {
		for x := 0; x < s.Map.Width; x++ {
			tx := float64(x)*ts - camX
			ty := float64(y)*ts - camY
			if tx+ts < 0 || tx > config.ScreenWidth || ty+ts < 0 || ty > config.ScreenHeight {
				continue
			}
			vector.DrawFilledRect(screen, float32(tx), float32(ty), float32(ts), float32(ts), tileColor(s.Map.Tiles[y][x].Type), false)
			if s.Map.Objects[y][x] > 0 {
				margin := float32(4)
				vector.DrawFilledRect(screen, float32(tx)+margin, float32(ty)+margin, float32(ts)-margin*2, float32(ts)-margin*2, color.RGBA{1, 50, 32, 200}, true)
			}
		}
	}
}

// drawFacing marks the side the actor looks at.
func drawFacing(screen *ebiten.Image, x, y, half float32, facing string) {
	const n = 8
	mx, my := x-n/2, y-n/2
	switch facing {
	case "up":
		my = y - half
	case "down":
		my = y + half - n
	case "left":
		mx = x - half
	case "right":
		mx = x + half - n
	}
	vector.DrawFilledRect(screen, mx, my, n, n, color.RGBA{20, 20, 20, 255}, false)
}
