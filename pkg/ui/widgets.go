package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD layout
const (
	BarHeight      = 20
	HealthBarWidth = 200
	EnergyBarWidth = 140
	ItemBoxSize    = 80
)

// Bar is a resource gauge, e.g. health or energy.
type Bar struct {
	BaseElement
	Fill  color.Color
	Value func() (current, maximum float64)
}

func NewBar(x, y, w float64, fill color.Color, value func() (float64, float64)) *Bar {
	return &Bar{
		BaseElement: BaseElement{X: x, Y: y, Width: w, Height: BarHeight, Visible: true},
		Fill:        fill,
		Value:       value,
	}
}

// FillRatio is current/maximum clamped to [0, 1]. A non-positive maximum reads as empty.
func FillRatio(current, maximum float64) float64 {
	if maximum <= 0 {
		return 0
	}
	return max(0, min(1, current/maximum))
}

// FillWidth is the filled part of the bar in pixels.
func (b *Bar) FillWidth() float64 {
	if b.Value == nil {
		return 0
	}
	return FillRatio(b.Value()) * b.Width
}

func (b *Bar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), ColorBackground, false)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.FillWidth()), float32(b.Height), b.Fill, false)
	drawBorder(screen, b.X, b.Y, b.Width, b.Height, 3, ColorBorder)
}

// SelectionBox shows the equipped weapon or spell. The border lights up while
// the slot's switch lock is held.
type SelectionBox struct {
	BaseElement
	Item   func() string
	Locked func() bool
}

func NewSelectionBox(x, y float64, item func() string, locked func() bool) *SelectionBox {
	return &SelectionBox{
		BaseElement: BaseElement{X: x, Y: y, Width: ItemBoxSize, Height: ItemBoxSize, Visible: true},
		Item:        item,
		Locked:      locked,
	}
}

func (s *SelectionBox) BorderColor() color.Color {
	if s.Locked != nil && s.Locked() {
		return ColorBorderActive
	}
	return ColorBorder
}

func (s *SelectionBox) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), ColorBackground, false)
	drawBorder(screen, s.X, s.Y, s.Width, s.Height, 3, s.BorderColor())
	if s.Item != nil {
		ebitenutil.DebugPrintAt(screen, s.Item(), int(s.X)+8, int(s.Y+s.Height/2)-8)
	}
}
