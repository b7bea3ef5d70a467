// Package ui draws the in-game HUD: resource bars, equipment boxes and labels.
// Widgets pull their values through bindings each frame.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD palette
var (
	ColorBackground   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	ColorBorder       = color.RGBA{0x11, 0x11, 0x11, 0xff}
	ColorBorderActive = color.RGBA{0xff, 0xd7, 0x00, 0xff} // Gold
	ColorHealth       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColorEnergy       = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColorText         = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

// Element is the base interface for all HUD widgets.
type Element interface {
	Draw(screen *ebiten.Image)
	SetPosition(x, y float64)
	GetPosition() (float64, float64)
	IsVisible() bool
	SetVisible(visible bool)
}

// BaseElement holds common properties
type BaseElement struct {
	X, Y          float64
	Width, Height float64
	Visible       bool
}

func (b *BaseElement) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

func (b *BaseElement) GetPosition() (float64, float64) {
	return b.X, b.Y
}

func (b *BaseElement) IsVisible() bool {
	return b.Visible
}

func (b *BaseElement) SetVisible(visible bool) {
	b.Visible = visible
}

// Label prints bound text with the debug font.
type Label struct {
	BaseElement
	Text func() string
}

func NewLabel(x, y float64, text func() string) *Label {
	return &Label{
		BaseElement: BaseElement{X: x, Y: y, Visible: true},
		Text:        text,
	}
}

func (l *Label) Draw(screen *ebiten.Image) {
	if !l.Visible || l.Text == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, l.Text(), int(l.X), int(l.Y))
}

// Manager draws its elements in insertion order.
type Manager struct {
	Elements []Element
}

func NewManager() *Manager {
	return &Manager{
		Elements: make([]Element, 0),
	}
}

func (m *Manager) AddElement(e Element) {
	m.Elements = append(m.Elements, e)
}

func (m *Manager) Draw(screen *ebiten.Image) {
	for _, e := range m.Elements {
		if e.IsVisible() {
			e.Draw(screen)
		}
	}
}

func drawBorder(screen *ebiten.Image, x, y, w, h float64, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, c, false)
}
