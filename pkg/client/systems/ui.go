package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"tempest/pkg/actor"
	"tempest/pkg/shared/config"
	"tempest/pkg/ui"
)

// UISystem is the player's HUD: health and energy bars, the weapon and spell
// boxes and an optional debug readout.
type UISystem struct {
	Manager *ui.Manager
	Debug   *ui.Label
}

func NewUISystem(player *actor.Actor, ticks func() int64) *UISystem {
	m := ui.NewManager()

	m.AddElement(ui.NewBar(10, 10, ui.HealthBarWidth, ui.ColorHealth, func() (float64, float64) {
		return player.Health, player.Stats.Health
	}))
	m.AddElement(ui.NewBar(10, 34, ui.EnergyBarWidth, ui.ColorEnergy, func() (float64, float64) {
		return player.Energy, player.Stats.Energy
	}))

	boxY := float64(config.ScreenHeight - ui.ItemBoxSize - 10)
	m.AddElement(ui.NewSelectionBox(10, boxY, func() string {
		if w, err := player.Weapon(); err == nil {
			return w.ID
		}
		return "?"
	}, func() bool { return !player.CanSwitchWeapon() }))
	m.AddElement(ui.NewSelectionBox(10+ui.ItemBoxSize-10, boxY+5, func() string {
		if s, err := player.Spell(); err == nil {
			return s.ID
		}
		return "?"
	}, func() bool { return !player.CanSwitchSpell() }))

	debug := ui.NewLabel(config.ScreenWidth-220, 10, func() string {
		return fmt.Sprintf("TPS %.0f  tick %d\n%s\nx %.0f y %.0f\nexp %.0f",
			ebiten.ActualTPS(), ticks(), player.Status, player.Position.X, player.Position.Y, player.Exp)
	})
	debug.SetVisible(false)
	m.AddElement(debug)

	return &UISystem{Manager: m, Debug: debug}
}

func (s *UISystem) ToggleDebug() {
	s.Debug.SetVisible(!s.Debug.IsVisible())
}

func (s *UISystem) Draw(screen *ebiten.Image) {
	s.Manager.Draw(screen)
}
