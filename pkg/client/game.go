// Package client runs the simulation locally under ebiten with a keyboard
// driven player and autonomous companions.
package client

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"tempest/pkg/actor"
	"tempest/pkg/audio"
	"tempest/pkg/client/systems"
	"tempest/pkg/control"
	"tempest/pkg/logger"
	persistence "tempest/pkg/server/systems"
	"tempest/pkg/shared/clock"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/ecs"
	"tempest/pkg/sim"
)

type Game struct {
	Settings config.Settings
	Sim      *sim.Simulation
	Player   ecs.Entity

	// Systems
	InputSystem  *systems.KeyboardInput
	RenderSystem *systems.RenderSystem
	UISystem     *systems.UISystem
	Persistence  *persistence.PersistenceSystem
	Sound        *audio.SoundManager

	player *actor.Actor
}

func NewGame(settings config.Settings) (*Game, error) {
	reg, err := sim.LoadRegistry(settings.Equipment)
	if err != nil {
		return nil, err
	}
	m, err := sim.LoadMap(settings.Map)
	if err != nil {
		return nil, err
	}
	input, err := systems.NewKeyboardInput(settings.Keymap)
	if err != nil {
		return nil, err
	}

	s := sim.New(clock.NewSystem(), reg, m)
	g := &Game{
		Settings:     settings,
		Sim:          s,
		InputSystem:  input,
		RenderSystem: systems.NewRenderSystem(m),
		Persistence:  persistence.NewPersistenceSystem(s, settings.CharacterDir),
	}

	if settings.Sound {
		g.Sound = audio.NewSoundManager()
		if err := g.Sound.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("Audio unavailable, continuing silent")
			g.Sound = nil
		} else {
			s.Sounds = sim.Sounds{Attack: g.Sound.WeaponCue(), Death: g.Sound.DeathCue()}
		}
	}

	// Player: a saved profile is parsed strictly; a bad save stops the game.
	profile, err := g.Persistence.Profile(settings.Character)
	if err != nil {
		return nil, err
	}
	w, h := m.PixelSize()
	g.Player, err = s.Spawn(actor.Config{
		Name:     settings.Character,
		Position: components.Vec2{X: w / 2, Y: h / 2},
		Policy:   control.NewManual(input),
		Profile:  profile,
	}, sim.Appearance{Color: color.RGBA{R: 0, G: 255, B: 0, A: 255}, Player: true})
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	g.Persistence.Track(g.Player, settings.Character)
	g.player = s.Actor(g.Player)

	for _, c := range settings.Companions {
		if _, err := s.SpawnCharacter(c.Character, components.Vec2{X: c.X, Y: c.Y}, actor.Profile{}); err != nil {
			logger.Log.WithError(err).Warn("Skipping companion")
		}
	}
	for _, sp := range m.Spawners {
		if _, err := s.SpawnCharacter(sp.CharacterID, components.Vec2{X: sp.X, Y: sp.Y}, actor.Profile{}); err != nil {
			logger.Log.WithError(err).Warn("Skipping spawner")
		}
	}

	g.UISystem = systems.NewUISystem(g.player, s.Tick)
	return g, nil
}

func (g *Game) Update() error {
	if systems.DebugToggled() {
		g.UISystem.ToggleDebug()
		g.RenderSystem.Debug = !g.RenderSystem.Debug
	}

	if err := g.Sim.Step(); err != nil {
		return err
	}
	if g.player.Dead && g.Sim.Actor(g.Player) == nil {
		logger.Log.Info("Player died")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 60, B: 20, A: 255}) // Dark green background
	g.RenderSystem.Draw(screen, g.Sim.Snapshot())
	g.UISystem.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close saves the player while alive and releases the audio device.
func (g *Game) Close() error {
	var err error
	if !g.player.Dead {
		err = g.Persistence.Save(g.Player)
	}
	if g.Sound != nil {
		g.Sound.Cleanup()
	}
	return err
}

// IsTermination reports whether err is the normal end of the game loop.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
