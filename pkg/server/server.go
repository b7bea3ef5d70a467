// Package server runs the simulation headless: every actor is autonomous, the
// tick loop publishes frames to telemetry watchers and saves on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tempest/pkg/logger"
	"tempest/pkg/network"
	"tempest/pkg/server/systems"
	"tempest/pkg/shared/clock"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	protocol "tempest/pkg/shared/network"
	"tempest/pkg/sim"
)

type GameServer struct {
	Settings    config.Settings
	Sim         *sim.Simulation
	Hub         *network.Hub
	Persistence *systems.PersistenceSystem
}

func NewGameServer(settings config.Settings) (*GameServer, error) {
	return NewGameServerWithClock(settings, clock.NewSystem())
}

// NewGameServerWithClock is NewGameServer with an injected clock.
func NewGameServerWithClock(settings config.Settings, clk clock.Clock) (*GameServer, error) {
	reg, err := sim.LoadRegistry(settings.Equipment)
	if err != nil {
		return nil, err
	}
	m, err := sim.LoadMap(settings.Map)
	if err != nil {
		return nil, err
	}

	s := sim.New(clk, reg, m)
	gs := &GameServer{
		Settings:    settings,
		Sim:         s,
		Persistence: systems.NewPersistenceSystem(s, settings.CharacterDir),
		Hub: network.NewHub(protocol.Hello{
			MapWidth:  m.Width,
			MapHeight: m.Height,
			TileSize:  int(m.TileSize),
			FPS:       config.FPS,
		}),
	}

	for i, c := range settings.Companions {
		gs.spawn(c.Character, components.Vec2{X: c.X, Y: c.Y}, fmt.Sprintf("%s_%d", c.Character, i))
	}
	for i, sp := range m.Spawners {
		gs.spawn(sp.CharacterID, components.Vec2{X: sp.X, Y: sp.Y}, fmt.Sprintf("%s_map_%d", sp.CharacterID, i))
	}
	if len(s.Actors()) == 0 {
		logger.Log.Warn("No actors spawned; add companions to the settings or spawners to the map")
	}
	return gs, nil
}

// spawn adds one companion. A bad save or unknown preset skips it.
func (s *GameServer) spawn(charID string, at components.Vec2, saveName string) {
	entry := logger.Log.WithField("save", saveName)
	profile, err := s.Persistence.Profile(saveName)
	if err != nil {
		entry.WithError(err).Warn("Ignoring unreadable save")
	}
	e, err := s.Sim.SpawnCharacter(charID, at, profile)
	if err != nil {
		entry.WithError(err).Warn("Skipping companion")
		return
	}
	s.Persistence.Track(e, saveName)
}

// Run ticks at FPS until ctx is cancelled, then saves every tracked actor.
func (s *GameServer) Run(ctx context.Context) error {
	if addr := s.Settings.Telemetry; addr != "" {
		go func() {
			if err := network.StartWebSocketServer(ctx, addr, s.Hub); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.WithError(err).Error("Telemetry server stopped")
			}
		}()
	}

	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()

	logger.Log.WithField("actors", len(s.Sim.Actors())).Info("Simulation running")
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Shutting down gracefully, saving characters...")
			return s.Persistence.SaveAll()
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				if saveErr := s.Persistence.SaveAll(); saveErr != nil {
					logger.Log.WithError(saveErr).Error("Failed to save characters after tick error")
					return errors.Join(err, saveErr)
				}
				return err
			}
		}
	}
}

// Tick steps the simulation once and publishes the frame.
func (s *GameServer) Tick() error {
	if err := s.Sim.Step(); err != nil {
		return fmt.Errorf("tick %d: %w", s.Sim.Tick(), err)
	}
	s.Hub.Publish(s.Sim.Snapshot())
	return nil
}
