package server

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tempest/pkg/logger"
	"tempest/pkg/shared/clock"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/errs"
	"tempest/pkg/sim"
	"tempest/pkg/storage"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	s := config.Default()
	s.CharacterDir = t.TempDir()
	s.Telemetry = ""
	s.Companions = []config.Companion{
		{Character: "sentry", X: 320, Y: 320},
		{Character: "nobody", X: 400, Y: 400},
	}
	return s
}

func TestNewGameServerSpawnsCompanions(t *testing.T) {
	gs, err := NewGameServerWithClock(testSettings(t), &clock.Manual{T: 0})
	if err != nil {
		t.Fatalf("NewGameServer: %v", err)
	}
	if got := len(gs.Sim.Actors()); got != 1 {
		t.Errorf("actors = %d, want 1 (unknown preset skipped)", got)
	}
	if gs.Sim.Map.Width != sim.ArenaWidth || gs.Sim.Map.Height != sim.ArenaHeight {
		t.Errorf("arena = %dx%d", gs.Sim.Map.Width, gs.Sim.Map.Height)
	}
}

func TestTickPublishesFrames(t *testing.T) {
	clk := &clock.Manual{T: 0}
	gs, err := NewGameServerWithClock(testSettings(t), clk)
	if err != nil {
		t.Fatalf("NewGameServer: %v", err)
	}
	for i := 0; i < 3; i++ {
		clk.Advance(16)
		if err := gs.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if gs.Sim.Tick() != 3 {
		t.Errorf("ticks = %d, want 3", gs.Sim.Tick())
	}
}

func TestRunSavesOnShutdownAndRestores(t *testing.T) {
	settings := testSettings(t)
	gs, err := NewGameServerWithClock(settings, &clock.Manual{T: 0})
	if err != nil {
		t.Fatalf("NewGameServer: %v", err)
	}
	a := gs.Sim.Actor(gs.Sim.Actors()[0])
	a.Exp = 42
	a.Health = 77

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := gs.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(settings.CharacterDir, "sentry_0.json")); err != nil {
		t.Fatalf("save file missing: %v", err)
	}
	rec, err := storage.LoadCharacter(settings.CharacterDir, "sentry_0")
	if err != nil || rec == nil {
		t.Fatalf("load save: %v", err)
	}
	if v, _ := rec.Lookup("exp"); v != "42" {
		t.Errorf("saved exp = %q, want 42", v)
	}

	again, err := NewGameServerWithClock(settings, &clock.Manual{T: 0})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	b := again.Sim.Actor(again.Sim.Actors()[0])
	if b.Exp != 42 || b.Health != 77 {
		t.Errorf("restored exp=%v health=%v, want 42 and 77", b.Exp, b.Health)
	}
	if b.Skin != "3" {
		t.Errorf("restored skin = %q, want 3", b.Skin)
	}
}

func TestRunReportsSaveFailureAfterTickError(t *testing.T) {
	gs, err := NewGameServerWithClock(testSettings(t), &clock.Manual{T: 0})
	if err != nil {
		t.Fatalf("NewGameServer: %v", err)
	}
	// A regular file where the save directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	gs.Persistence.Dir = filepath.Join(blocker, "saves")

	// Not vulnerable with no hurt timer running breaks the next tick.
	gs.Sim.Actor(gs.Sim.Actors()[0]).Vulnerable = false

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = gs.Run(ctx)
	if !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("run = %v, want the tick error", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("run = %v, want the save failure joined in", err)
	}
}

func TestMissingMapIsAnError(t *testing.T) {
	settings := testSettings(t)
	settings.Map = filepath.Join(t.TempDir(), "missing.json")
	if _, err := NewGameServerWithClock(settings, &clock.Manual{}); err == nil {
		t.Errorf("missing map accepted")
	}
}
