package sim

import (
	"os"
	"testing"

	"tempest/pkg/actor"
	"tempest/pkg/control"
	"tempest/pkg/items"
	"tempest/pkg/logger"
	"tempest/pkg/shared/clock"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/ecs"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type script struct {
	next components.Intent
}

func (s *script) Intent(control.View, int64) components.Intent { return s.next }

type counter struct{ n *int }

func (c counter) Play() { *c.n++ }

func newSim(t *testing.T) (*Simulation, *clock.Manual) {
	t.Helper()
	clk := &clock.Manual{T: 1000}
	return New(clk, items.DefaultRegistry(), nil), clk
}

func spawn(t *testing.T, s *Simulation, pos components.Vec2, p control.Policy) (ecs.Entity, *actor.Actor) {
	t.Helper()
	e, err := s.Spawn(actor.Config{Name: "test", Position: pos, Policy: p}, Appearance{})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	return e, s.Actor(e)
}

func TestAttackHitboxLifetime(t *testing.T) {
	s, clk := newSim(t)
	swings := 0
	s.Sounds.Attack = counter{&swings}

	in := &script{next: components.Intent{Attack: true}}
	_, a := spawn(t, s, components.Vec2{X: 300, Y: 300}, in)

	if err := s.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := len(ecs.Query[*Hitbox](s.World)); got != 1 {
		t.Fatalf("hitboxes after attack = %d, want 1", got)
	}
	hb, _ := ecs.GetComponent[*Hitbox](s.World, ecs.Query[*Hitbox](s.World)[0])
	// sword 15 + attack stat
	if want := a.Stats.Attack + 15; hb.WeaponID != "sword" || hb.Damage != want {
		t.Errorf("hitbox = %s/%v, want sword/%v", hb.WeaponID, hb.Damage, want)
	}
	if swings != 1 {
		t.Errorf("attack cues = %d, want 1", swings)
	}

	// Sword: 400 base + 100 weapon cooldown.
	in.next = components.Intent{}
	clk.Advance(499)
	s.Step()
	if !a.Attacking() {
		t.Fatalf("attack ended early")
	}
	clk.Advance(1)
	s.Step()
	if a.Attacking() {
		t.Errorf("still attacking after cooldown")
	}
	if got := len(ecs.Query[*Hitbox](s.World)); got != 0 {
		t.Errorf("hitboxes after cooldown = %d, want 0", got)
	}
}

func TestHealSpendsEnergyAndCapsHealth(t *testing.T) {
	s, _ := newSim(t)
	_, a := spawn(t, s, components.Vec2{X: 300, Y: 300}, &script{next: components.Intent{Magic: true}})
	a.SpellIndex = 1
	a.Health = 50

	if err := s.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	// heal strength 20 + magic 4
	if a.Health != 74 {
		t.Errorf("health = %v, want 74", a.Health)
	}
	if a.Energy < 50 || a.Energy > 50.1 {
		t.Errorf("energy = %v, want 60-10 plus one tick of regen", a.Energy)
	}
	if got := len(ecs.Query[*Effect](s.World)); got != 1 {
		t.Errorf("effects = %d, want 1", got)
	}
}

func TestHealNeedsEnergy(t *testing.T) {
	s, _ := newSim(t)
	_, a := spawn(t, s, components.Vec2{X: 300, Y: 300}, &script{next: components.Intent{Magic: true}})
	a.SpellIndex = 1
	a.Health = 50
	a.Energy = 5

	s.Step()
	if a.Health != 50 {
		t.Errorf("health = %v, want 50", a.Health)
	}
	if len(ecs.Query[*Effect](s.World)) != 0 {
		t.Errorf("effect placed without energy")
	}
}

func TestFlameHurtsOthersOnce(t *testing.T) {
	s, clk := newSim(t)
	spawn(t, s, components.Vec2{X: 300, Y: 300}, &script{next: components.Intent{Magic: true}})
	_, target := spawn(t, s, components.Vec2{X: 300, Y: 428}, &script{})

	s.Step()
	// flame strength 5 + magic 4
	if target.Health != 91 {
		t.Fatalf("target health = %v, want 91", target.Health)
	}
	if target.Vulnerable {
		t.Errorf("target still vulnerable after hit")
	}

	clk.Advance(100)
	s.Step()
	if target.Health != 91 {
		t.Errorf("hit landed during grace window, health = %v", target.Health)
	}

	clk.Advance(EffectDuration)
	s.Step()
	if got := len(ecs.Query[*Effect](s.World)); got != 0 {
		t.Errorf("effects after expiry = %d, want 0", got)
	}
}

func TestDeadActorsAreRemoved(t *testing.T) {
	s, _ := newSim(t)
	deaths := 0
	s.Sounds.Death = counter{&deaths}

	e, a := spawn(t, s, components.Vec2{X: 300, Y: 300}, &script{})
	spawn(t, s, components.Vec2{X: 600, Y: 300}, &script{})
	a.Health = 0

	if err := s.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.Actor(e) != nil {
		t.Errorf("dead actor still in world")
	}
	if got := len(s.Actors()); got != 1 {
		t.Errorf("actors = %d, want 1", got)
	}
	if deaths != 1 {
		t.Errorf("death cues = %d, want 1", deaths)
	}
}

func TestSpawnCharacterAppliesPreset(t *testing.T) {
	s, _ := newSim(t)
	e, err := s.SpawnCharacter("sentry", components.Vec2{X: 200, Y: 200}, actor.Profile{})
	if err != nil {
		t.Fatalf("spawn sentry: %v", err)
	}
	a := s.Actor(e)
	if w, _ := a.Weapon(); w.ID != "rapier" {
		t.Errorf("weapon = %q, want rapier", w.ID)
	}
	if a.Skin != "3" {
		t.Errorf("skin = %q, want 3", a.Skin)
	}

	if _, err := s.SpawnCharacter("nobody", components.Vec2{}, actor.Profile{}); err == nil {
		t.Errorf("unknown character accepted")
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newSim(t)
	spawn(t, s, components.Vec2{X: 300, Y: 300}, &script{next: components.Intent{Move: components.Vec2{X: 1}}})
	s.Step()

	f := s.Snapshot()
	if f.Tick != 1 || f.Time != 1000 {
		t.Errorf("frame header = %d@%d, want 1@1000", f.Tick, f.Time)
	}
	if len(f.Actors) != 1 {
		t.Fatalf("actors = %d, want 1", len(f.Actors))
	}
	got := f.Actors[0]
	if got.Status != "right" || got.Activity != "moving" || got.X != 305 {
		t.Errorf("snapshot = %+v", got)
	}
	if got.Weapon != "sword" || got.Spell != "flame" || got.Alpha != 255 {
		t.Errorf("snapshot equipment = %+v", got)
	}
}
