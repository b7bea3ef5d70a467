// Package sim drives actors frame by frame: one clock read per frame, one
// state machine step per actor, then the presentation systems.
package sim

import (
	"fmt"
	"image/color"

	"tempest/pkg/actor"
	"tempest/pkg/animation"
	"tempest/pkg/audio/cue"
	"tempest/pkg/characters"
	"tempest/pkg/control"
	"tempest/pkg/items"
	"tempest/pkg/logger"
	"tempest/pkg/shared/clock"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/ecs"
	"tempest/pkg/shared/world"
	"tempest/pkg/storage"
)

// Appearance is how the debug renderer tells actors apart.
type Appearance struct {
	Color  color.RGBA
	Player bool
}

// Sounds are the cues the simulation plays for its actors.
type Sounds struct {
	Attack cue.Cue
	Death  cue.Cue
}

type Simulation struct {
	World    *ecs.World
	Clock    clock.Clock
	Registry *items.Registry
	Map      *world.Map
	Sounds   Sounds

	tick    int64
	now     int64
	attacks map[ecs.Entity]ecs.Entity // owner -> live weapon hitbox
}

func New(clk clock.Clock, reg *items.Registry, m *world.Map) *Simulation {
	s := &Simulation{
		World:    ecs.NewWorld(),
		Clock:    clk,
		Registry: reg,
		Map:      m,
		Sounds:   Sounds{Attack: cue.Silent{}, Death: cue.Silent{}},
		attacks:  make(map[ecs.Entity]ecs.Entity),
	}
	s.World.AddSystem(&ActorSystem{sim: s})
	s.World.AddSystem(&EffectSystem{sim: s})
	s.World.AddSystem(&AnimationSystem{World: s.World})
	return s
}

// Step runs one frame. The clock is read exactly once.
func (s *Simulation) Step() error {
	s.now = s.Clock.Now()
	s.tick++
	return s.World.Update(s.now)
}

func (s *Simulation) Tick() int64 { return s.tick }

// Spawn adds an actor. Registry, resolver, play field and hooks are filled in
// from the simulation.
func (s *Simulation) Spawn(cfg actor.Config, look Appearance) (ecs.Entity, error) {
	e := s.World.NewEntity()

	if cfg.Registry == nil {
		cfg.Registry = s.Registry
	}
	if cfg.Resolver == nil && s.Map != nil {
		cfg.Resolver = s.Map
	}
	if s.Map != nil {
		w, h := s.Map.PixelSize()
		cfg.Field = actor.PlayField{Width: int(w), Height: int(h), Margin: config.FieldMargin}
	}
	cfg.Hooks = s.hooksFor(e)

	a, err := actor.New(cfg)
	if err != nil {
		return 0, err
	}

	s.World.AddComponent(e, a)
	s.World.AddComponent(e, animation.NewSelector(animation.DefaultFrames(), config.AnimationSpeed))
	s.World.AddComponent(e, look)
	logger.Log.WithField("entity", e).Infof("Spawned %s at %.0f,%.0f", a.Name, a.Position.X, a.Position.Y)
	return e, nil
}

// SpawnCharacter adds an autonomous companion from a character preset. A
// loaded profile wins over the preset's skin and speed.
func (s *Simulation) SpawnCharacter(charID string, spawn components.Vec2, profile actor.Profile) (ecs.Entity, error) {
	def, exists := characters.Get(charID)
	if !exists {
		return 0, fmt.Errorf("unknown character %q", charID)
	}

	policy := control.NewAutonomous(control.Patrol{
		Waypoints:      def.Waypoints(spawn),
		Tolerance:      def.PatrolTolerance,
		AttackInterval: def.AttackInterval,
		AutoAttack:     def.AutoAttack,
	}, s.Clock.Now())

	cfg := actor.Config{Name: def.Name, Position: spawn, Policy: policy, Profile: profile}
	e, err := s.Spawn(cfg, Appearance{Color: def.Color})
	if err != nil {
		return 0, err
	}

	a := s.Actor(e)
	if !profile.Loaded() {
		a.Skin = def.Skin
		if def.Speed > 0 {
			a.Stats.Speed = min(def.Speed, a.MaxStats.Speed)
		}
	}
	if i, ok := s.Registry.WeaponIndex(def.WeaponID); ok {
		a.WeaponIndex = i
	}
	if i, ok := s.Registry.SpellIndex(def.SpellID); ok {
		a.SpellIndex = i
	}
	return e, nil
}

// Actor returns the actor of an entity, nil when gone.
func (s *Simulation) Actor(e ecs.Entity) *actor.Actor {
	a, _ := ecs.GetComponent[*actor.Actor](s.World, e)
	return a
}

// Actors lists live actor entities in spawn order.
func (s *Simulation) Actors() []ecs.Entity {
	return ecs.Query[*actor.Actor](s.World)
}

// Records snapshots every live actor for saving.
func (s *Simulation) Records() []storage.CharacterRecord {
	var out []storage.CharacterRecord
	for _, e := range s.Actors() {
		out = append(out, s.Actor(e).Record())
	}
	return out
}

func (s *Simulation) despawn(e ecs.Entity) {
	if w, ok := s.attacks[e]; ok {
		s.World.RemoveEntity(w)
		delete(s.attacks, e)
	}
	for _, fx := range ecs.Query[*Effect](s.World) {
		if eff, _ := ecs.GetComponent[*Effect](s.World, fx); eff.Owner == e {
			s.World.RemoveEntity(fx)
		}
	}
	s.World.RemoveEntity(e)
}
