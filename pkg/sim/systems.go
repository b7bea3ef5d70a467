package sim

import (
	"fmt"

	"tempest/pkg/actor"
	"tempest/pkg/animation"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/ecs"
)

// ActorSystem steps every actor's state machine and removes the dead.
type ActorSystem struct {
	sim *Simulation
}

func (sys *ActorSystem) Update(now int64) error {
	s := sys.sim
	for _, e := range ecs.Query[*actor.Actor](s.World) {
		a := s.Actor(e)
		if err := a.Update(now); err != nil {
			return fmt.Errorf("entity %d (%s): %w", e, a.Name, err)
		}
		if a.Dead {
			s.despawn(e)
		}
	}
	return nil
}

// EffectSystem keeps hitboxes on their owners, lands hits on other actors and
// expires spell effects.
type EffectSystem struct {
	sim *Simulation
}

func (sys *EffectSystem) Update(now int64) error {
	s := sys.sim
	actors := ecs.Query[*actor.Actor](s.World)

	for _, e := range ecs.Query[*Hitbox](s.World) {
		hb, _ := ecs.GetComponent[*Hitbox](s.World, e)
		owner := s.Actor(hb.Owner)
		if owner == nil {
			s.World.RemoveEntity(e)
			continue
		}
		hb.Position = weaponOffset(owner.Position, hb.Facing)
		s.strike(hb.Owner, actors, hb.Position, hb.Damage, now)
	}

	for _, e := range ecs.Query[*Effect](s.World) {
		fx, _ := ecs.GetComponent[*Effect](s.World, e)
		if now >= fx.Expires {
			s.World.RemoveEntity(e)
			continue
		}
		if fx.Style == "flame" {
			s.strike(fx.Owner, actors, fx.Position, fx.Strength, now)
		}
	}
	return nil
}

// strike hurts every actor other than owner whose tile overlaps at.
func (s *Simulation) strike(owner ecs.Entity, actors []ecs.Entity, at components.Vec2, damage float64, now int64) {
	for _, e := range actors {
		if e == owner {
			continue
		}
		target := s.Actor(e)
		if target == nil || !overlaps(target.Position, at) {
			continue
		}
		target.Hurt(damage, now)
	}
}

func overlaps(a, b components.Vec2) bool {
	d := a.Sub(b)
	return d.X > -config.TileSize && d.X < config.TileSize && d.Y > -config.TileSize && d.Y < config.TileSize
}

// AnimationSystem advances each actor's frame cursor from its status.
type AnimationSystem struct {
	World *ecs.World
}

func (sys *AnimationSystem) Update(_ int64) error {
	for _, e := range ecs.Query[*animation.Selector](sys.World) {
		sel, _ := ecs.GetComponent[*animation.Selector](sys.World, e)
		a, ok := ecs.GetComponent[*actor.Actor](sys.World, e)
		if !ok {
			continue
		}
		if _, err := sel.Advance(a.Status); err != nil {
			return fmt.Errorf("entity %d: %w", e, err)
		}
	}
	return nil
}
