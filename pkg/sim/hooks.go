package sim

import (
	"tempest/pkg/actor"
	"tempest/pkg/audio/cue"
	"tempest/pkg/logger"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/ecs"
)

// EffectDuration is how long (ms) a spell effect stays on the field.
const EffectDuration = 400

// flameReach is how many tiles a flame spell covers in front of the caster.
const flameReach = 5

// Hitbox is the live weapon entity of an attacking actor.
type Hitbox struct {
	Owner    ecs.Entity
	WeaponID string
	Facing   components.Facing
	Position components.Vec2
	Damage   float64
}

// Effect is a short-lived spell visual.
type Effect struct {
	Owner    ecs.Entity
	Style    string
	Strength float64
	Position components.Vec2
	Expires  int64
}

func (s *Simulation) hooksFor(e ecs.Entity) actor.Hooks {
	return actor.Hooks{
		CreateAttack:  func() { s.createAttack(e) },
		DestroyAttack: func() { s.destroyAttack(e) },
		CreateMagic: func(style string, strength, cost float64) {
			s.createMagic(e, style, strength, cost)
		},
		Died: func() {
			s.Sounds.Death.Play()
			logger.Log.WithField("entity", e).Info("Actor down")
		},
		AttackCue: cue.Func(func() { s.Sounds.Attack.Play() }),
	}
}

func (s *Simulation) createAttack(owner ecs.Entity) {
	a := s.Actor(owner)
	if a == nil {
		return
	}
	w, err := a.Weapon()
	if err != nil {
		logger.Log.WithError(err).Warn("Attack without weapon")
		return
	}

	// An attack already in flight keeps its hitbox.
	if _, ok := s.attacks[owner]; ok {
		return
	}
	hb := s.World.NewEntity()
	s.World.AddComponent(hb, &Hitbox{
		Owner:    owner,
		WeaponID: w.ID,
		Facing:   a.Status.Facing,
		Position: weaponOffset(a.Position, a.Status.Facing),
		Damage:   a.Stats.Attack + w.Damage,
	})
	s.attacks[owner] = hb
}

func (s *Simulation) destroyAttack(owner ecs.Entity) {
	if hb, ok := s.attacks[owner]; ok {
		s.World.RemoveEntity(hb)
		delete(s.attacks, owner)
	}
}

// createMagic pays for and places a spell. Blink's relocation is done by the
// actor itself right after this returns.
func (s *Simulation) createMagic(owner ecs.Entity, style string, strength, cost float64) {
	a := s.Actor(owner)
	if a == nil {
		return
	}
	entry := logger.Log.WithField("entity", owner).WithField("spell", style)
	if !a.UseEnergy(cost) {
		entry.Debug("Not enough energy")
		return
	}

	switch style {
	case "heal":
		a.Health = min(a.Stats.Health, a.Health+strength)
		s.addEffect(owner, style, strength, a.Position)
	case "flame":
		step := facingVector(a.Status.Facing).Scale(config.TileSize)
		for i := 1; i <= flameReach; i++ {
			s.addEffect(owner, style, strength, a.Position.Add(step.Scale(float64(i))))
		}
	default:
		s.addEffect(owner, style, strength, a.Position)
	}
	entry.WithField("energy", a.Energy).Debug("Spell placed")
}

func (s *Simulation) addEffect(owner ecs.Entity, style string, strength float64, pos components.Vec2) {
	fx := s.World.NewEntity()
	s.World.AddComponent(fx, &Effect{
		Owner:    owner,
		Style:    style,
		Strength: strength,
		Position: pos,
		Expires:  s.now + EffectDuration,
	})
}

func facingVector(f components.Facing) components.Vec2 {
	switch f {
	case components.FacingUp:
		return components.Vec2{Y: -1}
	case components.FacingLeft:
		return components.Vec2{X: -1}
	case components.FacingRight:
		return components.Vec2{X: 1}
	default:
		return components.Vec2{Y: 1}
	}
}

// weaponOffset places the hitbox just past the actor's edge in the facing direction.
func weaponOffset(pos components.Vec2, f components.Facing) components.Vec2 {
	return pos.Add(facingVector(f).Scale(config.TileSize / 2))
}
