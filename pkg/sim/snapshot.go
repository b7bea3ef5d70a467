package sim

import (
	"tempest/pkg/animation"
	"tempest/pkg/shared/ecs"
	protocol "tempest/pkg/shared/network"
)

// Snapshot copies the current state. The result shares nothing with the world.
func (s *Simulation) Snapshot() protocol.Frame {
	f := protocol.Frame{Tick: s.tick, Time: s.now}

	for _, e := range s.Actors() {
		a := s.Actor(e)
		st := protocol.ActorState{
			ID:         uint64(e),
			Name:       a.Name,
			X:          a.Position.X,
			Y:          a.Position.Y,
			Status:     a.Status.String(),
			Facing:     a.Status.Facing.String(),
			Activity:   a.Status.Activity.String(),
			Health:     a.Health,
			MaxHealth:  a.Stats.Health,
			Energy:     a.Energy,
			Alpha:      animation.Alpha(a.Vulnerable, s.now),
			Vulnerable: a.Vulnerable,
		}
		if w, err := a.Weapon(); err == nil {
			st.Weapon = w.ID
		}
		if sp, err := a.Spell(); err == nil {
			st.Spell = sp.ID
		}
		if sel, ok := ecs.GetComponent[*animation.Selector](s.World, e); ok {
			st.Frame = sel.Frame()
		}
		if look, ok := ecs.GetComponent[Appearance](s.World, e); ok {
			st.Color = look.Color
			st.Player = look.Player
		}
		f.Actors = append(f.Actors, st)
	}

	for _, e := range ecs.Query[*Hitbox](s.World) {
		hb, _ := ecs.GetComponent[*Hitbox](s.World, e)
		f.Effects = append(f.Effects, protocol.EffectState{Kind: hb.WeaponID, X: hb.Position.X, Y: hb.Position.Y})
	}
	for _, e := range ecs.Query[*Effect](s.World) {
		fx, _ := ecs.GetComponent[*Effect](s.World, e)
		f.Effects = append(f.Effects, protocol.EffectState{Kind: fx.Style, X: fx.Position.X, Y: fx.Position.Y})
	}
	return f
}
