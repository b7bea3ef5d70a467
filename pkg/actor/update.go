package actor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tempest/pkg/logger"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/errs"
)

// Update advances the actor by one frame. now is read once by the caller and
// shared by every check in the frame. Errors are invariant violations.
// A dead actor ignores further updates.
func (a *Actor) Update(now int64) error {
	if a.Dead {
		return nil
	}

	in := a.policy.Intent(a.View(), now)
	busy := a.Attacking()

	if err := a.trigger(in, now); err != nil {
		return err
	}
	if !busy {
		if err := a.switchEquipment(in, now); err != nil {
			return err
		}
	}
	a.move(in)
	if err := a.cooldowns(now); err != nil {
		return err
	}
	if a.checkDeath() {
		return nil
	}
	a.recoverEnergy()
	return nil
}

func (a *Actor) trigger(in components.Intent, now int64) error {
	if in.Attack && !a.Attacking() {
		a.startAttack(now)
		if a.hooks.CreateAttack != nil {
			a.hooks.CreateAttack()
		}
		a.hooks.AttackCue.Play()
		a.log().Debug("attack started")
	}

	if in.Magic && !a.Attacking() {
		spell, err := a.Spell()
		if err != nil {
			return err
		}
		a.startAttack(now)
		if a.hooks.CreateMagic != nil {
			a.hooks.CreateMagic(spell.ID, spell.Strength+a.Stats.Magic, spell.Cost)
		}
		if spell.Relocates {
			a.Teleport(a.randomPosition())
		}
		a.log().WithField("spell", spell.ID).Debug("spell cast")
	}
	return nil
}

func (a *Actor) startAttack(now int64) {
	a.Status.Activity = components.ActivityAttacking
	a.timers.Start(timerAttack, now)
}

// switchEquipment rotates the selections. Not called while an attack that
// started on an earlier tick is in flight.
func (a *Actor) switchEquipment(in components.Intent, now int64) error {
	if in.SwitchWeapon && a.CanSwitchWeapon() {
		n := a.registry.WeaponCount()
		if n == 0 {
			return fmt.Errorf("switch weapon: no weapons: %w", errs.ErrInvalidState)
		}
		a.WeaponIndex = (a.WeaponIndex + 1) % n
		a.timers.Start(timerWeaponSwitch, now)
	}

	if in.SwitchSpell && a.CanSwitchSpell() {
		n := a.registry.SpellCount()
		if n == 0 {
			return fmt.Errorf("switch spell: no spells: %w", errs.ErrInvalidState)
		}
		a.SpellIndex = (a.SpellIndex + 1) % n
		a.timers.Start(timerSpellSwitch, now)
	}
	return nil
}

// move applies the intent's direction. Attacking pins the actor in place.
func (a *Actor) move(in components.Intent) {
	if a.Attacking() {
		return
	}

	dir := in.Move
	if dir.IsZero() {
		a.Status.Activity = components.ActivityIdle
		return
	}

	if in.HasFace {
		a.Status.Facing = in.Face
	} else if f, ok := components.AxisFacing(dir); ok {
		a.Status.Facing = f
	}
	a.Status.Activity = components.ActivityMoving

	to := a.Position.Add(dir.Normalize().Scale(a.Stats.Speed))
	a.Position = a.resolver.Resolve(a.Position, to)
}

func (a *Actor) cooldowns(now int64) error {
	if a.Attacking() {
		w, err := a.Weapon()
		if err != nil {
			return err
		}
		done, err := a.timers.IsExpired(timerAttack, now, a.timing.BaseAttackCooldown+w.Cooldown)
		if err != nil {
			return err
		}
		if done {
			// Rests idle for this tick; the next move step picks moving back up.
			a.Status.Activity = components.ActivityIdle
			a.timers.Clear(timerAttack)
			if a.hooks.DestroyAttack != nil {
				a.hooks.DestroyAttack()
			}
			a.log().Debug("attack finished")
		}
	}

	for _, label := range []string{timerWeaponSwitch, timerSpellSwitch} {
		if !a.timers.Active(label) {
			continue
		}
		done, err := a.timers.IsExpired(label, now, a.timing.SwitchCooldown)
		if err != nil {
			return err
		}
		if done {
			a.timers.Clear(label)
		}
	}

	if !a.Vulnerable {
		done, err := a.timers.IsExpired(timerHurt, now, a.timing.Invulnerability)
		if err != nil {
			return err
		}
		if done {
			a.Vulnerable = true
			a.timers.Clear(timerHurt)
		}
	}
	return nil
}

func (a *Actor) checkDeath() bool {
	if a.Health > 0 {
		return false
	}
	a.Dead = true
	if a.hooks.Died != nil {
		a.hooks.Died()
	}
	a.log().Info("actor died")
	return true
}

func (a *Actor) recoverEnergy() {
	a.Energy = min(a.Stats.Energy, a.Energy+a.timing.EnergyRegenRate*a.Stats.Magic)
	if a.Energy < 0 {
		a.Energy = 0
	}
}

func (a *Actor) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"actor":  a.Name,
		"status": a.Status.String(),
	})
}
