// Package actor implements the per-frame state machine of a controllable
// character: facing and activity, attacks and casts, equipment rotation,
// cooldowns and energy recovery.
package actor

import (
	"errors"
	"fmt"
	"math/rand"

	"tempest/pkg/audio/cue"
	"tempest/pkg/control"
	"tempest/pkg/items"
	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/errs"
	"tempest/pkg/shared/timer"
)

// Timer labels.
const (
	timerAttack       = "attack"
	timerHurt         = "hurt"
	timerWeaponSwitch = "weapon_switch"
	timerSpellSwitch  = "spell_switch"
)

// Hooks are the collaborator callbacks fired by the state machine.
// Nil hooks are skipped.
type Hooks struct {
	CreateAttack  func()
	DestroyAttack func()
	CreateMagic   func(style string, strength, cost float64)
	Died          func()
	AttackCue     cue.Cue
}

// Resolver corrects a requested move against obstacles.
type Resolver interface {
	Resolve(from, to components.Vec2) components.Vec2
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(from, to components.Vec2) components.Vec2

func (f ResolverFunc) Resolve(from, to components.Vec2) components.Vec2 { return f(from, to) }

// Walkable is optionally implemented by a Resolver to vet teleport targets.
type Walkable interface {
	Walkable(p components.Vec2) bool
}

type passThrough struct{}

func (passThrough) Resolve(_, to components.Vec2) components.Vec2 { return to }

// Timing holds the durations (ms) and rates the state machine runs on.
type Timing struct {
	BaseAttackCooldown int64
	SwitchCooldown     int64
	Invulnerability    int64
	EnergyRegenRate    float64
}

// DefaultTiming returns the stock durations.
func DefaultTiming() Timing {
	return Timing{
		BaseAttackCooldown: config.BaseAttackCooldown,
		SwitchCooldown:     config.SwitchCooldown,
		Invulnerability:    config.InvulnerabilityDuration,
		EnergyRegenRate:    config.EnergyRegenRate,
	}
}

// PlayField bounds random teleports.
type PlayField struct {
	Width, Height int
	Margin        int
}

// Config collects everything New needs. Registry and Policy are required.
type Config struct {
	Name     string
	Position components.Vec2
	Registry *items.Registry
	Policy   control.Policy
	Resolver Resolver
	Hooks    Hooks
	Profile  Profile
	Timing   Timing
	Field    PlayField
	Rand     *rand.Rand
}

// Actor is a player or AI-driven character.
type Actor struct {
	Name     string
	Position components.Vec2
	Status   components.Status

	Health float64
	Energy float64
	Exp    float64
	Skin   string

	Stats       components.Stats
	MaxStats    components.Stats
	UpgradeCost components.Stats

	WeaponIndex int
	SpellIndex  int

	Vulnerable bool
	Dead       bool

	registry *items.Registry
	policy   control.Policy
	resolver Resolver
	hooks    Hooks
	timing   Timing
	field    PlayField
	rng      *rand.Rand
	timers   *timer.Bank
}

// New builds an actor facing down and idle.
func New(cfg Config) (*Actor, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("actor %q: no equipment registry: %w", cfg.Name, errs.ErrInvalidState)
	}
	if cfg.Registry.WeaponCount() == 0 || cfg.Registry.SpellCount() == 0 {
		return nil, fmt.Errorf("actor %q: equipment registry is empty: %w", cfg.Name, errs.ErrInvalidState)
	}
	if cfg.Policy == nil {
		return nil, fmt.Errorf("actor %q: no control policy: %w", cfg.Name, errs.ErrInvalidState)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = passThrough{}
	}
	if cfg.Timing == (Timing{}) {
		cfg.Timing = DefaultTiming()
	}
	if cfg.Field == (PlayField{}) {
		cfg.Field = PlayField{Width: config.ScreenWidth, Height: config.ScreenHeight, Margin: config.FieldMargin}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if cfg.Hooks.AttackCue == nil {
		cfg.Hooks.AttackCue = cue.Silent{}
	}

	a := &Actor{
		Name:        cfg.Name,
		Position:    cfg.Position,
		Status:      components.Status{Facing: components.FacingDown, Activity: components.ActivityIdle},
		Stats:       components.Stats{Health: 100, Energy: 60, Attack: 10, Magic: 4, Speed: 5},
		MaxStats:    components.Stats{Health: 300, Energy: 140, Attack: 20, Magic: 10, Speed: 10},
		UpgradeCost: components.Stats{Health: 100, Energy: 100, Attack: 100, Magic: 100, Speed: 100},
		Skin:        "1",
		Vulnerable:  true,
		registry:    cfg.Registry,
		policy:      cfg.Policy,
		resolver:    cfg.Resolver,
		hooks:       cfg.Hooks,
		timing:      cfg.Timing,
		field:       cfg.Field,
		rng:         cfg.Rand,
		timers:      timer.NewBank(),
	}
	a.Health = a.Stats.Health
	a.Energy = a.Stats.Energy
	cfg.Profile.apply(a)
	return a, nil
}

// View exposes the state a control policy may read.
func (a *Actor) View() control.View {
	return control.View{Position: a.Position, Status: a.Status}
}

// SetPolicy swaps the control policy, e.g. when a companion is taken over by a player.
func (a *Actor) SetPolicy(p control.Policy) {
	if p != nil {
		a.policy = p
	}
}

func (a *Actor) Attacking() bool {
	return a.Status.Activity == components.ActivityAttacking
}

func (a *Actor) CanSwitchWeapon() bool { return !a.timers.Active(timerWeaponSwitch) }

func (a *Actor) CanSwitchSpell() bool { return !a.timers.Active(timerSpellSwitch) }

// Weapon returns the equipped weapon.
func (a *Actor) Weapon() (items.Weapon, error) {
	return a.registry.Weapon(a.WeaponIndex)
}

// Spell returns the selected spell.
func (a *Actor) Spell() (items.Spell, error) {
	return a.registry.Spell(a.SpellIndex)
}

// WeaponDamage is the attack stat plus the equipped weapon's damage.
func (a *Actor) WeaponDamage() (float64, error) {
	w, err := a.Weapon()
	if err != nil {
		return 0, err
	}
	return a.Stats.Attack + w.Damage, nil
}

// SpellDamage is the magic stat plus the selected spell's strength.
func (a *Actor) SpellDamage() (float64, error) {
	s, err := a.Spell()
	if err != nil {
		return 0, err
	}
	return a.Stats.Magic + s.Strength, nil
}

// StatByIndex returns a stat in components.StatNames order.
func (a *Actor) StatByIndex(i int) (float64, error) {
	v, ok := a.Stats.ByIndex(i)
	if !ok {
		return 0, fmt.Errorf("stat index %d: %w", i, errs.ErrOutOfRange)
	}
	return v, nil
}

// CostByIndex returns an upgrade cost in components.StatNames order.
func (a *Actor) CostByIndex(i int) (float64, error) {
	v, ok := a.UpgradeCost.ByIndex(i)
	if !ok {
		return 0, fmt.Errorf("upgrade index %d: %w", i, errs.ErrOutOfRange)
	}
	return v, nil
}

// Hurt applies damage unless the actor is inside its grace window.
// It reports whether the hit landed.
func (a *Actor) Hurt(amount float64, now int64) bool {
	if a.Dead || !a.Vulnerable {
		return false
	}
	a.Health -= amount
	a.Vulnerable = false
	a.timers.Start(timerHurt, now)
	a.log().WithField("health", a.Health).Debug("hit taken")
	return true
}

// UseEnergy spends cost if enough energy is available.
func (a *Actor) UseEnergy(cost float64) bool {
	if cost < 0 || a.Energy < cost {
		return false
	}
	a.Energy -= cost
	return true
}

// Teleport moves the actor without collision checks.
func (a *Actor) Teleport(p components.Vec2) {
	a.Position = p
}

// randomPosition picks a point inside the play field margins, preferring
// walkable points when the resolver can tell.
func (a *Actor) randomPosition() components.Vec2 {
	m := a.field.Margin
	pick := func() components.Vec2 {
		return components.Vec2{
			X: float64(m + a.rng.Intn(max(a.field.Width-3*m, 0)+1)),
			Y: float64(m + a.rng.Intn(max(a.field.Height-3*m, 0)+1)),
		}
	}

	w, ok := a.resolver.(Walkable)
	p := pick()
	for attempt := 0; ok && attempt < 10 && !w.Walkable(p); attempt++ {
		p = pick()
	}
	return p
}

// IsInvariantViolation reports whether err is one of the core's logic-defect errors.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrOutOfRange)
}
