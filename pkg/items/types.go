package items

import (
	"fmt"

	"tempest/pkg/shared/errs"
)

// Weapon is the static data for a melee weapon.
type Weapon struct {
	ID       string  `yaml:"id"`
	Cooldown int64   `yaml:"cooldown"` // ms added to the base attack cooldown
	Damage   float64 `yaml:"damage"`
	Graphic  string  `yaml:"graphic"` // asset key, resolved by the renderer
}

// Spell is the static data for a castable spell.
type Spell struct {
	ID       string  `yaml:"id"`
	Strength float64 `yaml:"strength"`
	Cost     float64 `yaml:"cost"`
	Graphic  string  `yaml:"graphic"`

	// Relocates moves the caster to a random point of the play field on cast.
	Relocates bool `yaml:"relocates"`
}

// Registry is an ordered, read-only view of the available equipment.
// Actors cycle through it by index.
type Registry struct {
	weapons   []Weapon
	spells    []Spell
	weaponIDs map[string]int
	spellIDs  map[string]int
}

// NewRegistry copies the definitions; the caller's slices may be reused afterwards.
func NewRegistry(weapons []Weapon, spells []Spell) (*Registry, error) {
	r := &Registry{
		weapons:   append([]Weapon(nil), weapons...),
		spells:    append([]Spell(nil), spells...),
		weaponIDs: make(map[string]int, len(weapons)),
		spellIDs:  make(map[string]int, len(spells)),
	}
	for i, w := range r.weapons {
		if _, exists := r.weaponIDs[w.ID]; exists {
			return nil, fmt.Errorf("duplicate weapon id %q: %w", w.ID, errs.ErrInvalidState)
		}
		r.weaponIDs[w.ID] = i
	}
	for i, s := range r.spells {
		if _, exists := r.spellIDs[s.ID]; exists {
			return nil, fmt.Errorf("duplicate spell id %q: %w", s.ID, errs.ErrInvalidState)
		}
		r.spellIDs[s.ID] = i
	}
	return r, nil
}

func (r *Registry) WeaponCount() int { return len(r.weapons) }

func (r *Registry) SpellCount() int { return len(r.spells) }

// Weapon returns the weapon at index i.
func (r *Registry) Weapon(i int) (Weapon, error) {
	if len(r.weapons) == 0 {
		return Weapon{}, fmt.Errorf("no weapons registered: %w", errs.ErrInvalidState)
	}
	if i < 0 || i >= len(r.weapons) {
		return Weapon{}, fmt.Errorf("weapon index %d of %d: %w", i, len(r.weapons), errs.ErrOutOfRange)
	}
	return r.weapons[i], nil
}

// Spell returns the spell at index i.
func (r *Registry) Spell(i int) (Spell, error) {
	if len(r.spells) == 0 {
		return Spell{}, fmt.Errorf("no spells registered: %w", errs.ErrInvalidState)
	}
	if i < 0 || i >= len(r.spells) {
		return Spell{}, fmt.Errorf("spell index %d of %d: %w", i, len(r.spells), errs.ErrOutOfRange)
	}
	return r.spells[i], nil
}

// WeaponIndex returns the position of a weapon id.
func (r *Registry) WeaponIndex(id string) (int, bool) {
	i, ok := r.weaponIDs[id]
	return i, ok
}

// SpellIndex returns the position of a spell id.
func (r *Registry) SpellIndex(id string) (int, bool) {
	i, ok := r.spellIDs[id]
	return i, ok
}
