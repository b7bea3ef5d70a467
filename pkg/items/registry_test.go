package items

import (
	"errors"
	"testing"

	"tempest/pkg/shared/errs"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	if r.WeaponCount() != 5 || r.SpellCount() != 3 {
		t.Fatalf("Expected 5 weapons and 3 spells, got %d/%d", r.WeaponCount(), r.SpellCount())
	}
	w, err := r.Weapon(0)
	if err != nil || w.ID != "sword" || w.Cooldown != 100 {
		t.Errorf("Expected sword with 100ms cooldown, got %+v (%v)", w, err)
	}
	s, _ := r.Spell(2)
	if !s.Relocates {
		t.Error("Expected spell at index 2 to relocate the caster")
	}
	if i, ok := r.WeaponIndex("axe"); !ok || i != 2 {
		t.Errorf("Expected axe at index 2, got %d (ok=%v)", i, ok)
	}
}

func TestRegistryErrors(t *testing.T) {
	empty, err := NewRegistry(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := empty.Weapon(0); !errors.Is(err, errs.ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState for empty registry, got %v", err)
	}

	r := DefaultRegistry()
	if _, err := r.Spell(3); !errors.Is(err, errs.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}

	dup := []Weapon{{ID: "sword"}, {ID: "sword"}}
	if _, err := NewRegistry(dup, nil); !errors.Is(err, errs.ErrInvalidState) {
		t.Errorf("Expected duplicate id to be rejected, got %v", err)
	}
}

func TestParseRegistry(t *testing.T) {
	src := []byte(`
weapons:
  - id: stick
    cooldown: 10
    damage: 1
  - id: club
    cooldown: 20
    damage: 3
`)
	r, err := ParseRegistry(src)
	if err != nil {
		t.Fatalf("ParseRegistry: %v", err)
	}
	if r.WeaponCount() != 2 {
		t.Errorf("Expected 2 weapons, got %d", r.WeaponCount())
	}
	w, _ := r.Weapon(1)
	if w.ID != "club" || w.Cooldown != 20 || w.Damage != 3 {
		t.Errorf("Unexpected weapon %+v", w)
	}
	if r.SpellCount() != len(DefaultSpells()) {
		t.Error("Expected missing spells section to fall back to defaults")
	}

	if _, err := ParseRegistry([]byte("weapons: [")); err == nil {
		t.Error("Expected malformed yaml to fail")
	}
}
