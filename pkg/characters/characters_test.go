package characters

import (
	"testing"

	"tempest/pkg/items"
	"tempest/pkg/shared/components"
)

func TestPresetsReferenceKnownWeapons(t *testing.T) {
	reg := items.DefaultRegistry()
	for id, def := range Registry {
		if _, ok := reg.WeaponIndex(def.WeaponID); !ok {
			t.Errorf("%s: unknown weapon %q", id, def.WeaponID)
		}
	}
}

func TestWaypoints(t *testing.T) {
	spawn := components.Vec2{X: 300, Y: 300}

	sentry, ok := Get("sentry")
	if !ok {
		t.Fatal("sentry not registered")
	}
	if wp := sentry.Waypoints(spawn); len(wp) != 1 || wp[0] != spawn {
		t.Errorf("Expected sentry to hold its spawn point, got %v", wp)
	}

	guard, _ := Get("guard_patrol")
	wp := guard.Waypoints(spawn)
	if len(wp) != 4 || wp[2] != (components.Vec2{X: 492, Y: 428}) {
		t.Errorf("Unexpected patrol loop %v", wp)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected duplicate registration to panic")
		}
	}()
	Register(CharacterDefinition{ID: "sentry"})
}
