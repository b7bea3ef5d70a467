package characters

import (
	"image/color"

	"tempest/pkg/shared/components"
)

// CharacterDefinition is the blueprint for an autonomously driven companion.
type CharacterDefinition struct {
	ID          string // Unique ID e.g. "guard_patrol"
	Name        string
	Description string

	// Visuals
	Skin  string // Asset folder e.g. "2"
	Color color.RGBA

	// Stats
	Speed float64

	// Starting Equipment
	WeaponID string
	SpellID  string

	// Patrol, as offsets from the spawn point. Empty means hold position.
	Patrol          []components.Vec2
	PatrolTolerance float64
	AttackInterval  int64 // ms
	AutoAttack      bool
}

var Registry = make(map[string]CharacterDefinition)

func Register(char CharacterDefinition) {
	if _, exists := Registry[char.ID]; exists {
		panic("Duplicate character ID: " + char.ID)
	}
	Registry[char.ID] = char
}

func Get(id string) (CharacterDefinition, bool) {
	c, ok := Registry[id]
	return c, ok
}

// Waypoints returns the absolute patrol loop for a spawn point.
func (c CharacterDefinition) Waypoints(spawn components.Vec2) []components.Vec2 {
	if len(c.Patrol) == 0 {
		return []components.Vec2{spawn}
	}
	out := make([]components.Vec2, len(c.Patrol))
	for i, off := range c.Patrol {
		out[i] = spawn.Add(off)
	}
	return out
}
