package characters

import (
	"image/color"

	"tempest/pkg/shared/components"
)

func init() {
	// Square patrol, swings every two seconds
	Register(CharacterDefinition{
		ID:          "guard_patrol",
		Name:        "Patrol Guard",
		Description: "Walks a square beat around its post and swings at anything nearby.",
		Skin:        "2",
		Color:       color.RGBA{R: 255, G: 255, B: 0, A: 255}, // Yellow
		Speed:       3,
		WeaponID:    "lance",
		Patrol: []components.Vec2{
			{X: 0, Y: 0},
			{X: 192, Y: 0},
			{X: 192, Y: 128},
			{X: 0, Y: 128},
		},
		PatrolTolerance: 4,
		AttackInterval:  2000,
		AutoAttack:      true,
	})

	// Stationary, fast cadence
	Register(CharacterDefinition{
		ID:             "sentry",
		Name:           "Sentry",
		Description:    "Holds its post and jabs on a short cadence.",
		Skin:           "3",
		Color:          color.RGBA{R: 0, G: 0, B: 255, A: 255}, // Blue
		Speed:          5,
		WeaponID:       "rapier",
		AttackInterval: 1000,
		AutoAttack:     true,
	})

	// Demo walker, never attacks
	Register(CharacterDefinition{
		ID:          "wanderer",
		Name:        "Wanderer",
		Description: "Paces back and forth for demo reels.",
		Skin:        "1",
		Color:       color.RGBA{R: 200, G: 120, B: 255, A: 255}, // Purple
		Speed:       2,
		WeaponID:    "sword",
		Patrol: []components.Vec2{
			{X: 0, Y: 0},
			{X: 256, Y: 0},
		},
		AutoAttack: false,
	})
}
