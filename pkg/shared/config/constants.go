package config

const (
	// Play field
	ScreenWidth  = 1280
	ScreenHeight = 800
	TileSize     = 64
	FPS          = 60

	// Teleport targets keep this distance from the top/left edge and twice it from the bottom/right.
	FieldMargin = 64

	// Cooldowns (ms)
	BaseAttackCooldown      = 400
	SwitchCooldown          = 200
	InvulnerabilityDuration = 500

	// Energy regained per tick per point of magic.
	EnergyRegenRate = 0.01

	// Animation frames advanced per tick.
	AnimationSpeed = 0.15

	// Keybinding action names
	ActionUp           = "up"
	ActionDown         = "down"
	ActionLeft         = "left"
	ActionRight        = "right"
	ActionAttack       = "attack"
	ActionMagic        = "magic"
	ActionSwitchWeapon = "switch_weapon"
	ActionSwitchSpell  = "switch_spell"

	// Telemetry
	TelemetryAddr = ":8081"
)
