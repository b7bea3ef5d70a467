// Package control supplies per-tick intents to actors, either from a human
// input device or from a scripted patrol.
package control

import "tempest/pkg/shared/components"

// View is the read-only slice of actor state a policy may look at.
type View struct {
	Position components.Vec2
	Status   components.Status
}

// Attacking reports whether the actor is mid-attack.
func (v View) Attacking() bool {
	return v.Status.Activity == components.ActivityAttacking
}

// Policy produces an intent each tick. Implementations must not block.
type Policy interface {
	Intent(v View, now int64) components.Intent
}

// Button is a logical input, decoupled from physical keys.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonAttack
	ButtonMagic
	ButtonSwitchWeapon
	ButtonSwitchSpell
)

var buttonNames = [...]string{"up", "down", "left", "right", "attack", "magic", "switch_weapon", "switch_spell"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// ParseButton maps a keymap name to a Button.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// InputSnapshot reports held buttons for the current frame.
type InputSnapshot interface {
	Pressed(b Button) bool
}

// Held is an InputSnapshot backed by a set. Handy for replays and tests.
type Held map[Button]bool

func (h Held) Pressed(b Button) bool { return h[b] }
