package control

import "tempest/pkg/shared/components"

// Manual maps an input device to intents. It keeps no state of its own;
// switch debouncing is the actor's lock.
type Manual struct {
	Input InputSnapshot
}

func NewManual(input InputSnapshot) *Manual {
	return &Manual{Input: input}
}

func (m *Manual) Intent(_ View, _ int64) components.Intent {
	var in components.Intent

	switch {
	case m.Input.Pressed(ButtonUp):
		in.Move.Y = -1
	case m.Input.Pressed(ButtonDown):
		in.Move.Y = 1
	}

	switch {
	case m.Input.Pressed(ButtonLeft):
		in.Move.X = -1
	case m.Input.Pressed(ButtonRight):
		in.Move.X = 1
	}

	in.Attack = m.Input.Pressed(ButtonAttack)
	in.Magic = m.Input.Pressed(ButtonMagic)
	in.SwitchWeapon = m.Input.Pressed(ButtonSwitchWeapon)
	in.SwitchSpell = m.Input.Pressed(ButtonSwitchSpell)
	return in
}
