package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tempest/pkg/control"
)

// KeyboardInput is the device snapshot behind the manual policy. Keys are read
// live from ebiten, once per Update.
type KeyboardInput struct {
	Keys map[control.Button]ebiten.Key
}

// NewKeyboardInput resolves an action -> key name map ("attack": "Space").
// Every button must be bound.
func NewKeyboardInput(keymap map[string]string) (*KeyboardInput, error) {
	keys := make(map[control.Button]ebiten.Key, len(keymap))
	for action, name := range keymap {
		b, ok := control.ParseButton(action)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("keymap: %s: %w", action, err)
		}
		keys[b] = k
	}
	for b := control.ButtonUp; b <= control.ButtonSwitchSpell; b++ {
		if _, ok := keys[b]; !ok {
			return nil, fmt.Errorf("keymap: %s is not bound", b)
		}
	}
	return &KeyboardInput{Keys: keys}, nil
}

func (k *KeyboardInput) Pressed(b control.Button) bool {
	key, ok := k.Keys[b]
	return ok && ebiten.IsKeyPressed(key)
}

// DebugToggled reports an F1 press this frame.
func DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
