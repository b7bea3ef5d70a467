package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Companion places a character preset at a spawn point.
type Companion struct {
	Character string  `yaml:"character"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
}

// Settings is the runtime configuration shared by the client and the headless server.
type Settings struct {
	LogLevel     string            `yaml:"log_level"`
	Equipment    string            `yaml:"equipment"` // optional equipment YAML
	Map          string            `yaml:"map"`       // optional map JSON, open arena when empty
	CharacterDir string            `yaml:"character_dir"`
	Character    string            `yaml:"character"`
	Telemetry    string            `yaml:"telemetry_addr"`
	Sound        bool              `yaml:"sound"`
	Keymap       map[string]string `yaml:"keymap"` // action -> ebiten key name
	Companions   []Companion       `yaml:"companions"`
}

// DefaultKeymap mirrors the classic layout: arrows, space to swing,
// left control to cast, Q and E to cycle equipment.
func DefaultKeymap() map[string]string {
	return map[string]string{
		ActionUp:           "ArrowUp",
		ActionDown:         "ArrowDown",
		ActionLeft:         "ArrowLeft",
		ActionRight:        "ArrowRight",
		ActionAttack:       "Space",
		ActionMagic:        "ControlLeft",
		ActionSwitchWeapon: "Q",
		ActionSwitchSpell:  "E",
	}
}

func Default() Settings {
	return Settings{
		LogLevel:     "info",
		CharacterDir: "data/characters",
		Character:    "hero",
		Telemetry:    TelemetryAddr,
		Sound:        true,
		Keymap:       DefaultKeymap(),
	}
}

// Load reads a YAML settings file over the defaults. Keys absent from the file
// keep their default; keymap entries are merged.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	return Parse(b)
}

func Parse(b []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings yaml: %w", err)
	}
	return s, nil
}
