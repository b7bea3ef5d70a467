package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an equipment file.
type File struct {
	Weapons []Weapon `yaml:"weapons"`
	Spells  []Spell  `yaml:"spells"`
}

// LoadRegistry reads an equipment YAML file. Sections left empty fall back to the defaults.
func LoadRegistry(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistry(b)
}

func ParseRegistry(b []byte) (*Registry, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse equipment yaml: %w", err)
	}
	if len(f.Weapons) == 0 {
		f.Weapons = DefaultWeapons()
	}
	if len(f.Spells) == 0 {
		f.Spells = DefaultSpells()
	}
	return NewRegistry(f.Weapons, f.Spells)
}
