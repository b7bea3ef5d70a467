package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const DataDir = "data/characters"

// Field is one persisted (label, value) pair. Values stay strings on disk and
// are parsed strictly by the consumer.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CharacterRecord is the saved state of a playable character.
type CharacterRecord struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Lookup returns the value stored under label.
func (r *CharacterRecord) Lookup(label string) (string, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func GetFilePath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

func SaveCharacter(dir string, rec CharacterRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(GetFilePath(dir, rec.Name))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}

// LoadCharacter returns nil, nil when no save exists yet.
func LoadCharacter(dir, name string) (*CharacterRecord, error) {
	file, err := os.Open(GetFilePath(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var rec CharacterRecord
	if err := json.NewDecoder(file).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
