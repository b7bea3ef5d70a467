package actor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tempest/pkg/shared/errs"
	"tempest/pkg/storage"
)

// Profile is the persisted part of a character, parsed once at construction.
type Profile struct {
	Skin   string
	Exp    float64
	Health float64
	Energy float64
	Speed  float64

	set bool
}

// ParseCharacterData reads the persisted (label, value) fields. Values must be
// plain decimal numbers; anything else is rejected, never evaluated.
func ParseCharacterData(fields []storage.Field) (Profile, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Label] = f.Value
	}

	p := Profile{Skin: strings.TrimSpace(values["skin"]), set: true}
	if p.Skin == "" {
		p.Skin = "1"
	}

	for _, target := range []struct {
		label string
		dst   *float64
	}{
		{"exp", &p.Exp},
		{"health", &p.Health},
		{"energy", &p.Energy},
		{"speed", &p.Speed},
	} {
		raw, ok := values[target.label]
		if !ok {
			return Profile{}, fmt.Errorf("character data: missing %q: %w", target.label, errs.ErrInvalidState)
		}
		v, err := parseNumber(raw)
		if err != nil {
			return Profile{}, fmt.Errorf("character data: %q=%q: %w", target.label, raw, err)
		}
		*target.dst = v
	}
	return p, nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.ErrInvalidState
	}
	return v, nil
}

// Loaded reports whether p came from saved data.
func (p Profile) Loaded() bool { return p.set }

func (p Profile) apply(a *Actor) {
	if !p.set {
		return
	}
	a.Skin = p.Skin
	a.Exp = p.Exp
	a.Health = p.Health
	a.Energy = max(min(p.Energy, a.Stats.Energy), 0)
	if p.Speed > 0 {
		a.Stats.Speed = min(p.Speed, a.MaxStats.Speed)
	}
}

// Record snapshots the persisted fields for saving.
func (a *Actor) Record() storage.CharacterRecord {
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return storage.CharacterRecord{
		Name: a.Name,
		Fields: []storage.Field{
			{Label: "skin", Value: a.Skin},
			{Label: "exp", Value: format(a.Exp)},
			{Label: "health", Value: format(a.Health)},
			{Label: "energy", Value: format(a.Energy)},
			{Label: "speed", Value: format(a.Stats.Speed)},
		},
	}
}
