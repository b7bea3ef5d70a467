package config

import "testing"

func TestParseMergesOverDefaults(t *testing.T) {
	s, err := Parse([]byte(`
log_level: debug
sound: false
keymap:
  attack: J
companions:
  - character: sentry
    x: 320
    y: 256
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.LogLevel != "debug" || s.Sound {
		t.Errorf("Expected debug and sound off, got %q / %v", s.LogLevel, s.Sound)
	}
	if s.Keymap[ActionAttack] != "J" || s.Keymap[ActionMagic] != "ControlLeft" {
		t.Errorf("Expected attack rebound and magic kept, got %v", s.Keymap)
	}
	if len(s.Companions) != 1 || s.Companions[0].Character != "sentry" || s.Companions[0].X != 320 {
		t.Errorf("Unexpected companions %+v", s.Companions)
	}
	if s.Character != "hero" || s.Telemetry != TelemetryAddr {
		t.Error("Expected unset fields to keep defaults")
	}
}

func TestParseSoundDefaultsOn(t *testing.T) {
	s, err := Parse([]byte("character: rogue\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Sound || s.Character != "rogue" {
		t.Errorf("Expected sound on and character rogue, got %v / %q", s.Sound, s.Character)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("keymap: [")); err == nil {
		t.Error("Expected malformed yaml to fail")
	}
}
