package ui

import "testing"

func TestFillRatio(t *testing.T) {
	tests := []struct {
		cur, max, want float64
	}{
		{50, 100, 0.5},
		{150, 100, 1},
		{-5, 100, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := FillRatio(tt.cur, tt.max); got != tt.want {
			t.Errorf("FillRatio(%v, %v) = %v, want %v", tt.cur, tt.max, got, tt.want)
		}
	}
}

func TestBarFillWidth(t *testing.T) {
	health := 75.0
	b := NewBar(10, 10, HealthBarWidth, ColorHealth, func() (float64, float64) { return health, 100 })
	if got := b.FillWidth(); got != 150 {
		t.Errorf("fill = %v, want 150", got)
	}
	health = 0
	if got := b.FillWidth(); got != 0 {
		t.Errorf("fill when empty = %v, want 0", got)
	}
}

func TestSelectionBoxHighlightsWhileLocked(t *testing.T) {
	locked := false
	box := NewSelectionBox(0, 0, func() string { return "sword" }, func() bool { return locked })
	if box.BorderColor() != ColorBorder {
		t.Errorf("unlocked box highlighted")
	}
	locked = true
	if box.BorderColor() != ColorBorderActive {
		t.Errorf("locked box not highlighted")
	}
}

func TestManagerSkipsHidden(t *testing.T) {
	m := NewManager()
	l := NewLabel(0, 0, func() string { return "x" })
	l.SetVisible(false)
	m.AddElement(l)
	if len(m.Elements) != 1 || m.Elements[0].IsVisible() {
		t.Errorf("hidden label state wrong")
	}
}
