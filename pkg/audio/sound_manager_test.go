package audio

import (
	"math"
	"testing"
	"time"
)

func TestSwingStreamerLengthAndVolume(t *testing.T) {
	s := SwingStreamer()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	if want := sampleRate.N(120 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if peak > WeaponVolume {
		t.Errorf("Peak %.3f exceeds weapon volume %.2f", peak, WeaponVolume)
	}
}

func TestCuesWithoutDeviceAreNoops(t *testing.T) {
	sm := NewSoundManager()
	// Not initialized: Play must not touch the speaker.
	sm.WeaponCue().Play()
	sm.DeathCue().Play()
	sm.Cleanup()
}
