package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"tempest/pkg/audio/cue"
)

const (
	sampleRate = beep.SampleRate(44100)

	// WeaponVolume scales the weapon swing cue.
	WeaponVolume = 0.4
)

// SoundManager mixes synthesized cues onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Safe to call twice.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// WeaponCue returns the swing sound played when an attack starts.
func (sm *SoundManager) WeaponCue() cue.Cue {
	return cue.Func(func() { sm.play(SwingStreamer()) })
}

// DeathCue returns the sound played when an actor dies.
func (sm *SoundManager) DeathCue() cue.Cue {
	return cue.Func(func() { sm.play(DeathStreamer()) })
}

// SwingStreamer is a 120ms burst of fading noise at WeaponVolume.
func SwingStreamer() beep.Streamer {
	return beep.Take(sampleRate.N(120*time.Millisecond), NewSwingGenerator(sampleRate, WeaponVolume))
}

// DeathStreamer is a 600ms falling tone.
func DeathStreamer() beep.Streamer {
	return beep.Take(sampleRate.N(600*time.Millisecond), NewFallGenerator(sampleRate, 440, 0.3))
}

// SwingGenerator produces noise with a linear decay over 120ms.
type SwingGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
	length int
	rng    *rand.Rand
}

func NewSwingGenerator(sr beep.SampleRate, volume float64) *SwingGenerator {
	return &SwingGenerator{
		sr:     sr,
		volume: volume,
		length: sr.N(120 * time.Millisecond),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (g *SwingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		env := 1 - float64(g.pos)/float64(g.length)
		if env < 0 {
			env = 0
		}
		v := (g.rng.Float64()*2 - 1) * env * g.volume
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *SwingGenerator) Err() error { return nil }

// FallGenerator is a sine whose pitch halves every 300ms.
type FallGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	phase  float64
	pos    int
}

func NewFallGenerator(sr beep.SampleRate, freq, volume float64) *FallGenerator {
	return &FallGenerator{sr: sr, freq: freq, volume: volume}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		f := g.freq * math.Pow(0.5, t/0.3)
		g.phase += 2 * math.Pi * f / float64(g.sr)
		v := math.Sin(g.phase) * g.volume
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error { return nil }
