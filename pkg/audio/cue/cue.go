// Package cue holds the sound cue interface the simulation fires. It has no
// audio device dependency so headless builds do not link a driver.
package cue

// Cue is a fire-and-forget sound effect.
type Cue interface {
	Play()
}

// Func adapts a function to Cue.
type Func func()

func (f Func) Play() { f() }

// Silent is a Cue that does nothing. Used headless and in tests.
type Silent struct{}

func (Silent) Play() {}
