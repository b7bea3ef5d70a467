package animation

import (
	"fmt"
	"math"

	"tempest/pkg/shared/components"
	"tempest/pkg/shared/config"
	"tempest/pkg/shared/errs"
)

// DefaultFrames is the frame count per status for the stock character sheets:
// four walk frames, a single idle and attack pose.
func DefaultFrames() map[components.Status]int {
	frames := make(map[components.Status]int, 12)
	for _, st := range components.AllStatuses() {
		switch st.Activity {
		case components.ActivityMoving:
			frames[st] = 4
		default:
			frames[st] = 1
		}
	}
	return frames
}

// Selector turns an actor status into a frame index.
type Selector struct {
	frames map[components.Status]int
	speed  float64
	cursor float64
}

func NewSelector(frames map[components.Status]int, speed float64) *Selector {
	if speed <= 0 {
		speed = config.AnimationSpeed
	}
	return &Selector{frames: frames, speed: speed}
}

// Advance moves the cursor one tick through the sequence for st, wrapping to
// the first frame, and returns the frame to show.
func (s *Selector) Advance(st components.Status) (int, error) {
	n := s.frames[st]
	if n <= 0 {
		return 0, fmt.Errorf("no frames for %s: %w", st, errs.ErrInvalidState)
	}
	s.cursor += s.speed
	if s.cursor >= float64(n) {
		s.cursor = 0
	}
	return int(s.cursor), nil
}

// Frame is the current frame without advancing.
func (s *Selector) Frame() int { return int(s.cursor) }

// Alpha is the sprite opacity: solid when vulnerable, blinking while in the
// post-hit grace window.
func Alpha(vulnerable bool, ticks int64) uint8 {
	if vulnerable || math.Sin(float64(ticks)) >= 0 {
		return 255
	}
	return 0
}
