package clock

import "time"

// Clock returns a monotonic timestamp in milliseconds.
type Clock interface {
	Now() int64
}

// System measures milliseconds since it was created.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is advanced by hand. Used by tests and replays.
type Manual struct {
	T int64
}

func (c *Manual) Now() int64 { return c.T }

func (c *Manual) Set(t int64) { c.T = t }

func (c *Manual) Advance(ms int64) { c.T += ms }
