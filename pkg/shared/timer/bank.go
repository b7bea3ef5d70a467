package timer

import (
	"fmt"

	"tempest/pkg/shared/errs"
)

// Bank tracks named cooldowns as start timestamps (ms).
// A label is present only while its cooldown is running.
type Bank struct {
	started map[string]int64
}

func NewBank() *Bank {
	return &Bank{started: make(map[string]int64)}
}

// Start (re)arms the label at now.
func (b *Bank) Start(label string, now int64) {
	b.started[label] = now
}

// IsExpired reports whether duration ms have elapsed since the label started.
// Querying a label that was never started is an error, never a default.
func (b *Bank) IsExpired(label string, now, duration int64) (bool, error) {
	start, ok := b.started[label]
	if !ok {
		return false, fmt.Errorf("timer %q not started: %w", label, errs.ErrInvalidState)
	}
	return now-start >= duration, nil
}

func (b *Bank) Clear(label string) {
	delete(b.started, label)
}

func (b *Bank) Active(label string) bool {
	_, ok := b.started[label]
	return ok
}

func (b *Bank) StartedAt(label string) (int64, bool) {
	t, ok := b.started[label]
	return t, ok
}
