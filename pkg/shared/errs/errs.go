package errs

import "errors"

var (
	// ErrInvalidState marks a logic defect: a timer queried before it was
	// started, an empty equipment list, malformed persisted stats.
	ErrInvalidState = errors.New("invalid state")
	// ErrOutOfRange marks an equipment index outside the registry.
	ErrOutOfRange = errors.New("out of range")
)
