package resilience

import "errors"

// Sentinel errors for resilience operations.
var (
	// ErrTimeout is returned when a computation exceeds its time limit.
	ErrTimeout = errors.New("resilience: operation timed out")
)
