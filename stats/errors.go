package stats

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrNilCollector is returned when registering a nil collector.
	ErrNilCollector = errors.New("stats: collector is nil")

	// ErrDuplicateCollector is returned when a collector with the same
	// name is already registered.
	ErrDuplicateCollector = errors.New("stats: collector already registered")
)
