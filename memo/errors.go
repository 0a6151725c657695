package memo

import "errors"

// Sentinel errors for memoizer construction and key derivation.
var (
	// ErrNilFunc is the panic value when a memoizer is constructed
	// around a nil function.
	ErrNilFunc = errors.New("memo: function is nil")

	// ErrKeyNotSerializable indicates HashKey was given a value that
	// cannot be serialized (function, channel, complex number).
	ErrKeyNotSerializable = errors.New("memo: key value is not serializable")
)
