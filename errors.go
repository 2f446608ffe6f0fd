package bptree

import "errors"

// Sentinel errors. Benign absences (a missing key, a cursor past the end)
// are reported as a boolean, never as one of these; these are reserved for
// conditions the caller must actively avoid.
var (
	ErrOutOfRange  = errors.New("bptree: range start after end, or excluded-equal bounds")
	ErrUnsupported = errors.New("bptree: unsupported key stream for load")
)
