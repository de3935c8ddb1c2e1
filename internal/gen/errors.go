package gen

import "errors"

// Generation failures are recoverable at the caller level: regenerate with a
// different seed or configuration. None of them should escalate to a
// process-level fatal error.
var (
	// ErrInvalidConfig rejects a configuration before generation starts.
	// Unlike the other errors it is not worth retrying with a new seed.
	ErrInvalidConfig = errors.New("invalid generation config")

	// ErrNoRooms reports that every leaf partition was too small to carve
	// a room into.
	ErrNoRooms = errors.New("no rooms generated")

	// ErrDisconnected reports that the candidate corridor graph did not
	// connect every room, so the spanning-tree selection produced a forest.
	ErrDisconnected = errors.New("candidate corridor graph is disconnected")

	// ErrTypeAssignment reports that entrance/exit assignment was impossible
	// for the final corridor graph.
	ErrTypeAssignment = errors.New("room type assignment failed")
)
