package domain

import "github.com/pkg/errors"

// The engine's failure modes are local and recoverable: callers match on
// these sentinels with errors.Is and carry on. Nothing here ever aborts the
// process, and a failed operation never leaves a partial mutation behind.
var (
	// ErrOrderNotFound means an operation referenced an unknown order ID.
	ErrOrderNotFound = errors.New("order not found")

	// ErrIllegalTransition means a status change was attempted from a state
	// that does not permit it.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrEmptyHistory means an undo was requested with no reversible
	// commands available.
	ErrEmptyHistory = errors.New("no commands to undo")
)
