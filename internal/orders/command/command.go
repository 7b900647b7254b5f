// Package command wraps order mutations as objects that capture enough prior
// state to reverse themselves, executed through an invoker that keeps a LIFO
// undo stack and an append-only execution log.
package command

import "github.com/pkg/errors"

// Command is one intended mutation against the order registry.
//
// Execute runs the mutation; Undo reverses the most recent Execute and must
// be safe to call when Execute never ran or never mutated anything.
type Command interface {
	Execute() error
	Undo() error
	Name() string
	IsReversible() bool
}

// ErrIrreversible is returned by Undo on commands whose effect cannot be
// reversed, such as a completed delivery.
var ErrIrreversible = errors.New("command cannot be undone")

// mutator lets the invoker distinguish commands that actually changed
// registry state from ones that ran without effect. Only mutating
// executions become undoable; there is nothing to reverse otherwise.
type mutator interface {
	mutated() bool
}

func didMutate(cmd Command) bool {
	if m, ok := cmd.(mutator); ok {
		return m.mutated()
	}
	return true
}
