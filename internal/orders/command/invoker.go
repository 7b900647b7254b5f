package command

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// LogAction classifies an execution log entry.
type LogAction string

const (
	ActionExecuted LogAction = "executed"
	ActionFailed   LogAction = "failed"
	ActionUndone   LogAction = "undone"
)

// LogEntry is one row of the invoker's audit trail.
type LogEntry struct {
	Action  LogAction
	Command string
	Detail  string
	At      time.Time
}

// Invoker executes commands, keeping two independent structures: a LIFO
// stack of undoable commands and an append-only log of every attempt. Undo
// appends to the log rather than removing past entries, so the log remains
// a full audit trail regardless of how much history is unwound.
type Invoker struct {
	logger  zerolog.Logger
	history []Command
	log     []LogEntry
}

func NewInvoker(logger zerolog.Logger) *Invoker {
	return &Invoker{logger: logger.With().Str("component", "invoker").Logger()}
}

// ExecuteCommand runs cmd and records the attempt. Only commands that are
// reversible and actually mutated state are pushed onto the undo stack:
// a rejected operation leaves nothing to reverse.
func (inv *Invoker) ExecuteCommand(cmd Command) error {
	err := cmd.Execute()
	if err != nil {
		inv.append(ActionFailed, cmd.Name(), err.Error())
		inv.logger.Warn().Str("command", cmd.Name()).Err(err).Msg("command failed")
		return err
	}

	inv.append(ActionExecuted, cmd.Name(), "")
	if cmd.IsReversible() && didMutate(cmd) {
		inv.history = append(inv.history, cmd)
	}

	inv.logger.Info().
		Str("command", cmd.Name()).
		Int("undoable", len(inv.history)).
		Msg("command executed")
	return nil
}

// UndoLastCommand pops the most recent undoable command and reverses it.
// An empty stack is a reported no-op, not a failure.
func (inv *Invoker) UndoLastCommand() error {
	if len(inv.history) == 0 {
		inv.logger.Info().Msg("undo requested with empty history")
		return domain.ErrEmptyHistory
	}

	cmd := inv.history[len(inv.history)-1]
	inv.history = inv.history[:len(inv.history)-1]
	return inv.undo(cmd)
}

// UndoAllCommands drains the undo stack in LIFO order. The first undo error
// stops the drain and is returned; already-undone commands stay undone.
func (inv *Invoker) UndoAllCommands() error {
	for len(inv.history) > 0 {
		if err := inv.UndoLastCommand(); err != nil {
			return err
		}
	}
	return nil
}

func (inv *Invoker) undo(cmd Command) error {
	if err := cmd.Undo(); err != nil {
		inv.append(ActionFailed, cmd.Name(), err.Error())
		inv.logger.Warn().Str("command", cmd.Name()).Err(err).Msg("undo failed")
		return errors.Wrapf(err, "undo %s", cmd.Name())
	}

	inv.append(ActionUndone, cmd.Name(), "")
	inv.logger.Info().Str("command", cmd.Name()).Msg("command undone")
	return nil
}

// HistorySize reports how many commands are available for undo.
func (inv *Invoker) HistorySize() int {
	return len(inv.history)
}

// Log returns a copy of the append-only execution log.
func (inv *Invoker) Log() []LogEntry {
	out := make([]LogEntry, len(inv.log))
	copy(out, inv.log)
	return out
}

func (inv *Invoker) append(action LogAction, command, detail string) {
	inv.log = append(inv.log, LogEntry{
		Action:  action,
		Command: command,
		Detail:  detail,
		At:      time.Now(),
	})
}
