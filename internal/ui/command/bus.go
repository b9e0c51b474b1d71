package command

import (
	"fmt"

	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/history"
	"github.com/atomicstack/tilegrid/internal/logging/events"
)

// Action names a UI command that maps onto one history call.
type Action string

const (
	AddRow Action = "add-row"
	Undo   Action = "undo"
	Redo   Action = "redo"
)

// Request encapsulates an action invocation.
type Request struct {
	ID     string
	Label  string
	Action Action
}

// Result describes what an action did.
type Result struct {
	Changed bool
	Info    string
	Command *history.Command
	// Direction is the direction the command was applied in.
	Direction history.Direction
}

// Bus routes UI commands to the history manager. Every call runs to
// completion before returning.
type Bus struct {
	grid    *grid.Grid
	history *history.Manager
}

// New initialises a command bus instance.
func New(g *grid.Grid, h *history.Manager) *Bus {
	return &Bus{grid: g, history: h}
}

// History exposes the underlying manager.
func (b *Bus) History() *history.Manager {
	return b.history
}

// Dispatch runs the request and emits trace logs.
func (b *Bus) Dispatch(req Request) Result {
	events.Command.Queue(req.ID, req.Label)
	var res Result
	switch req.Action {
	case AddRow:
		cmd := history.NewAddRow(b.grid)
		if b.history.Execute(cmd) {
			res = Result{Changed: true, Command: cmd, Direction: history.Execute, Info: cmd.Description()}
		}
	case Undo:
		cmd := b.history.PeekUndo()
		if b.history.Undo() {
			res = Result{Changed: true, Command: cmd, Direction: history.Undo, Info: fmt.Sprintf("Undid: %s", cmd.Description())}
		} else {
			res.Info = "Nothing to undo"
		}
	case Redo:
		cmd := b.history.PeekRedo()
		if b.history.Redo() {
			res = Result{Changed: true, Command: cmd, Direction: history.Redo, Info: fmt.Sprintf("Redid: %s", cmd.Description())}
		} else {
			res.Info = "Nothing to redo"
		}
	default:
		res.Info = fmt.Sprintf("unknown action %q", req.Action)
	}
	if !res.Changed {
		events.Command.NoOp(req.ID, req.Label)
		return res
	}
	events.Command.Result(req.ID, req.Label, res.Info)
	return res
}
