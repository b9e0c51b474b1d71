// Package drag turns drag gestures into swap commands.
package drag

import (
	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/history"
	"github.com/atomicstack/tilegrid/internal/logging/events"
)

// State is the coordinator state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Executor runs commands. *history.Manager satisfies it.
type Executor interface {
	Execute(cmd *history.Command) bool
}

// Session is the in-flight drag: the tile being dragged and the cell it was
// picked up from.
type Session struct {
	Tile   *grid.Tile
	Source *grid.Cell
}

// Coordinator tracks the current drag session and routes valid drops
// through the executor as swap commands.
type Coordinator struct {
	exec    Executor
	session *Session
}

// New returns an idle coordinator.
func New(exec Executor) *Coordinator {
	return &Coordinator{exec: exec}
}

// State reports whether a drag is in progress.
func (c *Coordinator) State() State {
	if c.session == nil {
		return Idle
	}
	return Dragging
}

// Session returns the active session or nil when idle.
func (c *Coordinator) Session() *Session {
	return c.session
}

// Start begins a drag from cell. Cells without a tile are ignored. Starting
// while already dragging replaces the session.
func (c *Coordinator) Start(cell *grid.Cell) bool {
	if !cell.HasTile() {
		return false
	}
	c.session = &Session{Tile: cell.Tile, Source: cell}
	events.Drag.Start(cell.Tile.Label, cell.Row().ID, cell.Column())
	return true
}

// End finishes the gesture whether or not a drop happened.
func (c *Coordinator) End() {
	if c.session == nil {
		return
	}
	label := ""
	if c.session.Tile != nil {
		label = c.session.Tile.Label
	}
	c.session = nil
	events.Drag.End(label)
}

// Over reports whether dropping on target would be accepted.
func (c *Coordinator) Over(target *grid.Cell) bool {
	return c.rejectReason(target) == ""
}

// Drop swaps the dragged tile's content with target's. It returns true when
// a swap command was executed. The drag state is left alone; End closes the
// session.
func (c *Coordinator) Drop(target *grid.Cell) bool {
	if reason := c.rejectReason(target); reason != "" {
		events.Drag.Ignore(reason)
		return false
	}
	cmd, err := history.NewSwap(c.session.Source, target)
	if err != nil {
		events.Drag.Ignore(events.DropCommandErr)
		return false
	}
	src, dst := cmd.Captured()
	if c.exec == nil || !c.exec.Execute(cmd) {
		events.Drag.Ignore(events.DropCommandErr)
		return false
	}
	events.Drag.Drop(src.Label, dst.Label)
	return true
}

func (c *Coordinator) rejectReason(target *grid.Cell) events.DropReason {
	switch {
	case c.session == nil:
		return events.DropNoDrag
	case target == nil, target.Row() != nil && !target.Row().Attached():
		return events.DropNoTarget
	case target == c.session.Source:
		return events.DropSameCell
	case !target.HasTile():
		return events.DropEmptyCell
	case !c.session.Source.HasTile():
		return events.DropEmptyCell
	}
	return ""
}
