package ui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tilegrid/internal/drag"
	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/history"
	"github.com/atomicstack/tilegrid/internal/logging/events"
	"github.com/atomicstack/tilegrid/internal/ui/command"
	uistate "github.com/atomicstack/tilegrid/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.find.Active {
		return m.handleFindKey(keyMsg)
	}
	rows := m.grid.Len()
	switch {
	case key.Matches(keyMsg, m.keys.quit):
		m.endDrag()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.addRow):
		return m.dispatch(command.AddRow)
	case key.Matches(keyMsg, m.keys.undo):
		return m.dispatch(command.Undo)
	case key.Matches(keyMsg, m.keys.redo):
		return m.dispatch(command.Redo)
	case key.Matches(keyMsg, m.keys.grab):
		return m.toggleGrab()
	case key.Matches(keyMsg, m.keys.cancel):
		if m.drag.State() == drag.Dragging {
			m.endDrag()
			m.setInfo("Drag cancelled")
			return nil
		}
		m.setInfo("")
		return nil
	case key.Matches(keyMsg, m.keys.up):
		m.moveCursor(m.cursor.Move(-1, 0, rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.down):
		m.moveCursor(m.cursor.Move(1, 0, rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.left):
		m.moveCursor(m.cursor.Move(0, -1, rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.right):
		m.moveCursor(m.cursor.Move(0, 1, rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.home):
		m.moveCursor(m.cursor.MoveHome(rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.end):
		m.moveCursor(m.cursor.MoveEnd(rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.pageUp):
		m.moveCursor(m.cursor.MovePageUp(m.maxVisibleRows(), rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.pageDown):
		m.moveCursor(m.cursor.MovePageDown(m.maxVisibleRows(), rows, grid.Columns))
	case key.Matches(keyMsg, m.keys.find):
		m.find.Open()
		m.refreshMatches()
	case key.Matches(keyMsg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) moveCursor(changed bool) {
	if !changed {
		return
	}
	m.syncViewport()
	events.UI.Cursor(m.cursor.Row, m.cursor.Col)
}

// dispatch ends any drag in flight and then routes the action through the
// command bus.
func (m *Model) dispatch(action command.Action) tea.Cmd {
	m.endDrag()
	res := m.bus.Dispatch(command.Request{
		ID:     fmt.Sprintf("%s-%d", action, m.history.Executed()),
		Label:  string(action),
		Action: action,
	})
	m.setInfo(res.Info)
	m.syncViewport()
	if !res.Changed {
		return nil
	}
	if action == command.AddRow {
		m.moveCursor(m.cursor.MoveEnd(m.grid.Len(), grid.Columns))
	}
	return m.flashCommand(res.Command, res.Direction)
}

// flashCommand highlights what a command touched. Undoing an add row removes
// the row from view so nothing is flashed.
func (m *Model) flashCommand(cmd *history.Command, d history.Direction) tea.Cmd {
	if cmd == nil {
		return nil
	}
	switch cmd.Kind() {
	case history.KindAddRow:
		if d == history.Undo || cmd.Row() == nil {
			return nil
		}
		return m.flashCells(cmd.Row().Cells[:]...)
	case history.KindSwap:
		src, dst := cmd.Cells()
		return m.flashCells(src, dst)
	}
	return nil
}

func (m *Model) endDrag() {
	m.mouseDrag = false
	m.hover = nil
	if m.drag.State() == drag.Dragging {
		m.drag.End()
	}
}

// toggleGrab picks up the tile under the cursor, or drops the tile already
// being carried onto it.
func (m *Model) toggleGrab() tea.Cmd {
	cell := m.cursorCell()
	if m.drag.State() == drag.Idle {
		if !m.drag.Start(cell) {
			m.setInfo("Nothing to pick up")
			return nil
		}
		m.setInfo(fmt.Sprintf("Dragging %s", cell.Tile.Label))
		return nil
	}
	return m.dropOn(cell)
}

// dropOn drops the carried tile on target and closes the gesture.
func (m *Model) dropOn(target *grid.Cell) tea.Cmd {
	session := m.drag.Session()
	source := session.Source
	var cmd tea.Cmd
	if m.drag.Drop(target) {
		if swap := m.history.PeekUndo(); swap != nil {
			m.setInfo(swap.Description())
			cmd = m.flashCommand(swap, history.Execute)
		}
	} else if target == source {
		m.setInfo("")
	} else {
		m.setInfo("Cannot drop here")
	}
	m.endDrag()
	return cmd
}

func (m *Model) handleFindKey(msg tea.KeyPressMsg) tea.Cmd {
	changed := false
	switch msg.String() {
	case "esc":
		m.find.Close()
		m.matches = nil
		return nil
	case "enter":
		m.jumpToBestMatch()
		m.find.Close()
		m.matches = nil
		return nil
	case "backspace", "ctrl+h":
		changed = m.find.DeleteBackward()
	case "ctrl+w":
		changed = m.find.DeleteWordBackward()
	case "left":
		m.find.MoveLeft()
	case "right":
		m.find.MoveRight()
	case "ctrl+c":
		m.endDrag()
		return tea.Quit
	default:
		if msg.Text != "" {
			changed = m.find.Insert(msg.Text)
		}
	}
	if changed {
		m.refreshMatches()
	}
	return nil
}

func (m *Model) refreshMatches() {
	cells := m.grid.Cells()
	labels := make([]string, len(cells))
	for i, cell := range cells {
		if cell.HasTile() {
			labels[i] = cell.Tile.Label
		}
	}
	idxs := uistate.Matches(m.find.Query, labels)
	m.matches = make(map[*grid.Cell]int, len(idxs))
	for rank, idx := range idxs {
		m.matches[cells[idx]] = rank
	}
	events.UI.Find(m.find.Query, len(idxs))
}

func (m *Model) jumpToBestMatch() {
	for cell, rank := range m.matches {
		if rank != 0 {
			continue
		}
		if row, col, ok := m.grid.Locate(cell); ok {
			m.moveCursor(m.cursor.Set(row, col, m.grid.Len(), grid.Columns))
			m.setInfo(fmt.Sprintf("Found %s", cell.Tile.Label))
		}
		return
	}
	m.setInfo(fmt.Sprintf("No tile matches %q", m.find.Query))
}
