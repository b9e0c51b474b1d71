package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tilegrid/internal/drag"
	"github.com/atomicstack/tilegrid/internal/grid"
)

// Grid geometry in terminal cells. The view draws with these constants and
// the mouse handlers invert them, so a single handler serves every cell.
const (
	gridLeft   = 2
	gridTop    = 2
	cellWidth  = 10
	cellHeight = 3
	colGap     = 2
	rowGap     = 1

	colStride = cellWidth + colGap
	rowStride = cellHeight + rowGap
	gridWidth = gridLeft + grid.Columns*cellWidth + (grid.Columns-1)*colGap
)

// cellAt resolves a terminal position to the grid cell drawn there, or nil
// for gaps, margins and rows scrolled out of view.
func (m *Model) cellAt(x, y int) *grid.Cell {
	if x < gridLeft || y < gridTop {
		return nil
	}
	relX, relY := x-gridLeft, y-gridTop
	if relX%colStride >= cellWidth || relY%rowStride >= cellHeight {
		return nil
	}
	col := relX / colStride
	visible := relY / rowStride
	if col >= grid.Columns {
		return nil
	}
	if limit := m.maxVisibleRows(); limit > 0 && visible >= limit {
		return nil
	}
	return m.grid.Cell(m.cursor.ViewportOffset+visible, col)
}

// cellOrigin returns the top-left terminal position of the cell at the given
// visible row and column.
func cellOrigin(visible, col int) (x, y int) {
	return gridLeft + col*colStride, gridTop + visible*rowStride
}

func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseClickMsg)
	if !ok || ev.Button != tea.MouseLeft {
		return nil
	}
	if m.find.Active {
		return nil
	}
	cell := m.cellAt(ev.X, ev.Y)
	if cell == nil {
		return nil
	}
	if row, col, ok := m.grid.Locate(cell); ok {
		m.moveCursor(m.cursor.Set(row, col, m.grid.Len(), grid.Columns))
	}
	m.endDrag()
	if !m.drag.Start(cell) {
		return nil
	}
	m.mouseDrag = true
	m.setInfo(fmt.Sprintf("Dragging %s", cell.Tile.Label))
	return nil
}

func (m *Model) handleMouseMotionMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMotionMsg)
	if !ok || !m.mouseDrag || m.drag.State() != drag.Dragging {
		return nil
	}
	cell := m.cellAt(ev.X, ev.Y)
	if cell != nil && m.drag.Over(cell) {
		m.hover = cell
		return nil
	}
	m.hover = nil
	return nil
}

func (m *Model) handleMouseReleaseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseReleaseMsg)
	if !ok || !m.mouseDrag || m.drag.State() != drag.Dragging {
		return nil
	}
	return m.dropOn(m.cellAt(ev.X, ev.Y))
}

// maxVisibleRows returns how many grid rows fit, or -1 when the height is
// unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := gridTop + 1 // status line
	if m.find.Active {
		used++
	}
	used += m.footerHeight()
	remain := m.height - used
	rows := (remain + rowGap) / rowStride
	if rows < 1 {
		return 1
	}
	return rows
}
