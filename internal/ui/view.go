package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/tilegrid/internal/drag"
	"github.com/atomicstack/tilegrid/internal/format/table"
	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/charmbracelet/x/ansi"
)

const (
	panelMinWidth     = 28
	panelMinEntries   = 6
	emptyCellGlyph    = "·"
	nextUndoMarker    = "▶"
	emptyGridHint     = "No rows yet. Press a to add one."
	headerTitle       = "tilegrid"
	headerSeparator   = "  "
	dragStatusPattern = "Dragging %s from row %d, column %d"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// Render draws the full screen as a string.
func (m *Model) Render() string {
	lines := []string{m.header(), ""}
	block := m.gridLines()
	if panel := m.historyPanel(len(block)); panel != "" {
		joined := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(block, "\n"), panel)
		block = strings.Split(joined, "\n")
	}
	lines = append(lines, block...)
	lines = append(lines, m.statusLine())
	if m.find.Active {
		lines = append(lines, m.findLine())
	}
	if footer := m.footer(); footer != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(footer, "\n")...)
	}
	lines = limitHeight(lines, m.height)
	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) header() string {
	segments := []string{
		headerTitle,
		fmt.Sprintf("rows %d", m.grid.Len()),
		fmt.Sprintf("undo %d", m.history.UndoLen()),
		fmt.Sprintf("redo %d", m.history.RedoLen()),
	}
	if m.drag.State() == drag.Dragging {
		segments = append(segments, "dragging")
	}
	return styles.Header.Render(strings.Join(segments, headerSeparator))
}

func (m *Model) gridLines() []string {
	rows := m.grid.Rows()
	if len(rows) == 0 {
		return []string{strings.Repeat(" ", gridLeft) + styles.EmptyCell.Render(emptyGridHint)}
	}
	start := m.cursor.ViewportOffset
	end := len(rows)
	if limit := m.maxVisibleRows(); limit > 0 && start+limit < end {
		end = start + limit
	}
	margin := strings.Repeat(" ", gridLeft)
	gap := strings.Repeat(" ", colGap)
	var out []string
	for r := start; r < end; r++ {
		if r > start {
			for i := 0; i < rowGap; i++ {
				out = append(out, "")
			}
		}
		segments := make([][]string, grid.Columns)
		for c := 0; c < grid.Columns; c++ {
			segments[c] = m.renderCell(rows[r].Cells[c], r, c)
		}
		for line := 0; line < cellHeight; line++ {
			parts := make([]string, grid.Columns)
			for c := range segments {
				parts[c] = segments[c][line]
			}
			out = append(out, margin+strings.Join(parts, gap))
		}
	}
	return out
}

// renderCell returns the cellHeight lines drawn for one cell.
func (m *Model) renderCell(cell *grid.Cell, row, col int) []string {
	label := ""
	style := styles.EmptyCell
	session := m.drag.Session()
	switch {
	case session != nil && session.Source == cell:
		label = emptyCellGlyph
	case !cell.HasTile():
		label = emptyCellGlyph
	case m.isDropTarget(cell):
		label = cell.Tile.Label
		style = styles.DropTarget
	case m.flashing(cell):
		label = cell.Tile.Label
		style = styles.FlashStyle(cell.Tile.Color)
	default:
		label = cell.Tile.Label
		style = styles.TileStyle(cell.Tile.Color)
	}
	if _, ok := m.matches[cell]; ok && label != emptyCellGlyph {
		style = style.Inherit(styles.Match)
	}
	if row == m.cursor.Row && col == m.cursor.Col {
		label = "[" + label + "]"
	}
	style = style.Width(cellWidth).Align(lipgloss.Center)
	out := make([]string, cellHeight)
	for i := range out {
		text := ""
		if i == cellHeight/2 {
			text = label
		}
		out[i] = style.Render(text)
	}
	return out
}

// isDropTarget reports whether cell is where the carried tile would land.
func (m *Model) isDropTarget(cell *grid.Cell) bool {
	if m.drag.State() != drag.Dragging {
		return false
	}
	if m.mouseDrag {
		return m.hover == cell
	}
	return cell == m.cursorCell() && m.drag.Over(cell)
}

// historyPanel lists commands beside the grid, newest last, marking the
// command the next undo would revert.
func (m *Model) historyPanel(height int) string {
	if m.width > 0 && m.width < gridWidth+panelMinWidth {
		return ""
	}
	entries := m.history.Entries()
	limit := height - 1
	if m.height <= 0 && limit < panelMinEntries {
		limit = panelMinEntries
	}
	if limit < 1 {
		limit = 1
	}
	next := m.history.PeekUndo()
	first := 0
	if len(entries) > limit {
		first = len(entries) - limit
	}
	rows := make([][]string, 0, len(entries)-first)
	for i := first; i < len(entries); i++ {
		marker := ""
		if entries[i].Command == next {
			marker = nextUndoMarker
		}
		rows = append(rows, []string{marker, strconv.Itoa(i + 1), entries[i].Command.Description()})
	}
	maxWidth := 0
	if m.width > 0 {
		maxWidth = m.width - gridWidth - styles.Panel.GetPaddingLeft()
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}, maxWidth)
	out := []string{styles.PanelTitle.Render("History")}
	if len(formatted) == 0 {
		out = append(out, styles.PanelUndone.Render("(empty)"))
	}
	for i, line := range formatted {
		entry := entries[first+i]
		switch {
		case entry.Command == next:
			out = append(out, styles.PanelCurrent.Render(line))
		case entry.Undone:
			out = append(out, styles.PanelUndone.Render(line))
		default:
			out = append(out, styles.PanelItem.Render(line))
		}
	}
	return styles.Panel.Render(strings.Join(out, "\n"))
}

func (m *Model) statusLine() string {
	if session := m.drag.Session(); session != nil {
		row, col, _ := m.grid.Locate(session.Source)
		label := ""
		if session.Tile != nil {
			label = session.Tile.Label
		}
		return styles.Ghost.Render(fmt.Sprintf(dragStatusPattern, label, row+1, col+1))
	}
	if m.infoMsg == "" {
		return ""
	}
	return styles.Info.Render(m.infoMsg)
}

func (m *Model) findLine() string {
	query := m.find.Query
	count := len(m.matches)
	suffix := fmt.Sprintf("  %d matches", count)
	if count == 1 {
		suffix = "  1 match"
	}
	return styles.FindPrompt.Render("/") + styles.Find.Render(query) + styles.Info.Render(suffix)
}

func (m *Model) footer() string {
	if !m.showFooter {
		return ""
	}
	return styles.Footer.Render(m.help.View(m.keys))
}

// footerHeight counts the blank separator plus the help lines.
func (m *Model) footerHeight() int {
	if !m.showFooter {
		return 0
	}
	return 1 + lipgloss.Height(m.footer())
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		out[i] = line
	}
	return out
}
