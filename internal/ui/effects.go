package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tilegrid/internal/grid"
)

var flashDuration = 400 * time.Millisecond

// effectDoneMsg clears the flash started with the same sequence number.
type effectDoneMsg struct {
	seq int
}

// flashCells highlights cells until a tick for this flash fires. A newer
// flash on the same cell keeps it lit past older ticks.
func (m *Model) flashCells(cells ...*grid.Cell) tea.Cmd {
	m.effectSeq++
	seq := m.effectSeq
	lit := false
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		m.flash[cell] = seq
		lit = true
	}
	if !lit {
		return nil
	}
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return effectDoneMsg{seq: seq}
	})
}

func (m *Model) handleEffectDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(effectDoneMsg)
	if !ok {
		return nil
	}
	for cell, seq := range m.flash {
		if seq == done.seq {
			delete(m.flash, cell)
		}
	}
	return nil
}

func (m *Model) flashing(cell *grid.Cell) bool {
	_, ok := m.flash[cell]
	return ok
}
