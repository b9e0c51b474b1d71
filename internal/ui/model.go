package ui

import (
	"reflect"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tilegrid/internal/drag"
	"github.com/atomicstack/tilegrid/internal/grid"
	"github.com/atomicstack/tilegrid/internal/history"
	"github.com/atomicstack/tilegrid/internal/logging/events"
	"github.com/atomicstack/tilegrid/internal/theme"
	"github.com/atomicstack/tilegrid/internal/ui/command"
	uistate "github.com/atomicstack/tilegrid/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the tile grid editor.
type Model struct {
	grid    *grid.Grid
	history *history.Manager
	bus     *command.Bus
	drag    *drag.Coordinator

	cursor  uistate.Cursor
	find    uistate.Find
	matches map[*grid.Cell]int

	// mouseDrag is set while a drag gesture started with the mouse is in
	// flight; hover is the cell under the pointer during that gesture.
	mouseDrag bool
	hover     *grid.Cell

	flash     map[*grid.Cell]int
	effectSeq int

	keys keyMap
	help help.Model

	infoMsg     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the grid, its history and a drag coordinator into a UI
// model. Positive width/height pin the viewport size.
func NewModel(g *grid.Grid, h *history.Manager, width, height int, showFooter bool) *Model {
	m := &Model{
		grid:       g,
		history:    h,
		bus:        command.New(g, h),
		drag:       drag.New(h),
		flash:      make(map[*grid.Cell]int),
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):     m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):   m.handleMouseClickMsg,
		reflect.TypeOf(tea.MouseMotionMsg{}):  m.handleMouseMotionMsg,
		reflect.TypeOf(tea.MouseReleaseMsg{}): m.handleMouseReleaseMsg,
		reflect.TypeOf(effectDoneMsg{}):       m.handleEffectDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	events.UI.Resize(m.width, m.height)
	return nil
}

// cursorCell returns the cell under the keyboard cursor.
func (m *Model) cursorCell() *grid.Cell {
	return m.grid.Cell(m.cursor.Row, m.cursor.Col)
}

func (m *Model) syncViewport() {
	m.cursor.Clamp(m.grid.Len(), grid.Columns)
	m.cursor.EnsureVisible(m.grid.Len(), m.maxVisibleRows())
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
}

// Grid exposes the underlying grid.
func (m *Model) Grid() *grid.Grid {
	return m.grid
}

// History exposes the underlying history manager.
func (m *Model) History() *history.Manager {
	return m.history
}

// Drag exposes the drag coordinator.
func (m *Model) Drag() *drag.Coordinator {
	return m.drag
}
